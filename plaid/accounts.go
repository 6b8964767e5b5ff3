package plaid

import (
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeDepository AccountType = "depository"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

type Account struct {
	AccountID    string      `json:"account_id"`
	Balances     Balances    `json:"balances"`
	Mask         string      `json:"mask"`
	Name         string      `json:"name"`
	OfficialName string      `json:"official_name"`
	Subtype      string      `json:"subtype"`
	Type         AccountType `json:"type"`
}

// Balances are nullable: a CD has no available balance and
// only credit accounts carry a limit.
type Balances struct {
	Available       *float64 `json:"available"`
	Current         *float64 `json:"current"`
	Limit           *float64 `json:"limit"`
	ISOCurrencyCode string   `json:"iso_currency_code"`
}

func (b Balances) AvailableDecimal() *decimal.Decimal {
	return toDecimal(b.Available)
}

func (b Balances) CurrentDecimal() *decimal.Decimal {
	return toDecimal(b.Current)
}

func toDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// AccountsGetRequest is immutable; WithAccountIDs returns a copy.
type AccountsGetRequest struct {
	accessToken string
	accountIDs  []string
}

func NewAccountsGetRequest(accessToken string) AccountsGetRequest {
	return AccountsGetRequest{accessToken: accessToken}
}

func (r AccountsGetRequest) WithAccountIDs(ids ...string) AccountsGetRequest {
	r.accountIDs = append([]string(nil), ids...)
	return r
}

func (r AccountsGetRequest) AccessToken() string {
	return r.accessToken
}

func (r AccountsGetRequest) AccountIDs() []string {
	return append([]string(nil), r.accountIDs...)
}

func (r AccountsGetRequest) payload() (map[string]interface{}, error) {
	if r.accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	payload := map[string]interface{}{
		"access_token": r.accessToken,
	}
	if len(r.accountIDs) > 0 {
		payload["options"] = map[string]interface{}{
			"account_ids": r.AccountIDs(),
		}
	}
	return payload, nil
}

type AccountsGetResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// Account returns the account with the given id, if present.
func (r *AccountsGetResponse) Account(accountID string) (*Account, bool) {
	for i := range r.Accounts {
		if r.Accounts[i].AccountID == accountID {
			return &r.Accounts[i], true
		}
	}
	return nil, false
}

func (pc *PlaidClient) AccountsGet(req AccountsGetRequest) (*AccountsGetResponse, error) {
	return pc.accounts("/accounts/get", req)
}

func (pc *PlaidClient) accounts(endpoint string, req AccountsGetRequest) (*AccountsGetResponse, error) {
	payload, err := req.payload()
	if err != nil {
		return nil, err
	}

	resp := AccountsGetResponse{}
	if err = pc.Request("POST", endpoint, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
