package plaid

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BalanceGet is AccountsGet against the real-time balance endpoint.
func (pc *PlaidClient) BalanceGet(req AccountsGetRequest) (*AccountsGetResponse, error) {
	return pc.accounts("/accounts/balance/get", req)
}

// GetBalance returns the available balance of a single account.
func (pc *PlaidClient) GetBalance(accessToken, accountID string) (*decimal.Decimal, error) {
	resp, err := pc.BalanceGet(NewAccountsGetRequest(accessToken).WithAccountIDs(accountID))
	if err != nil {
		return nil, err
	}

	for _, account := range resp.Accounts {
		if strings.EqualFold(account.AccountID, accountID) {
			if balance := account.Balances.AvailableDecimal(); balance != nil {
				return balance, nil
			}
			return nil, errors.Errorf("account %v has no available balance", accountID)
		}
	}
	return nil, errors.Errorf("account %v not found in balance response", accountID)
}
