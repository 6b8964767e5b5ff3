package plaid

import (
	"github.com/pkg/errors"
)

type Product string

const (
	ProductAuth         Product = "auth"
	ProductBalance      Product = "balance"
	ProductIdentity     Product = "identity"
	ProductIncome       Product = "income"
	ProductTransactions Product = "transactions"
)

// Item is a linked institution connection.
type Item struct {
	ItemID            string    `json:"item_id"`
	InstitutionID     string    `json:"institution_id"`
	Webhook           string    `json:"webhook"`
	AvailableProducts []Product `json:"available_products"`
	BilledProducts    []Product `json:"billed_products"`
	Error             *APIError `json:"error"`
}

type Exchange struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

func (pc *PlaidClient) ExchangeToken(publicToken string) (*Exchange, error) {
	exchange := Exchange{}
	err := pc.Request(
		"POST",
		"/item/public_token/exchange",
		map[string]interface{}{
			"public_token": publicToken,
		},
		&exchange,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate plaid access_token")
	}
	if exchange.AccessToken == "" || exchange.ItemID == "" {
		return nil, errors.New("plaid token exchange returned no access_token")
	}
	return &exchange, nil
}

func (pc *PlaidClient) GetItem(accessToken string) (*Item, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	resp := struct {
		Item      Item   `json:"item"`
		RequestID string `json:"request_id"`
	}{}
	err := pc.Request(
		"POST",
		"/item/get",
		map[string]interface{}{
			"access_token": accessToken,
		},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// ItemRemove invalidates the access token and unlinks the item.
func (pc *PlaidClient) ItemRemove(accessToken string) error {
	if accessToken == "" {
		return ErrMissingAccessToken
	}
	resp := map[string]interface{}{}
	return pc.Request(
		"POST",
		"/item/remove",
		map[string]interface{}{
			"access_token": accessToken,
		},
		&resp,
	)
}
