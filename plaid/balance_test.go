package plaid

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func (s *PlaidTestSuite) TestGetBalance() {
	// clean request
	available := 10000.0
	id := "some_account_id"
	s.respond(200, AccountsGetResponse{
		Accounts: []Account{
			{
				AccountID: id,
				Balances: Balances{
					Available: &available,
					Current:   &available,
				},
			},
		},
	})
	balance, err := pc.GetBalance("some_access_token", id)
	require.Nil(s.T(), err)
	assert.True(s.T(), balance.Equals(decimal.NewFromFloat(10000)))
	assert.Equal(s.T(), "https://plaid.base.url/accounts/balance/get", s.uri)
	options := s.sent["options"].(map[string]interface{})
	assert.Equal(s.T(), []interface{}{id}, options["account_ids"])

	// account without an available balance
	s.respond(200, AccountsGetResponse{
		Accounts: []Account{{AccountID: id}},
	})
	balance, err = pc.GetBalance("some_access_token", id)
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), balance)

	// account missing from the response
	s.respond(200, AccountsGetResponse{})
	balance, err = pc.GetBalance("some_access_token", id)
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), balance)

	// >400
	pc.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		resp.SetStatusCode(400)
		return fmt.Errorf("400 code")
	}
	balance, err = pc.GetBalance("some_access_token", id)
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), balance)
}
