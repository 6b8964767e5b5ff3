package plaid

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func (s *PlaidTestSuite) TestSandboxPublicTokenCreate() {
	s.respond(200, map[string]interface{}{"public_token": "public-sandbox-token"})

	token, err := pc.SandboxPublicTokenCreate(TartanBankInstitutionID, []Product{ProductTransactions})
	require.Nil(s.T(), err)
	assert.Equal(s.T(), "public-sandbox-token", token)
	assert.Equal(s.T(), TartanBankInstitutionID, s.sent["institution_id"])
	assert.Equal(s.T(), []interface{}{"transactions"}, s.sent["initial_products"])

	s.respond(200, map[string]interface{}{})
	_, err = pc.SandboxPublicTokenCreate(TartanBankInstitutionID, nil)
	assert.NotNil(s.T(), err)
}

func (s *PlaidTestSuite) TestSandboxLink() {
	calls := []string{}
	pc.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		uri := req.URI().String()
		calls = append(calls, uri)
		switch uri {
		case "https://plaid.base.url/sandbox/public_token/create":
			resp.SetBody([]byte(`{"public_token":"public-sandbox-token"}`))
		case "https://plaid.base.url/item/public_token/exchange":
			assert.Contains(s.T(), string(req.Body()), `"public_token":"public-sandbox-token"`)
			resp.SetBody([]byte(`{"access_token":"access-sandbox-token","item_id":"item"}`))
		}
		resp.SetStatusCode(200)
		return nil
	}

	exchange, err := pc.SandboxLink(TartanBankInstitutionID, ProductTransactions)
	require.Nil(s.T(), err)
	assert.Equal(s.T(), "access-sandbox-token", exchange.AccessToken)
	assert.Equal(s.T(), "item", exchange.ItemID)
	assert.Len(s.T(), calls, 2)

	s.respond(400, APIError{ErrorType: ErrorTypeInvalidInput, ErrorCode: "INVALID_INSTITUTION"})
	exchange, err = pc.SandboxLink("ins_0", ProductTransactions)
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), exchange)
}
