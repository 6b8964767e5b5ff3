package plaid

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func (s *PlaidTestSuite) TestExchangeToken() {
	// clean request
	s.respond(200, map[string]interface{}{
		"access_token": "some_access_token",
		"item_id":      "some_item_id",
	})
	exchange, err := pc.ExchangeToken("some_public_token")
	require.Nil(s.T(), err)
	assert.Equal(s.T(), "some_access_token", exchange.AccessToken)
	assert.Equal(s.T(), "some_item_id", exchange.ItemID)
	assert.Equal(s.T(), "some_public_token", s.sent["public_token"])

	// empty body
	s.respond(200, map[string]interface{}{})
	exchange, err = pc.ExchangeToken("some_public_token")
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), exchange)

	// >400
	pc.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		resp.SetStatusCode(400)
		return fmt.Errorf("400 code")
	}
	exchange, err = pc.ExchangeToken("some_public_token")
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), exchange)
}

func (s *PlaidTestSuite) TestGetItem() {
	// clean request
	s.respond(200, map[string]interface{}{
		"item": map[string]interface{}{
			"institution_id":     "some_institution",
			"item_id":            "some_item_id",
			"available_products": []string{"auth"},
		},
	})
	item, err := pc.GetItem("some_access_token")
	require.Nil(s.T(), err)
	assert.Equal(s.T(), "some_item_id", item.ItemID)
	assert.Equal(s.T(), "some_institution", item.InstitutionID)
	assert.Equal(s.T(), []Product{ProductAuth}, item.AvailableProducts)

	// item in an error state
	s.respond(200, map[string]interface{}{
		"item": map[string]interface{}{
			"item_id": "some_item_id",
			"error": map[string]interface{}{
				"error_type": ErrorTypeItem,
				"error_code": CodeItemLoginRequired,
			},
		},
	})
	item, err = pc.GetItem("some_access_token")
	require.Nil(s.T(), err)
	require.NotNil(s.T(), item.Error)
	assert.True(s.T(), IsItemLoginRequired(item.Error))

	item, err = pc.GetItem("")
	assert.Equal(s.T(), ErrMissingAccessToken, err)
	assert.Nil(s.T(), item)

	// >400
	pc.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		resp.SetStatusCode(400)
		return fmt.Errorf("400 code")
	}
	item, _ = pc.GetItem("some_access_token")
	assert.Nil(s.T(), item)
}

func (s *PlaidTestSuite) TestItemRemove() {
	s.respond(200, map[string]interface{}{"request_id": "req"})
	assert.Nil(s.T(), pc.ItemRemove("some_access_token"))
	assert.Equal(s.T(), "https://plaid.base.url/item/remove", s.uri)

	s.respond(400, APIError{ErrorType: ErrorTypeInvalidInput, ErrorCode: CodeInvalidAccessToken})
	assert.True(s.T(), IsInvalidAccessToken(pc.ItemRemove("some_access_token")))

	assert.Equal(s.T(), ErrMissingAccessToken, pc.ItemRemove(""))
}
