package plaid

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func (s *PlaidTestSuite) TestListInstitutions() {
	// clean request
	s.respond(200, map[string]interface{}{
		"institutions": []map[string]interface{}{
			{"institution_id": "ins_109511", "name": "Tartan Bank"},
		},
		"total": 1,
	})
	inst, err := pc.ListInstitutions(200, 0)
	require.Nil(s.T(), err)
	assert.Equal(s.T(), 1, inst.Total)
	assert.Equal(s.T(), "Tartan Bank", inst.Institutions[0].Name)
	assert.Equal(s.T(), float64(200), s.sent["count"])

	// >400
	pc.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		resp.SetStatusCode(400)
		return fmt.Errorf("400 code")
	}
	inst, _ = pc.ListInstitutions(200, 0)
	assert.Nil(s.T(), inst)
}

func (s *PlaidTestSuite) TestGetInstitution() {
	// clean request
	s.respond(200, map[string]interface{}{
		"institution": map[string]interface{}{
			"institution_id": "ins_109511",
			"name":           "Tartan Bank",
			"products":       []string{"auth", "transactions"},
			"country_codes":  []string{"US"},
		},
	})
	inst, err := pc.GetInstitution("ins_109511")
	require.Nil(s.T(), err)
	assert.Equal(s.T(), "Tartan Bank", inst.Name)
	assert.Equal(s.T(), []Product{ProductAuth, ProductTransactions}, inst.Products)
	assert.Equal(s.T(), "ins_109511", s.sent["institution_id"])

	// >400
	pc.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		resp.SetStatusCode(400)
		return fmt.Errorf("400 code")
	}
	inst, _ = pc.GetInstitution("ins_0")
	assert.Nil(s.T(), inst)
}
