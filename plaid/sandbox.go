package plaid

import (
	"github.com/pkg/errors"
)

// Sandbox institutions with deterministic fixture data.
const (
	FirstPlatypusBankInstitutionID = "ins_109508"
	TartanBankInstitutionID        = "ins_109511"
)

// SandboxPublicTokenCreate links a sandbox item without going through
// Link and returns its public token.
func (pc *PlaidClient) SandboxPublicTokenCreate(institutionID string, products []Product) (string, error) {
	resp := struct {
		PublicToken string `json:"public_token"`
		RequestID   string `json:"request_id"`
	}{}
	err := pc.Request(
		"POST",
		"/sandbox/public_token/create",
		map[string]interface{}{
			"institution_id":   institutionID,
			"initial_products": products,
		},
		&resp,
	)
	if err != nil {
		return "", err
	}
	if resp.PublicToken == "" {
		return "", errors.New("plaid sandbox returned no public_token")
	}
	return resp.PublicToken, nil
}

// SandboxLink creates a sandbox item and exchanges its public token.
func (pc *PlaidClient) SandboxLink(institutionID string, products ...Product) (*Exchange, error) {
	publicToken, err := pc.SandboxPublicTokenCreate(institutionID, products)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sandbox public_token")
	}
	return pc.ExchangeToken(publicToken)
}
