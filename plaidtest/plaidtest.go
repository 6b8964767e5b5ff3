// Package plaidtest holds fixtures and assertions shared by tests
// that run against the plaid sandbox.
package plaidtest

import (
	_ "embed"
	"io/ioutil"

	"github.com/alpacahq/goplaid/plaid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

// SandboxAccountCount is how many accounts a sandbox item is linked with.
const SandboxAccountCount = 8

//go:embed fixtures/sandbox_accounts.yaml
var sandboxAccounts []byte

// ExpectedAccount is one row of the fixture table. Nil balances
// mean the API reports null.
type ExpectedAccount struct {
	Type         plaid.AccountType `yaml:"type"`
	Subtype      string            `yaml:"subtype"`
	Available    *float64          `yaml:"available"`
	Current      *float64          `yaml:"current"`
	Limit        *float64          `yaml:"limit"`
	Name         string            `yaml:"name"`
	Mask         string            `yaml:"mask"`
	OfficialName string            `yaml:"official_name"`
}

// Fixtures maps a product set name to its ordered accounts.
type Fixtures map[string][]ExpectedAccount

func ParseFixtures(buf []byte) (Fixtures, error) {
	f := Fixtures{}
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse account fixtures")
	}
	return f, nil
}

func LoadFixtures(path string) (Fixtures, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read account fixtures %v", path)
	}
	return ParseFixtures(buf)
}

// SandboxFixtures returns the built in sandbox account table.
func SandboxFixtures() Fixtures {
	f, err := ParseFixtures(sandboxAccounts)
	if err != nil {
		panic(err)
	}
	return f
}

// AssertAccount compares every field with exact equality. Balances
// are simple decimals in the sandbox so float equality holds.
func AssertAccount(t assert.TestingT, expected ExpectedAccount, actual plaid.Account) bool {
	ok := assert.Equal(t, expected.Type, actual.Type, "type")
	ok = assert.Equal(t, expected.Subtype, actual.Subtype, "subtype") && ok
	ok = assertBalance(t, "available", expected.Available, actual.Balances.Available) && ok
	ok = assertBalance(t, "current", expected.Current, actual.Balances.Current) && ok
	ok = assertBalance(t, "limit", expected.Limit, actual.Balances.Limit) && ok
	ok = assert.Equal(t, expected.Name, actual.Name, "name") && ok
	ok = assert.Equal(t, expected.Mask, actual.Mask, "mask") && ok
	ok = assert.Equal(t, expected.OfficialName, actual.OfficialName, "official name") && ok
	return ok
}

func assertBalance(t assert.TestingT, field string, expected, actual *float64) bool {
	if expected == nil {
		return assert.Nil(t, actual, field)
	}
	if !assert.NotNil(t, actual, field) {
		return false
	}
	return assert.Equal(t, *expected, *actual, field)
}

// AssertAPIError checks that err came back from the API with the given
// type and code.
func AssertAPIError(t assert.TestingT, err error, errorType, errorCode string) bool {
	apiErr, ok := plaid.AsAPIError(err)
	if !assert.True(t, ok, "expected a plaid api error, got %v", err) {
		return false
	}
	ok = assert.Equal(t, errorType, apiErr.ErrorType, "error type")
	return assert.Equal(t, errorCode, apiErr.ErrorCode, "error code") && ok
}

// AssertItemEquals checks the item identity.
func AssertItemEquals(t assert.TestingT, expected, actual plaid.Item) bool {
	ok := assert.Equal(t, expected.ItemID, actual.ItemID, "item id")
	return assert.Equal(t, expected.InstitutionID, actual.InstitutionID, "institution id") && ok
}

// LinkedItem is a sandbox item created for a test run.
type LinkedItem struct {
	AccessToken string
	Item        plaid.Item
}

// Link creates a sandbox item at the institution, exchanges its public
// token and fetches the item so later calls can be compared to it.
func Link(t require.TestingT, pc *plaid.PlaidClient, institutionID string, products ...plaid.Product) *LinkedItem {
	exchange, err := pc.SandboxLink(institutionID, products...)
	require.Nil(t, err)

	item, err := pc.GetItem(exchange.AccessToken)
	require.Nil(t, err)
	require.Equal(t, exchange.ItemID, item.ItemID)

	return &LinkedItem{AccessToken: exchange.AccessToken, Item: *item}
}
