// Package accounts exercises the accounts endpoints against a freshly
// linked plaid sandbox item. Run with -tags integration and
// PLAID_CLIENT_ID / PLAID_SECRET set.
package accounts
