package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alpacahq/goplaid/plaid"
	humanize "github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAccounts(w io.Writer, resp *plaid.AccountsGetResponse) error {
	fmt.Fprintf(w, "item %v (%v)\n", resp.Item.ItemID, resp.Item.InstitutionID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT ID\tTYPE\tSUBTYPE\tNAME\tMASK\tAVAILABLE\tCURRENT\tLIMIT")
	for _, a := range resp.Accounts {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			a.AccountID,
			a.Type,
			a.Subtype,
			a.Name,
			a.Mask,
			money(a.Balances.Available),
			money(a.Balances.Current),
			money(a.Balances.Limit))
	}
	return tw.Flush()
}

func printBalance(w io.Writer, accountID string, bal decimal.Decimal) error {
	_, err := fmt.Fprintf(w, "%v: %v\n", accountID, commaDecimal(bal))
	return err
}

// commaDecimal formats to cents without going through float64.
func commaDecimal(d decimal.Decimal) string {
	abs := d.Abs().Round(2)
	fixed := abs.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.'):]
	whole := humanize.BigComma(abs.Truncate(0).BigInt())
	if d.IsNegative() && !abs.IsZero() {
		return "-" + whole + cents
	}
	return whole + cents
}

func money(f *float64) string {
	if f == nil {
		return "-"
	}
	return humanize.CommafWithDigits(*f, 2)
}
