package main

import (
	"os"

	"github.com/alpacahq/goplaid/env"
	"github.com/alpacahq/goplaid/log"
	"github.com/alpacahq/goplaid/plaid"
	cli "gopkg.in/urfave/cli.v1"
)

func main() {
	app := cli.NewApp()
	app.Name = "plaidctl"
	app.Usage = "query the plaid api with an access token"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file with PLAID_* settings"},
		cli.BoolFlag{Name: "json", Usage: "print raw json instead of a table"},
	}
	app.Before = func(c *cli.Context) error {
		return env.Load(c.GlobalString("env-file"))
	}
	app.Commands = []cli.Command{
		{
			Name:      "accounts",
			Usage:     "list the accounts of an item",
			ArgsUsage: "<access_token>",
			Flags: []cli.Flag{
				cli.StringSliceFlag{Name: "account-id", Usage: "only return these accounts"},
			},
			Action: accounts,
		},
		{
			Name:      "balance",
			Usage:     "print the available balance of one account",
			ArgsUsage: "<access_token> <account_id>",
			Action:    balance,
		},
		{
			Name:      "item",
			Usage:     "describe the item behind an access token",
			ArgsUsage: "<access_token>",
			Action:    item,
		},
		{
			Name:      "institution",
			Usage:     "describe an institution",
			ArgsUsage: "<institution_id>",
			Action:    institution,
		},
		{
			Name:  "sandbox-link",
			Usage: "link a sandbox item and print its access token",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "institution", Value: plaid.TartanBankInstitutionID},
				cli.StringSliceFlag{Name: "product", Usage: "initial products (default transactions)"},
			},
			Action: sandboxLink,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("plaidctl failed", "error", err)
	}
}

func arg(c *cli.Context, i int, name string) (string, error) {
	v := c.Args().Get(i)
	if v == "" {
		return "", cli.NewExitError("missing "+name, 2)
	}
	return v, nil
}

func accounts(c *cli.Context) error {
	token, err := arg(c, 0, "access_token")
	if err != nil {
		return err
	}
	req := plaid.NewAccountsGetRequest(token)
	if ids := c.StringSlice("account-id"); len(ids) > 0 {
		req = req.WithAccountIDs(ids...)
	}

	resp, err := plaid.Client().AccountsGet(req)
	if err != nil {
		return exit(err)
	}
	if c.GlobalBool("json") {
		return printJSON(os.Stdout, resp)
	}
	return printAccounts(os.Stdout, resp)
}

func balance(c *cli.Context) error {
	token, err := arg(c, 0, "access_token")
	if err != nil {
		return err
	}
	accountID, err := arg(c, 1, "account_id")
	if err != nil {
		return err
	}

	bal, err := plaid.Client().GetBalance(token, accountID)
	if err != nil {
		return exit(err)
	}
	if c.GlobalBool("json") {
		return printJSON(os.Stdout, map[string]interface{}{"account_id": accountID, "available": bal})
	}
	return printBalance(os.Stdout, accountID, *bal)
}

func item(c *cli.Context) error {
	token, err := arg(c, 0, "access_token")
	if err != nil {
		return err
	}

	it, err := plaid.Client().GetItem(token)
	if err != nil {
		return exit(err)
	}
	return printJSON(os.Stdout, it)
}

func institution(c *cli.Context) error {
	id, err := arg(c, 0, "institution_id")
	if err != nil {
		return err
	}

	inst, err := plaid.Client().GetInstitution(id)
	if err != nil {
		return exit(err)
	}
	return printJSON(os.Stdout, inst)
}

func sandboxLink(c *cli.Context) error {
	if env.Prod() {
		return cli.NewExitError("sandbox-link is disabled in PROD mode", 1)
	}
	if url := plaid.Client().BaseURL(); url != plaid.SandboxURL {
		return cli.NewExitError("PLAID_URL must point at the sandbox, not "+url, 1)
	}

	products := []plaid.Product{}
	for _, p := range c.StringSlice("product") {
		products = append(products, plaid.Product(p))
	}
	if len(products) == 0 {
		products = append(products, plaid.ProductTransactions)
	}

	exchange, err := plaid.Client().SandboxLink(c.String("institution"), products...)
	if err != nil {
		return exit(err)
	}
	log.Info("linked sandbox item", "item_id", exchange.ItemID, "institution", c.String("institution"))
	return printJSON(os.Stdout, exchange)
}

// exit maps api errors onto a readable message and exit code.
func exit(err error) error {
	if apiErr, ok := plaid.AsAPIError(err); ok {
		msg := apiErr.Error()
		if apiErr.CanDisplay() {
			msg = *apiErr.DisplayMessage + " - " + msg
		}
		return cli.NewExitError(msg, 3)
	}
	return cli.NewExitError(err.Error(), 1)
}
