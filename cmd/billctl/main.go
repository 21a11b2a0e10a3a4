// Command billctl is the terminal client for the billing backend: account
// and catalog management, stock search, bill creation, and invoice preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"medibill/internal/alert"
	"medibill/internal/apiclient"
	"medibill/internal/config"
	"medibill/internal/session"
)

const usage = `usage: billctl <command> [args]

account:
  login <username>            sign in (password read from stdin)
  register <username>         create an account
  logout                      discard the local session
  whoami                      show the active session

catalog:
  products                    list the product catalog
  product-search <text>       paginated product search
  bulk-upload <file.xlsx>     import products from a spreadsheet

stock:
  stock                       list my stock batches
  stock-search <text>         paginated stock batch search

bills:
  bill-create                 interactive two-step bill creation
  bills                       list my bills
  bill [id]                   print an invoice preview (default: last created)
  bill-export <id> <out.csv>  export a bill's lines as CSV
`

// app bundles the wired client stack for the command handlers.
type app struct {
	cfg      *config.Config
	sessions *session.Store
	alerts   *alert.Service

	auth     *apiclient.AuthClient
	products *apiclient.ProductClient
	stock    *apiclient.StockClient
	bills    *apiclient.BillClient
	details  *apiclient.DetailsClient
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sessions, err := session.Open(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	loading := apiclient.NewLoadingCounter(
		func() { fmt.Fprint(os.Stderr, "working...") },
		func() { fmt.Fprintln(os.Stderr, " done") },
	)
	client := apiclient.New(cfg.API, sessions, loading)

	a := &app{
		cfg:      cfg,
		sessions: sessions,
		alerts:   alert.NewService(),
		auth:     apiclient.NewAuthClient(client),
		products: apiclient.NewProductClient(client),
		stock:    apiclient.NewStockClient(client),
		bills:    apiclient.NewBillClient(client),
		details:  apiclient.NewDetailsClient(client),
	}

	ctx := context.Background()
	if err := a.dispatch(ctx, args[0], args[1:]); err != nil {
		return err
	}
	a.drainAlerts()
	return nil
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "register":
		return a.cmdRegister(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami()
	case "products":
		return a.cmdProducts(ctx)
	case "product-search":
		return a.cmdProductSearch(ctx, args)
	case "bulk-upload":
		return a.cmdBulkUpload(ctx, args)
	case "stock":
		return a.cmdStock(ctx)
	case "stock-search":
		return a.cmdStockSearch(ctx, args)
	case "bill-create":
		return a.cmdBillCreate(ctx)
	case "bills":
		return a.cmdBills(ctx)
	case "bill":
		return a.cmdBillPreview(ctx, args)
	case "bill-export":
		return a.cmdBillExport(ctx, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// drainAlerts prints any queued transient messages before exit.
func (a *app) drainAlerts() {
	for {
		select {
		case m := <-a.alerts.Messages():
			fmt.Fprintf(os.Stderr, "[%s] %s\n", m.Type, m.Text)
		default:
			return
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
