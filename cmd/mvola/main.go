package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	mvola "github.com/flexprice/mvola-go"
	"github.com/flexprice/mvola-go/internal/config"
	ierr "github.com/flexprice/mvola-go/internal/errors"
	"github.com/flexprice/mvola-go/internal/logger"
	"github.com/flexprice/mvola-go/internal/types"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cli struct {
	app           *kingpin.Application
	correlationID *string

	token *kingpin.CmdClause

	pay         *kingpin.CmdClause
	amount      *string
	currency    *string
	debit       *string
	credit      *string
	description *string
	meta        *map[string]string

	details   *kingpin.CmdClause
	detailsID *string

	status   *kingpin.CmdClause
	statusID *string
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("mvola", "MVola merchant pay command line client")}
	c.app.HelpFlag.Short('h')
	c.correlationID = c.app.Flag("correlation-id", "X-CorrelationID for the request, random when empty").String()

	c.token = c.app.Command("token", "Generate an access token from the configured consumer key and secret")

	c.pay = c.app.Command("pay", "Initiate a merchant payment")
	c.amount = c.pay.Flag("amount", "Amount to collect").Required().String()
	c.currency = c.pay.Flag("currency", "Currency code").Default("Ar").String()
	c.debit = c.pay.Flag("debit", "Payer MSISDN").Required().String()
	c.credit = c.pay.Flag("credit", "Merchant MSISDN").Required().String()
	c.description = c.pay.Flag("description", "Description text").Default("payment").String()
	c.meta = c.pay.Flag("meta", "Extra metadata as key=value, repeatable").StringMap()

	c.details = c.app.Command("details", "Fetch a transaction")
	c.detailsID = c.details.Arg("id", "Transaction reference").Required().String()

	c.status = c.app.Command("status", "Fetch the status of a payment request")
	c.statusID = c.status.Arg("server-correlation-id", "serverCorrelationId returned by pay").Required().String()

	return c
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs one command and returns the process exit code. The logger is
// synced before returning on every path.
func execute(args []string, stdout, stderr io.Writer) int {
	c := newCLI()
	command, err := c.app.Parse(args)
	if err != nil {
		return report(stderr, ierr.WithError(err).
			WithHint("Run mvola --help for usage").
			Mark(ierr.ErrUsage))
	}

	var (
		client *mvola.Client
		cfg    *config.Configuration
		log    *logger.Logger
	)
	app := fx.New(
		mvola.Module,
		fx.NopLogger,
		fx.Populate(&client, &cfg, &log),
	)
	if err := app.Err(); err != nil {
		return report(stderr, err)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := c.run(ctx, command, client, cfg)
	if err != nil {
		return report(stderr, err)
	}
	if err := printJSON(stdout, result); err != nil {
		return report(stderr, err)
	}
	return 0
}

func (c *cli) run(ctx context.Context, command string, client *mvola.Client, cfg *config.Configuration) (any, error) {
	if !cfg.HasCredentials() {
		return nil, ierr.NewError("consumer credentials are not configured").
			WithHint("Set MVOLA_CREDENTIALS_CONSUMER_KEY and MVOLA_CREDENTIALS_CONSUMER_SECRET").
			Mark(ierr.ErrUsage)
	}

	token, err := client.Authenticate(ctx, cfg.Credentials.ConsumerKey, cfg.Credentials.ConsumerSecret)
	if err != nil {
		return nil, err
	}
	if command == c.token.FullCommand() {
		return token, nil
	}

	correlationID := lo.Ternary(*c.correlationID != "", *c.correlationID, mvola.NewCorrelationID())
	client.Transaction.SetOptions(cfg.RequestOptions(correlationID))

	switch command {
	case c.pay.FullCommand():
		tx, err := c.paymentRequest(cfg, time.Now())
		if err != nil {
			return nil, err
		}
		return client.Transaction.SendPayment(ctx, tx)
	case c.details.FullCommand():
		return client.Transaction.GetTransaction(ctx, *c.detailsID)
	case c.status.FullCommand():
		return client.Transaction.GetTransactionStatus(ctx, *c.statusID)
	}
	return nil, ierr.NewErrorf("unknown command %q", command).Mark(ierr.ErrUsage)
}

// paymentRequest builds a PaymentRequest from the pay flags. The partner name
// from the configured session is always the first metadata entry.
func (c *cli) paymentRequest(cfg *config.Configuration, now time.Time) (mvola.PaymentRequest, error) {
	amount, err := decimal.NewFromString(*c.amount)
	if err != nil {
		return mvola.PaymentRequest{}, ierr.WithError(err).
			WithHintf("Invalid amount %q", *c.amount).
			Mark(ierr.ErrUsage)
	}

	var metadata []mvola.KeyValue
	if cfg.Session.PartnerName != "" {
		metadata = append(metadata, mvola.KeyValue{Key: types.KeyPartnerName, Value: cfg.Session.PartnerName})
	}
	keys := lo.Keys(*c.meta)
	slices.Sort(keys)
	for _, k := range keys {
		metadata = append(metadata, mvola.KeyValue{Key: k, Value: (*c.meta)[k]})
	}

	reference := mvola.NewTransactionReference()
	return mvola.PaymentRequest{
		Amount:          amount,
		Currency:        *c.currency,
		DescriptionText: *c.description,
		RequestDate:     mvola.FormatRequestDate(now),
		DebitParty:      []mvola.KeyValue{mvola.MSISDN(*c.debit)},
		CreditParty:     []mvola.KeyValue{mvola.MSISDN(*c.credit)},
		Metadata:        metadata,
		RequestingOrganisationTransactionReference: reference,
		OriginalTransactionReference:               reference,
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func report(w io.Writer, err error) int {
	_ = printJSON(w, ierr.NewErrorResponse(err))
	fmt.Fprintln(w, "mvola:", ierr.Code(err))
	return 1
}
