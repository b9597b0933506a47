package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/razorpay-go-client/pkg/config"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

// ClientFactory builds the API client for commands that talk to Razorpay.
type ClientFactory func(ctx context.Context, logg *logger.Logger) (*razorpay.Client, error)

// FromEnvironment reads RAZORPAY_* settings, loading .env when present.
func FromEnvironment(ctx context.Context, logg *logger.Logger) (*razorpay.Client, error) {
	_ = godotenv.Load()
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	return razorpay.NewFromConfig(ctx, *cfg, logg, nil)
}

type rootOptions struct {
	factory  ClientFactory
	logLevel string
	client   *razorpay.Client
}

func (o *rootOptions) razorpayClient(cmd *cobra.Command) (*razorpay.Client, error) {
	if o.client != nil {
		return o.client, nil
	}
	logg := logger.New(logger.Options{
		ServiceName: "rzpctl",
		Level:       logger.ParseLevel(o.logLevel),
		Output:      cmd.ErrOrStderr(),
	})
	c, err := o.factory(cmd.Context(), logg)
	if err != nil {
		return nil, err
	}
	o.client = c
	return c, nil
}

// NewRootCommand assembles rzpctl. A nil factory reads the environment.
func NewRootCommand(factory ClientFactory) *cobra.Command {
	if factory == nil {
		factory = FromEnvironment
	}
	opts := &rootOptions{factory: factory}
	var command = &cobra.Command{
		Use:           "rzpctl",
		Short:         "Work with the Razorpay API from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	command.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for request logs written to stderr")
	command.AddCommand(
		NewOrdersCommand(opts),
		NewPaymentsCommand(opts),
		NewWebhookCommand(),
	)
	return command
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAmount(raw string, currency razorpay.Currency) (razorpay.Amount, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return razorpay.AmountFromDecimal(value, currency)
}

func parseNotes(pairs []string) (razorpay.Notes, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	notes := make(razorpay.Notes, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("note %q must be key=value", pair)
		}
		notes[strings.TrimSpace(key)] = value
	}
	return notes, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
