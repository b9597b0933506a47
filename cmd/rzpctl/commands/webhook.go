package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

func NewWebhookCommand() *cobra.Command {
	var command = &cobra.Command{
		Use:   "webhook",
		Short: "Sign and verify webhook bodies offline",
	}
	command.AddCommand(newWebhookSignCommand(), newWebhookVerifyCommand())
	return command
}

func newWebhookSignCommand() *cobra.Command {
	var secret, file string
	var command = &cobra.Command{
		Use:   "sign",
		Short: "Print the X-Razorpay-Signature value for a body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), razorpay.Sign(body, secret))
			return err
		},
	}
	command.Flags().StringVar(&secret, "secret", "", "webhook secret")
	command.Flags().StringVarP(&file, "file", "f", "-", "body file, - for stdin")
	_ = command.MarkFlagRequired("secret")
	return command
}

func newWebhookVerifyCommand() *cobra.Command {
	var secret, file, signature string
	var command = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed body and print the decoded event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			event, err := razorpay.ConstructEvent(body, signature, secret)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"event":      event.Event,
				"account_id": event.AccountID,
				"contains":   event.Contains,
				"created_at": event.CreatedAt,
			})
		},
	}
	command.Flags().StringVar(&secret, "secret", "", "webhook secret")
	command.Flags().StringVar(&signature, "signature", "", "X-Razorpay-Signature header value")
	command.Flags().StringVarP(&file, "file", "f", "-", "body file, - for stdin")
	_ = command.MarkFlagRequired("secret")
	_ = command.MarkFlagRequired("signature")
	return command
}
