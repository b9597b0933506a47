package commands

import (
	"github.com/spf13/cobra"

	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

func NewPaymentsCommand(opts *rootOptions) *cobra.Command {
	var command = &cobra.Command{
		Use:   "payments",
		Short: "Inspect, capture and refund payments",
	}
	command.AddCommand(
		newPaymentFetchCommand(opts),
		newPaymentCaptureCommand(opts),
		newPaymentRefundCommand(opts),
	)
	return command
}

func newPaymentFetchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch PAYMENT_ID",
		Short: "Fetch a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := razorpay.ParsePaymentID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			payment, err := c.Payments.Fetch(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payment)
		},
	}
}

func newPaymentCaptureCommand(opts *rootOptions) *cobra.Command {
	var amount, currency string
	var command = &cobra.Command{
		Use:   "capture PAYMENT_ID",
		Short: "Capture an authorized payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := razorpay.ParsePaymentID(args[0])
			if err != nil {
				return err
			}
			cur := razorpay.Currency(currency)
			amt, err := parseAmount(amount, cur)
			if err != nil {
				return err
			}
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			payment, err := c.Payments.Capture(cmd.Context(), id, razorpay.CapturePaymentParams{Amount: amt, Currency: cur})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payment)
		},
	}
	command.Flags().StringVar(&amount, "amount", "", "amount in major units, must match the authorized amount")
	command.Flags().StringVar(&currency, "currency", string(razorpay.CurrencyINR), "ISO currency code")
	_ = command.MarkFlagRequired("amount")
	return command
}

func newPaymentRefundCommand(opts *rootOptions) *cobra.Command {
	var amount, currency string
	var command = &cobra.Command{
		Use:   "refund PAYMENT_ID",
		Short: "Refund a captured payment, fully unless --amount is set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := razorpay.ParsePaymentID(args[0])
			if err != nil {
				return err
			}
			var params razorpay.CreateRefundParams
			if amount != "" {
				if params.Amount, err = parseAmount(amount, razorpay.Currency(currency)); err != nil {
					return err
				}
			}
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			refund, err := c.Payments.Refund(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), refund)
		},
	}
	command.Flags().StringVar(&amount, "amount", "", "partial refund amount in major units")
	command.Flags().StringVar(&currency, "currency", string(razorpay.CurrencyINR), "currency of the payment")
	return command
}
