package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

func NewOrdersCommand(opts *rootOptions) *cobra.Command {
	var command = &cobra.Command{
		Use:   "orders",
		Short: "Create and inspect orders",
	}
	command.AddCommand(
		newOrderCreateCommand(opts),
		newOrderFetchCommand(opts),
		newOrderListCommand(opts),
		newOrderUpdateNotesCommand(opts),
	)
	return command
}

func newOrderCreateCommand(opts *rootOptions) *cobra.Command {
	var (
		amount   string
		currency string
		receipt  string
		notes    []string
	)
	var command = &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cur := razorpay.Currency(currency)
			amt, err := parseAmount(amount, cur)
			if err != nil {
				return err
			}
			parsedNotes, err := parseNotes(notes)
			if err != nil {
				return err
			}
			if receipt == "" {
				receipt = razorpay.NewReceipt("rzpctl")
			}
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			order, err := c.Orders.Create(cmd.Context(), razorpay.CreateOrderParams{
				Amount:   amt,
				Currency: cur,
				Receipt:  receipt,
				Notes:    parsedNotes,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
	command.Flags().StringVar(&amount, "amount", "", "amount in major units, e.g. 499.00")
	command.Flags().StringVar(&currency, "currency", string(razorpay.CurrencyINR), "ISO currency code")
	command.Flags().StringVar(&receipt, "receipt", "", "merchant receipt, generated when empty")
	command.Flags().StringArrayVar(&notes, "note", nil, "note as key=value, repeatable")
	_ = command.MarkFlagRequired("amount")
	return command
}

func newOrderFetchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch ORDER_ID",
		Short: "Fetch an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := razorpay.ParseOrderID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			order, err := c.Orders.Fetch(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func newOrderListCommand(opts *rootOptions) *cobra.Command {
	var (
		count      int
		skip       int
		limit      int
		all        bool
		authorized bool
	)
	var command = &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			params := razorpay.ListOrdersParams{Filter: razorpay.Filter{Count: count, Skip: skip}}
			if cmd.Flags().Changed("authorized") {
				params.Authorized = razorpay.Flag(authorized)
			}
			if !all {
				orders, err := c.Orders.List(cmd.Context(), &params)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), orders)
			}
			orders, err := razorpay.ListAll(cmd.Context(), params.Filter, limit, func(ctx context.Context, f razorpay.Filter) (*razorpay.Collection[razorpay.Order], error) {
				page := params
				page.Filter = f
				return c.Orders.List(ctx, &page)
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), orders)
		},
	}
	command.Flags().IntVar(&count, "count", 0, "page size (max 100)")
	command.Flags().IntVar(&skip, "skip", 0, "number of orders to skip")
	command.Flags().BoolVar(&all, "all", false, "walk every page")
	command.Flags().IntVar(&limit, "limit", 0, "stop after this many orders when --all is set")
	command.Flags().BoolVar(&authorized, "authorized", false, "only orders with an authorized payment")
	return command
}

func newOrderUpdateNotesCommand(opts *rootOptions) *cobra.Command {
	var notes []string
	var command = &cobra.Command{
		Use:   "update-notes ORDER_ID",
		Short: "Replace the notes on an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := razorpay.ParseOrderID(args[0])
			if err != nil {
				return err
			}
			parsed, err := parseNotes(notes)
			if err != nil {
				return err
			}
			c, err := opts.razorpayClient(cmd)
			if err != nil {
				return err
			}
			order, err := c.Orders.Update(cmd.Context(), id, razorpay.UpdateOrderParams{Notes: parsed})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
	command.Flags().StringArrayVar(&notes, "note", nil, "note as key=value, repeatable")
	_ = command.MarkFlagRequired("note")
	return command
}
