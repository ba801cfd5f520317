package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dropship-gateway/internal/api/client"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place and inspect partner orders",
	}

	cmd.AddCommand(ordersCreateCmd())
	cmd.AddCommand(ordersGetCmd())
	cmd.AddCommand(ordersListCmd())

	return cmd
}

func ordersCreateCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create --file order.json",
		Short: "Place an order from a JSON file",
		Long: "Reads an order request from a JSON file and submits it through the gateway.\n" +
			"Lines that fail validation are skipped and reported; the valid subset\n" +
			"is still submitted to the partner.",
		Example: `  dsg orders create --file order.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(fromFile) //nolint:gosec // path from trusted CLI flag
			if err != nil {
				return fmt.Errorf("reading order file: %w", err)
			}

			var req apiclient.CreateOrderRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("parsing order file: %w", err)
			}

			record, err := newClient().CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(record)
			}
			return printOrderDetail(record)
		},
	}

	cmd.Flags().StringVar(&fromFile, "file", "", "path to the order JSON file")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := newClient().GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(record)
			}
			return printOrderDetail(record)
		},
	}
}

func ordersListCmd() *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Example: `  dsg orders list
  dsg orders list --status confirmed --limit 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListOrders(cmd.Context(), status, limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printOrdersTable(resp.Orders)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum records to return")

	return cmd
}
