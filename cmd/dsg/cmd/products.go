package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dropship-gateway/internal/api/client"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Search the partner catalog and inspect variants",
	}

	cmd.AddCommand(productsSearchCmd())
	cmd.AddCommand(productsSweepCmd())
	cmd.AddCommand(productsVariantsCmd())

	return cmd
}

func productsSweepCmd() *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "sweep [query]",
		Short: "Sweep the partner catalog for unmapped products",
		Example: `  dsg products sweep
  dsg products sweep "wireless earbuds"
  dsg products sweep --category 100015`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			resp, err := newClient().SweepCatalog(cmd.Context(), apiclient.SweepCatalogRequest{
				Query:      query,
				CategoryID: categoryID,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printSweepTable(resp)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "partner category ID")

	return cmd
}

func productsSearchCmd() *cobra.Command {
	var (
		categoryID string
		sku        string
		pageNum    int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the partner product catalog",
		Example: `  dsg products search "wireless earbuds"
  dsg products search --sku CJJJ196240
  dsg products search "phone case" --page-size 50 --page 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			resp, err := newClient().SearchProducts(cmd.Context(), apiclient.SearchProductsRequest{
				Query:      query,
				CategoryID: categoryID,
				SKU:        sku,
				PageNum:    pageNum,
				PageSize:   pageSize,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printProductsTable(resp)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "partner category ID")
	cmd.Flags().StringVar(&sku, "sku", "", "partner product SKU")
	cmd.Flags().IntVar(&pageNum, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "page size")

	return cmd
}

func productsVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants <product-id>",
		Short: "List live variants for a partner product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().QueryVariants(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printVariantsTable(resp)
		},
	}
}
