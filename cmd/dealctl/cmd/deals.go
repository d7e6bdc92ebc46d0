package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/dealradar/dealradar/internal/api/client"
)

func dealsCmd() *cobra.Command {
	dealsRoot := &cobra.Command{
		Use:   "deals",
		Short: "Query the deal catalog",
		Long: "Query and inspect deals that have been extracted, verified, and\n" +
			"scored by the dealradar pipeline.",
	}

	dealsRoot.AddCommand(
		dealsListCmd(),
		dealsGetCmd(),
	)

	return dealsRoot
}

func dealsListCmd() *cobra.Command {
	var (
		storeName string
		category  string
		minScore  float64
		maxPrice  float64
		active    bool
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals with optional filters",
		Long: "List catalog deals with optional filters for store, category,\n" +
			"score, price, and offer freshness.",
		Example: `  # List all deals
  dealctl deals list

  # Filter by store and minimum score
  dealctl deals list --store Amazon --min-score 75

  # Active electronics deals under 5000, sorted by price
  dealctl deals list --category electronics --max-price 5000 --active --order-by price`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListDeals(context.Background(), &apiclient.ListDealsParams{
				Store:    storeName,
				Category: category,
				MinScore: minScore,
				MaxPrice: maxPrice,
				Active:   active,
				Limit:    limit,
				Offset:   offset,
				OrderBy:  orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Deals) == 0 {
				fmt.Println("No deals found.")
				return nil
			}

			fmt.Printf("Showing %d of %d deals\n\n", len(resp.Deals), resp.Total)
			return printDealsTable(resp.Deals)
		},
	}
	cmd.Flags().StringVar(&storeName, "store", "", "store filter (Amazon, Flipkart, Myntra, Ajio)")
	cmd.Flags().StringVar(&category, "category", "", "category filter")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "minimum score filter")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price filter")
	cmd.Flags().BoolVar(&active, "active", false, "only deals whose offer has not expired")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (score, price, created_at)")

	return cmd
}

func dealsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one deal in detail",
		Args:  cobra.ExactArgs(1),
		Example: `  dealctl deals get 6a1f0c2e-...
  dealctl deals get 6a1f0c2e-... --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			deal, err := c.GetDeal(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(deal)
			}
			return printDealDetail(deal)
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Example: `  dealctl stats
  dealctl stats --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.GetStats(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			return printStats(stats)
		},
	}
}
