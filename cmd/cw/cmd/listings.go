package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/jhartmann/carwatch/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query listings",
		Long: "Query and inspect the vehicle listings that have been ingested\n" +
			"and scored by carwatch.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		brand        string
		model        string
		year         int
		fuelType     string
		transmission string
		tier         string
		minScore     float64
		maxScore     float64
		maxPrice     int
		activeOnly   bool
		limit        int
		offset       int
		orderBy      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Long: "List listings with optional filters for brand, model, year,\n" +
			"fuel type, score range, tier, and price ceiling.",
		Example: `  # List all listings
  cw listings list

  # Well-priced diesel Golfs
  cw listings list --brand Volkswagen --model Golf --fuel-type diesel --min-score 70

  # Active listings under 15000 EUR, best deals first
  cw listings list --active --max-price 15000 --order-by score

  # Everything classified as an excellent deal
  cw listings list --tier "Excellent deal"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				Brand:        brand,
				Model:        model,
				Year:         year,
				FuelType:     fuelType,
				Transmission: transmission,
				Tier:         tier,
				MinScore:     minScore,
				MaxScore:     maxScore,
				MaxPriceEUR:  maxPrice,
				Active:       activeOnly,
				Limit:        limit,
				Offset:       offset,
				OrderBy:      orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "brand filter")
	cmd.Flags().StringVar(&model, "model", "", "model filter")
	cmd.Flags().IntVar(&year, "year", 0, "model year filter")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "", "fuel type filter (petrol, diesel, electric, hybrid, lpg)")
	cmd.Flags().StringVar(&transmission, "transmission", "", "transmission filter (manual, automatic)")
	cmd.Flags().StringVar(&tier, "tier", "", "score tier filter")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "minimum score filter")
	cmd.Flags().Float64Var(&maxScore, "max-score", 0, "maximum score filter")
	cmd.Flags().IntVar(&maxPrice, "max-price", 0, "maximum price in EUR")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active listings")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (score, price, mileage, year, last_seen)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  cw listings get 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}
}
