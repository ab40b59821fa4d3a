package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/cinerec/pkg/cinerec"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter the catalog by genre, minimum year and minimum rating",
	Long: `List the movies of one genre released no earlier than --min-year and
rated at least --min-rating, in catalog order.

Example:
  cinerec filter
  cinerec filter --genre drama --min-year 1990 --min-rating 9.0
  cinerec filter --genre horror --min-rating 7 --format json`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

var (
	filterGenre     string
	filterMinYear   string
	filterMinRating string
)

func init() {
	filterCmd.Flags().StringVarP(&filterGenre, "genre", "g", "ciencia_ficcion", "Genre to keep")
	filterCmd.Flags().StringVarP(&filterMinYear, "min-year", "y", "2000", "Earliest release year")
	filterCmd.Flags().StringVarP(&filterMinRating, "min-rating", "r", "7.0", "Lowest rating")
}

func runFilter(cmd *cobra.Command, args []string) error {
	card, err := app.Filter(cinerec.FilterRequest{
		Genre:     filterGenre,
		MinYear:   filterMinYear,
		MinRating: filterMinRating,
	})
	if err != nil {
		return err
	}
	return outputCard(cmd, card)
}
