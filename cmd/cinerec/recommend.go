package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/cinerec/pkg/cinerec"
	"github.com/cognicore/cinerec/pkg/cinerec/inference"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [rule]",
	Short: "Run a recommendation rule",
	Long: fmt.Sprintf(`Run one of the recommendation rules and list the identifiers of the
matching movies. Flags the rule does not take are ignored.

Rules: %s

Example:
  cinerec recommend
  cinerec recommend recomendar_buena
  cinerec recommend recomendar_genero_rating --genre terror --min-rating 7.5
  cinerec recommend by_genre_year_rating -g drama -y 1990 -r 8.5`, ruleNames()),
	Args: cobra.MaximumNArgs(1),
	RunE: runRecommend,
}

var (
	recommendGenre     string
	recommendMinYear   string
	recommendMinRating string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendGenre, "genre", "g", "ciencia_ficcion", "Genre parameter")
	recommendCmd.Flags().StringVarP(&recommendMinYear, "min-year", "y", "0", "Minimum year parameter")
	recommendCmd.Flags().StringVarP(&recommendMinRating, "min-rating", "r", "8.0", "Minimum rating parameter")
}

func ruleNames() string {
	var names []string
	for _, r := range inference.Rules() {
		names = append(names, string(r.Name))
	}
	return strings.Join(names, ", ")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	rule := string(inference.Excellent)
	if len(args) == 1 {
		rule = args[0]
	}

	card, err := app.Recommend(cmd.Context(), cinerec.RecommendRequest{
		Rule:      rule,
		Genre:     recommendGenre,
		MinYear:   recommendMinYear,
		MinRating: recommendMinRating,
	})
	if err != nil {
		return err
	}
	return outputCard(cmd, card)
}
