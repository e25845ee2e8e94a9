package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartwise/cartwise/internal/cli"
	"github.com/cartwise/cartwise/internal/itemset"
	"github.com/cartwise/cartwise/internal/model"
	"github.com/cartwise/cartwise/internal/recommend"
)

func recommendCmd() *cobra.Command {
	var (
		limit   int
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <product>...",
		Short: "Recommend products to add to a cart",
		Long: `Given the products already in a cart, find every association rule whose
antecedent the cart satisfies and suggest the consequent products, keeping
the highest-confidence rule per suggestion.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := itemset.New(args...)

			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			engine := recommend.NewEngine(snap.Rules)
			recommended := engine.Recommend(cart)

			if len(recommended) == 0 {
				fmt.Println(cli.InfoStyle.Render("No specific recommendations found. Try adding more products to your cart."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Recommended products to add"))

			ranked := make(model.Recommendations, 0, len(recommended))
			for _, rec := range recommended {
				ranked = append(ranked, rec)
			}

			for i, rec := range ranked.TopN(limit) {
				fmt.Println(cli.FormatRecommendation(i+1, rec))

				if !explain {
					continue
				}
				for _, rule := range engine.Explain(rec.Product, explainingRulesLimit) {
					fmt.Printf("      %s\n", cli.SubtleStyle.Render("because "+cli.FormatRule(rule)))
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", recommendationsLimit, "maximum number of recommendations")
	cmd.Flags().BoolVar(&explain, "explain", false, "show the rules behind each recommendation")

	return cmd
}
