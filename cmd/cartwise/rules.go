package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cartwise/cartwise/internal/cli"
	"github.com/cartwise/cartwise/internal/rules"
)

func rulesCmd() *cobra.Command {
	var (
		minConfidence float64
		minLift       float64
		minSupport    float64
		limit         int
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Filter and rank association rules",
		Long:  `List the association rules meeting the given quality thresholds, ranked by lift.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			filtered := rules.Filter(snap.Rules, minConfidence, minLift, minSupport)
			ranked := rules.SortByLiftDescending(filtered)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Found %d rules", len(ranked))))

			if len(ranked) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("If"),
				cli.TableHeaderStyle.Render("Then"),
				cli.TableHeaderStyle.Render("Support"),
				cli.TableHeaderStyle.Render("Confidence"),
				cli.TableHeaderStyle.Render("Lift"),
				cli.TableHeaderStyle.Render("Conviction"))

			for i, r := range ranked {
				if i == limit {
					break
				}
				fmt.Fprintf(w, "%s\t%s\t%.3f\t%.1f%%\t%.2f\t%s\n",
					strings.Join(r.Antecedents.Items(), ", "),
					strings.Join(r.Consequents.Items(), ", "),
					r.Support,
					r.Confidence*100,
					r.Lift,
					cli.FormatConviction(r.Conviction))
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.3, "minimum confidence (inclusive)")
	cmd.Flags().Float64Var(&minLift, "min-lift", 1.5, "minimum lift (inclusive)")
	cmd.Flags().Float64Var(&minSupport, "min-support", 0.01, "minimum support (inclusive)")
	cmd.Flags().IntVar(&limit, "limit", listedRulesLimit, "maximum number of rules to list")

	return cmd
}
