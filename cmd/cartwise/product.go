package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cartwise/cartwise/internal/cli"
	"github.com/cartwise/cartwise/internal/cooccur"
)

func productCmd() *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "product <name>",
		Short: "Analyze which products sell together with a product",
		Long:  `Count the transactions containing the given product and rank the other products appearing in those same transactions.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			occurrences := cooccur.OccurrenceCount(target, snap.Transactions)
			if occurrences == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Product %q does not appear in any transaction.", target)))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Products frequently bought with %s", target)))
			fmt.Printf("Transactions with this product: %s\n\n", cli.MetricStyle.Render(fmt.Sprintf("%d", occurrences)))

			pairs := cooccur.Analyze(target, snap.Transactions)
			rows := make([]cli.BarRow, 0, coOccurrenceLimit)
			for _, pair := range pairs {
				rows = append(rows, cli.BarRow{Label: pair.Item, Value: pair.Count})
				if len(rows) == coOccurrenceLimit {
					break
				}
			}
			fmt.Println(cli.RenderBarChart(rows))

			if samples > 0 {
				fmt.Println()
				fmt.Println(cli.SubtitleStyle.Render("Sample transactions"))
				for i, txn := range cooccur.SampleTransactions(target, snap.Transactions, samples) {
					fmt.Printf("%2d. %s\n", i+1, strings.Join(txn, ", "))
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", sampleTxnLimit, "number of sample transactions to show (0 to disable)")

	return cmd
}
