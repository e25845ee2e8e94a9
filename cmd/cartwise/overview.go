package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cartwise/cartwise/internal/cli"
)

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show corpus statistics and top products",
		Long:  `Display transaction counts, basket size distribution, and the most frequently purchased products.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			stats := snap.Stats()

			fmt.Println(cli.FormatTitle("Overview"))
			fmt.Printf("Total transactions:  %s\n", cli.MetricStyle.Render(strconv.Itoa(stats.Transactions)))
			fmt.Printf("Unique products:     %s\n", cli.MetricStyle.Render(strconv.Itoa(stats.UniqueItems)))
			fmt.Printf("Avg items per txn:   %s\n", cli.MetricStyle.Render(fmt.Sprintf("%.2f", stats.AvgItemsPerTxn)))
			fmt.Printf("Loaded rules:        %s\n", cli.MetricStyle.Render(strconv.Itoa(len(snap.Rules))))

			fmt.Println()
			fmt.Println(cli.SubtitleStyle.Render("Basket size distribution"))
			fmt.Println(cli.RenderBarChart(sizeDistributionRows(stats.SizeHistogram)))

			fmt.Println()
			fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("Top %d products", topProductsLimit)))
			rows := make([]cli.BarRow, 0, topProductsLimit)
			for _, entry := range snap.Frequencies {
				rows = append(rows, cli.BarRow{Label: entry.Item, Value: entry.Count})
				if len(rows) == topProductsLimit {
					break
				}
			}
			fmt.Println(cli.RenderBarChart(rows))

			return nil
		},
	}
}

// sizeDistributionRows orders the size histogram by basket size ascending.
func sizeDistributionRows(histogram map[int]int) []cli.BarRow {
	sizes := make([]int, 0, len(histogram))
	for size := range histogram {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	rows := make([]cli.BarRow, 0, len(sizes))
	for _, size := range sizes {
		rows = append(rows, cli.BarRow{
			Label: fmt.Sprintf("%d items", size),
			Value: histogram[size],
		})
	}
	return rows
}
