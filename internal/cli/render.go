package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/cartwise/cartwise/internal/model"
)

const barWidth = 40

// BarRow is one labeled value in a horizontal bar chart.
type BarRow struct {
	Label string
	Value int
}

// RenderBarChart renders labeled counts as a horizontal bar chart, the
// terminal stand-in for the dashboard's bar plots. Bars are scaled to the
// largest value.
func RenderBarChart(rows []BarRow) string {
	if len(rows) == 0 {
		return SubtleStyle.Render("(no data)")
	}

	maxValue := 0
	maxLabel := 0
	for _, row := range rows {
		if row.Value > maxValue {
			maxValue = row.Value
		}
		if len(row.Label) > maxLabel {
			maxLabel = len(row.Label)
		}
	}

	var b strings.Builder
	for i, row := range rows {
		width := 0
		if maxValue > 0 {
			width = row.Value * barWidth / maxValue
		}
		if width == 0 && row.Value > 0 {
			width = 1
		}

		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s %s %s",
			maxLabel, row.Label,
			BarStyle.Render(strings.Repeat("█", width)),
			MetricStyle.Render(fmt.Sprintf("%d", row.Value)))
	}
	return b.String()
}

// FormatRule renders a rule with its metrics on one line.
func FormatRule(r model.AssociationRule) string {
	return fmt.Sprintf("%s  %s",
		r.String(),
		SubtleStyle.Render(fmt.Sprintf("(conf %.1f%%, lift %.2f, sup %.3f, conv %s)",
			r.Confidence*100, r.Lift, r.Support, FormatConviction(r.Conviction))))
}

// FormatConviction renders a conviction value, spelling out infinity.
// Mining tools emit inf for rules with confidence 1.
func FormatConviction(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatRecommendation renders one recommendation line.
func FormatRecommendation(rank int, rec model.Recommendation) string {
	return fmt.Sprintf("%2d. %s  %s",
		rank,
		rec.Product,
		SubtleStyle.Render(fmt.Sprintf("(conf %.1f%%, lift %.2f, sup %.3f)",
			rec.Confidence*100, rec.Lift, rec.Support)))
}
