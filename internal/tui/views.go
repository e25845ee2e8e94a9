package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cartwise/cartwise/internal/cli"
	"github.com/cartwise/cartwise/internal/cooccur"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.SubtleColor).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.tab {
	case TabOverview:
		body = m.viewOverview()
	case TabProduct:
		body = m.viewProduct()
	case TabCart:
		body = m.viewCart()
	case TabRules:
		body = m.viewRules()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		body,
		helpStyle.Render(m.helpLine()),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewOverview() string {
	stats := m.snapshot.Stats()

	summary := fmt.Sprintf("Transactions: %s   Products: %s   Avg items/txn: %s   Rules: %s",
		cli.MetricStyle.Render(fmt.Sprintf("%d", stats.Transactions)),
		cli.MetricStyle.Render(fmt.Sprintf("%d", stats.UniqueItems)),
		cli.MetricStyle.Render(fmt.Sprintf("%.2f", stats.AvgItemsPerTxn)),
		cli.MetricStyle.Render(fmt.Sprintf("%d", len(m.snapshot.Rules))))

	rows := make([]cli.BarRow, 0, maxChartRows)
	for _, entry := range m.snapshot.Frequencies {
		rows = append(rows, cli.BarRow{Label: entry.Item, Value: entry.Count})
		if len(rows) == maxChartRows {
			break
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		summary,
		"",
		cli.SubtitleStyle.Render("Top products"),
		cli.RenderBarChart(rows),
	)
}

func (m Model) viewProduct() string {
	sections := []string{m.productInput.View()}

	if m.target != "" {
		pairs := m.coOccurrences()
		if len(pairs) == 0 {
			sections = append(sections, "",
				cli.InfoStyle.Render(fmt.Sprintf("%q does not appear in any transaction.", m.target)))
		} else {
			occurrences := cooccur.OccurrenceCount(m.target, m.snapshot.Transactions)
			sections = append(sections, "",
				fmt.Sprintf("Bought with %s %s",
					cli.MetricStyle.Render(m.target),
					cli.SubtleStyle.Render(fmt.Sprintf("(in %d transactions)", occurrences))))

			rows := make([]cli.BarRow, 0, maxChartRows)
			for _, pair := range pairs {
				rows = append(rows, cli.BarRow{Label: pair.Item, Value: pair.Count})
				if len(rows) == maxChartRows {
					break
				}
			}
			sections = append(sections, cli.RenderBarChart(rows))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCart() string {
	cartLine := cli.SubtleStyle.Render("(empty cart)")
	if m.cart.Len() > 0 {
		cartLine = "Cart: " + cli.MetricStyle.Render(strings.Join(m.cart.Items(), ", "))
	}

	sections := []string{m.cartInput.View(), cartLine}

	if ranked := m.suggestions(); len(ranked) > 0 {
		sections = append(sections, "", cli.SubtitleStyle.Render("Recommended to add"))
		for i, rec := range ranked {
			sections = append(sections, cli.FormatRecommendation(i+1, rec))
		}
	} else if m.cart.Len() > 0 {
		sections = append(sections, "",
			cli.InfoStyle.Render("No recommendations for this cart."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewRules() string {
	thresholds := fmt.Sprintf("min confidence %s   min lift %s   min support %s",
		cli.MetricStyle.Render(fmt.Sprintf("%.2f", m.thresholds.MinConfidence)),
		cli.MetricStyle.Render(fmt.Sprintf("%.1f", m.thresholds.MinLift)),
		cli.MetricStyle.Render(fmt.Sprintf("%.3f", m.thresholds.MinSupport)))

	return lipgloss.JoinVertical(lipgloss.Left,
		thresholds,
		"",
		m.ruleTable.View(),
	)
}

func (m Model) helpLine() string {
	switch m.tab {
	case TabProduct:
		return "tab: switch page • / focus input • enter: analyze • q: quit"
	case TabCart:
		return "tab: switch page • enter: add item • ctrl+d: clear cart • q: quit"
	case TabRules:
		return "tab: switch page • c/C l/L s/S: adjust thresholds • ↑/↓: scroll • q: quit"
	default:
		return "tab: switch page • q: quit"
	}
}
