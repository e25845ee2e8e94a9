// Package tui implements the interactive explorer: the four analysis pages
// (overview, product, cart, rules) as tabs over one loaded snapshot.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cartwise/cartwise/internal/cooccur"
	"github.com/cartwise/cartwise/internal/itemset"
	"github.com/cartwise/cartwise/internal/model"
	"github.com/cartwise/cartwise/internal/recommend"
	"github.com/cartwise/cartwise/internal/rules"
	"github.com/cartwise/cartwise/internal/service"
)

// Tab identifies one explorer page.
type Tab int

const (
	TabOverview Tab = iota
	TabProduct
	TabCart
	TabRules
)

var tabNames = []string{"Overview", "Product", "Cart", "Rules"}

// Display limits within the explorer.
const (
	maxChartRows   = 15
	maxTableRows   = 50
	maxSuggestions = 10
)

// Thresholds are the adjustable rule filter bounds.
type Thresholds struct {
	MinConfidence float64
	MinLift       float64
	MinSupport    float64
}

// Model holds the explorer state.
type Model struct {
	snapshot *service.Snapshot
	engine   *recommend.Engine

	productInput textinput.Model
	cartInput    textinput.Model
	ruleTable    table.Model

	target     string // product under analysis
	cart       itemset.Set
	thresholds Thresholds

	tab      Tab
	width    int
	height   int
	quitting bool
}

// New creates the explorer over a loaded snapshot.
func New(snapshot *service.Snapshot) Model {
	productInput := textinput.New()
	productInput.Placeholder = "product name"
	productInput.CharLimit = 64

	cartInput := textinput.New()
	cartInput.Placeholder = "add product to cart"
	cartInput.CharLimit = 64

	m := Model{
		snapshot:     snapshot,
		engine:       recommend.NewEngine(snapshot.Rules),
		productInput: productInput,
		cartInput:    cartInput,
		cart:         itemset.New(),
		thresholds: Thresholds{
			MinConfidence: 0.3,
			MinLift:       1.5,
			MinSupport:    0.01,
		},
	}
	m.ruleTable = newRuleTable()
	m.refreshRules()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ruleTable.SetHeight(max(msg.Height-10, 5))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.productInput.Focused() || m.cartInput.Focused()

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "q":
		if !typing {
			m.quitting = true
			return m, tea.Quit
		}
	case "tab":
		if !typing {
			m.tab = (m.tab + 1) % Tab(len(tabNames))
			return m.enterTab()
		}
	case "shift+tab":
		if !typing {
			m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m.enterTab()
		}
	case "esc":
		m.productInput.Blur()
		m.cartInput.Blur()
		return m, nil
	}

	switch m.tab {
	case TabProduct:
		return m.updateProduct(msg)
	case TabCart:
		return m.updateCart(msg)
	case TabRules:
		return m.updateRules(msg)
	case TabOverview:
	}
	return m, nil
}

// enterTab focuses the right widget when switching tabs.
func (m Model) enterTab() (tea.Model, tea.Cmd) {
	m.productInput.Blur()
	m.cartInput.Blur()

	switch m.tab {
	case TabProduct:
		return m, m.productInput.Focus()
	case TabCart:
		return m, m.cartInput.Focus()
	case TabOverview, TabRules:
	}
	return m, nil
}

func (m Model) updateProduct(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.target = strings.TrimSpace(m.productInput.Value())
		m.productInput.Blur()
		return m, nil
	}
	if !m.productInput.Focused() && msg.String() == "/" {
		return m, m.productInput.Focus()
	}

	var cmd tea.Cmd
	m.productInput, cmd = m.productInput.Update(msg)
	return m, cmd
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		item := strings.TrimSpace(m.cartInput.Value())
		if item != "" {
			m.cart[item] = struct{}{}
			m.cartInput.SetValue("")
		}
		return m, nil
	case "ctrl+d":
		m.cart = itemset.New()
		return m, nil
	case "/":
		if !m.cartInput.Focused() {
			return m, m.cartInput.Focus()
		}
	}

	var cmd tea.Cmd
	m.cartInput, cmd = m.cartInput.Update(msg)
	return m, cmd
}

func (m Model) updateRules(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	adjusted := true
	switch msg.String() {
	case "c":
		m.thresholds.MinConfidence = clamp(m.thresholds.MinConfidence-0.05, 0, 1)
	case "C":
		m.thresholds.MinConfidence = clamp(m.thresholds.MinConfidence+0.05, 0, 1)
	case "l":
		m.thresholds.MinLift = clamp(m.thresholds.MinLift-0.1, 0, 10)
	case "L":
		m.thresholds.MinLift = clamp(m.thresholds.MinLift+0.1, 0, 10)
	case "s":
		m.thresholds.MinSupport = clamp(m.thresholds.MinSupport-0.005, 0, 1)
	case "S":
		m.thresholds.MinSupport = clamp(m.thresholds.MinSupport+0.005, 0, 1)
	default:
		adjusted = false
	}

	if adjusted {
		m.refreshRules()
		return m, nil
	}

	var cmd tea.Cmd
	m.ruleTable, cmd = m.ruleTable.Update(msg)
	return m, cmd
}

// refreshRules recomputes the filtered, lift-ranked rule table.
func (m *Model) refreshRules() {
	filtered := rules.SortByLiftDescending(rules.Filter(
		m.snapshot.Rules,
		m.thresholds.MinConfidence,
		m.thresholds.MinLift,
		m.thresholds.MinSupport,
	))

	rows := make([]table.Row, 0, maxTableRows)
	for _, r := range filtered {
		rows = append(rows, ruleRow(r))
		if len(rows) == maxTableRows {
			break
		}
	}
	m.ruleTable.SetRows(rows)
}

// coOccurrences computes the ranked pairs for the current target.
func (m Model) coOccurrences() []cooccur.Pair {
	if m.target == "" {
		return nil
	}
	return cooccur.Analyze(m.target, m.snapshot.Transactions)
}

// suggestions computes ranked recommendations for the current cart.
func (m Model) suggestions() model.Recommendations {
	recommended := m.engine.Recommend(m.cart)
	ranked := make(model.Recommendations, 0, len(recommended))
	for _, rec := range recommended {
		ranked = append(ranked, rec)
	}
	return ranked.TopN(maxSuggestions)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ruleRow(r model.AssociationRule) table.Row {
	return table.Row{
		strings.Join(r.Antecedents.Items(), ", "),
		strings.Join(r.Consequents.Items(), ", "),
		fmt.Sprintf("%.3f", r.Support),
		fmt.Sprintf("%.1f%%", r.Confidence*100),
		fmt.Sprintf("%.2f", r.Lift),
	}
}

func newRuleTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "If", Width: 30},
			{Title: "Then", Width: 24},
			{Title: "Support", Width: 8},
			{Title: "Confidence", Width: 10},
			{Title: "Lift", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)
}
