// Package rules parses and queries the precomputed association rule
// collection. Rules are loaded once, held in input order, and never mutated;
// every query here is a pure pass over the slice.
package rules

import (
	"sort"

	"github.com/cartwise/cartwise/internal/common"
	"github.com/cartwise/cartwise/internal/itemset"
	"github.com/cartwise/cartwise/internal/model"
)

// Row is one raw record from the rules table: the two set-literal cells plus
// the already-parsed metric columns.
type Row struct {
	Antecedents string
	Consequents string
	Support     float64
	Confidence  float64
	Lift        float64
	Conviction  float64
}

// Load decodes raw rows into validated association rules, preserving input
// order. Any undecodable set literal or invariant violation (empty or
// overlapping sets, out-of-range metric) fails the whole load with a
// DataFormatError naming the offending row.
func Load(rows []Row) ([]model.AssociationRule, error) {
	loaded := make([]model.AssociationRule, 0, len(rows))

	for i, row := range rows {
		antecedents, err := itemset.Parse(row.Antecedents)
		if err != nil {
			return nil, common.NewDataFormatError(i+1, "bad antecedent set", err)
		}

		consequents, err := itemset.Parse(row.Consequents)
		if err != nil {
			return nil, common.NewDataFormatError(i+1, "bad consequent set", err)
		}

		rule := model.AssociationRule{
			Antecedents: antecedents,
			Consequents: consequents,
			Support:     row.Support,
			Confidence:  row.Confidence,
			Lift:        row.Lift,
			Conviction:  row.Conviction,
		}
		if err := rule.Validate(); err != nil {
			return nil, common.NewDataFormatError(i+1, "invalid rule", err)
		}

		loaded = append(loaded, rule)
	}

	return loaded, nil
}

// Filter returns the rules meeting all three thresholds. Each threshold is
// an inclusive lower bound. Relative input order is preserved.
func Filter(rules []model.AssociationRule, minConfidence, minLift, minSupport float64) []model.AssociationRule {
	var matched []model.AssociationRule
	for _, r := range rules {
		if r.Confidence >= minConfidence && r.Lift >= minLift && r.Support >= minSupport {
			matched = append(matched, r)
		}
	}
	return matched
}

// SortByLiftDescending returns a new slice sorted by lift descending.
// The sort is stable: equal-lift rules retain their relative input order.
func SortByLiftDescending(rules []model.AssociationRule) []model.AssociationRule {
	sorted := make([]model.AssociationRule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lift > sorted[j].Lift
	})

	return sorted
}

// WithConsequent returns, in input order, the rules whose consequent set
// contains item.
func WithConsequent(rules []model.AssociationRule, item string) []model.AssociationRule {
	var matched []model.AssociationRule
	for _, r := range rules {
		if r.Consequents.Contains(item) {
			matched = append(matched, r)
		}
	}
	return matched
}

// WithAntecedentSubsetOf returns, in input order, the rules whose antecedent
// is a non-empty subset of cart.
func WithAntecedentSubsetOf(rules []model.AssociationRule, cart itemset.Set) []model.AssociationRule {
	var matched []model.AssociationRule
	for _, r := range rules {
		if r.Antecedents.Len() > 0 && r.Antecedents.SubsetOf(cart) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Explaining returns the first limit rules, in input order, whose consequent
// contains item. Used to show why a recommendation was made.
func Explaining(rules []model.AssociationRule, item string, limit int) []model.AssociationRule {
	if limit <= 0 {
		return nil
	}

	var matched []model.AssociationRule
	for _, r := range rules {
		if !r.Consequents.Contains(item) {
			continue
		}
		matched = append(matched, r)
		if len(matched) == limit {
			break
		}
	}
	return matched
}
