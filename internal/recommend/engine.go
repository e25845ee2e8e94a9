// Package recommend implements the cart recommendation engine: subset
// matching of rule antecedents against the cart, with best-rule resolution
// per suggested product.
package recommend

import (
	"github.com/cartwise/cartwise/internal/itemset"
	"github.com/cartwise/cartwise/internal/model"
	"github.com/cartwise/cartwise/internal/rules"
)

// Engine answers cart queries against an immutable rule collection.
type Engine struct {
	rules []model.AssociationRule
}

// NewEngine creates an engine over the given rules. The slice is retained,
// not copied; callers must not mutate it afterwards.
func NewEngine(ruleSet []model.AssociationRule) *Engine {
	return &Engine{rules: ruleSet}
}

// Recommend returns, for each product implied by the cart, the metrics of
// the best rule suggesting it. A rule is a candidate when its antecedent is
// a non-empty subset of the cart; each consequent item not already in the
// cart is recorded with the rule's metrics, and a later rule replaces an
// earlier one only when its confidence is strictly greater (ties keep the
// first-seen rule). Lift and support are carried along, never compared.
//
// The result is unordered; callers sort and limit for display (see
// model.Recommendations). An empty cart or no matching rules yields an
// empty map, not an error.
func (e *Engine) Recommend(cart itemset.Set) map[string]model.Recommendation {
	recommendations := make(map[string]model.Recommendation)
	if cart.Len() == 0 {
		return recommendations
	}

	for _, rule := range rules.WithAntecedentSubsetOf(e.rules, cart) {
		for item := range rule.Consequents {
			if cart.Contains(item) {
				continue
			}

			current, exists := recommendations[item]
			if exists && rule.Confidence <= current.Confidence {
				continue
			}

			recommendations[item] = model.Recommendation{
				Product:    item,
				Confidence: rule.Confidence,
				Lift:       rule.Lift,
				Support:    rule.Support,
			}
		}
	}

	return recommendations
}

// Explain returns up to limit rules whose consequent contains product, in
// rule input order, for display next to a recommendation.
func (e *Engine) Explain(product string, limit int) []model.AssociationRule {
	return rules.Explaining(e.rules, product, limit)
}
