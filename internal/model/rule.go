package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/cartwise/cartwise/internal/itemset"
)

// AssociationRule is one precomputed rule from the mining step: if a basket
// contains every antecedent item, it tends to contain the consequent items.
// Rules are immutable and held in input order.
type AssociationRule struct {
	Antecedents itemset.Set
	Consequents itemset.Set
	Support     float64
	Confidence  float64
	Lift        float64
	Conviction  float64 // +Inf when confidence is 1
}

// Validate ensures the rule satisfies its structural invariants.
func (r *AssociationRule) Validate() error {
	if r.Antecedents.Len() == 0 {
		return fmt.Errorf("antecedent set is empty")
	}

	if r.Consequents.Len() == 0 {
		return fmt.Errorf("consequent set is empty")
	}

	if r.Antecedents.Intersects(r.Consequents) {
		return fmt.Errorf("antecedents and consequents overlap")
	}

	if r.Support < 0.0 || r.Support > 1.0 {
		return fmt.Errorf("support must be between 0.0 and 1.0, got %g", r.Support)
	}

	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %g", r.Confidence)
	}

	if r.Lift < 0.0 || math.IsNaN(r.Lift) || math.IsInf(r.Lift, 0) {
		return fmt.Errorf("lift must be a non-negative finite number, got %g", r.Lift)
	}

	// Conviction tends to infinity as confidence approaches 1.
	if r.Conviction < 0.0 || math.IsNaN(r.Conviction) || math.IsInf(r.Conviction, -1) {
		return fmt.Errorf("conviction must be non-negative, got %g", r.Conviction)
	}

	return nil
}

// String renders the rule as "a, b → c" for display.
func (r *AssociationRule) String() string {
	return fmt.Sprintf("%s → %s",
		strings.Join(r.Antecedents.Items(), ", "),
		strings.Join(r.Consequents.Items(), ", "))
}
