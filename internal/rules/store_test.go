package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartwise/cartwise/internal/common"
	"github.com/cartwise/cartwise/internal/itemset"
	"github.com/cartwise/cartwise/internal/model"
)

func rule(antecedents, consequents []string, support, confidence, lift float64) model.AssociationRule {
	return model.AssociationRule{
		Antecedents: itemset.New(antecedents...),
		Consequents: itemset.New(consequents...),
		Support:     support,
		Confidence:  confidence,
		Lift:        lift,
		Conviction:  1.0,
	}
}

func TestLoad(t *testing.T) {
	rows := []Row{
		{
			Antecedents: "frozenset({'whole milk'})",
			Consequents: "frozenset({'other vegetables'})",
			Support:     0.015,
			Confidence:  0.29,
			Lift:        1.51,
			Conviction:  1.13,
		},
		{
			Antecedents: "{'yogurt', 'whole milk'}",
			Consequents: "{'other vegetables'}",
			Support:     0.01,
			Confidence:  1.0,
			Lift:        2.2,
			Conviction:  math.Inf(1),
		},
	}

	loaded, err := Load(rows)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.True(t, loaded[0].Antecedents.Equal(itemset.New("whole milk")))
	assert.True(t, loaded[0].Consequents.Equal(itemset.New("other vegetables")))
	assert.InDelta(t, 1.51, loaded[0].Lift, 1e-9)

	// Input order preserved; infinite conviction accepted.
	assert.True(t, loaded[1].Antecedents.Equal(itemset.New("yogurt", "whole milk")))
	assert.True(t, math.IsInf(loaded[1].Conviction, 1))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{
			name: "undecodable antecedent literal",
			row: Row{
				Antecedents: "frozenset({'milk'",
				Consequents: "{'bread'}",
				Confidence:  0.5, Lift: 1.0, Support: 0.1, Conviction: 1.0,
			},
		},
		{
			name: "empty antecedent set",
			row: Row{
				Antecedents: "{}",
				Consequents: "{'bread'}",
				Confidence:  0.5, Lift: 1.0, Support: 0.1, Conviction: 1.0,
			},
		},
		{
			name: "empty consequent set",
			row: Row{
				Antecedents: "{'milk'}",
				Consequents: "{}",
				Confidence:  0.5, Lift: 1.0, Support: 0.1, Conviction: 1.0,
			},
		},
		{
			name: "overlapping sets",
			row: Row{
				Antecedents: "{'milk', 'bread'}",
				Consequents: "{'bread'}",
				Confidence:  0.5, Lift: 1.0, Support: 0.1, Conviction: 1.0,
			},
		},
		{
			name: "confidence out of range",
			row: Row{
				Antecedents: "{'milk'}",
				Consequents: "{'bread'}",
				Confidence:  1.5, Lift: 1.0, Support: 0.1, Conviction: 1.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]Row{tt.row})
			require.Error(t, err)
			assert.True(t, common.IsDataFormat(err), "expected DataFormatError, got %v", err)
		})
	}
}

func TestLoad_ErrorNamesRow(t *testing.T) {
	rows := []Row{
		{Antecedents: "{'milk'}", Consequents: "{'bread'}", Confidence: 0.5, Lift: 1.0, Support: 0.1, Conviction: 1.0},
		{Antecedents: "{}", Consequents: "{'bread'}", Confidence: 0.5, Lift: 1.0, Support: 0.1, Conviction: 1.0},
	}

	_, err := Load(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestFilter(t *testing.T) {
	ruleSet := []model.AssociationRule{
		rule([]string{"a"}, []string{"b"}, 0.02, 0.40, 2.0),
		rule([]string{"c"}, []string{"d"}, 0.01, 0.30, 1.5),
		rule([]string{"e"}, []string{"f"}, 0.05, 0.10, 1.0),
	}

	t.Run("thresholds are inclusive", func(t *testing.T) {
		got := Filter(ruleSet, 0.30, 1.5, 0.01)
		assert.Len(t, got, 2)
	})

	t.Run("order preserved", func(t *testing.T) {
		got := Filter(ruleSet, 0.0, 0.0, 0.0)
		assert.Equal(t, ruleSet, got)
	})

	t.Run("raising any threshold only shrinks the result", func(t *testing.T) {
		base := Filter(ruleSet, 0.30, 1.5, 0.01)
		tighter := Filter(ruleSet, 0.35, 1.5, 0.01)
		assert.LessOrEqual(t, len(tighter), len(base))
		for _, r := range tighter {
			assert.Contains(t, base, r)
		}
	})
}

func TestSortByLiftDescending(t *testing.T) {
	first := rule([]string{"a"}, []string{"b"}, 0.1, 0.5, 2.0)
	second := rule([]string{"c"}, []string{"d"}, 0.1, 0.5, 2.0)
	third := rule([]string{"e"}, []string{"f"}, 0.1, 0.5, 3.0)
	ruleSet := []model.AssociationRule{first, second, third}

	got := SortByLiftDescending(ruleSet)

	// Highest lift first; equal-lift rules keep relative input order.
	require.Len(t, got, 3)
	assert.Equal(t, third, got[0])
	assert.Equal(t, first, got[1])
	assert.Equal(t, second, got[2])

	// Input slice untouched.
	assert.Equal(t, []model.AssociationRule{first, second, third}, ruleSet)
}

func TestWithConsequent(t *testing.T) {
	ruleSet := []model.AssociationRule{
		rule([]string{"a"}, []string{"b", "c"}, 0.1, 0.5, 1.0),
		rule([]string{"d"}, []string{"e"}, 0.1, 0.5, 1.0),
		rule([]string{"f"}, []string{"c"}, 0.1, 0.5, 1.0),
	}

	got := WithConsequent(ruleSet, "c")

	require.Len(t, got, 2)
	assert.Equal(t, ruleSet[0], got[0])
	assert.Equal(t, ruleSet[2], got[1])
}

func TestWithAntecedentSubsetOf(t *testing.T) {
	ruleSet := []model.AssociationRule{
		rule([]string{"milk"}, []string{"bread"}, 0.1, 0.5, 1.0),
		rule([]string{"milk", "eggs"}, []string{"bread"}, 0.1, 0.5, 1.0),
		rule([]string{"soda"}, []string{"chips"}, 0.1, 0.5, 1.0),
	}

	got := WithAntecedentSubsetOf(ruleSet, itemset.New("milk", "eggs", "butter"))

	require.Len(t, got, 2)
	assert.Equal(t, ruleSet[0], got[0])
	assert.Equal(t, ruleSet[1], got[1])
}

func TestWithAntecedentSubsetOf_EmptyCart(t *testing.T) {
	ruleSet := []model.AssociationRule{
		rule([]string{"milk"}, []string{"bread"}, 0.1, 0.5, 1.0),
	}

	assert.Empty(t, WithAntecedentSubsetOf(ruleSet, itemset.New()))
}

func TestExplaining(t *testing.T) {
	ruleSet := []model.AssociationRule{
		rule([]string{"a"}, []string{"x"}, 0.1, 0.5, 1.0),
		rule([]string{"b"}, []string{"x"}, 0.1, 0.5, 1.0),
		rule([]string{"c"}, []string{"y"}, 0.1, 0.5, 1.0),
		rule([]string{"d"}, []string{"x"}, 0.1, 0.5, 1.0),
	}

	got := Explaining(ruleSet, "x", 2)

	require.Len(t, got, 2)
	assert.Equal(t, ruleSet[0], got[0])
	assert.Equal(t, ruleSet[1], got[1])
}
