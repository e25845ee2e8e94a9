package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartwise/cartwise/internal/itemset"
)

func validRule() AssociationRule {
	return AssociationRule{
		Antecedents: itemset.New("milk"),
		Consequents: itemset.New("bread"),
		Support:     0.02,
		Confidence:  0.6,
		Lift:        1.8,
		Conviction:  1.4,
	}
}

func TestAssociationRule_Validate(t *testing.T) {
	tests := []struct {
		mutate  func(*AssociationRule)
		name    string
		wantErr bool
	}{
		{
			name:   "valid rule",
			mutate: func(*AssociationRule) {},
		},
		{
			name:   "infinite conviction is allowed",
			mutate: func(r *AssociationRule) { r.Confidence = 1.0; r.Conviction = math.Inf(1) },
		},
		{
			name:    "empty antecedents",
			mutate:  func(r *AssociationRule) { r.Antecedents = itemset.New() },
			wantErr: true,
		},
		{
			name:    "empty consequents",
			mutate:  func(r *AssociationRule) { r.Consequents = itemset.New() },
			wantErr: true,
		},
		{
			name:    "overlapping sets",
			mutate:  func(r *AssociationRule) { r.Consequents = itemset.New("milk", "bread") },
			wantErr: true,
		},
		{
			name:    "support above one",
			mutate:  func(r *AssociationRule) { r.Support = 1.2 },
			wantErr: true,
		},
		{
			name:    "negative confidence",
			mutate:  func(r *AssociationRule) { r.Confidence = -0.1 },
			wantErr: true,
		},
		{
			name:    "negative lift",
			mutate:  func(r *AssociationRule) { r.Lift = -1 },
			wantErr: true,
		},
		{
			name:    "infinite lift",
			mutate:  func(r *AssociationRule) { r.Lift = math.Inf(1) },
			wantErr: true,
		},
		{
			name:    "negative conviction",
			mutate:  func(r *AssociationRule) { r.Conviction = -2 },
			wantErr: true,
		},
		{
			name:    "NaN conviction",
			mutate:  func(r *AssociationRule) { r.Conviction = math.NaN() },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRule()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssociationRule_String(t *testing.T) {
	r := AssociationRule{
		Antecedents: itemset.New("yogurt", "whole milk"),
		Consequents: itemset.New("other vegetables"),
	}

	assert.Equal(t, "whole milk, yogurt → other vegetables", r.String())
}

func TestTransaction_Contains(t *testing.T) {
	txn := Transaction{"milk", "bread"}

	assert.True(t, txn.Contains("milk"))
	assert.False(t, txn.Contains("eggs"))
	assert.False(t, Transaction{}.Contains("milk"))
}
