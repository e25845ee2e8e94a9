package model

import "sort"

// Recommendation is a transient suggestion produced for one cart query: a
// product plus the metrics of the best rule that implied it.
type Recommendation struct {
	Product    string
	Confidence float64
	Lift       float64
	Support    float64
}

// Recommendations is a slice of Recommendation that supports sorting and
// utility methods.
type Recommendations []Recommendation

// Sort orders the recommendations by confidence descending. Equal
// confidences are ordered by product name so output is deterministic.
func (r Recommendations) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Confidence != r[j].Confidence {
			return r[i].Confidence > r[j].Confidence
		}
		return r[i].Product < r[j].Product
	})
}

// TopN returns the N highest-confidence recommendations.
func (r Recommendations) TopN(n int) Recommendations {
	if n <= 0 {
		return Recommendations{}
	}

	r.Sort()

	if n > len(r) {
		n = len(r)
	}

	result := make(Recommendations, n)
	copy(result, r[:n])
	return result
}
