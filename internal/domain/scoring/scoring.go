// Package scoring computes a single assessment's overall average and its
// per-category averages over the fixed taxonomy.
package scoring

import (
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
)

// CategoryAverage is the computed mean for one taxonomy category.
// ParameterCount is the number of parameters that actually contributed a
// positive rating, not the category's member count.
type CategoryAverage struct {
	CategoryID     string  `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	Average        float64 `json:"average"`
	ParameterCount int     `json:"parameter_count"`
}

// Average returns the unweighted mean of an assessment's ratings.
//
// On persisted data every one of the 21 ratings is set, so the divisor is
// effectively always 21; unset (0) ratings are still skipped defensively
// because category breakdowns operate over possibly-filtered subsets.
func Average(a model.Assessment) float64 {
	sum, count := 0, 0
	for _, paramID := range taxonomy.ParameterIDs() {
		if r := a.Rating(paramID); r > 0 {
			sum += r
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// CategoryAverages returns the per-category means for one assessment, in
// taxonomy order. A category with no counted parameters reports average 0
// with ParameterCount 0; there is never a divide by zero.
func CategoryAverages(a model.Assessment) []CategoryAverage {
	out := make([]CategoryAverage, 0, len(taxonomy.Categories()))
	for _, c := range taxonomy.Categories() {
		sum, count := 0, 0
		for _, p := range c.Parameters {
			if r := a.Rating(p.ID); r > 0 {
				sum += r
				count++
			}
		}
		avg := 0.0
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		out = append(out, CategoryAverage{
			CategoryID:     c.ID,
			CategoryName:   c.Name,
			Average:        avg,
			ParameterCount: count,
		})
	}
	return out
}
