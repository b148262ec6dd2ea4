package stats

import (
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/scoring"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
)

// CategoryBreakdown is one category's average within a time bucket.
type CategoryBreakdown struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Average      float64 `json:"average"`
}

// MonthlyTrend is one month's platform-wide slice of the assessment history.
type MonthlyTrend struct {
	Month            string              `json:"month"`
	AssessmentCount  int                 `json:"assessment_count"`
	TrainersAssessed int                 `json:"trainers_assessed"`
	AverageRating    float64             `json:"average_rating"`
	CategoryAverages []CategoryBreakdown `json:"category_averages"`
}

// QuarterlyData is one quarter's platform-wide slice of the assessment history.
type QuarterlyData struct {
	Quarter          string              `json:"quarter"`
	AssessmentCount  int                 `json:"assessment_count"`
	TrainersAssessed int                 `json:"trainers_assessed"`
	AverageRating    float64             `json:"average_rating"`
	CategoryAverages []CategoryBreakdown `json:"category_averages"`
}

// MonthlySeries produces months trailing buckets, oldest first, the last one
// being the current month. Sparse buckets come back zero-filled; the series
// never has fewer than the requested number of buckets.
func MonthlySeries(assessments []model.Assessment, now time.Time, months int) []MonthlyTrend {
	buckets := period.MonthBuckets(now, months)
	out := make([]MonthlyTrend, 0, len(buckets))
	for _, b := range buckets {
		count, trainers, avg, breakdown := bucketStats(assessments, b.Range)
		out = append(out, MonthlyTrend{
			Month:            b.Label,
			AssessmentCount:  count,
			TrainersAssessed: trainers,
			AverageRating:    avg,
			CategoryAverages: breakdown,
		})
	}
	return out
}

// QuarterlySeries produces the eight quarters spanning the previous and
// current year, oldest first.
func QuarterlySeries(assessments []model.Assessment, now time.Time) []QuarterlyData {
	buckets := period.QuarterBuckets(now)
	out := make([]QuarterlyData, 0, len(buckets))
	for _, b := range buckets {
		count, trainers, avg, breakdown := bucketStats(assessments, b.Range)
		out = append(out, QuarterlyData{
			Quarter:          b.Label,
			AssessmentCount:  count,
			TrainersAssessed: trainers,
			AverageRating:    avg,
			CategoryAverages: breakdown,
		})
	}
	return out
}

// bucketStats computes one bucket's platform average and category breakdown.
//
// The category denominator is the count of positive ratings actually present
// in the bucket, not category-member-count x assessment-count: a category
// average is a mean over however many qualifying data points exist and can
// legitimately be 0 for a sparse bucket.
func bucketStats(assessments []model.Assessment, r period.Range) (count, trainers int, avg float64, breakdown []CategoryBreakdown) {
	catSum := make(map[string]int, len(taxonomy.Categories()))
	catCount := make(map[string]int, len(taxonomy.Categories()))
	seen := make(map[string]struct{})
	sum := 0.0

	for _, a := range assessments {
		if !r.Contains(a.Date) {
			continue
		}
		count++
		seen[a.TrainerID] = struct{}{}
		sum += scoring.Average(a)
		for _, c := range taxonomy.Categories() {
			for _, p := range c.Parameters {
				if rating := a.Rating(p.ID); rating > 0 {
					catSum[c.ID] += rating
					catCount[c.ID]++
				}
			}
		}
	}

	if count > 0 {
		avg = Round2(sum / float64(count))
	}

	breakdown = make([]CategoryBreakdown, 0, len(taxonomy.Categories()))
	for _, c := range taxonomy.Categories() {
		b := CategoryBreakdown{CategoryID: c.ID, CategoryName: c.Name}
		if catCount[c.ID] > 0 {
			b.Average = Round2(float64(catSum[c.ID]) / float64(catCount[c.ID]))
		}
		breakdown = append(breakdown, b)
	}
	return count, len(seen), avg, breakdown
}
