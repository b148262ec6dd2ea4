// Package report pivots raw assessments into flat "by assessor" and
// "by trainer" row sets for tabular export. Rows are deliberately
// denormalized: every row carries its group's total assessment count so
// spreadsheet consumers never need a second lookup.
package report

import (
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/scoring"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/stats"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
)

// dateLayout formats assessment dates for export rows.
const dateLayout = "2006-01-02"

// Row is one assessment flattened for export. Parameters maps every parameter
// id to its rating; an unset rating is nil and renders as JSON null (empty in
// a spreadsheet), never as zero.
type Row struct {
	Name            string          `json:"name"`
	AssessmentCount int             `json:"assessment_count"`
	Date            string          `json:"date"`
	Counterpart     string          `json:"counterpart"`
	Average         float64         `json:"average"`
	Parameters      map[string]*int `json:"parameters"`
}

// Sets holds the two pivots of the same assessment list.
type Sets struct {
	ByAssessor []Row `json:"by_assessor"`
	ByTrainer  []Row `json:"by_trainer"`
}

// Build assembles both row sets from an (optionally date-filtered) assessment
// list. assessorNames and trainerNames resolve ids to display names; missing
// entries fall back to the raw id so a stale directory never fails a report.
func Build(assessments []model.Assessment, assessorNames, trainerNames map[string]string) Sets {
	assessorCounts := make(map[string]int)
	trainerCounts := make(map[string]int)
	for _, a := range assessments {
		assessorCounts[a.AssessorID]++
		trainerCounts[a.TrainerID]++
	}

	sets := Sets{
		ByAssessor: make([]Row, 0, len(assessments)),
		ByTrainer:  make([]Row, 0, len(assessments)),
	}
	for _, a := range assessments {
		avg := round2(scoring.Average(a))
		params := parameterValues(a)
		sets.ByAssessor = append(sets.ByAssessor, Row{
			Name:            displayName(assessorNames, a.AssessorID),
			AssessmentCount: assessorCounts[a.AssessorID],
			Date:            a.Date.Format(dateLayout),
			Counterpart:     displayName(trainerNames, a.TrainerID),
			Average:         avg,
			Parameters:      params,
		})
		sets.ByTrainer = append(sets.ByTrainer, Row{
			Name:            displayName(trainerNames, a.TrainerID),
			AssessmentCount: trainerCounts[a.TrainerID],
			Date:            a.Date.Format(dateLayout),
			Counterpart:     displayName(assessorNames, a.AssessorID),
			Average:         avg,
			Parameters:      params,
		})
	}
	return sets
}

func parameterValues(a model.Assessment) map[string]*int {
	params := make(map[string]*int, taxonomy.ParameterCount)
	for _, paramID := range taxonomy.ParameterIDs() {
		if r := a.Rating(paramID); r > 0 {
			v := r
			params[paramID] = &v
		} else {
			params[paramID] = nil
		}
	}
	return params
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// round2 mirrors the rounding applied by the stats package so exported
// averages match dashboard numbers digit for digit.
func round2(v float64) float64 {
	return stats.Round2(v)
}
