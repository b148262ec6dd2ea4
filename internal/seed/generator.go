// Package seed generates plausible assessment traffic and submits it to a
// running instance. It exists for demos and manual verification of the
// analytics surfaces; nothing in the service depends on it.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/validate"
)

// Submission mirrors the POST /assessments payload.
type Submission struct {
	AssessmentID    string            `json:"assessment_id"`
	TrainerID       string            `json:"trainer_id"`
	AssessorID      string            `json:"assessor_id"`
	AssessmentDate  string            `json:"assessment_date"`
	Ratings         map[string]int    `json:"ratings"`
	Comments        map[string]string `json:"comments"`
	OverallComments string            `json:"overall_comments"`
}

// Generator produces random but contract-valid submissions.
type Generator struct {
	rng      *rand.Rand
	trainers []string
	managers []string
	months   int
}

// NewGenerator creates a generator over synthetic trainer/manager pools.
// Seeded deterministically so repeated runs produce comparable datasets.
func NewGenerator(trainerCount, managerCount, months int, randSeed int64) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewSource(randSeed)), //nolint:gosec // reproducible demo data
		months: months,
	}
	for i := 0; i < trainerCount; i++ {
		g.trainers = append(g.trainers, fmt.Sprintf("trainer-%03d", i+1))
	}
	for i := 0; i < managerCount; i++ {
		g.managers = append(g.managers, fmt.Sprintf("manager-%03d", i+1))
	}
	return g
}

// lowComments justify ratings 1-3; all comfortably above the 20-char minimum.
var lowComments = []string{
	"Struggled to keep the session on track and lost the group several times.",
	"Joined late twice this week and was not ready with the environment.",
	"Explanations were rushed and participants asked for repeats repeatedly.",
	"Audio quality problems went unaddressed for most of the session.",
}

var highComments = []string{
	"Handled a difficult Q&A smoothly.",
	"Great pacing throughout.",
	"",
	"",
}

var overallComments = []string{
	"Solid session overall with a few rough edges around tooling transitions.",
	"Consistently well prepared; participants stayed engaged from start to finish.",
	"Needs to tighten up session openings, but content delivery keeps improving.",
}

// Next produces one submission dated within the trailing months window.
func (g *Generator) Next(now time.Time) Submission {
	daysBack := g.rng.Intn(g.months * 28)
	date := now.UTC().AddDate(0, 0, -daysBack)

	ratings := make(map[string]int, taxonomy.ParameterCount)
	comments := make(map[string]string, taxonomy.ParameterCount)
	for _, paramID := range taxonomy.ParameterIDs() {
		// Skew toward high ratings the way real managers rate.
		r := 1 + g.rng.Intn(validate.MaxRating)
		if g.rng.Intn(4) > 0 && r <= validate.LowRatingMax {
			r = 4 + g.rng.Intn(2)
		}
		ratings[paramID] = r
		if r <= validate.LowRatingMax {
			comments[paramID] = lowComments[g.rng.Intn(len(lowComments))]
		} else {
			comments[paramID] = highComments[g.rng.Intn(len(highComments))]
		}
	}

	return Submission{
		AssessmentID:    uuid.NewString(),
		TrainerID:       g.trainers[g.rng.Intn(len(g.trainers))],
		AssessorID:      g.managers[g.rng.Intn(len(g.managers))],
		AssessmentDate:  date.Format("2006-01-02"),
		Ratings:         ratings,
		Comments:        comments,
		OverallComments: overallComments[g.rng.Intn(len(overallComments))],
	}
}
