// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/adapters/directory"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/report"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/stats"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/validate"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SubmitAssessment validates and persists a candidate assessment.
	SubmitAssessment(ctx context.Context, a model.Assessment) (id string, duplicate bool, vr validate.Result, err error)

	// Read operations expose computed analytics.
	TrainerStatistics(ctx context.Context, trainerID string, win period.Window, months int) (stats.TrainerStatistics, error)
	AllTrainerStatistics(ctx context.Context, win period.Window, months int) ([]stats.TrainerStatistics, error)
	ManagersActivity(ctx context.Context) ([]stats.ManagerActivity, error)
	MonthlyTrend(ctx context.Context, months int) ([]stats.MonthlyTrend, error)
	QuarterlyTrend(ctx context.Context) ([]stats.QuarterlyData, error)
	ItemizedReport(ctx context.Context, from, to *time.Time) (report.Sets, error)

	// RegisterProfile maintains the id -> name/team directory.
	RegisterProfile(ctx context.Context, id string, p directory.Profile) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	assessmentsHandler *AssessmentsHandler
	trainersHandler    *TrainersHandler
	managersHandler    *ManagersHandler
	trendsHandler      *TrendsHandler
	reportsHandler     *ReportsHandler
	profilesHandler    *ProfilesHandler
}

// Options carries handler limits taken from configuration.
type Options struct {
	DefaultTrendMonths int
	MaxTrendMonths     int
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts Options) *Server {
	if opts.DefaultTrendMonths <= 0 {
		opts.DefaultTrendMonths = 12
	}
	if opts.MaxTrendMonths < opts.DefaultTrendMonths {
		opts.MaxTrendMonths = opts.DefaultTrendMonths
	}
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		assessmentsHandler: NewAssessmentsHandler(deps),
		trainersHandler:    NewTrainersHandler(deps),
		managersHandler:    NewManagersHandler(deps),
		trendsHandler:      NewTrendsHandler(deps, opts.DefaultTrendMonths, opts.MaxTrendMonths),
		reportsHandler:     NewReportsHandler(deps),
		profilesHandler:    NewProfilesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", MetricsHandler())
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/assessments", MetricsMiddleware(s.assessmentsHandler.HandlePostAssessment, "assessments"))
	mux.HandleFunc("/trainers/stats", MetricsMiddleware(s.trainersHandler.HandleListStats, "trainers_stats"))
	mux.HandleFunc("/trainers/", MetricsMiddleware(s.trainersHandler.HandleTrainerStats, "trainer_stats"))
	mux.HandleFunc("/managers/activity", MetricsMiddleware(s.managersHandler.HandleActivity, "managers_activity"))
	mux.HandleFunc("/trends/monthly", MetricsMiddleware(s.trendsHandler.HandleMonthly, "trends_monthly"))
	mux.HandleFunc("/trends/quarterly", MetricsMiddleware(s.trendsHandler.HandleQuarterly, "trends_quarterly"))
	mux.HandleFunc("/reports/itemized", MetricsMiddleware(s.reportsHandler.HandleItemized, "reports_itemized"))
	mux.HandleFunc("/profiles/", MetricsMiddleware(s.profilesHandler.HandlePutProfile, "profiles"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
