// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/adapters/directory"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/adapters/repository"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/dedupe"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/report"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/stats"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/validate"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/pkg/logger"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/pkg/metrics"
)

// Service implements the assessment scoring and analytics engine behind the
// HTTP API. Every aggregation method performs exactly one bulk store read and
// then computes pure, stateless results from the returned slice, so abandoning
// a request is always safe and repeating one is always idempotent.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   repository.Store
	dir     directory.Directory
	deduper dedupe.Deduper

	// Configuration
	databaseDSN string
	dedupeSize  int
	activeDays  int

	// now is injectable so aggregation tests can pin the reference time.
	now func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets a custom assessment store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDirectory sets a custom profile directory.
func WithDirectory(dir directory.Directory) Option {
	return func(s *Service) {
		if dir != nil {
			s.dir = dir
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDatabaseDSN selects the Postgres-backed store on Start.
func WithDatabaseDSN(dsn string) Option {
	return func(s *Service) {
		s.databaseDSN = dsn
	}
}

// WithDedupeSize bounds the submission idempotency cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithActiveWindowDays sets the manager activity window.
func WithActiveWindowDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.activeDays = days
		}
	}
}

// WithClock overrides the reference "now" used by aggregations.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dedupeSize: 50_000,
		activeDays: stats.DefaultActiveWindowDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		if s.databaseDSN != "" {
			store, err := repository.NewGormStore(s.databaseDSN)
			if err != nil {
				return fmt.Errorf("start service: %w", err)
			}
			s.store = store
			s.logger.Info(ctx, "using postgres store")
		} else {
			s.store = repository.NewMemStore()
			s.logger.Info(ctx, "using in-memory store")
		}
	}
	if s.dir == nil {
		s.dir = directory.NewMemDirectory()
	}
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)

	s.started = true
	s.logger.Info(ctx, "assessment service started",
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Int("activeWindowDays", s.activeDays),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "assessment service stopped")
}

// SubmitAssessment validates and persists a candidate assessment.
//
// Contract violations are returned in the validate.Result, not as an error.
// A retry carrying an already-seen submission id acks as a duplicate without
// writing anything.
func (s *Service) SubmitAssessment(ctx context.Context, a model.Assessment) (string, bool, validate.Result, error) {
	a.Date = normalizeDate(a.Date)

	vr := validate.Assessment(a)
	if !vr.Valid {
		metrics.RecordValidationFailure()
		s.logger.Debug(ctx, "assessment rejected by contract",
			logger.String("trainerID", a.TrainerID),
			logger.Int("fieldErrors", len(vr.FieldErrors)),
		)
		return "", false, vr, nil
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	} else if s.deduper.SeenAndRecord(ctx, a.ID) {
		metrics.RecordDuplicateSubmission()
		return a.ID, true, vr, nil
	}

	a.CreatedAt = s.now().UTC()
	if err := s.store.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			metrics.RecordDuplicateSubmission()
			return a.ID, true, vr, nil
		}
		// Roll back the seen mark so the client can retry.
		s.deduper.Unrecord(ctx, a.ID)
		return "", false, vr, fmt.Errorf("persist assessment: %w", err)
	}

	metrics.RecordAssessmentSubmitted()
	s.logger.Info(ctx, "assessment persisted",
		logger.String("id", a.ID),
		logger.String("trainerID", a.TrainerID),
		logger.String("assessorID", a.AssessorID),
	)
	return a.ID, false, vr, nil
}

// TrainerStatistics computes one trainer's statistics record. win and months
// select the caller's date filter for the total count; the four window
// averages and the month-over-month trend are computed from the trainer's
// full history regardless.
func (s *Service) TrainerStatistics(ctx context.Context, trainerID string, win period.Window, months int) (stats.TrainerStatistics, error) {
	const op = "trainer_stats"
	defer s.timeAggregation(op)()

	now := s.now()
	list, err := s.fetch(ctx, repository.Filter{TrainerID: trainerID})
	if err != nil {
		metrics.RecordAggregationError(op)
		return stats.TrainerStatistics{}, err
	}
	profiles, err := s.dir.Resolve(ctx, []string{trainerID})
	if err != nil {
		metrics.RecordAggregationError(op)
		return stats.TrainerStatistics{}, fmt.Errorf("resolve trainer: %w", err)
	}
	p := profiles[trainerID]
	return stats.Trainer(trainerID, p.Name, p.Team, list, now, requestedRange(now, win, months)), nil
}

// AllTrainerStatistics computes statistics for every trainer present in the
// store, ordered by trainer name. One bulk read serves all trainers.
func (s *Service) AllTrainerStatistics(ctx context.Context, win period.Window, months int) ([]stats.TrainerStatistics, error) {
	const op = "all_trainer_stats"
	defer s.timeAggregation(op)()

	now := s.now()
	list, err := s.fetch(ctx, repository.Filter{})
	if err != nil {
		metrics.RecordAggregationError(op)
		return nil, err
	}

	groups := groupBy(list, func(a model.Assessment) string { return a.TrainerID })
	profiles, err := s.dir.Resolve(ctx, keys(groups))
	if err != nil {
		metrics.RecordAggregationError(op)
		return nil, fmt.Errorf("resolve trainers: %w", err)
	}

	requested := requestedRange(now, win, months)
	out := make([]stats.TrainerStatistics, 0, len(groups))
	for trainerID, assessments := range groups {
		p := profiles[trainerID]
		out = append(out, stats.Trainer(trainerID, p.Name, p.Team, assessments, now, requested))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainerName < out[j].TrainerName })
	metrics.UpdateTrainersTracked(len(out))
	return out, nil
}

// ManagersActivity computes the activity record for every manager who has
// authored at least one assessment, ordered by manager name.
func (s *Service) ManagersActivity(ctx context.Context) ([]stats.ManagerActivity, error) {
	const op = "managers_activity"
	defer s.timeAggregation(op)()

	now := s.now()
	list, err := s.fetch(ctx, repository.Filter{})
	if err != nil {
		metrics.RecordAggregationError(op)
		return nil, err
	}

	groups := groupBy(list, func(a model.Assessment) string { return a.AssessorID })
	profiles, err := s.dir.Resolve(ctx, keys(groups))
	if err != nil {
		metrics.RecordAggregationError(op)
		return nil, fmt.Errorf("resolve managers: %w", err)
	}

	out := make([]stats.ManagerActivity, 0, len(groups))
	for managerID, assessments := range groups {
		p := profiles[managerID]
		out = append(out, stats.Manager(managerID, p.Name, p.Team, assessments, now, s.activeDays))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ManagerName < out[j].ManagerName })
	return out, nil
}

// MonthlyTrend builds the platform-wide series for the given number of
// trailing months.
func (s *Service) MonthlyTrend(ctx context.Context, months int) ([]stats.MonthlyTrend, error) {
	const op = "monthly_trend"
	defer s.timeAggregation(op)()

	now := s.now()
	buckets := period.MonthBuckets(now, months)
	list, err := s.fetch(ctx, repository.Filter{From: buckets[0].From})
	if err != nil {
		metrics.RecordAggregationError(op)
		return nil, err
	}
	return stats.MonthlySeries(list, now, months), nil
}

// QuarterlyTrend builds the eight-quarter series spanning the previous and
// current year.
func (s *Service) QuarterlyTrend(ctx context.Context) ([]stats.QuarterlyData, error) {
	const op = "quarterly_trend"
	defer s.timeAggregation(op)()

	now := s.now()
	buckets := period.QuarterBuckets(now)
	list, err := s.fetch(ctx, repository.Filter{From: buckets[0].From})
	if err != nil {
		metrics.RecordAggregationError(op)
		return nil, err
	}
	return stats.QuarterlySeries(list, now), nil
}

// ItemizedReport assembles the by-assessor and by-trainer row sets for an
// optional date range.
func (s *Service) ItemizedReport(ctx context.Context, from, to *time.Time) (report.Sets, error) {
	const op = "itemized_report"
	defer s.timeAggregation(op)()

	f := repository.Filter{}
	if from != nil {
		f.From = model.DateOnly(*from)
	}
	if to != nil {
		f.To = model.DateOnly(*to)
	}
	list, err := s.fetch(ctx, f)
	if err != nil {
		metrics.RecordAggregationError(op)
		return report.Sets{}, err
	}

	assessorIDs := make(map[string]struct{})
	trainerIDs := make(map[string]struct{})
	for _, a := range list {
		assessorIDs[a.AssessorID] = struct{}{}
		trainerIDs[a.TrainerID] = struct{}{}
	}
	assessors, err := s.dir.Resolve(ctx, setKeys(assessorIDs))
	if err != nil {
		metrics.RecordAggregationError(op)
		return report.Sets{}, fmt.Errorf("resolve assessors: %w", err)
	}
	trainers, err := s.dir.Resolve(ctx, setKeys(trainerIDs))
	if err != nil {
		metrics.RecordAggregationError(op)
		return report.Sets{}, fmt.Errorf("resolve trainers: %w", err)
	}
	return report.Build(list, directory.Names(assessors), directory.Names(trainers)), nil
}

// RegisterProfile adds or replaces a directory profile.
func (s *Service) RegisterProfile(_ context.Context, id string, p directory.Profile) error {
	reg, ok := s.dir.(interface {
		Register(id string, p directory.Profile)
	})
	if !ok {
		return errors.New("directory is read-only")
	}
	reg.Register(id, p)
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]interface{}{
		"started":          s.started,
		"activeWindowDays": s.activeDays,
	}
	if !s.started {
		return out
	}
	if count, err := s.store.Count(context.Background()); err == nil {
		out["totalAssessments"] = count
		metrics.UpdateTotalAssessments(count)
	}
	out["dedupeEntries"] = s.deduper.Size()
	return out
}

// fetch performs the single bulk store read behind every aggregation.
func (s *Service) fetch(ctx context.Context, f repository.Filter) ([]model.Assessment, error) {
	start := time.Now()
	list, err := s.store.List(ctx, f)
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, fmt.Errorf("fetch assessments: %w", err)
	}
	return list, nil
}

func (s *Service) timeAggregation(op string) func() {
	start := time.Now()
	return func() {
		metrics.RecordAggregationLatency(op, float64(time.Since(start).Milliseconds()))
	}
}

// requestedRange maps the caller's window selection to a concrete date filter.
// A positive months takes precedence and selects last-N-months.
func requestedRange(now time.Time, win period.Window, months int) period.Range {
	if months > 0 {
		return period.LastNMonths(now, months)
	}
	return period.Resolve(now, win)
}

func normalizeDate(d time.Time) time.Time {
	if d.IsZero() {
		return d
	}
	return model.DateOnly(d)
}

func groupBy(list []model.Assessment, key func(model.Assessment) string) map[string][]model.Assessment {
	groups := make(map[string][]model.Assessment)
	for _, a := range list {
		k := key(a)
		groups[k] = append(groups[k], a)
	}
	return groups
}

func keys(m map[string][]model.Assessment) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func setKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
