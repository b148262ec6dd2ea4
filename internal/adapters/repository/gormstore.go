package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
)

// assessmentRow is the persisted shape of an assessment. Ratings and comments
// are stored as JSONB keyed by parameter id, so the 21-parameter schema can be
// versioned by migration without touching the table layout.
type assessmentRow struct {
	ID              string    `gorm:"column:assessment_id;primaryKey"`
	TrainerID       string    `gorm:"column:trainer_id;index;not null"`
	AssessorID      string    `gorm:"column:assessor_id;index;not null"`
	Date            time.Time `gorm:"column:assessment_date;index;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
	Ratings         []byte    `gorm:"column:ratings;type:jsonb;not null"`
	Comments        []byte    `gorm:"column:comments;type:jsonb;not null"`
	OverallComments string    `gorm:"column:overall_comments;type:text;not null"`
}

func (assessmentRow) TableName() string { return "assessments" }

// GormStore is the Postgres-backed Store, selected when a database DSN is
// configured.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens a Postgres connection and migrates the assessments table.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&assessmentRow{}); err != nil {
		return nil, fmt.Errorf("migrate assessments: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Create persists a new assessment, normalizing its date to a UTC calendar day.
func (s *GormStore) Create(ctx context.Context, a model.Assessment) error {
	row, err := toRow(a)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return fmt.Errorf("create assessment: %w", err)
	}
	return nil
}

// List returns matching assessments ordered by date, then creation time.
// A malformed row fails the whole read: aggregating over partial data would
// produce misleading statistics.
func (s *GormStore) List(ctx context.Context, f Filter) ([]model.Assessment, error) {
	q := s.db.WithContext(ctx).Order("assessment_date asc, created_at asc")
	if f.TrainerID != "" {
		q = q.Where("trainer_id = ?", f.TrainerID)
	}
	if f.AssessorID != "" {
		q = q.Where("assessor_id = ?", f.AssessorID)
	}
	if !f.From.IsZero() {
		q = q.Where("assessment_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("assessment_date < ?", f.To)
	}

	var rows []assessmentRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]model.Assessment, 0, len(rows))
	for _, row := range rows {
		a, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("underlying db: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

// Count returns the number of persisted assessments.
func (s *GormStore) Count(ctx context.Context) (int, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&assessmentRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return int(n), nil
}

func toRow(a model.Assessment) (assessmentRow, error) {
	ratings, err := json.Marshal(a.Ratings)
	if err != nil {
		return assessmentRow{}, fmt.Errorf("encode ratings: %w", err)
	}
	comments, err := json.Marshal(a.Comments)
	if err != nil {
		return assessmentRow{}, fmt.Errorf("encode comments: %w", err)
	}
	return assessmentRow{
		ID:              a.ID,
		TrainerID:       a.TrainerID,
		AssessorID:      a.AssessorID,
		Date:            model.DateOnly(a.Date),
		CreatedAt:       a.CreatedAt,
		Ratings:         ratings,
		Comments:        comments,
		OverallComments: a.OverallComments,
	}, nil
}

func fromRow(row assessmentRow) (model.Assessment, error) {
	a := model.Assessment{
		ID:              row.ID,
		TrainerID:       row.TrainerID,
		AssessorID:      row.AssessorID,
		Date:            model.DateOnly(row.Date),
		CreatedAt:       row.CreatedAt,
		OverallComments: row.OverallComments,
	}
	if err := json.Unmarshal(row.Ratings, &a.Ratings); err != nil {
		return model.Assessment{}, fmt.Errorf("decode ratings for %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Comments, &a.Comments); err != nil {
		return model.Assessment{}, fmt.Errorf("decode comments for %s: %w", row.ID, err)
	}
	return a, nil
}
