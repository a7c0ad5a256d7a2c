// Package services wires the dataset store to the aggregation engine and
// exposes the query operations the transport layer serves.
package services

import (
	"context"
	"log/slog"
	"time"

	"savrainsights/internal/dataset"
	"savrainsights/internal/insights"
)

// InsightsService answers the read-only analytical queries. Every call
// fetches the current dataset snapshot from the store (reloading when the
// source changed) and recomputes the requested view from scratch.
type InsightsService struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewInsightsService creates the insights service.
func NewInsightsService(store *dataset.Store, logger *slog.Logger) *InsightsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsService{
		store:  store,
		logger: logger.With(slog.String("service", "insights")),
	}
}

// Leaderboard returns all teachers ranked by normalized score.
func (s *InsightsService) Leaderboard(ctx context.Context) ([]insights.TeacherRank, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Leaderboard(ds), nil
}

// Teachers returns every teacher identity in leaderboard order.
func (s *InsightsService) Teachers(ctx context.Context) ([]insights.TeacherIdentity, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return insights.DistinctTeachers(ds), nil
}

// TeacherProfile returns the drill-down view for one teacher by exact
// display name. Unknown names yield insights.ErrTeacherNotFound.
func (s *InsightsService) TeacherProfile(ctx context.Context, name string) (*insights.TeacherProfile, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	profile, err := insights.TeacherProfileFor(ds, name)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "teacher profile computed",
		slog.String("teacher", name),
		slog.Duration("duration", time.Since(start)))
	return profile, nil
}

// Grades returns every observed grade, ascending.
func (s *InsightsService) Grades(ctx context.Context) ([]string, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return insights.DistinctGrades(ds), nil
}

// GradeProfile returns the drill-down view for one grade. Unknown grades
// yield insights.ErrGradeNotFound.
func (s *InsightsService) GradeProfile(ctx context.Context, grade int) (*insights.GradeProfile, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return insights.GradeProfileFor(ds, grade)
}

// Overall returns the dashboard summary.
func (s *InsightsService) Overall(ctx context.Context) (*insights.Summary, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Overall(ds), nil
}

// DatasetInfo reports the current snapshot's size and load time for the
// health endpoint.
func (s *InsightsService) DatasetInfo(ctx context.Context) (records int, loadedAt time.Time, err error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return 0, time.Time{}, err
	}
	return len(ds.Records), ds.LoadedAt, nil
}
