package report

import (
	"context"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
)

// RangeQuery carries the date filter of a report request. An empty
// preset means only the explicit bounds apply.
type RangeQuery struct {
	Preset types.RangePreset
	Start  string
	End    string
}

// Service answers report queries by pulling the cached dataset,
// applying the requested date range and running the aggregation on
// the result.
type Service struct {
	data     RecordProvider
	topLimit int
	pageSize int
	l        logger.Logger

	now func() time.Time
}

// New returns a report service backed by the given record provider.
func New(data RecordProvider, topLimit, pageSize int, l logger.Logger) *Service {
	return &Service{
		data:     data,
		topLimit: topLimit,
		pageSize: pageSize,
		l:        l,
		now:      time.Now,
	}
}

// records fetches the dataset and applies the query's date range.
func (s *Service) records(ctx context.Context, q RangeQuery) ([]models.SessionRecord, error) {
	if q.Preset != "" && !q.Preset.Valid() {
		return nil, wrap.Error(ctx, types.ErrUnknownRangePreset)
	}

	all, err := s.data.GetRecords(ctx, false)
	if err != nil {
		return nil, err
	}

	start, end := ResolveRange(q.Preset, q.Start, q.End, s.now())
	return FilterByDate(all, start, end), nil
}

// KeyMetrics returns the headline KPI set for the queried range.
func (s *Service) KeyMetrics(ctx context.Context, q RangeQuery) (models.KeyMetrics, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return models.KeyMetrics{}, err
	}
	return KeyMetrics(recs), nil
}

// Monthly returns per-month aggregates for the queried range.
func (s *Service) Monthly(ctx context.Context, q RangeQuery) ([]models.MonthlySummary, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return nil, err
	}
	return MonthlySummary(recs, s.now()), nil
}

// Yearly returns per-year aggregates for the queried range.
func (s *Service) Yearly(ctx context.Context, q RangeQuery) ([]models.YearlySummary, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return nil, err
	}
	return YearlySummary(recs), nil
}

// TopStudents ranks students by income within the queried range. A
// non-positive limit falls back to the configured default.
func (s *Service) TopStudents(ctx context.Context, q RangeQuery, limit int) ([]models.StudentIncome, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.topLimit
	}
	return TopStudents(limit, recs), nil
}

// Student builds the per-student card for every session whose student
// name contains the query, case-insensitively.
func (s *Service) Student(ctx context.Context, q RangeQuery, name string) (models.StudentSummary, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return models.StudentSummary{}, err
	}

	matched, err := StudentRecords(name, recs)
	if err != nil {
		return models.StudentSummary{}, wrap.Error(wrap.WithStudent(ctx, name), err)
	}

	sum := models.StudentSummary{
		Query:       name,
		Lessons:     len(matched),
		FirstLesson: matched[0].Date,
		LastLesson:  matched[0].Date,
		Records:     matched,
	}
	for _, rec := range matched {
		sum.TotalHours += rec.HoursValue()
		sum.TotalIncome += rec.WageValue()
		if rec.Date.Before(sum.FirstLesson) {
			sum.FirstLesson = rec.Date
		}
		if rec.Date.After(sum.LastLesson) {
			sum.LastLesson = rec.Date
		}
	}
	return sum, nil
}

// Totals returns whole-range sums.
func (s *Service) Totals(ctx context.Context, q RangeQuery) (models.TotalStats, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return models.TotalStats{}, err
	}
	return TotalStats(recs), nil
}

// Sessions returns one page of the filtered record list along with the
// total number of matching records. Pages are 1-based.
func (s *Service) Sessions(ctx context.Context, q RangeQuery, page, pageSize int) ([]models.SessionRecord, int, error) {
	recs, err := s.records(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	total := len(recs)
	lo := (page - 1) * pageSize
	if lo >= total {
		return []models.SessionRecord{}, total, nil
	}
	hi := lo + pageSize
	if hi > total {
		hi = total
	}
	return recs[lo:hi], total, nil
}

// Refresh forces a dataset refetch, bypassing the TTL. It returns the
// record count and checksum of the dataset now in the cache.
func (s *Service) Refresh(ctx context.Context) (int, string, error) {
	ctx = wrap.WithAction(ctx, "dataset_refresh")

	recs, err := s.data.GetRecords(ctx, true)
	if err != nil {
		return 0, "", err
	}

	s.l.Info(ctx, "dataset refresh requested", "records", len(recs))
	return len(recs), s.data.Checksum(), nil
}

// ClearCache drops the cached dataset so the next query refetches.
func (s *Service) ClearCache() {
	s.data.Clear()
}

// LastFetched reports when the cache last pulled from its source.
func (s *Service) LastFetched() time.Time {
	return s.data.LastFetched()
}
