package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/internal/service/report"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	err     error
	lastQ   report.RangeQuery
	limit   int
	metrics models.KeyMetrics
	records []models.SessionRecord
	total   int
}

func (s *stubReportService) KeyMetrics(ctx context.Context, q report.RangeQuery) (models.KeyMetrics, error) {
	s.lastQ = q
	return s.metrics, s.err
}

func (s *stubReportService) Monthly(ctx context.Context, q report.RangeQuery) ([]models.MonthlySummary, error) {
	s.lastQ = q
	if s.err != nil {
		return nil, s.err
	}
	return []models.MonthlySummary{}, nil
}

func (s *stubReportService) Yearly(ctx context.Context, q report.RangeQuery) ([]models.YearlySummary, error) {
	s.lastQ = q
	if s.err != nil {
		return nil, s.err
	}
	return []models.YearlySummary{}, nil
}

func (s *stubReportService) TopStudents(ctx context.Context, q report.RangeQuery, limit int) ([]models.StudentIncome, error) {
	s.lastQ = q
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	return []models.StudentIncome{{Student: "Alice", TotalIncome: 120}}, nil
}

func (s *stubReportService) Student(ctx context.Context, q report.RangeQuery, name string) (models.StudentSummary, error) {
	s.lastQ = q
	if s.err != nil {
		return models.StudentSummary{}, s.err
	}
	return models.StudentSummary{Query: name, Lessons: 2}, nil
}

func (s *stubReportService) Totals(ctx context.Context, q report.RangeQuery) (models.TotalStats, error) {
	s.lastQ = q
	if s.err != nil {
		return models.TotalStats{}, s.err
	}
	return models.TotalStats{TotalIncome: 300, TotalHours: 10}, nil
}

func (s *stubReportService) Sessions(ctx context.Context, q report.RangeQuery, page, pageSize int) ([]models.SessionRecord, int, error) {
	s.lastQ = q
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.records, s.total, nil
}

func testLog() logger.Logger {
	return logger.InitLogger("test", logger.LevelError)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestReport_KeyMetricsOK(t *testing.T) {
	stub := &stubReportService{metrics: models.KeyMetrics{ThisMonthRevenue: 150}}
	h := NewReport(stub, testLog())

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/key-metrics?range=last30", nil)
	rr := httptest.NewRecorder()
	h.KeyMetrics(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, types.RangePreset("last30"), stub.lastQ.Preset)

	body := decodeBody(t, rr)
	require.Contains(t, body, "key_metrics")

	var metrics models.KeyMetrics
	require.NoError(t, json.Unmarshal(body["key_metrics"], &metrics))
	assert.InDelta(t, 150.0, metrics.ThisMonthRevenue, 1e-9)
}

func TestReport_UnknownPresetIsBadRequest(t *testing.T) {
	stub := &stubReportService{err: types.ErrUnknownRangePreset}
	h := NewReport(stub, testLog())

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/key-metrics?range=lastweek", nil)
	rr := httptest.NewRecorder()
	h.KeyMetrics(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr), "error")
}

func TestReport_DataUnavailableIs503(t *testing.T) {
	stub := &stubReportService{err: types.ErrDataUnavailable}
	h := NewReport(stub, testLog())

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/monthly", nil)
	rr := httptest.NewRecorder()
	h.Monthly(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestReport_CustomBoundsReachService(t *testing.T) {
	stub := &stubReportService{}
	h := NewReport(stub, testLog())

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/totals?range=custom&start=2024-01-01&end=2024-03-31", nil)
	rr := httptest.NewRecorder()
	h.Totals(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, types.RangeCustom, stub.lastQ.Preset)
	assert.Equal(t, "2024-01-01", stub.lastQ.Start)
	assert.Equal(t, "2024-03-31", stub.lastQ.End)
}

func TestReport_TopStudentsLimitValidation(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{"negative limit", "limit=-1", http.StatusUnprocessableEntity},
		{"too large", "limit=5000", http.StatusUnprocessableEntity},
		{"not an integer", "limit=abc", http.StatusUnprocessableEntity},
		{"valid", "limit=5", http.StatusOK},
		{"absent", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReport(&stubReportService{}, testLog())

			req := httptest.NewRequest(http.MethodGet, "/v1/reports/top-students?"+tt.query, nil)
			rr := httptest.NewRecorder()
			h.TopStudents(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestReport_StudentNotFound(t *testing.T) {
	stub := &stubReportService{err: types.ErrStudentNotFound}
	h := NewReport(stub, testLog())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/reports/students/{name}", h.Student)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/students/nobody", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReport_StudentByPath(t *testing.T) {
	stub := &stubReportService{}
	h := NewReport(stub, testLog())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/reports/students/{name}", h.Student)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/students/alice", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	var summary models.StudentSummary
	require.NoError(t, json.Unmarshal(body["student"], &summary))
	assert.Equal(t, "alice", summary.Query)
	assert.Equal(t, 2, summary.Lessons)
}

func TestReport_SessionsPaginationValidation(t *testing.T) {
	h := NewReport(&stubReportService{}, testLog())

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions?page=0", nil)
	rr := httptest.NewRecorder()
	h.Sessions(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestReport_SessionsIncludesMetadata(t *testing.T) {
	stub := &stubReportService{
		records: []models.SessionRecord{{Student: "Alice", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}},
		total:   42,
	}
	h := NewReport(stub, testLog())

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions?page=2&page_size=10", nil)
	rr := httptest.NewRecorder()
	h.Sessions(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	require.Contains(t, body, "sessions")
	require.Contains(t, body, "metadata")

	var metadata models.Metadata
	require.NoError(t, json.Unmarshal(body["metadata"], &metadata))
	assert.Equal(t, 42, metadata.TotalRecords)
	assert.Equal(t, 2, metadata.CurrentPage)
	assert.Equal(t, 5, metadata.LastPage)
}
