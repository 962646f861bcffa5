package handler

import (
	"context"
	"net/http"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/service/report"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/validator"
)

type ReportService interface {
	KeyMetrics(ctx context.Context, q report.RangeQuery) (models.KeyMetrics, error)
	Monthly(ctx context.Context, q report.RangeQuery) ([]models.MonthlySummary, error)
	Yearly(ctx context.Context, q report.RangeQuery) ([]models.YearlySummary, error)
	TopStudents(ctx context.Context, q report.RangeQuery, limit int) ([]models.StudentIncome, error)
	Student(ctx context.Context, q report.RangeQuery, name string) (models.StudentSummary, error)
	Totals(ctx context.Context, q report.RangeQuery) (models.TotalStats, error)
	Sessions(ctx context.Context, q report.RangeQuery, page, pageSize int) ([]models.SessionRecord, int, error)
}

type Report struct {
	s ReportService
	l logger.Logger
}

func NewReport(s ReportService, l logger.Logger) *Report {
	return &Report{
		s: s,
		l: l,
	}
}

// KeyMetrics godoc
// @Summary      Key metrics
// @Description  Headline KPI set for the selected date range
// @Tags         Reports
// @Produce      json
// @Param        range  query  string  false  "Date range preset (all, last7, last30, last90, ytd, custom)"
// @Param        start  query  string  false  "Range start, YYYY-MM-DD"
// @Param        end    query  string  false  "Range end, YYYY-MM-DD"
// @Success      200  {object}  models.KeyMetrics
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/reports/key-metrics [get]
func (h *Report) KeyMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "report_key_metrics")

	metrics, err := h.s.KeyMetrics(ctx, readRangeQuery(r.URL.Query()))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to compute key metrics", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"key_metrics": metrics}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Monthly godoc
// @Summary      Monthly summary
// @Description  Income and hours per calendar month, completed sessions only
// @Tags         Reports
// @Produce      json
// @Param        range  query  string  false  "Date range preset"
// @Param        start  query  string  false  "Range start, YYYY-MM-DD"
// @Param        end    query  string  false  "Range end, YYYY-MM-DD"
// @Success      200  {array}  models.MonthlySummary
// @Failure      400  {object}  map[string]string
// @Router       /v1/reports/monthly [get]
func (h *Report) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "report_monthly")

	summary, err := h.s.Monthly(ctx, readRangeQuery(r.URL.Query()))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to compute monthly summary", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"months": summary}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Yearly godoc
// @Summary      Yearly summary
// @Description  Income, hours and year-over-year movement per calendar year
// @Tags         Reports
// @Produce      json
// @Param        range  query  string  false  "Date range preset"
// @Success      200  {array}  models.YearlySummary
// @Router       /v1/reports/yearly [get]
func (h *Report) Yearly(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "report_yearly")

	summary, err := h.s.Yearly(ctx, readRangeQuery(r.URL.Query()))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to compute yearly summary", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"years": summary}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// TopStudents godoc
// @Summary      Top students
// @Description  Students ranked by total income within the selected range
// @Tags         Reports
// @Produce      json
// @Param        range  query  string  false  "Date range preset"
// @Param        limit  query  int     false  "Maximum number of students to return"
// @Success      200  {array}  models.StudentIncome
// @Failure      422  {object}  map[string]string
// @Router       /v1/reports/top-students [get]
func (h *Report) TopStudents(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "report_top_students")

	v := validator.New()
	qs := r.URL.Query()

	limit := readInt(qs, "limit", 0, v)
	v.Check(limit >= 0, "limit", "must not be negative")
	v.Check(limit <= 1000, "limit", "must be a maximum of 1000")

	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	students, err := h.s.TopStudents(ctx, readRangeQuery(qs), limit)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to rank students", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"students": students}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Student godoc
// @Summary      Student summary
// @Description  Per-student card for every student whose name contains the query
// @Tags         Reports
// @Produce      json
// @Param        name   path   string  true   "Student name or name fragment"
// @Param        range  query  string  false  "Date range preset"
// @Success      200  {object}  models.StudentSummary
// @Failure      404  {object}  map[string]string
// @Router       /v1/reports/students/{name} [get]
func (h *Report) Student(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.PathValue("name")
	ctx = wrap.WithStudent(wrap.WithAction(ctx, "report_student"), name)

	summary, err := h.s.Student(ctx, readRangeQuery(r.URL.Query()), name)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build student summary", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"student": summary}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Totals godoc
// @Summary      Totals
// @Description  Whole-range hour and income sums
// @Tags         Reports
// @Produce      json
// @Param        range  query  string  false  "Date range preset"
// @Success      200  {object}  models.TotalStats
// @Router       /v1/reports/totals [get]
func (h *Report) Totals(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "report_totals")

	totals, err := h.s.Totals(ctx, readRangeQuery(r.URL.Query()))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to compute totals", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"totals": totals}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Sessions godoc
// @Summary      Session list
// @Description  One page of the filtered session records, in source order
// @Tags         Reports
// @Produce      json
// @Param        range      query  string  false  "Date range preset"
// @Param        page       query  int     false  "Page number, 1-based"
// @Param        page_size  query  int     false  "Records per page"
// @Success      200  {array}  models.SessionRecord
// @Failure      422  {object}  map[string]string
// @Router       /v1/sessions [get]
func (h *Report) Sessions(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "report_sessions")

	v := validator.New()
	qs := r.URL.Query()

	filters := models.Filters{
		Page:     readInt(qs, "page", 1, v),
		PageSize: readInt(qs, "page_size", 10, v),
	}
	filters.Validate(v)

	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	records, total, err := h.s.Sessions(ctx, readRangeQuery(qs), filters.Page, filters.PageSize)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list sessions", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	metadata := models.CalculateMetadata(total, filters.Page, filters.PageSize)

	if err := writeJSON(w, http.StatusOK, envelope{"sessions": records, "metadata": metadata}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
