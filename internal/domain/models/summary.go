package models

import "time"

// MonthlySummary aggregates completed sessions for one calendar month.
type MonthlySummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalIncome       float64 `json:"total_income"`
	TotalHours        float64 `json:"total_hours"`
	AverageHourlyWage float64 `json:"average_hourly_wage"`
}

// YearlySummary aggregates sessions for one calendar year, including
// year-over-year movement against the preceding summary row.
type YearlySummary struct {
	Year int `json:"year"`

	TotalIncome float64 `json:"total_income"`
	Students    int     `json:"students"`
	TotalHours  float64 `json:"total_hours"`

	AvgMonthlyIncome float64 `json:"avg_monthly_income"`
	AvgMonthlyHours  float64 `json:"avg_monthly_hours"`
	AvgHourlyWage    float64 `json:"avg_hourly_wage"`

	// Formatted percent strings, "0.00%" for the first row in the set.
	YoYIncome string `json:"yoy_avg_monthly_income"`
	YoYHours  string `json:"yoy_avg_monthly_hours"`
}

// StudentIncome is one row of the top-students ranking.
type StudentIncome struct {
	Student     string  `json:"student"`
	TotalIncome float64 `json:"total_income"`
}

// StudentSummary is the per-student card: headline figures plus the
// matching session records.
type StudentSummary struct {
	Query       string    `json:"query"`
	Lessons     int       `json:"lessons"`
	TotalHours  float64   `json:"total_hours"`
	TotalIncome float64   `json:"total_income"`
	FirstLesson time.Time `json:"first_lesson"`
	LastLesson  time.Time `json:"last_lesson"`

	Records []SessionRecord `json:"records"`
}

// TotalStats are the whole-collection sums.
type TotalStats struct {
	TotalHours  float64 `json:"total_hours"`
	TotalIncome float64 `json:"total_income"`
}

// KeyMetrics is the dashboard headline KPI set.
//
// The "this period" figures are relative to the latest year+month present in
// the collection the metrics were computed from, not the wall-clock month, so
// they stay meaningful under a date filter that excludes the current month.
type KeyMetrics struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalHours       float64 `json:"total_hours"`
	AvgHourlyRate    float64 `json:"avg_hourly_rate"`
	UniqueStudents   int     `json:"unique_students"`
	TotalSessions    int     `json:"total_sessions"`
	AvgSessionLength float64 `json:"avg_session_length"`

	ThisMonthRevenue float64 `json:"this_month_revenue"`
	ThisMonthHours   float64 `json:"this_month_hours"`
}
