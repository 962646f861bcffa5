package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
)

// MonthlySummary aggregates income and hours per calendar month.
// Sessions that have no end time yet, or whose end time lies in the
// future relative to now, are treated as not finished and excluded.
// Results are sorted chronologically.
func MonthlySummary(records []models.SessionRecord, now time.Time) []models.MonthlySummary {
	byMonth := make(map[int]*models.MonthlySummary)

	for _, rec := range records {
		if rec.End == nil || rec.End.After(now) {
			continue
		}

		key := rec.Date.Year()*100 + int(rec.Date.Month())
		agg, ok := byMonth[key]
		if !ok {
			agg = &models.MonthlySummary{Year: rec.Date.Year(), Month: int(rec.Date.Month())}
			byMonth[key] = agg
		}
		agg.TotalIncome += rec.WageValue()
		agg.TotalHours += rec.HoursValue()
	}

	keys := make([]int, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	out := make([]models.MonthlySummary, 0, len(keys))
	for _, key := range keys {
		agg := byMonth[key]
		if agg.TotalHours > 0 {
			agg.AverageHourlyWage = agg.TotalIncome / agg.TotalHours
		}
		out = append(out, *agg)
	}
	return out
}

type yearAgg struct {
	income   float64
	hours    float64
	students map[string]struct{}
}

// YearlySummary aggregates per calendar year, sorted ascending.
// Year-over-year figures compare each row to the one directly above
// it; the first row always reads "0.00%".
func YearlySummary(records []models.SessionRecord) []models.YearlySummary {
	byYear := make(map[int]*yearAgg)

	for _, rec := range records {
		year := rec.Date.Year()
		agg, ok := byYear[year]
		if !ok {
			agg = &yearAgg{students: make(map[string]struct{})}
			byYear[year] = agg
		}
		agg.income += rec.WageValue()
		agg.hours += rec.HoursValue()
		agg.students[rec.Student] = struct{}{}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]models.YearlySummary, 0, len(years))
	for i, year := range years {
		agg := byYear[year]
		row := models.YearlySummary{
			Year:             year,
			TotalIncome:      agg.income,
			Students:         len(agg.students),
			TotalHours:       agg.hours,
			AvgMonthlyIncome: agg.income / 12,
			AvgMonthlyHours:  agg.hours / 12,
			YoYIncome:        "0.00%",
			YoYHours:         "0.00%",
		}
		if agg.hours > 0 {
			row.AvgHourlyWage = agg.income / agg.hours
		}
		if i > 0 {
			prev := byYear[years[i-1]]
			row.YoYIncome = pctChange(prev.income, agg.income)
			row.YoYHours = pctChange(prev.hours, agg.hours)
		}
		out = append(out, row)
	}
	return out
}

// StudentRecords returns every session whose student name contains the
// query as a case-insensitive substring, preserving input order.
func StudentRecords(query string, records []models.SessionRecord) ([]models.SessionRecord, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, types.ErrStudentNotFound
	}

	var matched []models.SessionRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Student), needle) {
			matched = append(matched, rec)
		}
	}
	if len(matched) == 0 {
		return nil, types.ErrStudentNotFound
	}
	return matched, nil
}

// TopStudents ranks students by total income, highest first. Students
// with equal income keep their first-seen order. A non-positive limit
// returns the full ranking.
func TopStudents(limit int, records []models.SessionRecord) []models.StudentIncome {
	index := make(map[string]int)
	out := make([]models.StudentIncome, 0)

	for _, rec := range records {
		idx, ok := index[rec.Student]
		if !ok {
			idx = len(out)
			index[rec.Student] = idx
			out = append(out, models.StudentIncome{Student: rec.Student})
		}
		out[idx].TotalIncome += rec.WageValue()
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalIncome > out[j].TotalIncome
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TotalStats sums hours and income across all given records.
func TotalStats(records []models.SessionRecord) models.TotalStats {
	var stats models.TotalStats
	for _, rec := range records {
		stats.TotalHours += rec.HoursValue()
		stats.TotalIncome += rec.WageValue()
	}
	return stats
}

// KeyMetrics computes the headline numbers for the given records.
// "This month" is the latest calendar month present in the data, not
// the wall-clock month.
func KeyMetrics(records []models.SessionRecord) models.KeyMetrics {
	var km models.KeyMetrics
	if len(records) == 0 {
		return km
	}

	students := make(map[string]struct{})
	latest := 0
	for _, rec := range records {
		if key := rec.Date.Year()*100 + int(rec.Date.Month()); key > latest {
			latest = key
		}
	}

	timed := 0
	for _, rec := range records {
		km.TotalRevenue += rec.WageValue()
		km.TotalHours += rec.HoursValue()
		km.TotalSessions++
		students[rec.Student] = struct{}{}
		if rec.Hours != nil {
			timed++
		}

		if rec.Date.Year()*100+int(rec.Date.Month()) == latest {
			km.ThisMonthRevenue += rec.WageValue()
			km.ThisMonthHours += rec.HoursValue()
		}
	}

	km.UniqueStudents = len(students)
	if km.TotalHours > 0 {
		km.AvgHourlyRate = km.TotalRevenue / km.TotalHours
	}
	// Average over sessions with a known duration; rows missing the
	// hours field don't dilute it.
	if timed > 0 {
		km.AvgSessionLength = km.TotalHours / float64(timed)
	}
	return km
}

func pctChange(prev, cur float64) string {
	if prev == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", (cur-prev)/prev*100)
}
