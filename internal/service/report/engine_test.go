package report

import (
	"testing"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func session(date time.Time, student string, hours, wage float64) models.SessionRecord {
	end := date.Add(time.Hour)
	return models.SessionRecord{
		Date:    date,
		Student: student,
		End:     &end,
		Hours:   ptr(hours),
		Wage:    ptr(wage),
	}
}

func TestMonthlySummary_GroupsByMonth(t *testing.T) {
	now := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SessionRecord{
		session(day(2024, time.March, 10), "Alice", 2, 60),
		session(day(2024, time.March, 20), "Bob", 1, 30),
		session(day(2024, time.April, 5), "Alice", 1.5, 45),
	}

	months := MonthlySummary(records, now)
	require.Len(t, months, 2)

	assert.Equal(t, 2024, months[0].Year)
	assert.Equal(t, 3, months[0].Month)
	assert.InDelta(t, 90.0, months[0].TotalIncome, 1e-9)
	assert.InDelta(t, 3.0, months[0].TotalHours, 1e-9)
	assert.InDelta(t, 30.0, months[0].AverageHourlyWage, 1e-9)

	assert.Equal(t, 4, months[1].Month)
	assert.InDelta(t, 45.0, months[1].TotalIncome, 1e-9)
}

func TestMonthlySummary_ExcludesUnfinishedSessions(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	done := session(day(2024, time.March, 10), "Alice", 1, 30)
	noEnd := models.SessionRecord{
		Date:    day(2024, time.March, 11),
		Student: "Bob",
		Hours:   ptr(1.0),
		Wage:    ptr(30.0),
	}
	future := session(day(2024, time.March, 20), "Cara", 1, 30)

	months := MonthlySummary([]models.SessionRecord{done, noEnd, future}, now)
	require.Len(t, months, 1)
	assert.InDelta(t, 30.0, months[0].TotalIncome, 1e-9)
	assert.InDelta(t, 1.0, months[0].TotalHours, 1e-9)
}

func TestMonthlySummary_ZeroHoursGuard(t *testing.T) {
	now := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SessionRecord{
		session(day(2024, time.March, 10), "Alice", 0, 50),
	}

	months := MonthlySummary(records, now)
	require.Len(t, months, 1)
	assert.Zero(t, months[0].AverageHourlyWage)
}

func TestMonthlySummary_EmptyInput(t *testing.T) {
	months := MonthlySummary(nil, time.Now())
	require.NotNil(t, months)
	assert.Empty(t, months)
}

func TestYearlySummary_YoYAgainstPreviousRow(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2023, time.May, 1), "Alice", 10, 100),
		session(day(2024, time.May, 1), "Alice", 15, 150),
		session(day(2024, time.June, 1), "Bob", 5, 50),
	}

	years := YearlySummary(records)
	require.Len(t, years, 2)

	assert.Equal(t, 2023, years[0].Year)
	assert.Equal(t, "0.00%", years[0].YoYIncome)
	assert.Equal(t, "0.00%", years[0].YoYHours)

	assert.Equal(t, 2024, years[1].Year)
	assert.InDelta(t, 200.0, years[1].TotalIncome, 1e-9)
	assert.Equal(t, 2, years[1].Students)
	assert.Equal(t, "100.00%", years[1].YoYIncome)
	assert.Equal(t, "100.00%", years[1].YoYHours)
}

func TestYearlySummary_DerivedAverages(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.January, 1), "Alice", 12, 240),
	}

	years := YearlySummary(records)
	require.Len(t, years, 1)
	assert.InDelta(t, 20.0, years[0].AvgMonthlyIncome, 1e-9)
	assert.InDelta(t, 1.0, years[0].AvgMonthlyHours, 1e-9)
	assert.InDelta(t, 20.0, years[0].AvgHourlyWage, 1e-9)
}

func TestStudentRecords_CaseInsensitiveSubstring(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "Alice Smith", 1, 30),
		session(day(2024, time.March, 2), "Bob Jones", 1, 30),
		session(day(2024, time.March, 3), "Alice Smith", 1, 30),
	}

	matched, err := StudentRecords("alice", records)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Alice Smith", matched[0].Student)
}

func TestStudentRecords_NoMatch(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "Alice", 1, 30),
	}

	_, err := StudentRecords("zorro", records)
	assert.ErrorIs(t, err, types.ErrStudentNotFound)
}

func TestStudentRecords_BlankQuery(t *testing.T) {
	_, err := StudentRecords("   ", nil)
	assert.ErrorIs(t, err, types.ErrStudentNotFound)
}

func TestTopStudents_RanksByIncome(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "Alice", 1, 20),
		session(day(2024, time.March, 2), "Bob", 1, 30),
		session(day(2024, time.March, 3), "Alice", 1, 40),
	}

	top := TopStudents(10, records)
	require.Len(t, top, 2)
	assert.Equal(t, "Alice", top[0].Student)
	assert.InDelta(t, 60.0, top[0].TotalIncome, 1e-9)
	assert.Equal(t, "Bob", top[1].Student)
	assert.InDelta(t, 30.0, top[1].TotalIncome, 1e-9)
}

func TestTopStudents_StableTies(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "First", 1, 50),
		session(day(2024, time.March, 2), "Second", 1, 50),
		session(day(2024, time.March, 3), "Third", 1, 50),
	}

	top := TopStudents(10, records)
	require.Len(t, top, 3)
	assert.Equal(t, "First", top[0].Student)
	assert.Equal(t, "Second", top[1].Student)
	assert.Equal(t, "Third", top[2].Student)
}

func TestTopStudents_Truncates(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "Alice", 1, 90),
		session(day(2024, time.March, 2), "Bob", 1, 50),
		session(day(2024, time.March, 3), "Cara", 1, 10),
	}

	top := TopStudents(2, records)
	require.Len(t, top, 2)
	assert.Equal(t, "Alice", top[0].Student)
	assert.Equal(t, "Bob", top[1].Student)
}

func TestTotalStats_Sums(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "Alice", 1.5, 45),
		session(day(2024, time.March, 2), "Bob", 2, 60),
	}

	stats := TotalStats(records)
	assert.InDelta(t, 3.5, stats.TotalHours, 1e-9)
	assert.InDelta(t, 105.0, stats.TotalIncome, 1e-9)
}

func TestKeyMetrics_ThisMonthIsLatestInData(t *testing.T) {
	// Latest month in the collection is April, regardless of today.
	records := []models.SessionRecord{
		session(day(2024, time.March, 10), "Alice", 2, 60),
		session(day(2024, time.April, 5), "Alice", 1, 40),
		session(day(2024, time.April, 20), "Bob", 1, 35),
	}

	km := KeyMetrics(records)
	assert.InDelta(t, 135.0, km.TotalRevenue, 1e-9)
	assert.InDelta(t, 4.0, km.TotalHours, 1e-9)
	assert.Equal(t, 2, km.UniqueStudents)
	assert.Equal(t, 3, km.TotalSessions)
	assert.InDelta(t, 135.0/4.0, km.AvgHourlyRate, 1e-9)
	assert.InDelta(t, 4.0/3.0, km.AvgSessionLength, 1e-9)
	assert.InDelta(t, 75.0, km.ThisMonthRevenue, 1e-9)
	assert.InDelta(t, 2.0, km.ThisMonthHours, 1e-9)
}

func TestKeyMetrics_AvgSessionLengthSkipsUnknownHours(t *testing.T) {
	records := []models.SessionRecord{
		session(day(2024, time.March, 1), "Alice", 2, 60),
		session(day(2024, time.March, 2), "Alice", 1, 30),
		{Date: day(2024, time.March, 3), Student: "Bob", Wage: ptr(30.0)},
	}

	km := KeyMetrics(records)
	assert.Equal(t, 3, km.TotalSessions)
	// Only the two sessions with a parsed duration count toward it.
	assert.InDelta(t, 1.5, km.AvgSessionLength, 1e-9)
}

func TestKeyMetrics_EmptyInput(t *testing.T) {
	km := KeyMetrics(nil)
	assert.Zero(t, km)
}
