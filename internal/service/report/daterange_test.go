package report

import (
	"testing"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rangeNow = time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recOn(date time.Time, student string) models.SessionRecord {
	return models.SessionRecord{Date: date, Student: student}
}

func TestResolveRange_All(t *testing.T) {
	start, end := ResolveRange(types.RangeAll, "", "", rangeNow)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestResolveRange_Presets(t *testing.T) {
	tests := []struct {
		preset    types.RangePreset
		wantStart time.Time
	}{
		{types.RangeLast7, day(2024, time.June, 8)},
		{types.RangeLast30, day(2024, time.May, 16)},
		{types.RangeLast90, day(2024, time.March, 17)},
		{types.RangeYTD, day(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			start, end := ResolveRange(tt.preset, "", "", rangeNow)
			require.NotNil(t, start)
			require.NotNil(t, end)
			assert.Equal(t, tt.wantStart, *start)
			// End is always today at midnight; the filter extends it
			// through the whole day.
			assert.Equal(t, day(2024, time.June, 15), *end)
		})
	}
}

func TestResolveRange_CustomBounds(t *testing.T) {
	start, end := ResolveRange(types.RangeCustom, "2024-02-01", "2024-02-29", rangeNow)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, day(2024, time.February, 1), *start)
	assert.Equal(t, day(2024, time.February, 29), *end)
}

func TestResolveRange_UnparseableBoundIsAbsent(t *testing.T) {
	start, end := ResolveRange(types.RangeCustom, "02/01/2024", "2024-02-29", rangeNow)
	assert.Nil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, day(2024, time.February, 29), *end)
}

func TestResolveRange_NoPresetUsesExplicitBounds(t *testing.T) {
	start, end := ResolveRange("", "2024-03-01", "", rangeNow)
	require.NotNil(t, start)
	assert.Equal(t, day(2024, time.March, 1), *start)
	assert.Nil(t, end)
}

func TestResolveRange_NonUTCClock(t *testing.T) {
	// Record dates are UTC instants; bounds resolved from a clock west
	// of UTC must not shift past them.
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, time.June, 15, 13, 45, 0, 0, est)

	start, end := ResolveRange(types.RangeLast7, "", "", now)
	require.NotNil(t, start)
	assert.Equal(t, day(2024, time.June, 8), *start)
	assert.Equal(t, time.UTC, start.Location())

	got := FilterByDate([]models.SessionRecord{
		recOn(day(2024, time.June, 8), "boundary"),
	}, start, end)
	require.Len(t, got, 1)
	assert.Equal(t, "boundary", got[0].Student)
}

func TestFilterByDate_InclusiveBounds(t *testing.T) {
	records := []models.SessionRecord{
		recOn(day(2024, time.June, 7), "too old"),
		recOn(day(2024, time.June, 8), "on start"),
		recOn(day(2024, time.June, 15), "on end"),
		recOn(day(2024, time.June, 16), "future"),
	}

	start, end := ResolveRange(types.RangeLast7, "", "", rangeNow)
	got := FilterByDate(records, start, end)

	require.Len(t, got, 2)
	assert.Equal(t, "on start", got[0].Student)
	assert.Equal(t, "on end", got[1].Student)
}

func TestFilterByDate_EndCoversWholeDay(t *testing.T) {
	// A record stamped mid-day still falls inside a range ending on
	// that date.
	records := []models.SessionRecord{
		recOn(time.Date(2024, time.June, 15, 18, 30, 0, 0, time.UTC), "evening"),
	}

	end := day(2024, time.June, 15)
	got := FilterByDate(records, nil, &end)
	assert.Len(t, got, 1)
}

func TestFilterByDate_NilBoundsKeepEverything(t *testing.T) {
	records := []models.SessionRecord{
		recOn(day(2020, time.January, 1), "a"),
		recOn(day(2030, time.December, 31), "b"),
	}

	got := FilterByDate(records, nil, nil)
	require.Len(t, got, 2)

	// New collection, input untouched.
	got[0].Student = "mutated"
	assert.Equal(t, "a", records[0].Student)
}
