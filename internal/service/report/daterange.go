package report

import (
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
)

// BoundLayout is the wire format for explicit range bounds.
const BoundLayout = "2006-01-02"

// ResolveRange turns a preset or an explicit start/end pair into
// concrete bounds. A nil bound means unbounded on that side.
// Explicit bounds that fail to parse are treated as absent, not as
// errors. Unrecognized presets fall through to the explicit pair.
func ResolveRange(preset types.RangePreset, start, end string, now time.Time) (*time.Time, *time.Time) {
	today := midnight(now)

	switch preset {
	case types.RangeAll:
		return nil, nil
	case types.RangeLast7:
		return boundsFrom(today.AddDate(0, 0, -7), today)
	case types.RangeLast30:
		return boundsFrom(today.AddDate(0, 0, -30), today)
	case types.RangeLast90:
		return boundsFrom(today.AddDate(0, 0, -90), today)
	case types.RangeYTD:
		return boundsFrom(time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today)
	}

	// custom or no preset: use whatever explicit bounds parse
	return parseBound(start), parseBound(end)
}

// FilterByDate returns the records whose date falls inside the bounds:
// inclusive start, end inclusive through the entire end calendar day.
// The input collection is never mutated; relative order is preserved.
func FilterByDate(records []models.SessionRecord, start, end *time.Time) []models.SessionRecord {
	out := make([]models.SessionRecord, 0, len(records))

	var lo, hi time.Time
	if start != nil {
		lo = midnight(*start)
	}
	if end != nil {
		hi = midnight(*end).AddDate(0, 0, 1)
	}

	for _, rec := range records {
		if start != nil && rec.Date.Before(lo) {
			continue
		}
		if end != nil && !rec.Date.Before(hi) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func parseBound(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(BoundLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

func boundsFrom(start, end time.Time) (*time.Time, *time.Time) {
	return &start, &end
}

// midnight is the start of t's calendar day as a UTC instant. Record
// dates are parsed in UTC, so bounds must land there too regardless of
// the server clock's location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
