package dataset

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/metrics"
)

// Source sheet column headers. The sheet is maintained in German and its
// layout is a fixed contract, not configurable per record.
const (
	colDate     = "Datum:"
	colStudent  = "Name:"
	colStart    = "Anfang:"
	colEnd      = "Ende:"
	colHours    = "Stunden:"
	colWage     = "Lohn:"
	colProvider = "Anbieter:"
)

// Fixed source formats: day.month.year dates, 24-hour hour:minute times.
const (
	DateLayout = "02.01.2006"
	TimeLayout = "15:04"
)

// Header returns the canonical header row in source column order. Row
// sources that do not carry their own header (the database mirror)
// prepend it so every source speaks the same raw format.
func Header() []string {
	return []string{colDate, colStudent, colStart, colEnd, colHours, colWage, colProvider}
}

// Parser turns raw rows into validated session records.
//
// Per-row rules: an unparseable date or an empty student name drops the
// whole row; an unparseable time, hours or wage value only leaves that
// field unset. Nothing here ever returns an error — malformed input
// shrinks the output, it does not fail the parse.
type Parser struct {
	l logger.Logger
}

func NewParser(l logger.Logger) *Parser {
	return &Parser{l: l}
}

// columns maps header names to their positions in the data rows.
type columns map[string]int

func (c columns) cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ParseRows converts raw rows into a record collection, preserving row
// order. The first row must be the header; a nil, empty or header-only
// input yields an empty collection.
func (p *Parser) ParseRows(rows [][]string) []models.SessionRecord {
	ctx := wrap.WithAction(context.Background(), "parse_rows")

	records := make([]models.SessionRecord, 0, max(len(rows)-1, 0))
	if len(rows) < 2 {
		return records
	}

	cols := make(columns, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	for i, row := range rows[1:] {
		rec, ok := p.parseRow(cols, row)
		if !ok {
			p.l.Debug(ctx, "row discarded", "row", i+1)
			continue
		}
		records = append(records, rec)
		metrics.RowsParsedTotal.WithLabelValues(types.ServiceName).Inc()
	}

	return records
}

func (p *Parser) parseRow(cols columns, row []string) (models.SessionRecord, bool) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(cols.cell(row, colDate)))
	if err != nil {
		metrics.RecordRowDiscarded(types.ServiceName, "bad_date")
		return models.SessionRecord{}, false
	}

	student := strings.TrimSpace(cols.cell(row, colStudent))
	if student == "" {
		metrics.RecordRowDiscarded(types.ServiceName, "empty_name")
		return models.SessionRecord{}, false
	}

	rec := models.SessionRecord{
		Date:     date,
		Student:  student,
		Start:    combine(date, cols.cell(row, colStart)),
		End:      combine(date, cols.cell(row, colEnd)),
		Hours:    parseDecimal(cols.cell(row, colHours)),
		Wage:     parseDecimal(cols.cell(row, colWage)),
		Provider: strings.TrimSpace(cols.cell(row, colProvider)),
	}

	return rec, true
}

// combine merges the row date with a time-of-day cell into a full
// timestamp. Returns nil when the time fails to parse — the record is
// kept, only the derived datetime stays undefined.
func combine(date time.Time, raw string) *time.Time {
	tod, err := time.Parse(TimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, date.Location())
	return &t
}

// parseDecimal parses a decimal cell, normalizing the comma decimal
// separator used by the source locale. Nil on failure.
func parseDecimal(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
