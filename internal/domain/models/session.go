package models

import "time"

// SessionRecord is one cleaned, validated tutoring session.
//
// Date and Student are always set: rows that fail to produce them are dropped
// at parse time. Start/End and the numeric fields are soft — a value that the
// source could not provide stays nil and participates in sums as zero.
type SessionRecord struct {
	Date    time.Time `json:"date"`
	Student string    `json:"student"`

	// Full start/end timestamps, derived by combining Date with the
	// time-of-day columns. Nil when the source time failed to parse.
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`

	Hours *float64 `json:"hours"`
	Wage  *float64 `json:"wage"`

	// Provider is informational only and never feeds a metric.
	Provider string `json:"provider,omitempty"`
}

// HoursValue returns the hours field with nil treated as zero.
func (r SessionRecord) HoursValue() float64 {
	if r.Hours == nil {
		return 0
	}
	return *r.Hours
}

// WageValue returns the wage field with nil treated as zero.
func (r SessionRecord) WageValue() float64 {
	if r.Wage == nil {
		return 0
	}
	return *r.Wage
}
