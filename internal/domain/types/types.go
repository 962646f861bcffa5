package types

// ServiceName labels logs and metrics emitted by this process.
const ServiceName = "dashboard"

// RangePreset names a quick date range shortcut understood by the reporting API.
type RangePreset string

const (
	RangeAll    RangePreset = "all"
	RangeLast7  RangePreset = "last7"
	RangeLast30 RangePreset = "last30"
	RangeLast90 RangePreset = "last90"
	RangeYTD    RangePreset = "ytd"
	RangeCustom RangePreset = "custom"
)

func (p RangePreset) String() string {
	return string(p)
}

// Valid reports whether the preset is one of the recognized values.
func (p RangePreset) Valid() bool {
	switch p {
	case RangeAll, RangeLast7, RangeLast30, RangeLast90, RangeYTD, RangeCustom:
		return true
	default:
		return false
	}
}

// SourceMode selects which row source backs the dataset cache.
type SourceMode string

const (
	SourceSheets   SourceMode = "sheets"
	SourcePostgres SourceMode = "postgres"
	SourceCSV      SourceMode = "csv"
)

func (m SourceMode) String() string {
	return string(m)
}

// Enum for user roles. The dashboard only distinguishes admins
// (cache management, forced refresh) from anonymous readers.
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	AdminRole UserRole = "ADMIN"
)
