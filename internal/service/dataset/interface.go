package dataset

import "context"

// RowSource supplies raw spreadsheet rows on demand. The first row is the
// header. Implementations own transport and auth concerns; a failed fetch
// surfaces as types.ErrDataUnavailable at the cache.
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)

	// Name identifies the source in logs and metric labels.
	Name() string
}
