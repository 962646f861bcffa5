package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Bekzhan-O/tutor-dashboard/config"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
)

// Reader serves raw session rows from a local CSV export. Useful for
// development and for running without network access to the sheet.
type Reader struct {
	path  string
	comma rune
}

func New(cfg config.CSVConfig) *Reader {
	comma := ';'
	if cfg.Separator != "" {
		comma = rune(cfg.Separator[0])
	}
	return &Reader{
		path:  cfg.Path,
		comma: comma,
	}
}

func (r *Reader) Name() string {
	return types.SourceCSV.String()
}

// FetchRows reads the whole file, header row included. Rows are
// allowed to have varying lengths, matching what a spreadsheet export
// produces for trailing empty cells.
func (r *Reader) FetchRows(ctx context.Context) ([][]string, error) {
	const op = "csvfile.FetchRows"

	f, err := os.Open(r.path)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = r.comma
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: parse %s: %w", op, r.path, err))
	}
	return rows, nil
}
