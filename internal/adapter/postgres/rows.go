package postgres

import (
	"context"
	"fmt"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/internal/service/dataset"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RowRepo mirrors the raw spreadsheet rows in Postgres so the service
// can run against a database instead of the live sheet. Cells are kept
// as text in the original source format and go through the same parser
// as every other row source.
type RowRepo struct {
	db *pgxpool.Pool
}

func NewRowRepo(db *pgxpool.Pool) *RowRepo {
	return &RowRepo{
		db: db,
	}
}

func (r *RowRepo) Name() string {
	return types.SourcePostgres.String()
}

// FetchRows reads the mirrored rows in their original order and
// prepends the canonical header row.
func (r *RowRepo) FetchRows(ctx context.Context) ([][]string, error) {
	const op = "RowRepo.FetchRows"
	query := `
		SELECT datum, name, anfang, ende, stunden, lohn, anbieter
		FROM session_rows
		ORDER BY pos;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	out := [][]string{dataset.Header()}
	for rows.Next() {
		cells := make([]string, 7)
		if err := rows.Scan(&cells[0], &cells[1], &cells[2], &cells[3], &cells[4], &cells[5], &cells[6]); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: scan: %w", op, err))
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return out, nil
}

// ReplaceRows swaps the whole mirror for the given rows in one
// transaction. The input is expected header-first; the header itself
// is not stored.
func (r *RowRepo) ReplaceRows(ctx context.Context, raw [][]string) error {
	const op = "RowRepo.ReplaceRows"

	if len(raw) > 0 {
		raw = raw[1:]
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: begin: %w", op, err))
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE session_rows;`); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: truncate: %w", op, err))
	}

	query := `
		INSERT INTO session_rows(pos, datum, name, anfang, ende, stunden, lohn, anbieter)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8);`

	for i, row := range raw {
		cells := make([]string, 7)
		copy(cells, row)

		if _, err := tx.Exec(ctx, query, i, cells[0], cells[1], cells[2], cells[3], cells[4], cells[5], cells[6]); err != nil {
			ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
			return wrap.Error(ctx, fmt.Errorf("%s: insert row %d: %w", op, i, err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: commit: %w", op, err))
	}
	return nil
}
