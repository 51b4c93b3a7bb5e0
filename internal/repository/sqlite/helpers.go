package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.FromContext(ctx).WithPrefix("repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug("transaction rolled back due to error: %v", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	log.Debug("transaction committed")
	return nil
}

// selectAll runs a built query and scans every row with scan.
func selectAll[T any](ctx context.Context, db *sql.DB, log *logger.Logger, what string, query squirrel.SelectBuilder, scan func(*sql.Rows) (T, error)) ([]T, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build %s query: %v", what, err)
		return nil, err
	}

	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to list %s: %v", what, err)
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			log.Error("failed to scan %s row: %v", what, err)
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate %s rows: %v", what, err)
		return nil, err
	}
	log.Debug("found %d %s", len(out), what)
	return out, nil
}

// inRange restricts column to the inclusive date range [from, to].
func inRange(query squirrel.SelectBuilder, column, from, to string) squirrel.SelectBuilder {
	return query.
		Where(squirrel.GtOrEq{column: from}).
		Where(squirrel.LtOrEq{column: to})
}
