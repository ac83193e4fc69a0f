package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Query describes one paginated read. Base holds the FROM and WHERE parts
// shared by the count and the page query; Columns and OrderBy apply to the
// page query only.
type Query struct {
	Base    string
	Columns string
	OrderBy string
	Args    []any
}

// FetchPage runs the count query and the page query concurrently and composes
// the result envelope. The two reads use separate pool connections and may
// observe different snapshots of the table.
func FetchPage[T any](ctx context.Context, pool *pgxpool.Pool, q Query, page Page, scanRow func(rows pgx.Rows) (T, error)) (Result[T], error) {
	countSQL := "SELECT COUNT(*) " + q.Base
	n := len(q.Args)
	pageSQL := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		q.Columns, q.Base, q.OrderBy, n+1, n+2)
	pageArgs := make([]any, 0, n+2)
	pageArgs = append(pageArgs, q.Args...)
	pageArgs = append(pageArgs, page.CountPerPage, page.Offset())

	var (
		total int
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := pool.QueryRow(gctx, countSQL, q.Args...).Scan(&total); err != nil {
			return fmt.Errorf("count query: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := pool.Query(gctx, pageSQL, pageArgs...)
		if err != nil {
			return fmt.Errorf("page query: %w", err)
		}
		defer rows.Close()

		items = make([]T, 0, page.CountPerPage)
		for rows.Next() {
			item, err := scanRow(rows)
			if err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}
	return NewResult(items, total, page.CountPerPage), nil
}
