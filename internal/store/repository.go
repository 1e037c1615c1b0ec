// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for all FolioPress entities.
// Content entities share one generic Repository parameterized by a Schema;
// per-entity files declare the schema and any extra typed queries.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"foliopress/internal/models"
)

var (
	// ErrNotFound is returned by Update and Delete when no row matches the
	// id. Find reports absence as (nil, nil) instead.
	ErrNotFound = errors.New("not found")

	// ErrInUse is returned by Delete when a referential guard finds rows in
	// a dependent table still pointing at the entity.
	ErrInUse = errors.New("in use")
)

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// SearchColumn names a column included in free-text search. Localized
// columns are JSONB language maps searched per configured language.
type SearchColumn struct {
	Name      string
	Localized bool
}

// Guard describes a dependent table that blocks deletion while it still
// references the entity.
type Guard struct {
	Table   string
	Column  string
	Message string // domain message surfaced to the operator
}

// Schema describes how one entity type maps to its table. Scan must read
// exactly the columns listed in Columns; Insert and Update return the
// writable column/value pairs excluding id and timestamps, which the
// repository manages itself.
type Schema[T any] struct {
	Table   string
	Columns []string
	Scan    func(row RowScanner) (*T, error)
	Insert  func(e *T) ([]string, []any)
	Update  func(e *T) ([]string, []any)
	Search  []SearchColumn
	Sorts   map[string]string // api sort name -> column
	Guards  []Guard
}

// Repository implements list/find/create/update/delete for one entity type.
// It is the single choke point for query construction; asset side effects
// live with the HTTP resource controller, not here.
type Repository[T any] struct {
	db     *sql.DB
	schema Schema[T]
}

// NewRepository creates a Repository over the given schema.
func NewRepository[T any](db *sql.DB, schema Schema[T]) *Repository[T] {
	return &Repository[T]{db: db, schema: schema}
}

// Table returns the backing table name.
func (r *Repository[T]) Table() string { return r.schema.Table }

// List returns the filtered page of entities plus the total count matching
// the search. The slice is empty, never nil; a page past the end is empty.
func (r *Repository[T]) List(ctx context.Context, f Filter) ([]T, int, error) {
	where, args := r.searchClause(f.Search)

	var count int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, r.schema.Table, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", r.schema.Table, err)
	}

	limitArg := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		strings.Join(r.schema.Columns, ", "), r.schema.Table, where,
		r.orderBy(f), limitArg, limitArg+1,
	)
	args = append(args, f.Limit, f.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		e, err := r.schema.Scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", r.schema.Table, err)
		}
		items = append(items, *e)
	}
	return items, count, rows.Err()
}

// Find retrieves an entity by id. Returns (nil, nil) if absent — absence is
// not an error, only transport failure is.
func (r *Repository[T]) Find(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`,
		strings.Join(r.schema.Columns, ", "), r.schema.Table)

	e, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.schema.Table, err)
	}
	return e, nil
}

// Create inserts the entity and returns the stored row. The server assigns
// the id and sets created_at == updated_at.
func (r *Repository[T]) Create(ctx context.Context, e *T) (*T, error) {
	cols, vals := r.schema.Insert(e)
	now := time.Now().UTC()
	cols = append(cols, "created_at", "updated_at")
	vals = append(vals, now, now)

	placeholders := make([]string, len(vals))
	for i := range vals {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.schema.Table, strings.Join(cols, ", "),
		strings.Join(placeholders, ", "), strings.Join(r.schema.Columns, ", "))

	created, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, vals...))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", r.schema.Table, err)
	}
	return created, nil
}

// Update writes the entity's editable columns and refreshes updated_at.
// Returns ErrNotFound if the row no longer exists.
func (r *Repository[T]) Update(ctx context.Context, id int64, e *T) (*T, error) {
	cols, vals := r.schema.Update(e)

	assigns := make([]string, len(cols))
	for i, c := range cols {
		assigns[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	assigns = append(assigns, fmt.Sprintf("updated_at = $%d", len(cols)+1))
	vals = append(vals, time.Now().UTC(), id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		r.schema.Table, strings.Join(assigns, ", "), len(vals),
		strings.Join(r.schema.Columns, ", "))

	updated, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, vals...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.schema.Table, err)
	}
	return updated, nil
}

// InUse runs the schema's referential guards. Returns an error wrapping
// ErrInUse with the guard's domain message when dependent rows exist.
func (r *Repository[T]) InUse(ctx context.Context, id int64) error {
	for _, g := range r.schema.Guards {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, g.Table, g.Column)
		if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
			return fmt.Errorf("guard %s: %w", g.Table, err)
		}
		if count > 0 {
			return fmt.Errorf("%s: %w", g.Message, ErrInUse)
		}
	}
	return nil
}

// Delete removes the row after its guards pass. Deleting an id that is
// already gone returns ErrNotFound, never a silent success.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	if err := r.InUse(ctx, id); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.schema.Table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.schema.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.schema.Table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// searchClause builds the WHERE fragment for free-text search: an OR of
// case-insensitive substring matches, expanded per configured language for
// localized JSONB columns. Returns ("", nil) when no search is requested.
func (r *Repository[T]) searchClause(search string) (string, []any) {
	if strings.TrimSpace(search) == "" || len(r.schema.Search) == 0 {
		return "", nil
	}

	var preds []string
	for _, sc := range r.schema.Search {
		if sc.Localized {
			for _, lang := range models.Languages {
				preds = append(preds, fmt.Sprintf("%s->>'%s' ILIKE $1", sc.Name, lang))
			}
		} else {
			preds = append(preds, fmt.Sprintf("%s ILIKE $1", sc.Name))
		}
	}

	return " WHERE (" + strings.Join(preds, " OR ") + ")", []any{"%" + search + "%"}
}

// orderBy resolves the requested sort against the schema's allow-list,
// defaulting to newest-first by creation timestamp.
func (r *Repository[T]) orderBy(f Filter) string {
	col, ok := r.schema.Sorts[f.Sort]
	if !ok {
		return "created_at DESC"
	}
	dir := "DESC"
	if f.Order == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}
