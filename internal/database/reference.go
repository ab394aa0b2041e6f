// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tourcatalog/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ReferenceRepo stores a flat code table that is replaced wholesale.
type ReferenceRepo[T any] struct {
	db      *DB
	table   string
	columns []string // without synced_at
	key     func(T) string
	args    func(T) []any
	scan    func(rowScanner) (T, error)
}

func newAreaCodeRepo(db *DB) *ReferenceRepo[models.AreaCode] {
	return &ReferenceRepo[models.AreaCode]{
		db:      db,
		table:   "area_codes",
		columns: []string{"code", "name"},
		key:     func(c models.AreaCode) string { return c.Code },
		args:    func(c models.AreaCode) []any { return []any{c.Code, c.Name} },
		scan: func(s rowScanner) (models.AreaCode, error) {
			var c models.AreaCode
			err := s.Scan(&c.Code, &c.Name)
			return c, err
		},
	}
}

func newLdongCodeRepo(db *DB) *ReferenceRepo[models.LdongCode] {
	return &ReferenceRepo[models.LdongCode]{
		db:      db,
		table:   "ldong_codes",
		columns: []string{"code", "region_code", "region_name", "district_code", "district_name"},
		key:     func(c models.LdongCode) string { return c.Code },
		args: func(c models.LdongCode) []any {
			return []any{c.Code, c.RegionCode, c.RegionName, c.DistrictCode, c.DistrictName}
		},
		scan: func(s rowScanner) (models.LdongCode, error) {
			var c models.LdongCode
			err := s.Scan(&c.Code, &c.RegionCode, &c.RegionName, &c.DistrictCode, &c.DistrictName)
			return c, err
		},
	}
}

// ReplaceAll deletes every row and inserts items in one transaction. Either
// the table ends up holding exactly items or it is left untouched. Items must
// be unique by code; a duplicate is rejected before anything is written.
func (r *ReferenceRepo[T]) ReplaceAll(ctx context.Context, items []T) (err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("replace_all", r.table, start, err) }()

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		code := r.key(item)
		if _, dup := seen[code]; dup {
			return persistenceError("replace_all", r.table, fmt.Errorf("duplicate code %s", code))
		}
		seen[code] = struct{}{}
	}

	syncedAt := time.Now().UTC()
	insert := fmt.Sprintf("INSERT INTO %s (%s, synced_at) VALUES (%s)",
		r.table, strings.Join(r.columns, ", "), placeholders(1, len(r.columns)+1))

	return retryOnConflict(ctx, func() error {
		tx, err := r.db.conn.BeginTx(ctx, nil)
		if err != nil {
			return persistenceError("begin", r.table, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM "+r.table); err != nil {
			rollback(tx, err)
			return persistenceError("delete_all", r.table, err)
		}

		for _, item := range items {
			args := append(r.args(item), syncedAt)
			if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
				rollback(tx, err)
				return persistenceError("insert", r.table, fmt.Errorf("code %s: %w", r.key(item), err))
			}
		}

		if err := tx.Commit(); err != nil {
			return persistenceError("commit", r.table, err)
		}
		return nil
	})
}

// List returns all rows ordered by code.
func (r *ReferenceRepo[T]) List(ctx context.Context) (items []T, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("list", r.table, start, err) }()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY code", strings.Join(r.columns, ", "), r.table)
	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.table, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Count returns the number of rows.
func (r *ReferenceRepo[T]) Count(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, r.table)
}
