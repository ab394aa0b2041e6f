// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tourcatalog/internal/models"
)

// contentBaseColumns mirror contentBaseDDL.
var contentBaseColumns = []string{
	"content_id", "content_type_id", "title", "addr1", "addr2", "zipcode", "tel",
	"cat1", "cat2", "cat3", "first_image", "first_image2", "map_x", "map_y", "mlevel",
	"created_at", "modified_at", "area_code", "sigungu_code", "ldong_regn_cd", "ldong_signgu_cd",
	"homepage", "overview",
}

// contentRecord is the part of every content row shared across domains.
type contentRecord struct {
	ContentID string
	Basic     models.BasicInfo
	Region    models.RegionLink
	Homepage  string
	Overview  string
}

func (r *contentRecord) args() []any {
	b := &r.Basic
	return []any{
		r.ContentID, b.ContentTypeID, b.Title, b.Addr1, b.Addr2, b.Zipcode, b.Tel,
		b.Cat1, b.Cat2, b.Cat3, b.FirstImage, b.FirstImage2, nullFloat(b.MapX), nullFloat(b.MapY), b.MLevel,
		nullTime(b.CreatedAt), nullTime(b.ModifiedAt), r.Region.AreaCode, r.Region.SigunguCode,
		r.Region.LDongRegnCd, r.Region.LDongSignguCd, r.Homepage, r.Overview,
	}
}

// contentScan collects scan targets for contentBaseColumns.
type contentScan struct {
	rec               contentRecord
	mapX, mapY        sql.NullFloat64
	created, modified sql.NullTime
	text              [18]sql.NullString
}

func (s *contentScan) dest() []any {
	t := &s.text
	return []any{
		&s.rec.ContentID, &t[0], &t[1], &t[2], &t[3], &t[4], &t[5],
		&t[6], &t[7], &t[8], &t[9], &t[10], &s.mapX, &s.mapY, &t[11],
		&s.created, &s.modified, &t[12], &t[13], &t[14], &t[15], &t[16], &t[17],
	}
}

func (s *contentScan) record() contentRecord {
	t := &s.text
	r := s.rec
	r.Basic = models.BasicInfo{
		ContentTypeID: t[0].String,
		Title:         t[1].String,
		Addr1:         t[2].String,
		Addr2:         t[3].String,
		Zipcode:       t[4].String,
		Tel:           t[5].String,
		Cat1:          t[6].String,
		Cat2:          t[7].String,
		Cat3:          t[8].String,
		FirstImage:    t[9].String,
		FirstImage2:   t[10].String,
		MapX:          floatPtr(s.mapX),
		MapY:          floatPtr(s.mapY),
		MLevel:        t[11].String,
		CreatedAt:     timePtr(s.created),
		ModifiedAt:    timePtr(s.modified),
	}
	r.Region = models.RegionLink{
		AreaCode:      t[12].String,
		SigunguCode:   t[13].String,
		LDongRegnCd:   t[14].String,
		LDongSignguCd: t[15].String,
	}
	r.Homepage = t[16].String
	r.Overview = t[17].String
	return r
}

// aggregateTable describes a content table and its owned child table.
type aggregateTable struct {
	table        string
	extraColumns []string
	childTable   string
	childColumns []string // without content_id and sort_order
}

func (t *aggregateTable) columns() []string {
	cols := make([]string, 0, len(contentBaseColumns)+len(t.extraColumns))
	cols = append(cols, contentBaseColumns...)
	return append(cols, t.extraColumns...)
}

// upsertQuery builds INSERT ... ON CONFLICT (content_id) DO UPDATE for the
// parent row. synced_at is appended as the last parameter.
func (t *aggregateTable) upsertQuery() string {
	cols := append(t.columns(), "synced_at")
	updates := make([]string, 0, len(cols)-1)
	for _, c := range cols[1:] {
		updates = append(updates, c+" = EXCLUDED."+c)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (content_id) DO UPDATE SET %s",
		t.table, strings.Join(cols, ", "), placeholders(1, len(cols)), strings.Join(updates, ", "))
}

func (t *aggregateTable) selectQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE content_id = $1", strings.Join(t.columns(), ", "), t.table)
}

func (t *aggregateTable) childInsertQuery() string {
	cols := append([]string{"content_id", "sort_order"}, t.childColumns...)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.childTable, strings.Join(cols, ", "), placeholders(1, len(cols)))
}

func (t *aggregateTable) childSelectQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE content_id = $1 ORDER BY sort_order",
		strings.Join(t.childColumns, ", "), t.childTable)
}

// upsert writes the parent row and replaces all child rows in one
// transaction. children holds the child column values in order.
func (t *aggregateTable) upsert(ctx context.Context, db *DB, contentID string, parent []any, children [][]any) (err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("upsert", t.table, start, err) }()

	parentArgs := append(parent, time.Now().UTC())
	parentQuery := t.upsertQuery()
	childQuery := t.childInsertQuery()
	deleteQuery := "DELETE FROM " + t.childTable + " WHERE content_id = $1"

	return retryOnConflict(ctx, func() error {
		tx, err := db.conn.BeginTx(ctx, nil)
		if err != nil {
			return persistenceError("begin", t.table, err)
		}

		if _, err := tx.ExecContext(ctx, parentQuery, parentArgs...); err != nil {
			rollback(tx, err)
			return persistenceError("upsert", t.table, fmt.Errorf("content %s: %w", contentID, err))
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, contentID); err != nil {
			rollback(tx, err)
			return persistenceError("delete_children", t.childTable, fmt.Errorf("content %s: %w", contentID, err))
		}

		for i, child := range children {
			args := append([]any{contentID, i}, child...)
			if _, err := tx.ExecContext(ctx, childQuery, args...); err != nil {
				rollback(tx, err)
				return persistenceError("insert_child", t.childTable, fmt.Errorf("content %s #%d: %w", contentID, i, err))
			}
		}

		if err := tx.Commit(); err != nil {
			return persistenceError("commit", t.table, err)
		}
		return nil
	})
}

// find loads the parent row into base and extra, then calls scanChild for
// every child row in order. It reports false when the row does not exist.
func (t *aggregateTable) find(ctx context.Context, db *DB, contentID string, extra []any, scanChild func(rowScanner) error) (rec contentRecord, found bool, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("find", t.table, start, err) }()

	var s contentScan
	dest := append(s.dest(), extra...)
	if err := db.conn.QueryRowContext(ctx, t.selectQuery(), contentID).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return contentRecord{}, false, nil
		}
		return contentRecord{}, false, fmt.Errorf("failed to query %s %s: %w", t.table, contentID, err)
	}

	rows, err := db.conn.QueryContext(ctx, t.childSelectQuery(), contentID)
	if err != nil {
		return contentRecord{}, false, fmt.Errorf("failed to query %s %s: %w", t.childTable, contentID, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scanChild(rows); err != nil {
			return contentRecord{}, false, fmt.Errorf("failed to scan %s: %w", t.childTable, err)
		}
	}
	if err := rows.Err(); err != nil {
		return contentRecord{}, false, err
	}

	return s.record(), true, nil
}

// nullStrings returns n nullable string scan targets and pointers to them.
func nullStrings(n int) ([]sql.NullString, []any) {
	values := make([]sql.NullString, n)
	dest := make([]any, n)
	for i := range values {
		dest[i] = &values[i]
	}
	return values, dest
}
