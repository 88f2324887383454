package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/starford/qcd/internal/apperr"
)

// MatchAll is the wildcard term that selects every stored directory.
const MatchAll = "%"

// GetCount returns the visit count for path, or 0 if it has never been visited.
func (db *DB) GetCount(path string) (int, error) {
	var count int
	err := db.conn.QueryRow(`SELECT count FROM dirs WHERE path = ?`, path).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: store: get count: %w", apperr.ErrQuery, err)
	}
	return count, nil
}

// AddVisit records one visit to path: inserted with count 1 when new,
// incremented otherwise. The upsert is a single statement.
func (db *DB) AddVisit(path string) error {
	_, err := db.conn.Exec(`
		INSERT INTO dirs (path, count) VALUES (?, 1)
		ON CONFLICT(path) DO UPDATE SET count = count + 1
	`, path)
	if err != nil {
		return fmt.Errorf("%w: store: add visit: %w", apperr.ErrQuery, err)
	}
	return nil
}

// RemoveDirectory deletes path from the store. Removing an absent path is a no-op.
func (db *DB) RemoveDirectory(path string) error {
	if _, err := db.conn.Exec(`DELETE FROM dirs WHERE path = ?`, path); err != nil {
		return fmt.Errorf("%w: store: remove: %w", apperr.ErrQuery, err)
	}
	return nil
}

// MatchDirectories returns every stored path containing term, most visited
// first and lexically by path among equal counts. An empty term or MatchAll
// returns everything. The match is a literal, case-sensitive substring test.
func (db *DB) MatchDirectories(term string) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if term == "" || term == MatchAll {
		rows, err = db.conn.Query(`SELECT path FROM dirs ORDER BY count DESC, path ASC`)
	} else {
		rows, err = db.conn.Query(`
			SELECT path FROM dirs
			WHERE instr(path, ?) > 0
			ORDER BY count DESC, path ASC
		`, term)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: store: match: %w", apperr.ErrQuery, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%w: store: scan match: %w", apperr.ErrQuery, err)
		}
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: store: match rows: %w", apperr.ErrQuery, err)
	}
	return out, nil
}
