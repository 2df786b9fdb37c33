// Package sqlite is the sqlite-backed catalog.Store used by the CLIs.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cranemast/seo/pkg/seo/catalog"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a sqlite catalog with WAL mode enabled.
func Open(ctx context.Context, path string) (catalog.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS pages (
	url TEXT PRIMARY KEY,
	title TEXT,
	description TEXT,
	keywords TEXT,
	category TEXT,
	language TEXT,
	last_updated TEXT,
	authority REAL DEFAULT 0,
	available INTEGER DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_pages_category ON pages(category);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertPage inserts or replaces a page record.
func (s *sqliteStore) UpsertPage(ctx context.Context, p catalog.PageData) error {
	keywords, err := json.Marshal(p.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO pages (url, title, description, keywords, category, language, last_updated, authority, available)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
	title = excluded.title,
	description = excluded.description,
	keywords = excluded.keywords,
	category = excluded.category,
	language = excluded.language,
	last_updated = excluded.last_updated,
	authority = excluded.authority,
	available = excluded.available`,
		p.URL, p.Title, p.Description, string(keywords), p.Category,
		p.Language, p.LastUpdated.UTC().Format(time.RFC3339), p.Authority, boolToInt(p.Available))
	return err
}

// GetPage returns one page by URL.
func (s *sqliteStore) GetPage(ctx context.Context, url string) (catalog.PageData, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT url, title, description, keywords, category, language, last_updated, authority, available
FROM pages WHERE url = ?`, url)

	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return catalog.PageData{}, false, nil
	}
	if err != nil {
		return catalog.PageData{}, false, err
	}
	return p, true, nil
}

// ListPages returns all pages ordered by URL.
func (s *sqliteStore) ListPages(ctx context.Context) ([]catalog.PageData, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT url, title, description, keywords, category, language, last_updated, authority, available
FROM pages ORDER BY url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []catalog.PageData
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// SetAvailability flags a page active or inactive.
func (s *sqliteStore) SetAvailability(ctx context.Context, url string, available bool) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE pages SET available = ? WHERE url = ?", boolToInt(available), url)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (catalog.PageData, error) {
	var p catalog.PageData
	var keywords, lastUpdated string
	var available int

	if err := row.Scan(&p.URL, &p.Title, &p.Description, &keywords, &p.Category,
		&p.Language, &lastUpdated, &p.Authority, &available); err != nil {
		return catalog.PageData{}, err
	}

	if keywords != "" {
		if err := json.Unmarshal([]byte(keywords), &p.Keywords); err != nil {
			return catalog.PageData{}, fmt.Errorf("unmarshal keywords for %s: %w", p.URL, err)
		}
	}
	if lastUpdated != "" {
		ts, err := time.Parse(time.RFC3339, lastUpdated)
		if err != nil {
			return catalog.PageData{}, fmt.Errorf("parse last_updated for %s: %w", p.URL, err)
		}
		p.LastUpdated = ts
	}
	p.Available = available != 0
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
