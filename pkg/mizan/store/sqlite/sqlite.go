// Package sqlite implements the datastore boundary on a local SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sunnahlabs/mizan/pkg/mizan/store"
)

// Store implements store.Store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) a SQLite database with WAL mode
// enabled.
func Open(ctx context.Context, path string) (*Store, error) {
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

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS texts (
	id INTEGER PRIMARY KEY,
	text_en TEXT,
	text_ar TEXT,
	category_id TEXT,
	subcategory TEXT,
	keywords TEXT
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// CountDocuments returns the number of stored documents.
func (s *Store) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM texts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

// FetchPage returns up to limit documents starting at offset, ordered by id.
func (s *Store) FetchPage(ctx context.Context, offset, limit int) ([]store.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, COALESCE(text_en, ''), COALESCE(text_ar, '')
		 FROM texts ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch page offset=%d: %w", offset, err)
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var d store.Document
		if err := rows.Scan(&d.ID, &d.TextEn, &d.TextAr); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// UpsertAnnotations writes a batch of annotations in one transaction.
// A document that does not exist yet gets a bare row; existing rows keep
// their text fields.
func (s *Store) UpsertAnnotations(ctx context.Context, anns []store.Annotation) error {
	if len(anns) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO texts (id, category_id, subcategory, keywords)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	category_id=excluded.category_id,
	subcategory=excluded.subcategory,
	keywords=excluded.keywords;
`
	for _, a := range anns {
		keywords, err := json.Marshal(a.Keywords)
		if err != nil {
			return fmt.Errorf("encode keywords for doc %d: %w", a.ID, err)
		}
		var subcategory sql.NullString
		if a.Subcategory != "" {
			subcategory = sql.NullString{String: a.Subcategory, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, stmt, a.ID, a.CategoryID, subcategory, string(keywords)); err != nil {
			return fmt.Errorf("upsert annotation for doc %d: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// InsertDocument adds a document row. Used for seeding local databases;
// bulk corpus import is handled outside this module.
func (s *Store) InsertDocument(ctx context.Context, d store.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO texts (id, text_en, text_ar) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET text_en=excluded.text_en, text_ar=excluded.text_ar`,
		d.ID, d.TextEn, d.TextAr)
	if err != nil {
		return fmt.Errorf("insert document %d: %w", d.ID, err)
	}
	return nil
}
