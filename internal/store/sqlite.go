// Copyright Arbor Learning Co., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/arborlearn/coursegraph/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "courses.db"
)

// Index persists course records to a SQLite database at
// dataDir/index/courses.db so later subcommands (graph, stats) can run
// without re-scraping.
type Index struct {
	db *sql.DB
}

// OpenIndex opens or creates the course index under dataDir. The schema
// is created if it does not exist.
func OpenIndex(dataDir string) (*Index, error) {
	dir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ix := &Index{db: db}
	if err := ix.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return ix, nil
}

// Close releases the database connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func (ix *Index) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT,
			url TEXT,
			department TEXT,
			level TEXT,
			description TEXT,
			prerequisites TEXT,
			corequisites TEXT,
			published INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_department ON courses(department)`,
	}

	for _, stmt := range statements {
		if _, err := ix.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save rewrites the index from s in one transaction. Records are
// inserted in store iteration order so Load restores the same order.
func (ix *Index) Save(ctx context.Context, s *Store) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO courses (id, title, url, department, level, description, prerequisites, corequisites, published)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range s.All() {
		prereqJSON, _ := json.Marshal(c.Prerequisites)
		coreqJSON, _ := json.Marshal(c.Corequisites)
		published := 0
		if c.Published {
			published = 1
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Title, c.URL, c.Department, c.Level, c.Description,
			string(prereqJSON), string(coreqJSON), published,
		); err != nil {
			return fmt.Errorf("inserting course %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// Load rebuilds a Store from the index, preserving the order records
// were saved in.
func (ix *Index) Load(ctx context.Context) (*Store, error) {
	rows, err := ix.db.QueryContext(ctx,
		`SELECT id, title, url, department, level, description, prerequisites, corequisites, published
		 FROM courses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	s := New()
	for rows.Next() {
		var (
			c          types.Course
			prereqJSON sql.NullString
			coreqJSON  sql.NullString
			published  int
		)
		if err := rows.Scan(
			&c.ID, &c.Title, &c.URL, &c.Department, &c.Level, &c.Description,
			&prereqJSON, &coreqJSON, &published,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if prereqJSON.Valid {
			json.Unmarshal([]byte(prereqJSON.String), &c.Prerequisites)
		}
		if coreqJSON.Valid {
			json.Unmarshal([]byte(coreqJSON.String), &c.Corequisites)
		}
		c.Published = published != 0
		s.Upsert(c)
	}

	return s, rows.Err()
}
