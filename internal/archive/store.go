// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps rendered FDO documents in a SQLite snapshot store
// keyed by QID, and exports the store to YAML or JSON.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mardi-fdo/internal/fdo"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

const dbFile = "fdo.db"

// Record is one archived FDO document.
type Record struct {
	QID        string          `json:"qid" yaml:"qid"`
	Type       string          `json:"type" yaml:"type"`
	Modified   string          `json:"modified" yaml:"modified"`
	ArchivedAt string          `json:"archived_at" yaml:"archived_at"`
	Document   json.RawMessage `json:"document" yaml:"-"`
}

// Store manages the archive SQLite database.
type Store struct {
	db  *sql.DB
	dir string
	now func() time.Time
}

// NewStore opens or creates dir/fdo.db and its schema.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "archive"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the archive directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS fdos (
		qid TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		modified TEXT NOT NULL,
		archived_at TEXT NOT NULL,
		document TEXT NOT NULL
	)`)
	return err
}

// Put stores doc for qid, replacing any previous version.
func (s *Store) Put(ctx context.Context, qid, modified string, doc types.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", qid, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO fdos (qid, type, modified, archived_at, document) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(qid) DO UPDATE SET
			type=excluded.type, modified=excluded.modified,
			archived_at=excluded.archived_at, document=excluded.document`,
		qid, doc.DocumentType(), modified, s.now().UTC().Format(time.RFC3339), string(data),
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", qid, err)
	}
	return nil
}

// Get returns the archived record for qid, or an error wrapping
// types.ErrNotFound.
func (s *Store) Get(ctx context.Context, qid string) (Record, error) {
	var r Record
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT qid, type, modified, archived_at, document FROM fdos WHERE qid = ?`, qid,
	).Scan(&r.QID, &r.Type, &r.Modified, &r.ArchivedAt, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s not archived", types.ErrNotFound, qid)
	}
	if err != nil {
		return Record{}, fmt.Errorf("reading %s: %w", qid, err)
	}
	r.Document = json.RawMessage(doc)
	return r, nil
}

// List returns every archived record ordered by QID.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT qid, type, modified, archived_at, document FROM fdos ORDER BY qid`)
	if err != nil {
		return nil, fmt.Errorf("listing archive: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var doc string
		if err := rows.Scan(&r.QID, &r.Type, &r.Modified, &r.ArchivedAt, &doc); err != nil {
			return nil, fmt.Errorf("scanning archive row: %w", err)
		}
		r.Document = json.RawMessage(doc)
		out = append(out, r)
	}
	return out, rows.Err()
}

// storedModified returns the modified timestamp recorded for qid and whether
// the QID is archived.
func (s *Store) storedModified(ctx context.Context, qid string) (string, bool, error) {
	var modified string
	err := s.db.QueryRowContext(ctx, `SELECT modified FROM fdos WHERE qid = ?`, qid).Scan(&modified)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return modified, true, nil
}

// EntitySource fetches raw entities by QID.
type EntitySource interface {
	Fetch(ctx context.Context, qid string) (*types.Entity, error)
}

// SnapshotSummary holds counts from a snapshot run.
type SnapshotSummary struct {
	Stored  int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of QIDs processed.
func (s SnapshotSummary) Total() int {
	return s.Stored + s.Updated + s.Skipped + s.Failed
}

// Snapshot fetches each QID, translates it and archives the document. An
// entity whose modified timestamp matches the archived one is skipped. A
// failed QID is reported on w and does not stop the run.
func (s *Store) Snapshot(ctx context.Context, src EntitySource, tr *fdo.Translator, qids []string, w io.Writer) (SnapshotSummary, error) {
	var summary SnapshotSummary

	for _, raw := range qids {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		qid, err := fdo.NormalizeIdentifier(raw)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", raw, err)
			summary.Failed++
			continue
		}

		entity, err := src.Fetch(ctx, qid)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", qid, err)
			summary.Failed++
			continue
		}

		stored, exists, err := s.storedModified(ctx, qid)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", qid, err)
			summary.Failed++
			continue
		}
		if exists && entity.Modified != "" && stored == entity.Modified {
			fmt.Fprintf(w, "skipped %s\n", qid)
			summary.Skipped++
			continue
		}

		doc, err := tr.ToFDO(qid, entity)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", qid, err)
			summary.Failed++
			continue
		}
		if err := s.Put(ctx, qid, entity.Modified, doc); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", qid, err)
			summary.Failed++
			continue
		}

		if exists {
			fmt.Fprintf(w, "updated %s (%s)\n", qid, doc.DocumentType())
			summary.Updated++
		} else {
			fmt.Fprintf(w, "stored  %s (%s)\n", qid, doc.DocumentType())
			summary.Stored++
		}
	}

	fmt.Fprintf(w, "\nstored: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Stored, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}
