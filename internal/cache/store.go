// Package cache persists per-file check results between runs. It is the
// on-disk face of the query layer's memoization contract: a file whose
// content hash is unchanged since the last run can reuse its recorded
// diagnostics instead of being re-checked.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mica-lang/mica/internal/diagnostics"
)

// Store is the SQLite data access layer for the build cache.
type Store struct {
	db      *sql.DB
	session string
}

// Open opens (or creates) the cache database at dbPath and starts a new
// session.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping cache: %w", err)
	}

	s := &Store{db: db, session: uuid.NewString()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.beginSession(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Session returns the identifier of the current run.
func (s *Store) Session() string { return s.session }

func (s *Store) migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate cache: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS sessions (
  id         TEXT PRIMARY KEY,
  started_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS files (
  path        TEXT PRIMARY KEY,
  hash        TEXT NOT NULL,
  diagnostics TEXT NOT NULL,
  session     TEXT NOT NULL REFERENCES sessions(id),
  checked_at  TIMESTAMP NOT NULL
);
`

func (s *Store) beginSession() error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		s.session, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	return nil
}

// HashText returns the content hash used as the cache key.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// storedDiagnostic is the serialized form of one diagnostic.
type storedDiagnostic struct {
	Code     string `json:"code"`
	Severity int    `json:"severity"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
}

// Lookup returns the recorded diagnostics for path if its hash is unchanged.
func (s *Store) Lookup(path, hash string) ([]*diagnostics.Diagnostic, bool, error) {
	var storedHash, payload string
	err := s.db.QueryRow(
		`SELECT hash, diagnostics FROM files WHERE path = ?`, path,
	).Scan(&storedHash, &payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup %s: %w", path, err)
	}
	if storedHash != hash {
		return nil, false, nil
	}

	var stored []storedDiagnostic
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, false, fmt.Errorf("decode diagnostics for %s: %w", path, err)
	}
	out := make([]*diagnostics.Diagnostic, 0, len(stored))
	for _, d := range stored {
		diag := &diagnostics.Diagnostic{
			Code:     d.Code,
			Severity: diagnostics.Severity(d.Severity),
			Message:  d.Message,
			File:     path,
		}
		diag.Token.Line = d.Line
		diag.Token.Column = d.Column
		out = append(out, diag)
	}
	return out, true, nil
}

// Record stores the diagnostics for path under its content hash.
func (s *Store) Record(path, hash string, diags []*diagnostics.Diagnostic) error {
	stored := make([]storedDiagnostic, 0, len(diags))
	for _, d := range diags {
		stored = append(stored, storedDiagnostic{
			Code:     d.Code,
			Severity: int(d.Severity),
			Line:     d.Token.Line,
			Column:   d.Token.Column,
			Message:  d.Message,
		})
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode diagnostics for %s: %w", path, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO files (path, hash, diagnostics, session, checked_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   hash = excluded.hash,
		   diagnostics = excluded.diagnostics,
		   session = excluded.session,
		   checked_at = excluded.checked_at`,
		path, hash, string(payload), s.session, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", path, err)
	}
	return nil
}
