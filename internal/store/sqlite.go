// apps/advisor/internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Replacing and reading word lists in file order.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a Store on a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and migrates it.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/words.db).
 * - Configures busy timeout and WAL journaling mode.
 */
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies the embedded SQL migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order, each inside its own transaction.
 * - Skips files already applied.
 */
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk sql dir: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Put replaces the list under key in one transaction.
func (s *SQLite) Put(ctx context.Context, key ListKey, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM word_lists WHERE language=? AND size=? AND kind=?`,
		key.Language, key.Size, string(key.Kind),
	); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT OR IGNORE INTO word_lists (language, size, kind, position, word)
        VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, key.Language, key.Size, string(key.Kind), i, w); err != nil {
			return fmt.Errorf("insert %s %q: %w", key, w, err)
		}
	}
	return tx.Commit()
}

// Words returns the list under key in stored order.
func (s *SQLite) Words(ctx context.Context, key ListKey) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT word FROM word_lists
        WHERE language=? AND size=? AND kind=?
        ORDER BY position ASC`,
		key.Language, key.Size, string(key.Kind),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return out, nil
}

// Keys lists every stored key.
func (s *SQLite) Keys(ctx context.Context) ([]ListKey, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT language, size, kind FROM word_lists`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListKey
	for rows.Next() {
		var k ListKey
		var kind string
		if err := rows.Scan(&k.Language, &k.Size, &kind); err != nil {
			return nil, err
		}
		k.Kind = Kind(kind)
		out = append(out, k)
	}
	sortKeys(out)
	return out, rows.Err()
}
