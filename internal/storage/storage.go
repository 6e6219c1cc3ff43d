package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"
)

// Storage is a KV backed by a single SQL table, either a local SQLite file or
// a remote libSQL (Turso) database.
type Storage struct {
	DB         *sql.DB
	QuotaBytes int
}

// NewStorage opens the database behind dbURL. libsql://, http(s):// and ws(s)://
// URLs go through the libSQL client, anything else is a local SQLite file.
func NewStorage(dbURL, authToken string, quotaBytes int) (*Storage, error) {
	if dbURL == "" {
		return nil, errors.New("database url not set")
	}

	driver, dsn, err := resolveDSN(dbURL, authToken)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", dbURL, err)
	}

	if driver == "sqlite" {
		// SQLite doesn't support multiple writers well.
		db.SetMaxOpenConns(1)
	}

	if err := initializeDB(db); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to initialize database: %w", err), db.Close())
	}

	return &Storage{DB: db, QuotaBytes: quotaBytes}, nil
}

func resolveDSN(dbURL, authToken string) (driver, dsn string, err error) {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if !strings.HasPrefix(dbURL, scheme) {
			continue
		}
		if authToken == "" {
			return "libsql", dbURL, nil
		}
		u, err := url.Parse(dbURL)
		if err != nil {
			return "", "", fmt.Errorf("invalid database url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
		return "libsql", u.String(), nil
	}

	path := strings.TrimPrefix(dbURL, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		// Caller brought their own parameters.
		if err := ensureDir(path[:i]); err != nil {
			return "", "", err
		}
		return "sqlite", dbURL, nil
	}
	if err := ensureDir(path); err != nil {
		return "", "", err
	}
	return "sqlite", path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
}

func ensureDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS kv_store (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Get(key string) (string, error) {
	var value string
	err := s.DB.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Storage) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if s.QuotaBytes > 0 {
		var used int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0) FROM kv_store WHERE key != ?`,
			key,
		).Scan(&used)
		if err != nil {
			return fmt.Errorf("failed to compute storage usage: %w", err)
		}
		if int(used)+len(key)+len(value) > s.QuotaBytes {
			return ErrQuotaExceeded
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) Remove(key string) error {
	if _, err := s.DB.Exec(`DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Keys() ([]string, error) {
	rows, err := s.DB.Query(`SELECT key FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
