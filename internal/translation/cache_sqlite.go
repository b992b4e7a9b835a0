package translation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS translations (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// SQLiteCache persists translations in a local SQLite file so repeated
// analyses of the same text skip the provider.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// OpenSQLiteCache opens (and creates) the cache at path. Entries older than
// ttl are treated as misses; a zero ttl keeps them forever.
func OpenSQLiteCache(path string, ttl time.Duration) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation cache: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise translation cache: %w", err)
	}

	return &SQLiteCache{db: db, ttl: ttl, now: time.Now}, nil
}

func (c *SQLiteCache) Get(ctx context.Context, key string) (string, bool) {
	var (
		value     string
		createdAt int64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT value, created_at FROM translations WHERE key = ?`, key).Scan(&value, &createdAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("[TranslationCache] SQLite lookup failed", slog.String("error", err.Error()))
		}
		return "", false
	}

	if c.ttl > 0 && c.now().Sub(time.Unix(createdAt, 0)) > c.ttl {
		return "", false
	}

	return value, true
}

func (c *SQLiteCache) Set(ctx context.Context, key, value string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO translations (key, value, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, created_at = excluded.created_at`,
		key, value, c.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to store translation: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
