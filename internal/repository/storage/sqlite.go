package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

const migrationTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationFS embed.FS

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// one writer at a time, sqlite serializes them anyway
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init applies every embedded migration that has not been applied yet.
func (that *Storage) Init(ctx context.Context) error {
	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)`, migrationTable)
	if _, err := that.Connection.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("can't create migration table: %w", err)
	}

	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("can't read migrations: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		if err = that.applyMigration(ctx, file); err != nil {
			return err
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}

func (that *Storage) applyMigration(ctx context.Context, file string) error {
	var found int
	err := that.Connection.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", file).Scan(&found)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("can't check migration %s: %w", file, err)
	}

	content, err := migrationFS.ReadFile("migrations/" + file)
	if err != nil {
		return fmt.Errorf("can't read migration %s: %w", file, err)
	}

	tx, err := that.Connection.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin migration %s: %w", file, err)
	}

	if _, err = tx.ExecContext(ctx, upMigration(string(content))); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("can't apply migration %s: %w", file, err)
	}

	query := "INSERT INTO " + migrationTable + " (name, applied_at) VALUES (?, ?)"
	if _, err = tx.ExecContext(ctx, query, file, time.Now().UTC().UnixMilli()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("can't record migration %s: %w", file, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit migration %s: %w", file, err)
	}

	return nil
}

// upMigration returns the SQL between the Up and Down markers.
func upMigration(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"

	start := strings.Index(content, up)
	if start == -1 {
		return content
	}
	content = content[start+len(up):]

	if end := strings.Index(content, down); end != -1 {
		content = content[:end]
	}

	return content
}
