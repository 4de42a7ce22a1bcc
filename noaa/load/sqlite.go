package load

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	// Single writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return &SQLiteStore{db}, nil
}

func (s *SQLiteStore) CreateTable(ctx context.Context, table string, schema *Schema) error {
	_, err := s.db.ExecContext(ctx, schema.CreateTableSQL(table, true))
	return err
}

// Inserts all the rows in a single transaction
func (s *SQLiteStore) Insert(ctx context.Context, table string, schema *Schema, rows [][]any) (count int64, err error) {
	names := schema.Names()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(names, ", "), placeholders)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return 0, err
		}
		count++
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	slog.Debug(fmt.Sprintf("%s: %v/%v rows inserted", table, count, len(rows)))
	return count, nil
}

func (s *SQLiteStore) DropIndices(ctx context.Context, table string, schema *Schema) error {
	slog.Info("Dropping table indices...")
	return s.execAll(ctx, schema.DropIndicesSQL(table))
}

func (s *SQLiteStore) CreateIndices(ctx context.Context, table string, schema *Schema) error {
	slog.Info("Recreating table indices...")
	return s.execAll(ctx, schema.CreateIndicesSQL(table))
}

func (s *SQLiteStore) execAll(ctx context.Context, queries []string) error {
	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
