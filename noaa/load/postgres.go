package load

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const CONN_ENV_VAR string = "NOAA_CONN_STRING"

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("Could not connect to Postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("Could not connect to Postgres: %w", err)
	}
	return &PostgresStore{pool}, nil
}

func (s *PostgresStore) CreateTable(ctx context.Context, table string, schema *Schema) error {
	_, err := s.pool.Exec(ctx, schema.CreateTableSQL(table, false))
	return err
}

func (s *PostgresStore) Insert(ctx context.Context, table string, schema *Schema, rows [][]any) (int64, error) {
	size := len(rows)
	count, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{table},
		schema.Names(),
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return count, err
	}

	logStr := fmt.Sprintf("%s: %v/%v rows inserted", table, count, size)
	if int(count) != size {
		slog.Warn(logStr)
	} else {
		slog.Debug(logStr)
	}
	return count, nil
}

func (s *PostgresStore) DropIndices(ctx context.Context, table string, schema *Schema) error {
	slog.Info("Dropping table indices...")
	return s.execAll(ctx, schema.DropIndicesSQL(table))
}

func (s *PostgresStore) CreateIndices(ctx context.Context, table string, schema *Schema) error {
	slog.Info("Recreating table indices...")
	return s.execAll(ctx, schema.CreateIndicesSQL(table))
}

func (s *PostgresStore) execAll(ctx context.Context, queries []string) error {
	for _, query := range queries {
		if _, err := s.pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
