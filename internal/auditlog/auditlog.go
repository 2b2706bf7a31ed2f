// Package auditlog persists one row per served prediction when a database is
// configured. It is a serving-layer concern: inserts are best-effort and a
// failure never reaches the client.
package auditlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	id              UUID PRIMARY KEY,
	created_at      TIMESTAMPTZ NOT NULL,
	symptoms        TEXT[] NOT NULL,
	top_disease     TEXT NOT NULL,
	top_probability DOUBLE PRECISION NOT NULL
)`

// Entry is one audit record.
type Entry struct {
	Symptoms       []string
	TopDisease     string
	TopProbability float64
}

// Store writes prediction audit entries to Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pool, verifies it with a short ping, and ensures the
// predictions table exists.
func Connect(ctx context.Context, url string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Record inserts one audit row.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO predictions (id, created_at, symptoms, top_disease, top_probability)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), time.Now().UTC(), e.Symptoms, e.TopDisease, e.TopProbability)
	return err
}

// Ping reports pool health for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
