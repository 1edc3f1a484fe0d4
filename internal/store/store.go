// Package store is the persistence layer for agencies and emergencies.
// Callers receive snapshots by value; rows are only mutated through the
// explicit update and delete operations.
package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store runs all agency and emergency queries against a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps a connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
