package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the shared connection pool. Every operation in
// this service is a single statement run directly on the pool, so there
// are no transaction helpers here.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
