package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Database hands out scoped connections. Acquire is the only query path.
type Database struct {
	p *pgxpool.Pool
}

// Acquire hands out a connection for exactly one unit of work. The returned release
// func must be called on every exit path. A transaction bound to ctx is reused and
// its release is a no-op.
func (db *Database) Acquire(ctx context.Context) (Tx, func(), error) {
	if tx := TxFromContext(ctx); tx != nil {
		return tx, func() {}, nil
	}

	conn, err := db.p.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire connection: %v", err)
	}

	return conn, conn.Release, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.p.Ping(ctx)
}

func (db *Database) Close() {
	db.p.Close()
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{p: pool}
}
