package warehouse

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/semaphore"

	"github.com/supplylens/supplylens/internal/config"
)

// DB wraps the warehouse connection pool. The semaphore bounds concurrent
// extraction queries so a parallel load cannot exhaust the pool.
type DB struct {
	*sqlx.DB
	sem *semaphore.Weighted
}

var (
	dbInstance *DB
	once       sync.Once
)

// NewDB creates the warehouse connection pool. The pool is a process-wide
// singleton; repeated calls return the first successfully built instance.
func NewDB(cfg *config.WarehouseConfig) (*DB, error) {
	var err error
	once.Do(func() {
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

		var db *sqlx.DB
		db, err = sqlx.Connect("postgres", connStr)
		if err != nil {
			return
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		dbInstance = &DB{
			DB:  db,
			sem: semaphore.NewWeighted(5),
		}
	})

	return dbInstance, err
}

// NewDBFromURL opens a pool from a connection URL using the given driver.
// Used by the CLI, which takes a single db-url flag; the driver must be
// registered by the caller.
func NewDBFromURL(driver, dbURL string) (*DB, error) {
	db, err := sqlx.Connect(driver, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &DB{DB: db, sem: semaphore.NewWeighted(5)}, nil
}

// selectAll runs one extraction query under the concurrency limit.
func (db *DB) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := db.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("could not acquire query slot: %w", err)
	}
	defer db.sem.Release(1)

	return db.SelectContext(ctx, dest, query, args...)
}
