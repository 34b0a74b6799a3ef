// Package database opens the sql connection pool shared by the service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open opens a pool for driver and checks it answers within pingTimeout
func Open(ctx context.Context, driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	pCtx, pCancel := context.WithTimeout(ctx, pingTimeout)
	defer pCancel()
	if err := db.PingContext(pCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}
