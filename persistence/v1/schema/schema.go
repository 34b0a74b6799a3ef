// Package schema creates and drops the tables of the service.
package schema

import (
	"context"
	"fmt"

	"github.com/ribgsilva/studyvault/sys"
)

var create = []string{
	`CREATE TABLE notes (
	id VARCHAR(36) PRIMARY KEY,
	userId VARCHAR(128) NOT NULL,
	title TEXT NOT NULL,
	contentType VARCHAR(16) NOT NULL,
	content TEXT,
	fileData TEXT,
	updatedAt TIMESTAMP,
	createdAt TIMESTAMP
)`,
}

var drop = []string{
	`DROP TABLE notes`,
}

// Create creates every table, in order
func Create(ctx context.Context) error {
	if err := exec(ctx, create); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Drop drops every table. Every note is lost.
func Drop(ctx context.Context) error {
	if err := exec(ctx, drop); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}

func exec(ctx context.Context, stmts []string) error {
	db := sys.R.Database
	for i, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}
