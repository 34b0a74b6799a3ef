package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/sys"
)

// ListByUser returns every note owned by userId, newest first
func ListByUser(ctx context.Context, userId string) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT "+selectColumns+" FROM notes WHERE userId = ? ORDER BY createdAt DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		note, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list rows: %w", err)
	}
	return notes, nil
}
