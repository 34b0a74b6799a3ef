package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/sys"
)

// Delete removes the note with the given id owned by userId
func Delete(ctx context.Context, userId, id string) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ? AND userId = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()
	if _, err = stmt.ExecContext(dbCtx, id, userId); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	evict(ctx, id)
	return nil
}

// DeleteByUser removes every note owned by userId. ids are the notes known to
// belong to the user, they are evicted from the cache.
func DeleteByUser(ctx context.Context, userId string, ids []string) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE userId = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete by user stmt: %w", err)
	}
	defer stmt.Close()
	if _, err = stmt.ExecContext(dbCtx, userId); err != nil {
		return fmt.Errorf("failed to exec delete by user stmt: %w", err)
	}

	for _, id := range ids {
		evict(ctx, id)
	}
	return nil
}
