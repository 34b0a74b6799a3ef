package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/studyvault/sys"
	"time"
)

// Update replaces the whole row of the note and refreshes updatedAt, keeping
// upN.CreatedAt. The row is rewritten inside a transaction so every driver
// binds the timestamps the same way it does on Insert.
func Update(ctx context.Context, upN UpdateNote) (time.Time, error) {
	db := sys.R.Database

	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to begin update tx: %w", err)
	}

	if err := replace(dbCtx, tx, upN, n); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			sys.R.Log.Errorf("failed to rollback update of note %s: %s", upN.Id, rErr)
		}
		return time.Time{}, err
	}
	if err := tx.Commit(); err != nil {
		return time.Time{}, fmt.Errorf("failed to commit update tx: %w", err)
	}

	evict(ctx, upN.Id)
	return n, nil
}

func replace(ctx context.Context, tx *sql.Tx, upN UpdateNote, updatedAt time.Time) error {
	del, err := tx.PrepareContext(ctx, "DELETE FROM notes WHERE id = ? AND userId = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare update delete stmt: %w", err)
	}
	defer del.Close()
	if _, err := del.ExecContext(ctx, upN.Id, upN.UserId); err != nil {
		return fmt.Errorf("failed to exec update delete stmt: %w", err)
	}

	ins, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		return fmt.Errorf("failed to prepare update insert stmt: %w", err)
	}
	defer ins.Close()
	_, err = ins.ExecContext(ctx, upN.Id, upN.UserId, upN.Title, upN.ContentType, upN.Content, upN.FileData, updatedAt, upN.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to exec update insert stmt: %w", err)
	}
	return nil
}
