package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/studyvault/sys"
	"time"
)

const insertStmt = "INSERT INTO notes (" + selectColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

// Insert stores a new note, assigning its id and both timestamps
func Insert(ctx context.Context, newN NewNote) (Note, error) {
	db := sys.R.Database

	n := time.Now().UTC()
	created := Note{
		Id:          uuid.NewString(),
		UserId:      newN.UserId,
		Title:       newN.Title,
		ContentType: newN.ContentType,
		Content:     newN.Content,
		FileData:    newN.FileData,
		UpdatedAt:   n,
		CreatedAt:   n,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, insertStmt)
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()
	_, err = stmt.ExecContext(dbCtx, created.Id, created.UserId, created.Title, created.ContentType, created.Content, created.FileData, created.UpdatedAt, created.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return created, nil
}
