package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/persistence/v1/image"
	"github.com/ribgsilva/studyvault/persistence/v1/note"
)

// Create validates and stores a new note for its user
func Create(ctx context.Context, newN NewNote) (Note, error) {
	newN, fileData, url, err := prepare(newN)
	if err != nil {
		return Note{}, err
	}

	row, err := note.Insert(ctx, note.NewNote{
		UserId:      newN.UserId,
		Title:       newN.Title,
		ContentType: string(newN.ContentType),
		Content:     newN.Content,
		FileData:    fileData,
	})
	if err != nil {
		return Note{}, err
	}

	if url != "" {
		if err := image.Put(ctx, row.Id, url); err != nil {
			if dErr := note.Delete(ctx, row.UserId, row.Id); dErr != nil {
				return Note{}, fmt.Errorf("%w, rollback failed: %s", err, dErr)
			}
			return Note{}, err
		}
	}

	created, err := fromRow(ctx, row)
	if err != nil {
		return Note{}, err
	}
	return created, nil
}
