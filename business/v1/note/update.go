package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/persistence/v1/image"
	"github.com/ribgsilva/studyvault/persistence/v1/note"
)

// Update replaces the whole note. The content type cannot change.
//
// The row is written before the image, so a failed row update leaves the
// stored image untouched. A failed image write restores the previous row.
func Update(ctx context.Context, upN UpdateNote) (Note, error) {
	existing, err := note.Find(ctx, upN.UserId, upN.Id)
	if err != nil {
		return Note{}, err
	}
	if existing.Id == "" {
		return Note{}, ErrNotFound
	}

	newN, fileData, url, err := prepare(upN.NewNote)
	if err != nil {
		return Note{}, err
	}
	if string(newN.ContentType) != existing.ContentType {
		return Note{}, invalid("contentType", "content type cannot be changed")
	}

	updatedAt, err := note.Update(ctx, note.UpdateNote{
		Id:          existing.Id,
		UserId:      existing.UserId,
		Title:       newN.Title,
		ContentType: existing.ContentType,
		Content:     newN.Content,
		FileData:    fileData,
		CreatedAt:   existing.CreatedAt,
	})
	if err != nil {
		return Note{}, err
	}

	if url != "" {
		if err := image.Put(ctx, existing.Id, url); err != nil {
			if _, rErr := note.Update(ctx, rowOf(existing)); rErr != nil {
				return Note{}, fmt.Errorf("%w, restoring note failed: %s", err, rErr)
			}
			return Note{}, err
		}
	}

	existing.Title = newN.Title
	existing.Content = newN.Content
	existing.FileData = fileData
	existing.UpdatedAt = updatedAt
	return fromRow(ctx, existing)
}

func rowOf(n note.Note) note.UpdateNote {
	return note.UpdateNote{
		Id:          n.Id,
		UserId:      n.UserId,
		Title:       n.Title,
		ContentType: n.ContentType,
		Content:     n.Content,
		FileData:    n.FileData,
		CreatedAt:   n.CreatedAt,
	}
}
