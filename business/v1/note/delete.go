package note

import (
	"context"
	"github.com/ribgsilva/studyvault/persistence/v1/image"
	"github.com/ribgsilva/studyvault/persistence/v1/note"
	"github.com/ribgsilva/studyvault/sys"
)

// Delete removes the note of the user for good
func Delete(ctx context.Context, userId, id string) error {
	existing, err := note.Find(ctx, userId, id)
	if err != nil {
		return err
	}
	if existing.Id == "" {
		return ErrNotFound
	}

	if err := note.Delete(ctx, userId, id); err != nil {
		return err
	}
	if ContentType(existing.ContentType) == Image {
		removeImage(ctx, id)
	}
	return nil
}

// DeleteAll removes every note of the user, returning how many were removed
func DeleteAll(ctx context.Context, userId string) (int, error) {
	rows, err := note.ListByUser(ctx, userId)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Id)
	}
	if err := note.DeleteByUser(ctx, userId, ids); err != nil {
		return 0, err
	}

	for _, r := range rows {
		if ContentType(r.ContentType) == Image {
			removeImage(ctx, r.Id)
		}
	}
	return len(rows), nil
}

// removeImage deletes the image of a note whose row is already gone. A failure
// only leaves an orphan blob behind, so it is logged.
func removeImage(ctx context.Context, id string) {
	if err := image.Delete(ctx, id); err != nil {
		sys.R.Log.Errorw("image", "status", "left in bucket", "note", id, "error", err)
	}
}
