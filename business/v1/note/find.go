package note

import (
	"context"
	"github.com/ribgsilva/studyvault/persistence/v1/note"
)

// Find returns the note of the user, ErrNotFound when it does not exist
func Find(ctx context.Context, userId, id string) (Note, error) {
	find, err := note.Find(ctx, userId, id)
	if err != nil {
		return Note{}, err
	}
	if find.Id == "" {
		return Note{}, ErrNotFound
	}
	return fromRow(ctx, find)
}
