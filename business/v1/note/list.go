package note

import (
	"context"
	"github.com/ribgsilva/studyvault/persistence/v1/note"
)

// List returns every note of the user, newest first
func List(ctx context.Context, userId string) ([]Note, error) {
	rows, err := note.ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(rows))
	for _, r := range rows {
		n, err := fromRow(ctx, r)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}
