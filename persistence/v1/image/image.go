// Package image keeps the embedded data URL of image notes in a blob bucket,
// out of the notes table.
package image

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/sys"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const imageKey = "images/%s"

// Put stores the data URL of the note
func Put(ctx context.Context, noteId, dataURL string) error {
	bCtx, bCancel := context.WithTimeout(ctx, sys.Configs.Images.OperationTimeout)
	defer bCancel()

	opts := &blob.WriterOptions{ContentType: "text/plain"}
	if err := sys.R.Images.WriteAll(bCtx, fmt.Sprintf(imageKey, noteId), []byte(dataURL), opts); err != nil {
		return fmt.Errorf("failed to write image of note %s: %w", noteId, err)
	}
	return nil
}

// Get returns the data URL of the note, or an empty string when it has none
func Get(ctx context.Context, noteId string) (string, error) {
	bCtx, bCancel := context.WithTimeout(ctx, sys.Configs.Images.OperationTimeout)
	defer bCancel()

	data, err := sys.R.Images.ReadAll(bCtx, fmt.Sprintf(imageKey, noteId))
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return "", nil
	case err != nil:
		return "", fmt.Errorf("failed to read image of note %s: %w", noteId, err)
	}
	return string(data), nil
}

// Delete removes the data URL of the note, a missing image is not an error
func Delete(ctx context.Context, noteId string) error {
	bCtx, bCancel := context.WithTimeout(ctx, sys.Configs.Images.OperationTimeout)
	defer bCancel()

	err := sys.R.Images.Delete(bCtx, fmt.Sprintf(imageKey, noteId))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("failed to delete image of note %s: %w", noteId, err)
	}
	return nil
}
