package note

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxImageSize is the largest image accepted when no limit is configured
const DefaultMaxImageSize = 1024 * 1024

// ValidationError reports a note that cannot be saved as submitted
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// Normalize trims the text fields the way they are stored
func (n NewNote) Normalize() NewNote {
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	n.Language = strings.TrimSpace(n.Language)
	if n.ContentType == "" {
		n.ContentType = Text
	}
	return n
}

// Validate checks the gates a note must pass before it is saved
func (n NewNote) Validate(maxImageSize int) error {
	if n.UserId == "" {
		return invalid("userId", "user is required")
	}
	if n.Title == "" {
		return invalid("title", "Title is required")
	}

	switch n.ContentType {
	case Text:
		if n.Content == "" {
			return invalid("content", "Please enter some content")
		}
	case Code:
		if n.Content == "" {
			return invalid("content", "Please enter code")
		}
	case Image:
		if n.Image == nil || len(n.Image.Data) == 0 {
			return invalid("image", "Please select an image")
		}
		if maxImageSize <= 0 {
			maxImageSize = DefaultMaxImageSize
		}
		if len(n.Image.Data) > maxImageSize {
			return invalid("image", fmt.Sprintf("Image must be under %s. Please resize it and try again.", FormatFileSize(int64(maxImageSize))))
		}
		if !strings.HasPrefix(mimetype.Detect(n.Image.Data).String(), "image/") {
			return invalid("image", "File is not an image")
		}
	default:
		return invalid("contentType", fmt.Sprintf("unknown content type %q", n.ContentType))
	}

	return nil
}
