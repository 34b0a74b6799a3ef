package note

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when the note does not exist or belongs to another user
var ErrNotFound = errors.New("notes not found")

// ContentType is fixed at creation and decides which content fields are meaningful
type ContentType string

const (
	Text  ContentType = "text"
	Code  ContentType = "code"
	Image ContentType = "image"
)

// ContentTypes lists every content type in display order
var ContentTypes = []ContentType{Text, Code, Image}

// ParseContentType returns the content type named by s
func ParseContentType(s string) (ContentType, bool) {
	for _, ct := range ContentTypes {
		if string(ct) == s {
			return ct, true
		}
	}
	return "", false
}

// FileData is the payload that varies with the content type: CodeData for code
// notes, ImageData for image notes and nil for text notes.
type FileData interface {
	contentType() ContentType
}

type CodeData struct {
	Language string `json:"language" example:"Go"`
}

func (CodeData) contentType() ContentType { return Code }

type ImageData struct {
	FileName string `json:"fileName" example:"diagram.png"`
	FileSize string `json:"fileSize" example:"12.5 KB"`
	MimeType string `json:"mimeType" example:"image/png"`
}

func (ImageData) contentType() ContentType { return Image }

type Note struct {
	Id          string      `json:"id" example:"6f1c3e0a-5b7d-4a43-9d43-2a8f2d8f6b10"`
	UserId      string      `json:"userId" example:"b1f0c6a2"`
	Title       string      `json:"title" example:"my note"`
	ContentType ContentType `json:"contentType" example:"text"`
	Content     string      `json:"content" example:"my note text"`
	FileURL     string      `json:"fileUrl,omitempty" example:"data:image/png;base64,iVBORw0KGgo="`
	FileData    FileData    `json:"fileData,omitempty" swaggertype:"object"`
	UpdatedAt   time.Time   `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt   time.Time   `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

// Language returns the language of a code note, empty for any other note
func (n Note) Language() string {
	if c, ok := n.FileData.(CodeData); ok {
		return c.Language
	}
	return ""
}

func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	var raw struct {
		plain
		FileData json.RawMessage `json:"fileData,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fd, err := decodeFileData(raw.ContentType, raw.FileData)
	if err != nil {
		return err
	}
	*n = Note(raw.plain)
	n.FileData = fd
	return nil
}

func encodeFileData(fd FileData) (string, error) {
	if fd == nil {
		return "", nil
	}
	data, err := json.Marshal(fd)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeFileData(ct ContentType, data []byte) (FileData, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	switch ct {
	case Code:
		var c CodeData
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case Image:
		var i ImageData
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, err
		}
		return i, nil
	default:
		return nil, nil
	}
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ImageUpload is the raw image a user attached to an image note
type ImageUpload struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

type NewNote struct {
	UserId      string       `json:"userId"`
	Title       string       `json:"title"`
	ContentType ContentType  `json:"contentType"`
	Content     string       `json:"content"`
	Language    string       `json:"language"`
	Image       *ImageUpload `json:"image,omitempty"`
}

// UpdateNote carries the whole record, editing a note re-submits every field
type UpdateNote struct {
	Id string `json:"id"`
	NewNote
}
