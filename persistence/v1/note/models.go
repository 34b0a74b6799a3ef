package note

import "time"

const noteKey = "notes.%s"

// Note is a row of the notes table. FileData holds the variant payload as json,
// FileURL is loaded from the image bucket and is never stored in the table.
type Note struct {
	Id          string
	UserId      string
	Title       string
	ContentType string
	Content     string
	FileData    string
	FileURL     string `json:"-"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

type NewNote struct {
	UserId      string
	Title       string
	ContentType string
	Content     string
	FileData    string
}

// UpdateNote is the full row to write back. CreatedAt is carried over from the stored row.
type UpdateNote struct {
	Id          string
	UserId      string
	Title       string
	ContentType string
	Content     string
	FileData    string
	CreatedAt   time.Time
}
