package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/persistence/v1/image"
	"github.com/ribgsilva/studyvault/persistence/v1/note"
	"github.com/ribgsilva/studyvault/sys"
)

func fromRow(ctx context.Context, row note.Note) (Note, error) {
	ct := ContentType(row.ContentType)
	fd, err := decodeFileData(ct, []byte(row.FileData))
	if err != nil {
		return Note{}, fmt.Errorf("error parsing file data of note %s: %w", row.Id, err)
	}

	n := Note{
		Id:          row.Id,
		UserId:      row.UserId,
		Title:       row.Title,
		ContentType: ct,
		Content:     row.Content,
		FileData:    fd,
		UpdatedAt:   row.UpdatedAt,
		CreatedAt:   row.CreatedAt,
	}
	if ct == Image {
		url, err := image.Get(ctx, row.Id)
		if err != nil {
			return Note{}, err
		}
		n.FileURL = url
	}
	return n, nil
}

// prepare validates the note and builds the columns and the image to store
func prepare(n NewNote) (NewNote, string, string, error) {
	n = n.Normalize()
	if err := n.Validate(sys.Configs.Images.MaxSize); err != nil {
		return NewNote{}, "", "", err
	}

	var fd FileData
	var url string
	switch n.ContentType {
	case Code:
		fd = CodeData{Language: n.Language}
	case Image:
		url, fd = EncodeImage(*n.Image)
		n.Content = ""
	}

	data, err := encodeFileData(fd)
	if err != nil {
		return NewNote{}, "", "", fmt.Errorf("error parsing file data: %w", err)
	}
	return n, data, url, nil
}
