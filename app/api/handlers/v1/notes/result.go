package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"github.com/ribgsilva/studyvault/sys"
	"io"
	"net/http"
)

// Request is the whole note as submitted by the user. Image notes are sent as
// multipart/form-data with the file in the "image" field.
type Request struct {
	Title       string `json:"title" form:"title" example:"my note"`
	ContentType string `json:"contentType" form:"contentType" example:"text"`
	Content     string `json:"content" form:"content" example:"my note text"`
	Language    string `json:"language" form:"language" example:"Go"`
}

func bind(ctx *gin.Context, userId string) (note.NewNote, *handler.Result) {
	var req Request
	if err := ctx.ShouldBind(&req); err != nil {
		return note.NewNote{}, &handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	newN := note.NewNote{
		UserId:      userId,
		Title:       req.Title,
		ContentType: note.ContentType(req.ContentType),
		Content:     req.Content,
		Language:    req.Language,
	}

	if ctx.ContentType() == gin.MIMEMultipartPOSTForm {
		img, err := readImage(ctx)
		if err != nil {
			return note.NewNote{}, &handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: err.Error()},
			}
		}
		newN.Image = img
	}
	return newN, nil
}

func readImage(ctx *gin.Context) (*note.ImageUpload, error) {
	fh, err := ctx.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	limit := sys.Configs.Images.MaxSize
	if limit <= 0 {
		limit = note.DefaultMaxImageSize
	}
	// one byte over the limit is enough for validation to reject it
	data, err := io.ReadAll(io.LimitReader(f, int64(limit)+1))
	if err != nil {
		return nil, err
	}

	return &note.ImageUpload{
		FileName: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

func failure(err error) handler.Result {
	var vErr *note.ValidationError
	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.As(err, &vErr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: vErr.Message},
		}
	default:
		sys.R.Log.Errorf("notes request failed: %s", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
