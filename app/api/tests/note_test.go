package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/handlers"
	"github.com/ribgsilva/studyvault/app/api/handlers/v1/account"
	"github.com/ribgsilva/studyvault/app/api/handlers/v1/notes"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/business/v1/view"
	"github.com/ribgsilva/studyvault/persistence/v1/schema"
	"github.com/ribgsilva/studyvault/platform/auth"
	"github.com/ribgsilva/studyvault/platform/cache"
	"github.com/ribgsilva/studyvault/platform/database"
	"github.com/ribgsilva/studyvault/platform/env"
	"github.com/ribgsilva/studyvault/platform/logger"
	"github.com/ribgsilva/studyvault/sys"
	"gocloud.dev/blob/memblob"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type NoteTests struct {
	app    http.Handler
	cache  *miniredis.Miniredis
	token  string
	other  string
	noteId string
	codeId string
	imgId  string
}

func TestNote(t *testing.T) {
	log, err := logger.New("Note-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	sys.Configs.Images.MaxSize = env.IntDefault(log, "IMAGES_MAX_SIZE", "1048576")
	sys.Configs.Images.OperationTimeout = env.DurationDefault(log, "IMAGES_OPERATION_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// identity
	sys.R.Auth = auth.NewVerifier("test-secret", "studyvault")

	// ramsql
	db, err := database.Open(context.Background(), "ramsql", "NoteApiTest", sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// miniredis
	rdb, err := cache.Open(context.Background(), cache.Config{
		Addr:        sys.Configs.Cache.ConnectionURL,
		PingTimeout: sys.Configs.Cache.PingTimeout,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// image bucket
	bucket := memblob.OpenBucket(nil)
	defer func() {
		_ = bucket.Close()
	}()
	sys.R.Images = bucket

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background())

	// =======================================================================================================
	// Setup router
	engine := gin.New()

	handlers.MapDefaults(engine)
	handlers.MapApi(engine, sys.R.Auth)

	token, err := sys.R.Auth.Issue(auth.User{ID: "user-1", Email: "ada@example.com"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	other, err := sys.R.Auth.Issue(auth.User{ID: "user-2", Name: "Grace"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := NoteTests{
		app:   engine,
		cache: s,
		token: token,
		other: other,
	}

	// =======================================================================================================
	// Run tests

	tests.unauthorized401(t)
	tests.me200(t)
	tests.createText201(t)
	tests.createInvalid400(t)
	tests.createCode201(t)
	tests.createImage201(t)
	tests.getNote200(t)
	if !s.Exists("notes." + tests.noteId) {
		t.Fatalf("notes %s not in cache", tests.noteId)
	}
	tests.getNote200(t)
	tests.getOtherUser404(t)
	tests.listFiltered200(t)
	tests.stats200(t)
	tests.update200(t)
	tests.updateContentType400(t)
	tests.delete204(t)
	tests.deleteAccount200(t)
}

func (nt *NoteTests) do(method, target, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, body)
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) postJSON(method, target string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	return nt.do(method, target, nt.token, bytes.NewReader(data), "application/json")
}

func (nt *NoteTests) unauthorized401(t *testing.T) {
	if w := nt.do(http.MethodGet, "/v1/notes", "", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("Test unauthorized401: Should receive a status code of 401 without a token : %v", w.Code)
	}
	if w := nt.do(http.MethodGet, "/v1/notes", "garbage", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("Test unauthorized401: Should receive a status code of 401 with an invalid token : %v", w.Code)
	}
	if w := nt.do(http.MethodGet, "/v1/healthcheck", "", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("Test unauthorized401: Should reach the healthcheck without a token : %v", w.Code)
	}
}

func (nt *NoteTests) me200(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/me", nt.token, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test me200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp account.Me
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test me200: Should be able to unmarshal the response : %v", err)
	}
	if resp.ID != "user-1" || resp.DisplayName != "ada@example.com" {
		t.Fatalf("Test me200: Should fall back to the email as display name: %v", resp)
	}
}

func (nt *NoteTests) createText201(t *testing.T) {
	w := nt.postJSON(http.MethodPost, "/v1/notes", notes.Request{
		Title:       "Binary Search",
		ContentType: "text",
		Content:     "  halve the range every step  ",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createText201: Should receive a status code of 201 for the response : %v %s", w.Code, w.Body.String())
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createText201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id == "" || resp.UserId != "user-1" {
		t.Fatalf("Test createText201: Should have received an id owned by user-1: %v", resp)
	}
	if resp.Content != "halve the range every step" {
		t.Fatalf("Test createText201: Should have received the trimmed content: %v", resp)
	}
	if !resp.CreatedAt.Equal(resp.UpdatedAt) {
		t.Fatalf("Test createText201: createdAt and updatedAt should match on creation: %v", resp)
	}
	nt.noteId = resp.Id
}

func (nt *NoteTests) createInvalid400(t *testing.T) {
	w := nt.postJSON(http.MethodPost, "/v1/notes", notes.Request{Title: "", ContentType: "text", Content: "body"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createInvalid400: Should receive a status code of 400 without a title : %v", w.Code)
	}
	w = nt.postJSON(http.MethodPost, "/v1/notes", notes.Request{Title: "empty code", ContentType: "code"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createInvalid400: Should receive a status code of 400 without code : %v", w.Code)
	}
}

func (nt *NoteTests) createCode201(t *testing.T) {
	w := nt.postJSON(http.MethodPost, "/v1/notes", notes.Request{
		Title:       "Quicksort",
		ContentType: "code",
		Content:     "func sort(xs []int) {}",
		Language:    "Go",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createCode201: Should receive a status code of 201 for the response : %v %s", w.Code, w.Body.String())
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createCode201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Language() != "Go" {
		t.Fatalf("Test createCode201: Should have received \"Go\" as language: %v", resp)
	}
	nt.codeId = resp.Id
}

func (nt *NoteTests) createImage201(t *testing.T) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("title", "Diagram")
	_ = mw.WriteField("contentType", "image")
	part, err := mw.CreateFormFile("image", "dot.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write(pngHeader)
	_ = mw.Close()

	w := nt.do(http.MethodPost, "/v1/notes", nt.token, body, mw.FormDataContentType())
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createImage201: Should receive a status code of 201 for the response : %v %s", w.Code, w.Body.String())
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createImage201: Should be able to unmarshal the response : %v", err)
	}
	if !strings.HasPrefix(resp.FileURL, "data:image/png;base64,") {
		t.Fatalf("Test createImage201: Should have received an embedded image: %v", resp.FileURL)
	}
	img, ok := resp.FileData.(note.ImageData)
	if !ok || img.FileName != "dot.png" || img.MimeType != "image/png" {
		t.Fatalf("Test createImage201: Should have received the image metadata: %v", resp.FileData)
	}
	nt.imgId = resp.Id
}

func (nt *NoteTests) getNote200(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/notes/"+nt.noteId, nt.token, nil, "")

	var resp note.Note
	if w.Code != http.StatusOK {
		t.Fatalf("Test getNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test getNote200: Should be able to unmarshal the response : %v", err)
	}

	if resp.Id != nt.noteId {
		t.Fatalf("Test getNote200: Should have received %q as id in the response: %v", nt.noteId, resp)
	}
	if resp.Title != "Binary Search" {
		t.Fatalf("Test getNote200: Should have received \"Binary Search\" as title in the response: %v", resp)
	}
	if resp.ContentType != note.Text {
		t.Fatalf("Test getNote200: Should have received \"text\" as content type in the response: %v", resp)
	}
}

func (nt *NoteTests) getOtherUser404(t *testing.T) {
	if w := nt.do(http.MethodGet, "/v1/notes/"+nt.noteId, nt.other, nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("Test getOtherUser404: Should not see notes of another user : %v", w.Code)
	}
	if w := nt.do(http.MethodGet, "/v1/notes/missing", nt.token, nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("Test getOtherUser404: Should receive a status code of 404 for a missing note : %v", w.Code)
	}
}

func (nt *NoteTests) list(t *testing.T, query string) notes.ListResponse {
	w := nt.do(http.MethodGet, "/v1/notes"+query, nt.token, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test list: Should receive a status code of 200 for %q : %v", query, w.Code)
	}
	var resp notes.ListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test list: Should be able to unmarshal the response : %v", err)
	}
	return resp
}

func (nt *NoteTests) listFiltered200(t *testing.T) {
	all := nt.list(t, "")
	if len(all.Notes) != 3 || all.Total != 3 || all.FiltersActive {
		t.Fatalf("Test listFiltered200: Should list the 3 notes without filters: %+v", all)
	}
	if all.Notes[0].Id != nt.imgId || all.Notes[2].Id != nt.noteId {
		t.Fatalf("Test listFiltered200: Should list the newest note first: %+v", all.Notes)
	}

	search := nt.list(t, "?search=BINARY&date=today")
	if len(search.Notes) != 1 || search.Notes[0].Id != nt.noteId || !search.FiltersActive {
		t.Fatalf("Test listFiltered200: Should find the note by a case insensitive search: %+v", search)
	}

	medium := nt.list(t, "?size=medium")
	if len(medium.Notes) != 0 || medium.Total != 3 {
		t.Fatalf("Test listFiltered200: A medium bucket should hide a collection of 3 notes: %+v", medium)
	}

	small := nt.list(t, "?size=small&date=nonsense")
	if len(small.Notes) != 3 || small.Criteria.Date != view.AllDates {
		t.Fatalf("Test listFiltered200: Should keep every note for a small bucket and ignore unknown ranges: %+v", small)
	}

	if others := nt.do(http.MethodGet, "/v1/notes", nt.other, nil, ""); !strings.Contains(others.Body.String(), `"notes":[]`) {
		t.Fatalf("Test listFiltered200: Another user should not see any note: %s", others.Body.String())
	}
}

func (nt *NoteTests) stats200(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/stats", nt.token, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test stats200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp view.Summary
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test stats200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Total != 3 || resp.Text.Count != 1 || resp.Code.Count != 1 || resp.Image.Count != 1 {
		t.Fatalf("Test stats200: Should count one note of each type: %+v", resp)
	}
	if resp.Text.Percentage != 33.3 || resp.NotesToday != 3 || resp.AvgPerDay != 3 {
		t.Fatalf("Test stats200: Should summarize 3 notes created today: %+v", resp)
	}
	if len(resp.TopLanguages) != 1 || resp.TopLanguages[0] != (view.LanguageCount{Language: "Go", Count: 1}) {
		t.Fatalf("Test stats200: Should report Go as the only language: %+v", resp.TopLanguages)
	}
}

func (nt *NoteTests) update200(t *testing.T) {
	w := nt.postJSON(http.MethodPut, "/v1/notes/"+nt.noteId, notes.Request{
		Title:       "Binary Search revisited",
		ContentType: "text",
		Content:     "lower bound",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Test update200: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body.String())
	}
	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test update200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Title != "Binary Search revisited" || resp.Content != "lower bound" {
		t.Fatalf("Test update200: Should have replaced the note: %v", resp)
	}
	if resp.UpdatedAt.Before(resp.CreatedAt) {
		t.Fatalf("Test update200: updatedAt should not be before createdAt: %v", resp)
	}

	if nt.cache.Exists("notes." + nt.noteId) {
		t.Fatalf("Test update200: notes %s still in cache after update", nt.noteId)
	}
	g := nt.do(http.MethodGet, "/v1/notes/"+nt.noteId, nt.token, nil, "")
	var stored note.Note
	if err := json.NewDecoder(g.Body).Decode(&stored); err != nil {
		t.Fatalf("Test update200: Should be able to unmarshal the stored note : %v", err)
	}
	if stored.Title != "Binary Search revisited" || !stored.CreatedAt.Equal(resp.CreatedAt) {
		t.Fatalf("Test update200: Should have stored the replaced note keeping createdAt: %v", stored)
	}

	if w := nt.postJSON(http.MethodPut, "/v1/notes/missing", notes.Request{Title: "x", ContentType: "text", Content: "y"}); w.Code != http.StatusNotFound {
		t.Fatalf("Test update200: Should receive a status code of 404 for a missing note : %v", w.Code)
	}
}

func (nt *NoteTests) updateContentType400(t *testing.T) {
	w := nt.postJSON(http.MethodPut, "/v1/notes/"+nt.codeId, notes.Request{Title: "now text", ContentType: "text", Content: "y"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test updateContentType400: Should not change the content type : %v", w.Code)
	}
}

func (nt *NoteTests) delete204(t *testing.T) {
	if w := nt.do(http.MethodDelete, "/v1/notes/"+nt.codeId, nt.other, nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("Test delete204: Should not delete notes of another user : %v", w.Code)
	}
	if w := nt.do(http.MethodDelete, "/v1/notes/"+nt.codeId, nt.token, nil, ""); w.Code != http.StatusNoContent {
		t.Fatalf("Test delete204: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if w := nt.do(http.MethodGet, "/v1/notes/"+nt.codeId, nt.token, nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("Test delete204: Should not find a deleted note : %v", w.Code)
	}
}

func (nt *NoteTests) deleteAccount200(t *testing.T) {
	w := nt.do(http.MethodDelete, "/v1/account", nt.token, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test deleteAccount200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp account.Deleted
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test deleteAccount200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Deleted != 2 {
		t.Fatalf("Test deleteAccount200: Should have deleted the 2 remaining notes: %v", resp)
	}
	if left := nt.list(t, ""); left.Total != 0 {
		t.Fatalf("Test deleteAccount200: Should not have notes left: %+v", left)
	}
}
