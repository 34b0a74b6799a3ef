package note

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ribgsilva/studyvault/persistence/v1/image"
	"github.com/ribgsilva/studyvault/persistence/v1/schema"
	"github.com/ribgsilva/studyvault/platform/cache"
	"github.com/ribgsilva/studyvault/platform/database"
	"github.com/ribgsilva/studyvault/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"

	_ "github.com/proullon/ramsql/driver"
)

// setupStore wires sys.R to ramsql, miniredis and a memory bucket
func setupStore(t *testing.T, name string) {
	t.Helper()

	sys.Configs.Database.PingTimeout = 2 * time.Second
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.PingTimeout = 2 * time.Second
	sys.Configs.Cache.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.CacheTTL = time.Hour
	sys.Configs.Images.OperationTimeout = 5 * time.Second
	sys.R.Log = zap.NewNop().Sugar()

	db, err := database.Open(context.Background(), "ramsql", name, sys.Configs.Database.PingTimeout)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	sys.R.Database = db

	s := miniredis.RunT(t)
	rdb, err := cache.Open(context.Background(), cache.Config{Addr: s.Addr(), PingTimeout: sys.Configs.Cache.PingTimeout})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	sys.R.Cache = rdb

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	sys.R.Images = bucket

	require.NoError(t, schema.Create(context.Background()))
	t.Cleanup(func() { _ = schema.Drop(context.Background()) })
}

// closedBucket returns a bucket every operation fails on
func closedBucket() *blob.Bucket {
	b := memblob.OpenBucket(nil)
	_ = b.Close()
	return b
}

func imageNote(userId, fileName string, data []byte) NewNote {
	return NewNote{
		UserId:      userId,
		Title:       "diagram",
		ContentType: Image,
		Image:       &ImageUpload{FileName: fileName, Data: data},
	}
}

func TestUpdateReplacesNoteAndKeepsCreatedAt(t *testing.T) {
	setupStore(t, "NoteUpdateReplace")
	ctx := context.Background()

	created, err := Create(ctx, NewNote{UserId: "u1", Title: "draft", ContentType: Code, Content: "x := 1", Language: "Go"})
	require.NoError(t, err)
	before, err := Find(ctx, "u1", created.Id)
	require.NoError(t, err)

	up := UpdateNote{Id: created.Id, NewNote: NewNote{UserId: "u1", Title: "final", ContentType: Code, Content: "x := 2", Language: "Go"}}
	updated, err := Update(ctx, up)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))

	after, err := Find(ctx, "u1", created.Id)
	require.NoError(t, err)
	assert.Equal(t, "final", after.Title)
	assert.Equal(t, "x := 2", after.Content)
	assert.Equal(t, "Go", after.Language())
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt), "createdAt %s became %s", before.CreatedAt, after.CreatedAt)

	all, err := List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = Update(ctx, UpdateNote{Id: created.Id, NewNote: NewNote{UserId: "u2", Title: "stolen", ContentType: Code, Content: "y"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRowFailureKeepsStoredImage(t *testing.T) {
	setupStore(t, "NoteUpdateRowFailure")
	ctx := context.Background()

	created, err := Create(ctx, imageNote("u1", "dot.png", pngHeader))
	require.NoError(t, err)
	// loads the row into the cache, so the update still finds it without the table
	_, err = Find(ctx, "u1", created.Id)
	require.NoError(t, err)

	require.NoError(t, schema.Drop(ctx))

	bigger := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	_, err = Update(ctx, UpdateNote{Id: created.Id, NewNote: imageNote("u1", "new.png", bigger)})
	require.Error(t, err)

	stored, err := image.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.FileURL, stored)

	cached, err := Find(ctx, "u1", created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.FileURL, cached.FileURL)
	assert.Equal(t, ImageData{FileName: "dot.png", FileSize: "29 Bytes", MimeType: "image/png"}, cached.FileData)

	require.NoError(t, schema.Create(ctx))
}

func TestUpdateImageFailureRestoresRow(t *testing.T) {
	setupStore(t, "NoteUpdateImageFailure")
	ctx := context.Background()

	created, err := Create(ctx, imageNote("u1", "dot.png", pngHeader))
	require.NoError(t, err)

	working := sys.R.Images
	sys.R.Images = closedBucket()

	renamed := imageNote("u1", "new.png", pngHeader)
	renamed.Title = "renamed"
	_, err = Update(ctx, UpdateNote{Id: created.Id, NewNote: renamed})
	require.Error(t, err)

	sys.R.Images = working
	found, err := Find(ctx, "u1", created.Id)
	require.NoError(t, err)
	assert.Equal(t, "diagram", found.Title)
	assert.Equal(t, created.FileURL, found.FileURL)
	assert.Equal(t, "dot.png", found.FileData.(ImageData).FileName)
}

func TestDeleteSucceedsWhenImageCannotBeRemoved(t *testing.T) {
	setupStore(t, "NoteDeleteImageFailure")
	ctx := context.Background()

	core, logs := observer.New(zap.InfoLevel)
	sys.R.Log = zap.New(core).Sugar()

	single, err := Create(ctx, imageNote("u1", "dot.png", pngHeader))
	require.NoError(t, err)
	_, err = Create(ctx, imageNote("u2", "a.png", pngHeader))
	require.NoError(t, err)
	_, err = Create(ctx, NewNote{UserId: "u2", Title: "plain", ContentType: Text, Content: "c"})
	require.NoError(t, err)

	working := sys.R.Images
	sys.R.Images = closedBucket()
	defer func() { sys.R.Images = working }()

	require.NoError(t, Delete(ctx, "u1", single.Id))
	_, err = Find(ctx, "u1", single.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := DeleteAll(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, 2, logs.FilterField(zap.String("status", "left in bucket")).Len())
}
