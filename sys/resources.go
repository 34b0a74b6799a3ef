package sys

import (
	"context"
	"fmt"
	"github.com/ribgsilva/studyvault/platform/cache"
	"github.com/ribgsilva/studyvault/platform/database"
	"go.uber.org/zap"
	"gocloud.dev/blob"
)

// Open connects the database, the cache and the image bucket into R from Configs.
// The returned func closes them, in reverse order.
func Open(ctx context.Context, log *zap.SugaredLogger) (func(), error) {
	R.Log = log

	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Errorf("could not close resource gracefully: %s", err)
			}
		}
	}

	db, err := database.Open(ctx, Configs.Database.Driver, Configs.Database.ConnectionURL, Configs.Database.PingTimeout)
	if err != nil {
		return nil, err
	}
	closers = append(closers, db.Close)
	R.Database = db

	rdb, err := cache.Open(ctx, cache.Config{
		Addr:        Configs.Cache.ConnectionURL,
		User:        Configs.Cache.User,
		Pass:        Configs.Cache.Pass,
		PingTimeout: Configs.Cache.PingTimeout,
	})
	if err != nil {
		closeAll()
		return nil, err
	}
	closers = append(closers, rdb.Close)
	R.Cache = rdb

	bucket, err := blob.OpenBucket(ctx, Configs.Images.BucketURL)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("could not open image bucket: %w", err)
	}
	closers = append(closers, bucket.Close)
	R.Images = bucket

	return closeAll, nil
}
