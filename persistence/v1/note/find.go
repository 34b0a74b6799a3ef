package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/studyvault/sys"
)

const selectColumns = "id, userId, title, contentType, content, fileData, updatedAt, createdAt"

// Find returns the note with the given id owned by userId, or a zero Note when there is none
func Find(ctx context.Context, userId, id string) (Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get notes ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var note Note
		if err := json.Unmarshal([]byte(get), &note); err != nil {
			logger.Errorf("error parsing cached response for key %s: %s", key, err)
		} else if note.UserId == userId {
			return note, nil
		} else {
			return Note{}, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT "+selectColumns+" FROM notes WHERE id = ? AND userId = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	note, err := scan(stmt.QueryRowContext(dbCtx, id, userId))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	if data, err := json.Marshal(note); err != nil {
		logger.Errorf("error parsing data to cache cached response for key %s: %s", key, err)
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer tcCancel()

		if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set notes ", id, " into cache: ", err.Error())
		}
	}

	return note, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Note, error) {
	var note Note
	var content, fileData sql.NullString
	if err := row.Scan(&note.Id, &note.UserId, &note.Title, &note.ContentType, &content, &fileData, &note.UpdatedAt, &note.CreatedAt); err != nil {
		return Note{}, err
	}
	note.Content = content.String
	note.FileData = fileData.String
	return note, nil
}

func evict(ctx context.Context, id string) {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		sys.R.Log.Error("failure to evict notes ", id, " from cache: ", err.Error())
	}
}
