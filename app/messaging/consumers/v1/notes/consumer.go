package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/sys"
	"gocloud.dev/pubsub"
)

// Ref points at a single note of a user
type Ref struct {
	UserId string `json:"userId"`
	Id     string `json:"id"`
}

// Purge asks for every note of a user to be removed
type Purge struct {
	UserId string `json:"userId"`
}

// Consume handles messages of sub with up to maxWorkers at a time until ctx is
// cancelled. maxWorkers below 1 runs a single worker.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		logger.Warnw("consumer", "status", "invalid max workers, using 1", "maxWorkers", maxWorkers)
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %d bytes", len(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			if err := Handle(ctx, e); err != nil {
				logger.Errorf("failed to handle %s event: err: %s", e.Type, err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle applies a single event
func Handle(ctx context.Context, e note.Event) error {
	logger := sys.R.Log

	switch e.Type {
	case "create":
		var c note.NewNote
		if err := decode(e.Data, &c); err != nil {
			return err
		}
		created, err := note.Create(ctx, c)
		if err != nil {
			return err
		}
		logger.Infow("event", "type", e.Type, "note", created.Id, "user", created.UserId)
	case "update":
		var u note.UpdateNote
		if err := decode(e.Data, &u); err != nil {
			return err
		}
		if _, err := note.Update(ctx, u); err != nil {
			return err
		}
		logger.Infow("event", "type", e.Type, "note", u.Id, "user", u.UserId)
	case "delete":
		var r Ref
		if err := decode(e.Data, &r); err != nil {
			return err
		}
		if err := note.Delete(ctx, r.UserId, r.Id); err != nil {
			return err
		}
		logger.Infow("event", "type", e.Type, "note", r.Id, "user", r.UserId)
	case "purge":
		var p Purge
		if err := decode(e.Data, &p); err != nil {
			return err
		}
		if p.UserId == "" {
			return errors.New("purge event without user")
		}
		n, err := note.DeleteAll(ctx, p.UserId)
		if err != nil {
			return err
		}
		logger.Infow("event", "type", e.Type, "user", p.UserId, "count", n)
	default:
		logger.Error("unknown event type: ", e.Type)
	}
	return nil
}

func decode(data any, v any) error {
	marshal, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(marshal, v)
}
