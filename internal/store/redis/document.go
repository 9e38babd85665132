// Package redis implements the document store on a Redis instance: the
// document lives under a single key, and change notifications fan out
// over Redis pub/sub so independent processes sharing the instance all
// hear about every write.
package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/store"
)

// DocumentStore stores the reading-list document in Redis.
type DocumentStore struct {
	client *goredis.Client
	logger logger.Logger
}

// NewDocumentStore creates a Redis-backed document store.
func NewDocumentStore(client *goredis.Client, log logger.Logger) *DocumentStore {
	return &DocumentStore{
		client: client,
		logger: log,
	}
}

// Read returns the current document. A missing key yields the zero-value
// document; a malformed stored document degrades to the zero-value
// document as well, so legacy or corrupted data never propagates type
// errors downstream. Only transport errors are returned.
func (s *DocumentStore) Read(ctx context.Context) (domain.AppStorage, error) {
	data, err := s.client.Get(ctx, KeyDocument).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.EmptyStorage(), nil
		}
		return domain.AppStorage{}, &store.StorageError{Op: "read", Err: err}
	}

	var doc domain.AppStorage
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("malformed document in storage, degrading to empty",
			logger.Error(err))
		return domain.EmptyStorage(), nil
	}

	doc.Normalize()
	return doc, nil
}

// Replace overwrites the document wholesale (single key, single write)
// and publishes the new document to all subscribers. A publish failure
// is logged but not returned: the write itself succeeded, and readers
// that miss a notification resync on their next read.
func (s *DocumentStore) Replace(ctx context.Context, doc domain.AppStorage) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &store.StorageError{Op: "replace", Err: err}
	}

	if err := s.client.Set(ctx, KeyDocument, data, 0).Err(); err != nil {
		return &store.StorageError{Op: "replace", Err: err}
	}

	if err := s.client.Publish(ctx, ChannelChanges, data).Err(); err != nil {
		s.logger.Warn("failed to publish change notification",
			logger.Error(err))
	}

	return nil
}

// Subscribe delivers every replaced document to fn, including replaces
// made by other processes and by this one. The callback runs on a
// dedicated goroutine; the returned function cancels the subscription.
func (s *DocumentStore) Subscribe(ctx context.Context, fn func(domain.AppStorage)) (func(), error) {
	sub := s.client.Subscribe(ctx, ChannelChanges)

	// Confirm the subscription before returning so no notification
	// published after Subscribe returns can be missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, &store.StorageError{Op: "subscribe", Err: err}
	}

	ch := sub.Channel()
	go func() {
		for msg := range ch {
			var doc domain.AppStorage
			if err := json.Unmarshal([]byte(msg.Payload), &doc); err != nil {
				s.logger.Warn("discarding malformed change notification",
					logger.Error(err))
				continue
			}
			doc.Normalize()
			fn(doc)
		}
	}()

	return func() {
		if err := sub.Close(); err != nil {
			s.logger.Debug("failed to close subscription", logger.Error(err))
		}
	}, nil
}
