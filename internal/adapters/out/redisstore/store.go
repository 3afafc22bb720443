// Package redisstore keeps order collections in Redis. A collection is one
// key holding the JSON array of its orders; writes to a collection are
// serialized with WATCH so concurrent updates never overwrite each other.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pressing/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "pressing:collection:"

	// maxWatchRetries bounds the optimistic retries of a collection write.
	maxWatchRetries = 10
)

// ErrCollectionBusy is returned when a collection kept changing during every
// retry of a write.
var ErrCollectionBusy = errors.New("collection modified concurrently")

// CollectionStore implements ports.CollectionStore.
type CollectionStore struct {
	client *redis.Client
}

func NewCollectionStore(client *redis.Client) *CollectionStore {
	return &CollectionStore{client: client}
}

// Load returns the orders of collection. A missing key is an empty collection.
func (s *CollectionStore) Load(ctx context.Context, collection string) ([]order.Snapshot, error) {
	docs, err := load(ctx, s.client, key(collection))
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(docs))
	for _, doc := range docs {
		snapshot, decodeErr := doc.toSnapshot()
		if decodeErr != nil {
			return nil, fmt.Errorf("decode order %s: %w", doc.ID, decodeErr)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

// Save replaces the whole collection.
func (s *CollectionStore) Save(ctx context.Context, collection string, orders []order.Snapshot) error {
	docs := make([]orderDocument, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, fromSnapshot(o))
	}
	return save(ctx, s.client, key(collection), docs)
}

// update runs mutate on the current documents of collection and writes the
// result back, retrying when another client changed the key in between.
func (s *CollectionStore) update(
	ctx context.Context,
	collection string,
	mutate func(docs []orderDocument) ([]orderDocument, error),
) error {
	k := key(collection)

	for range maxWatchRetries {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			docs, err := load(ctx, tx, k)
			if err != nil {
				return err
			}

			updated, err := mutate(docs)
			if err != nil {
				return err
			}

			payload, err := json.Marshal(updated)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, k, payload, 0)
				return nil
			})
			return err
		}, k)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return ErrCollectionBusy
}

func key(collection string) string {
	return keyPrefix + collection
}

func load(ctx context.Context, c redis.Cmdable, k string) ([]orderDocument, error) {
	payload, err := c.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return []orderDocument{}, nil
	}
	if err != nil {
		return nil, err
	}

	var docs []orderDocument
	if err = json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", k, err)
	}
	return docs, nil
}

func save(ctx context.Context, c redis.Cmdable, k string, docs []orderDocument) error {
	payload, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return c.Set(ctx, k, payload, 0).Err()
}
