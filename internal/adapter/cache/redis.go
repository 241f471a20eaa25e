// Package cache keeps url bindings in Redis in front of a durable binding store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const keyPrefix = "url_binding:"

// Client is the subset of *redis.Client used by BindingRepository.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type bindingStore interface {
	Create(ctx context.Context, uid, originalURL string, ownerID int64) (*entity.Binding, error)
	RetrieveByUID(ctx context.Context, uid string) (*entity.Binding, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.Binding, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Binding, error)
	Reassign(ctx context.Context, id, ownerID int64) (*entity.Binding, error)
	ResetCount(ctx context.Context, id int64) (*entity.Binding, error)
	IncrementCount(ctx context.Context, id int64) (*entity.Binding, error)
	Remove(ctx context.Context, id int64) error
}

// BindingRepository serves uid lookups from Redis and writes every mutation
// through to the wrapped store first. Cache failures are logged and never
// surface to the caller; the wrapped store stays the source of truth.
//
// A write that finds the binding gone from the store evicts its uid, so an
// entry left behind by a failed eviction does not outlive the next write.
type BindingRepository struct {
	store  bindingStore
	client Client
	ttl    time.Duration
	logger *slog.Logger
	uids   sync.Map // binding id -> uid, for bindings this instance has cached
}

func NewBindingRepository(store bindingStore, client Client, ttl time.Duration, logger *slog.Logger) *BindingRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &BindingRepository{
		store:  store,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *BindingRepository) Create(ctx context.Context, uid, originalURL string, ownerID int64) (*entity.Binding, error) {
	b, err := r.store.Create(ctx, uid, originalURL, ownerID)
	if err != nil {
		return nil, err
	}

	r.put(ctx, b)

	return b, nil
}

func (r *BindingRepository) RetrieveByUID(ctx context.Context, uid string) (*entity.Binding, error) {
	if b, ok := r.get(ctx, uid); ok {
		return b, nil
	}

	b, err := r.store.RetrieveByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	r.put(ctx, b)

	return b, nil
}

func (r *BindingRepository) RetrieveByID(ctx context.Context, id int64) (*entity.Binding, error) {
	return r.store.RetrieveByID(ctx, id)
}

func (r *BindingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Binding, error) {
	return r.store.ListByOwner(ctx, ownerID)
}

func (r *BindingRepository) Reassign(ctx context.Context, id, ownerID int64) (*entity.Binding, error) {
	b, err := r.store.Reassign(ctx, id, ownerID)
	return r.write(ctx, id, b, err)
}

func (r *BindingRepository) ResetCount(ctx context.Context, id int64) (*entity.Binding, error) {
	b, err := r.store.ResetCount(ctx, id)
	return r.write(ctx, id, b, err)
}

func (r *BindingRepository) IncrementCount(ctx context.Context, id int64) (*entity.Binding, error) {
	b, err := r.store.IncrementCount(ctx, id)
	return r.write(ctx, id, b, err)
}

func (r *BindingRepository) Remove(ctx context.Context, id int64) error {
	b, err := r.store.RetrieveByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrBindingNotFound) {
			r.forget(ctx, id)
		}
		return err
	}

	if err := r.store.Remove(ctx, id); err != nil {
		if errors.Is(err, entity.ErrBindingNotFound) {
			r.forget(ctx, id)
		}
		return err
	}

	r.evict(ctx, id, b.UID)

	return nil
}

func (r *BindingRepository) write(ctx context.Context, id int64, b *entity.Binding, err error) (*entity.Binding, error) {
	if err != nil {
		if errors.Is(err, entity.ErrBindingNotFound) {
			r.forget(ctx, id)
		}
		return nil, err
	}

	r.put(ctx, b)

	return b, nil
}

// forget evicts the uid last cached for id, if any.
func (r *BindingRepository) forget(ctx context.Context, id int64) {
	uid, ok := r.uids.Load(id)
	if !ok {
		return
	}

	r.evict(ctx, id, uid.(string))
}

// evict drops uid from Redis. The id stays tracked until the delete succeeds.
func (r *BindingRepository) evict(ctx context.Context, id int64, uid string) {
	if err := r.client.Del(ctx, key(uid)).Err(); err != nil {
		r.logger.Warn("failed to evict url binding from cache", slog.String("uid", uid), slog.Any("err", err))
		r.uids.Store(id, uid)
		return
	}

	r.uids.CompareAndDelete(id, uid)
}

func (r *BindingRepository) get(ctx context.Context, uid string) (*entity.Binding, bool) {
	data, err := r.client.Get(ctx, key(uid)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("failed to read url binding from cache", slog.String("uid", uid), slog.Any("err", err))
		}
		return nil, false
	}

	var b entity.Binding
	if err := json.Unmarshal(data, &b); err != nil {
		r.logger.Warn("failed to decode cached url binding", slog.String("uid", uid), slog.Any("err", err))
		return nil, false
	}

	r.uids.Store(b.ID, b.UID)

	return &b, true
}

func (r *BindingRepository) put(ctx context.Context, b *entity.Binding) {
	data, err := json.Marshal(b)
	if err != nil {
		r.logger.Warn("failed to encode url binding", slog.String("uid", b.UID), slog.Any("err", err))
		return
	}

	r.uids.Store(b.ID, b.UID)

	if err := r.client.Set(ctx, key(b.UID), data, r.ttl).Err(); err != nil {
		r.logger.Warn("failed to write url binding to cache", slog.String("uid", b.UID), slog.Any("err", err))
	}
}

func key(uid string) string {
	return fmt.Sprintf("%s%s", keyPrefix, uid)
}
