// Package memory provides in-process binding and lease stores guarded by a mutex.
// They satisfy the same contracts as the postgres stores, including uniqueness,
// atomic counter increments and versioned lease updates.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type BindingRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*entity.Binding
	byUID  map[string]int64
	now    func() time.Time
}

func NewBindingRepository() *BindingRepository {
	return &BindingRepository{
		byID:  make(map[int64]*entity.Binding),
		byUID: make(map[string]int64),
		now:   time.Now,
	}
}

func (r *BindingRepository) Create(_ context.Context, uid, originalURL string, ownerID int64) (*entity.Binding, error) {
	const op = "adapter.repository.memory.BindingRepository.Create"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUID[uid]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUIDExists)
	}

	r.nextID++
	now := r.now()
	b := &entity.Binding{
		ID:          r.nextID,
		UID:         uid,
		OriginalURL: originalURL,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.byID[b.ID] = b
	r.byUID[uid] = b.ID

	return copyBinding(b), nil
}

func (r *BindingRepository) RetrieveByUID(_ context.Context, uid string) (*entity.Binding, error) {
	const op = "adapter.repository.memory.BindingRepository.RetrieveByUID"

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUID[uid]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrBindingNotFound)
	}

	return copyBinding(r.byID[id]), nil
}

func (r *BindingRepository) RetrieveByID(_ context.Context, id int64) (*entity.Binding, error) {
	const op = "adapter.repository.memory.BindingRepository.RetrieveByID"

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrBindingNotFound)
	}

	return copyBinding(b), nil
}

func (r *BindingRepository) ListByOwner(_ context.Context, ownerID int64) ([]entity.Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings := make([]entity.Binding, 0)
	for _, b := range r.byID {
		if b.OwnerID == ownerID {
			bindings = append(bindings, *b)
		}
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].ID < bindings[j].ID })

	return bindings, nil
}

func (r *BindingRepository) Reassign(_ context.Context, id, ownerID int64) (*entity.Binding, error) {
	const op = "adapter.repository.memory.BindingRepository.Reassign"

	return r.update(op, id, func(b *entity.Binding) {
		b.OwnerID = ownerID
		b.Count = 0
	})
}

func (r *BindingRepository) ResetCount(_ context.Context, id int64) (*entity.Binding, error) {
	const op = "adapter.repository.memory.BindingRepository.ResetCount"

	return r.update(op, id, func(b *entity.Binding) {
		b.Count = 0
	})
}

func (r *BindingRepository) IncrementCount(_ context.Context, id int64) (*entity.Binding, error) {
	const op = "adapter.repository.memory.BindingRepository.IncrementCount"

	return r.update(op, id, func(b *entity.Binding) {
		b.Count++
	})
}

func (r *BindingRepository) Remove(_ context.Context, id int64) error {
	const op = "adapter.repository.memory.BindingRepository.Remove"

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, entity.ErrBindingNotFound)
	}

	delete(r.byUID, b.UID)
	delete(r.byID, id)

	return nil
}

func (r *BindingRepository) update(op string, id int64, fn func(b *entity.Binding)) (*entity.Binding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrBindingNotFound)
	}

	fn(b)
	b.UpdatedAt = r.now()

	return copyBinding(b), nil
}

func copyBinding(b *entity.Binding) *entity.Binding {
	c := *b
	return &c
}

type LeaseRepository struct {
	mu       sync.RWMutex
	nextID   int64
	byID     map[int64]*entity.Lease
	byPrefix map[string]int64
}

func NewLeaseRepository() *LeaseRepository {
	return &LeaseRepository{
		byID:     make(map[int64]*entity.Lease),
		byPrefix: make(map[string]int64),
	}
}

func (r *LeaseRepository) Create(_ context.Context, prefix string, ownerID int64, createdAt time.Time) (*entity.Lease, error) {
	const op = "adapter.repository.memory.LeaseRepository.Create"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPrefix[prefix]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrPrefixExists)
	}

	r.nextID++
	l := &entity.Lease{
		ID:         r.nextID,
		PathPrefix: prefix,
		OwnerID:    ownerID,
		Status:     entity.LeaseUnpaid,
		CreatedAt:  createdAt,
		Version:    1,
	}
	r.byID[l.ID] = l
	r.byPrefix[prefix] = l.ID

	return copyLease(l), nil
}

func (r *LeaseRepository) RetrieveByPrefix(_ context.Context, prefix string) (*entity.Lease, error) {
	const op = "adapter.repository.memory.LeaseRepository.RetrieveByPrefix"

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPrefix[prefix]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
	}

	return copyLease(r.byID[id]), nil
}

func (r *LeaseRepository) RetrieveByID(_ context.Context, id int64) (*entity.Lease, error) {
	const op = "adapter.repository.memory.LeaseRepository.RetrieveByID"

	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
	}

	return copyLease(l), nil
}

func (r *LeaseRepository) ListByOwner(_ context.Context, ownerID int64) ([]entity.Lease, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leases := make([]entity.Lease, 0)
	for _, l := range r.byID {
		if l.OwnerID == ownerID {
			leases = append(leases, *copyLease(l))
		}
	}
	sort.Slice(leases, func(i, j int) bool { return leases[i].ID < leases[j].ID })

	return leases, nil
}

// Update stores lease if its Version still matches the stored one.
func (r *LeaseRepository) Update(_ context.Context, lease *entity.Lease) (*entity.Lease, error) {
	const op = "adapter.repository.memory.LeaseRepository.Update"

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[lease.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
	}
	if stored.Version != lease.Version {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrStaleLease)
	}

	updated := copyLease(lease)
	updated.PathPrefix = stored.PathPrefix
	updated.Version++
	r.byID[lease.ID] = updated

	return copyLease(updated), nil
}

func (r *LeaseRepository) Remove(_ context.Context, id int64) error {
	const op = "adapter.repository.memory.LeaseRepository.Remove"

	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
	}

	delete(r.byPrefix, l.PathPrefix)
	delete(r.byID, id)

	return nil
}

func copyLease(l *entity.Lease) *entity.Lease {
	c := *l
	if l.ExpiresAt != nil {
		t := *l.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}
