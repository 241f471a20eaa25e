// Package usecase implements the binding allocator, the prefix lease manager and
// the redirect resolver on top of the store interfaces declared here.
package usecase

import (
	"context"
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type bindingRepository interface {
	Create(ctx context.Context, uid, originalURL string, ownerID int64) (*entity.Binding, error)
	RetrieveByUID(ctx context.Context, uid string) (*entity.Binding, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.Binding, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Binding, error)
	Reassign(ctx context.Context, id, ownerID int64) (*entity.Binding, error)
	ResetCount(ctx context.Context, id int64) (*entity.Binding, error)
	IncrementCount(ctx context.Context, id int64) (*entity.Binding, error)
	Remove(ctx context.Context, id int64) error
}

type leaseRepository interface {
	Create(ctx context.Context, prefix string, ownerID int64, createdAt time.Time) (*entity.Lease, error)
	RetrieveByPrefix(ctx context.Context, prefix string) (*entity.Lease, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.Lease, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Lease, error)
	Update(ctx context.Context, lease *entity.Lease) (*entity.Lease, error)
	Remove(ctx context.Context, id int64) error
}

type prefixAuthorizer interface {
	Authorize(ctx context.Context, principal entity.Principal, prefix string) error
}

// Clock returns the current time.
type Clock func() time.Time
