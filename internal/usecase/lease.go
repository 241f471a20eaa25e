package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/internal/urlcheck"
)

// LeaseUseCase decides who may mint bindings under a path prefix and drives
// the lease lifecycle: request, reuse after lapse, payment and removal.
type LeaseUseCase struct {
	leaseRepo leaseRepository
	now       Clock
}

func NewLeaseUseCase(leaseRepo leaseRepository, now Clock) *LeaseUseCase {
	if now == nil {
		now = time.Now
	}

	return &LeaseUseCase{
		leaseRepo: leaseRepo,
		now:       now,
	}
}

// Authorize returns nil only if principal holds an active lease on prefix.
// Any other outcome is a *entity.PrefixNotAvailableError.
func (uc *LeaseUseCase) Authorize(ctx context.Context, principal entity.Principal, prefix string) error {
	const op = "usecase.LeaseUseCase.Authorize"

	if !principal.IsAuthenticated() {
		return fmt.Errorf("%s: %w", op, &entity.PrefixNotAvailableError{Prefix: prefix})
	}

	lease, err := uc.leaseRepo.RetrieveByPrefix(ctx, prefix)
	if err != nil {
		if errors.Is(err, entity.ErrLeaseNotFound) {
			return fmt.Errorf("%s: %w", op, &entity.PrefixNotAvailableError{Prefix: prefix})
		}

		return fmt.Errorf("%s: failed to retrieve subscription: %w", op, err)
	}

	if !principal.Owns(lease.OwnerID) || !lease.IsActive(uc.now()) {
		return fmt.Errorf("%s: %w", op, &entity.PrefixNotAvailableError{
			Prefix:    prefix,
			ExpiresAt: lease.ExpiresAt,
		})
	}

	return nil
}

// RequestLease reserves prefix for principal. A free prefix gets a new unpaid
// lease, a lapsed one is handed over in place, an active one is refused.
func (uc *LeaseUseCase) RequestLease(ctx context.Context, principal entity.Principal, prefix string) (*entity.Lease, error) {
	const op = "usecase.LeaseUseCase.RequestLease"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	prefix, err := urlcheck.NormalizePrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lease, err := uc.leaseRepo.RetrieveByPrefix(ctx, prefix)
	if err != nil {
		if !errors.Is(err, entity.ErrLeaseNotFound) {
			return nil, fmt.Errorf("%s: failed to retrieve subscription: %w", op, err)
		}

		lease, err = uc.leaseRepo.Create(ctx, prefix, principal.ID, uc.now())
		if err == nil {
			return lease, nil
		}
		if !errors.Is(err, entity.ErrPrefixExists) {
			return nil, fmt.Errorf("%s: failed to create subscription: %w", op, err)
		}

		// Someone created it between the lookup and the insert.
		lease, err = uc.leaseRepo.RetrieveByPrefix(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to retrieve subscription: %w", op, err)
		}
	}

	now := uc.now()

	if lease.IsActive(now) {
		reason := entity.ReasonTaken
		if principal.Owns(lease.OwnerID) {
			reason = entity.ReasonOwned
		}

		return nil, fmt.Errorf("%s: %w", op, &entity.PrefixNotAvailableError{
			Prefix:    prefix,
			Reason:    reason,
			ExpiresAt: lease.ExpiresAt,
		})
	}

	reused := *lease
	reused.OwnerID = principal.ID
	reused.Status = entity.LeaseUnpaid
	reused.CreatedAt = now
	reused.ExpiresAt = nil

	updated, err := uc.leaseRepo.Update(ctx, &reused)
	if err != nil {
		if errors.Is(err, entity.ErrStaleLease) || errors.Is(err, entity.ErrLeaseNotFound) {
			return nil, fmt.Errorf("%s: %w", op, &entity.PrefixNotAvailableError{
				Prefix: prefix,
				Reason: entity.ReasonTaken,
			})
		}

		return nil, fmt.Errorf("%s: failed to reuse subscription: %w", op, err)
	}

	return updated, nil
}

// Pay marks the lease paid and adds one month on top of its remaining validity,
// or one month from now when it has none left.
func (uc *LeaseUseCase) Pay(ctx context.Context, principal entity.Principal, id int64) (*entity.Lease, error) {
	const op = "usecase.LeaseUseCase.Pay"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrForbidden)
	}

	lease, err := uc.leaseRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to retrieve subscription: %w", op, err)
	}

	now := uc.now()
	from := now
	if lease.IsActive(now) {
		from = *lease.ExpiresAt
	}
	expiresAt := from.AddDate(0, 1, 0)

	paid := *lease
	paid.Status = entity.LeasePaid
	paid.ExpiresAt = &expiresAt

	updated, err := uc.leaseRepo.Update(ctx, &paid)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to pay subscription: %w", op, err)
	}

	return updated, nil
}

// Find returns the lease if principal owns it or is an admin.
func (uc *LeaseUseCase) Find(ctx context.Context, principal entity.Principal, id int64) (*entity.Lease, error) {
	const op = "usecase.LeaseUseCase.Find"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	lease, err := uc.leaseRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to retrieve subscription: %w", op, err)
	}

	if !principal.IsAdmin() && !principal.Owns(lease.OwnerID) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrForbidden)
	}

	return lease, nil
}

// ListByOwner returns the leases of ownerID. Users may only list their own.
func (uc *LeaseUseCase) ListByOwner(ctx context.Context, principal entity.Principal, ownerID int64) ([]entity.Lease, error) {
	const op = "usecase.LeaseUseCase.ListByOwner"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}
	if !principal.IsAdmin() && !principal.Owns(ownerID) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrForbidden)
	}

	leases, err := uc.leaseRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list subscriptions: %w", op, err)
	}

	return leases, nil
}

// Delete removes the lease. Only its owner may do so.
func (uc *LeaseUseCase) Delete(ctx context.Context, principal entity.Principal, id int64) error {
	const op = "usecase.LeaseUseCase.Delete"

	if !principal.IsAuthenticated() {
		return fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	lease, err := uc.leaseRepo.RetrieveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: failed to retrieve subscription: %w", op, err)
	}

	if !principal.Owns(lease.OwnerID) {
		return fmt.Errorf("%s: %w", op, entity.ErrForbidden)
	}

	if err := uc.leaseRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete subscription: %w", op, err)
	}

	return nil
}
