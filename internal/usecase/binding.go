package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/internal/shortkey"
	"github.com/vadimbarashkov/shortlink/internal/urlcheck"
)

// BindingUseCase allocates bindings and manages them on behalf of their owners.
type BindingUseCase struct {
	bindingRepo bindingRepository
	leases      prefixAuthorizer
}

func NewBindingUseCase(bindingRepo bindingRepository, leases prefixAuthorizer) *BindingUseCase {
	return &BindingUseCase{
		bindingRepo: bindingRepo,
		leases:      leases,
	}
}

// Allocate creates the binding of originalURL for principal, optionally under
// prefix. The uid is derived from the URL, so allocating the same URL again
// lands on the same slot: the existing binding is handed to principal and its
// counter starts over.
func (uc *BindingUseCase) Allocate(ctx context.Context, principal entity.Principal, originalURL, prefix string) (*entity.Binding, error) {
	const op = "usecase.BindingUseCase.Allocate"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	originalURL = urlcheck.NormalizeURL(originalURL)
	if err := urlcheck.ValidateURL(originalURL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	uid := "/" + shortkey.Suffix(originalURL)

	if prefix != "" {
		p, err := urlcheck.NormalizePrefix(prefix)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := uc.leases.Authorize(ctx, principal, p); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		uid = "/" + p + uid
	}

	binding, err := uc.bindingRepo.RetrieveByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, entity.ErrBindingNotFound) {
			return nil, fmt.Errorf("%s: failed to retrieve url binding: %w", op, err)
		}

		return uc.create(ctx, op, uid, originalURL, principal.ID)
	}

	reused, err := uc.bindingRepo.Reassign(ctx, binding.ID, principal.ID)
	if err != nil {
		// The binding was removed after the lookup, or the lookup was served stale.
		if errors.Is(err, entity.ErrBindingNotFound) {
			return uc.create(ctx, op, uid, originalURL, principal.ID)
		}
		return nil, fmt.Errorf("%s: failed to reuse url binding: %w", op, err)
	}

	return reused, nil
}

// create stores a new binding at uid. A binding created concurrently at the
// same uid is reassigned to ownerID instead; there is no further retry.
func (uc *BindingUseCase) create(ctx context.Context, op, uid, originalURL string, ownerID int64) (*entity.Binding, error) {
	binding, err := uc.bindingRepo.Create(ctx, uid, originalURL, ownerID)
	if err == nil {
		return binding, nil
	}
	if !errors.Is(err, entity.ErrUIDExists) {
		return nil, fmt.Errorf("%s: failed to create url binding: %w", op, err)
	}

	binding, err = uc.bindingRepo.RetrieveByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to retrieve url binding: %w", op, err)
	}

	reused, err := uc.bindingRepo.Reassign(ctx, binding.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to reuse url binding: %w", op, err)
	}

	return reused, nil
}

// Find returns the binding with uid if principal owns it or is an admin.
func (uc *BindingUseCase) Find(ctx context.Context, principal entity.Principal, uid string) (*entity.Binding, error) {
	const op = "usecase.BindingUseCase.Find"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}

	uid = urlcheck.NormalizeUID(uid)
	if !urlcheck.IsValidUID(uid) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidFormat)
	}

	binding, err := uc.bindingRepo.RetrieveByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to retrieve url binding: %w", op, err)
	}

	if !principal.IsAdmin() && !principal.Owns(binding.OwnerID) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrForbidden)
	}

	return binding, nil
}

// ListByOwner returns the bindings of ownerID. Users may only list their own.
func (uc *BindingUseCase) ListByOwner(ctx context.Context, principal entity.Principal, ownerID int64) ([]entity.Binding, error) {
	const op = "usecase.BindingUseCase.ListByOwner"

	if !principal.IsAuthenticated() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnauthenticated)
	}
	if !principal.IsAdmin() && !principal.Owns(ownerID) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrForbidden)
	}

	bindings, err := uc.bindingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list url bindings: %w", op, err)
	}

	return bindings, nil
}

// Reset sets the counter of the binding back to zero. Only its owner may do so.
func (uc *BindingUseCase) Reset(ctx context.Context, principal entity.Principal, id int64) (*entity.Binding, error) {
	const op = "usecase.BindingUseCase.Reset"

	if err := uc.checkOwner(ctx, principal, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	binding, err := uc.bindingRepo.ResetCount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to reset url binding: %w", op, err)
	}

	return binding, nil
}

// Delete removes the binding. Only its owner may do so.
func (uc *BindingUseCase) Delete(ctx context.Context, principal entity.Principal, id int64) error {
	const op = "usecase.BindingUseCase.Delete"

	if err := uc.checkOwner(ctx, principal, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := uc.bindingRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete url binding: %w", op, err)
	}

	return nil
}

func (uc *BindingUseCase) checkOwner(ctx context.Context, principal entity.Principal, id int64) error {
	if !principal.IsAuthenticated() {
		return entity.ErrUnauthenticated
	}

	binding, err := uc.bindingRepo.RetrieveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to retrieve url binding: %w", err)
	}

	if !principal.Owns(binding.OwnerID) {
		return entity.ErrForbidden
	}

	return nil
}
