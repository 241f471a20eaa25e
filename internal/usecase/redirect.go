package usecase

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/internal/urlcheck"
)

type redirectRepository interface {
	RetrieveByUID(ctx context.Context, uid string) (*entity.Binding, error)
	IncrementCount(ctx context.Context, id int64) (*entity.Binding, error)
}

// RedirectUseCase turns an inbound path into a redirect target.
type RedirectUseCase struct {
	repo redirectRepository
}

func NewRedirectUseCase(repo redirectRepository) *RedirectUseCase {
	return &RedirectUseCase{repo: repo}
}

// Resolve validates rawPath, looks up its binding, checks the target is still
// safe to redirect to and counts the redirect exactly once.
func (uc *RedirectUseCase) Resolve(ctx context.Context, rawPath string) (*entity.RedirectTarget, error) {
	const op = "usecase.RedirectUseCase.Resolve"

	uid := urlcheck.NormalizeUID(rawPath)

	if urlcheck.IsProtectedPath(uid) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrProtectedPath)
	}
	if !urlcheck.IsValidUID(uid) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidFormat)
	}

	binding, err := uc.repo.RetrieveByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to retrieve url binding: %w", op, err)
	}

	if !urlcheck.IsSafeRedirect(binding.OriginalURL) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUnsafeRedirect)
	}

	counted, err := uc.repo.IncrementCount(ctx, binding.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count redirect: %w", op, err)
	}

	return &entity.RedirectTarget{
		UID:   uid,
		URL:   binding.OriginalURL,
		Count: counted.Count,
	}, nil
}
