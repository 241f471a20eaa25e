package http

import (
	"context"
	"net/http"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type redirectUseCase interface {
	Resolve(ctx context.Context, rawPath string) (*entity.RedirectTarget, error)
}

type redirectHandler struct {
	useCase redirectUseCase
}

func newRedirectHandler(useCase redirectUseCase) *redirectHandler {
	return &redirectHandler{useCase: useCase}
}

func (h *redirectHandler) redirect(w http.ResponseWriter, r *http.Request) {
	target, err := h.useCase.Resolve(r.Context(), r.URL.Path)
	if err != nil {
		respondError(w, r, err)
		return
	}

	http.Redirect(w, r, target.URL, http.StatusFound)
}
