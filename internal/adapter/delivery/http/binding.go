package http

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type bindingUseCase interface {
	Allocate(ctx context.Context, principal entity.Principal, originalURL, prefix string) (*entity.Binding, error)
	Find(ctx context.Context, principal entity.Principal, uid string) (*entity.Binding, error)
	ListByOwner(ctx context.Context, principal entity.Principal, ownerID int64) ([]entity.Binding, error)
	Reset(ctx context.Context, principal entity.Principal, id int64) (*entity.Binding, error)
	Delete(ctx context.Context, principal entity.Principal, id int64) error
}

type bindingHandler struct {
	useCase  bindingUseCase
	validate *validator.Validate
}

func newBindingHandler(useCase bindingUseCase, validate *validator.Validate) *bindingHandler {
	return &bindingHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *bindingHandler) allocate(w http.ResponseWriter, r *http.Request) {
	var req bindingRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	b, err := h.useCase.Allocate(r.Context(), principalFrom(r.Context()), req.OriginalURL, req.PathPrefix)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toBindingResponse(b))
}

func (h *bindingHandler) find(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidFormatResponse)
		return
	}

	b, err := h.useCase.Find(r.Context(), principalFrom(r.Context()), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBindingResponse(b))
}

func (h *bindingHandler) listByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := idParam(w, r, "userID")
	if !ok {
		return
	}

	bindings, err := h.useCase.ListByOwner(r.Context(), principalFrom(r.Context()), ownerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBindingsResponse(bindings))
}

func (h *bindingHandler) reset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	b, err := h.useCase.Reset(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBindingResponse(b))
}

func (h *bindingHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(r.Context(), principalFrom(r.Context()), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
