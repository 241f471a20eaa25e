package http

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type leaseUseCase interface {
	RequestLease(ctx context.Context, principal entity.Principal, prefix string) (*entity.Lease, error)
	Pay(ctx context.Context, principal entity.Principal, id int64) (*entity.Lease, error)
	Find(ctx context.Context, principal entity.Principal, id int64) (*entity.Lease, error)
	ListByOwner(ctx context.Context, principal entity.Principal, ownerID int64) ([]entity.Lease, error)
	Delete(ctx context.Context, principal entity.Principal, id int64) error
}

type leaseHandler struct {
	useCase  leaseUseCase
	validate *validator.Validate
}

func newLeaseHandler(useCase leaseUseCase, validate *validator.Validate) *leaseHandler {
	return &leaseHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *leaseHandler) request(w http.ResponseWriter, r *http.Request) {
	var req leaseRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	l, err := h.useCase.RequestLease(r.Context(), principalFrom(r.Context()), req.PathPrefix)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLeaseResponse(l))
}

func (h *leaseHandler) find(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	l, err := h.useCase.Find(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLeaseResponse(l))
}

func (h *leaseHandler) listByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := idParam(w, r, "userID")
	if !ok {
		return
	}

	leases, err := h.useCase.ListByOwner(r.Context(), principalFrom(r.Context()), ownerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLeasesResponse(leases))
}

func (h *leaseHandler) pay(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	l, err := h.useCase.Pay(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLeaseResponse(l))
}

func (h *leaseHandler) delete(w http.ResponseWriter, r *http.Request) {
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
