package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// decodeRequest reads and validates the JSON body into req.
// It writes a 400 response and returns false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, req any) bool {
	if err := render.DecodeJSON(r.Body, req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return false
	}

	if err := validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

// idParam parses the named path parameter as an id.
// It writes a 400 response and returns false on failure.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return 0, false
	}

	return id, true
}

// respondError maps a usecase error to its HTTP status and response body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var notAvailable *entity.PrefixNotAvailableError

	status, resp := http.StatusInternalServerError, serverErrorResponse

	switch {
	case errors.As(err, &notAvailable):
		status, resp = http.StatusConflict, newErrorResponse(notAvailable.Error())
	case errors.Is(err, entity.ErrPrefixNotAvailable):
		status, resp = http.StatusConflict, newErrorResponse(entity.ErrPrefixNotAvailable.Error())
	case errors.Is(err, entity.ErrStaleLease):
		status, resp = http.StatusConflict, staleLeaseResponse
	case errors.Is(err, entity.ErrInvalidURL):
		status, resp = http.StatusBadRequest, invalidURLResponse
	case errors.Is(err, entity.ErrInvalidFormat):
		status, resp = http.StatusBadRequest, invalidFormatResponse
	case errors.Is(err, entity.ErrUnsafeRedirect):
		status, resp = http.StatusBadRequest, unsafeRedirectResponse
	case errors.Is(err, entity.ErrUnauthenticated):
		status, resp = http.StatusUnauthorized, unauthenticatedResponse
	case errors.Is(err, entity.ErrForbidden):
		status, resp = http.StatusForbidden, forbiddenResponse
	case errors.Is(err, entity.ErrBindingNotFound):
		status, resp = http.StatusNotFound, bindingNotFoundResponse
	case errors.Is(err, entity.ErrLeaseNotFound):
		status, resp = http.StatusNotFound, leaseNotFoundResponse
	case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrProtectedPath):
		status, resp = http.StatusNotFound, notFoundResponse
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
