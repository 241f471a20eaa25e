package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const statusError = "error"

// bindingRequest represents a request to shorten an original URL, optionally under a leased prefix.
type bindingRequest struct {
	OriginalURL string `json:"original_url" validate:"required"`
	PathPrefix  string `json:"path_prefix" validate:"omitempty,min=3,max=50"`
}

// leaseRequest represents a request to lease a path prefix.
type leaseRequest struct {
	PathPrefix string `json:"path_prefix" validate:"required,min=3,max=50"`
}

type bindingResponse struct {
	ID          int64     `json:"id"`
	UID         string    `json:"uid"`
	OriginalURL string    `json:"original_url"`
	OwnerID     int64     `json:"owner_id"`
	Count       int64     `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBindingResponse(b *entity.Binding) bindingResponse {
	return bindingResponse{
		ID:          b.ID,
		UID:         b.UID,
		OriginalURL: b.OriginalURL,
		OwnerID:     b.OwnerID,
		Count:       b.Count,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBindingsResponse(bindings []entity.Binding) []bindingResponse {
	resp := make([]bindingResponse, 0, len(bindings))
	for i := range bindings {
		resp = append(resp, toBindingResponse(&bindings[i]))
	}
	return resp
}

type leaseResponse struct {
	ID         int64      `json:"id"`
	PathPrefix string     `json:"path_prefix"`
	OwnerID    int64      `json:"owner_id"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func toLeaseResponse(l *entity.Lease) leaseResponse {
	return leaseResponse{
		ID:         l.ID,
		PathPrefix: l.PathPrefix,
		OwnerID:    l.OwnerID,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
		ExpiresAt:  l.ExpiresAt,
	}
}

func toLeasesResponse(leases []entity.Lease) []leaseResponse {
	resp := make([]leaseResponse, 0, len(leases))
	for i := range leases {
		resp = append(resp, toLeaseResponse(&leases[i]))
	}
	return resp
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

func newErrorResponse(message string) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: message,
	}
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse   = newErrorResponse("empty request body")
	invalidRequestBodyResponse = newErrorResponse("invalid request body")
	invalidIDResponse          = newErrorResponse("invalid id")
	invalidURLResponse         = newErrorResponse("invalid url")
	invalidFormatResponse      = newErrorResponse("invalid format")
	unsafeRedirectResponse     = newErrorResponse("redirect target is not allowed")
	unauthenticatedResponse    = newErrorResponse("authentication required")
	invalidTokenResponse       = newErrorResponse("invalid token")
	forbiddenResponse          = newErrorResponse("access denied")
	bindingNotFoundResponse    = newErrorResponse("url binding not found")
	leaseNotFoundResponse      = newErrorResponse("subscription not found")
	notFoundResponse           = newErrorResponse("not found")
	staleLeaseResponse         = newErrorResponse("subscription was modified concurrently")
	tooManyRequestsResponse    = newErrorResponse("too many requests")
	serverErrorResponse        = newErrorResponse("server error occurred")
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min", "max":
		return "length must be between 3 and 50"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
