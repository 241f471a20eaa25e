package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidURL is returned when an original URL is malformed or uses a scheme other than http or https.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidFormat is returned when a uid or a path prefix does not match the expected grammar.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrPrefixNotAvailable is returned when a path prefix cannot be used or leased by the principal.
	ErrPrefixNotAvailable = errors.New("path prefix not available")
	// ErrNotFound is the common parent of all not found errors.
	ErrNotFound = errors.New("not found")
	// ErrUnsafeRedirect is returned when a stored target points to a local or private host.
	ErrUnsafeRedirect = errors.New("unsafe redirect target")
	// ErrProtectedPath is returned when a path belongs to the management API and must not be redirected.
	ErrProtectedPath = errors.New("protected path")
	// ErrUnauthenticated is returned when an operation requires a principal but none was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the principal is not allowed to act on a resource.
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrBindingNotFound = fmt.Errorf("url binding %w", ErrNotFound)
	ErrLeaseNotFound   = fmt.Errorf("subscription %w", ErrNotFound)
)

// Store level errors. They never leave the usecase layer.
var (
	// ErrUIDExists is returned by a store when a binding with the same uid already exists.
	ErrUIDExists = errors.New("uid exists")
	// ErrPrefixExists is returned by a store when a lease for the same path prefix already exists.
	ErrPrefixExists = errors.New("path prefix exists")
	// ErrStaleLease is returned by a store when a lease was modified after it had been read.
	ErrStaleLease = errors.New("stale subscription")
)

// Reason tells why a path prefix is not available.
type Reason int

const (
	// ReasonNotOwned means the principal holds no active lease on the prefix.
	ReasonNotOwned Reason = iota
	// ReasonOwned means the principal already holds an active lease on the prefix.
	ReasonOwned
	// ReasonTaken means another principal holds an active lease on the prefix.
	ReasonTaken
)

// PrefixNotAvailableError carries the prefix and its expiration date, when one is known.
type PrefixNotAvailableError struct {
	Prefix    string
	Reason    Reason
	ExpiresAt *time.Time
}

func (e *PrefixNotAvailableError) Error() string {
	until := "unknown"
	if e.ExpiresAt != nil {
		until = e.ExpiresAt.Format(time.DateOnly)
	}

	switch e.Reason {
	case ReasonOwned:
		return fmt.Sprintf("path prefix %q is yours, active until %s", e.Prefix, until)
	case ReasonTaken:
		return fmt.Sprintf("path prefix %q is not available until %s", e.Prefix, until)
	default:
		return fmt.Sprintf("path prefix %q is neither active nor owned by you", e.Prefix)
	}
}

func (e *PrefixNotAvailableError) Is(target error) bool {
	return target == ErrPrefixNotAvailable
}
