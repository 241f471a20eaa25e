// Package entity defines the entities and errors used in the application.
// It includes the Binding, which maps a short uid to an original URL, the Lease,
// which reserves a path prefix for a principal, and the Principal itself.
package entity

import "time"

// Binding represents a shortened URL.
type Binding struct {
	ID          int64     // ID is the unique identifier of the binding in the store.
	UID         string    // UID is the short identifier, "/suffix" or "/prefix/suffix".
	OriginalURL string    // OriginalURL is the full URL that the uid redirects to.
	OwnerID     int64     // OwnerID is the principal that currently owns the binding.
	Count       int64     // Count is the number of redirects served since the last reset.
	CreatedAt   time.Time // CreatedAt is the timestamp when the binding was created.
	UpdatedAt   time.Time // UpdatedAt is the timestamp when the binding was last updated.
}

// RedirectTarget is the result of resolving a uid.
type RedirectTarget struct {
	UID   string
	URL   string
	Count int64
}
