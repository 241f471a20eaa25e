package entity

import "time"

// LeaseStatus is the payment state of a lease.
type LeaseStatus string

const (
	LeaseUnpaid LeaseStatus = "UNPAID"
	LeasePaid   LeaseStatus = "PAID"
)

// Lease reserves a path prefix namespace for its owner.
type Lease struct {
	ID         int64       // ID is the unique identifier of the lease in the store.
	PathPrefix string      // PathPrefix is the reserved namespace token.
	OwnerID    int64       // OwnerID is the principal holding the lease.
	Status     LeaseStatus // Status is UNPAID until the first payment.
	CreatedAt  time.Time   // CreatedAt is reset every time the lease changes hands.
	ExpiresAt  *time.Time  // ExpiresAt stays nil until the first payment.
	Version    int64       // Version is bumped on every update and guards concurrent reassignment.
}

// IsActive reports whether the lease is paid up past now.
func (l *Lease) IsActive(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.After(now)
}
