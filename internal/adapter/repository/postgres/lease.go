package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type leaseDB struct {
	ID         int64      `db:"id"`
	PathPrefix string     `db:"path_prefix"`
	OwnerID    int64      `db:"owner_id"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	Version    int64      `db:"version"`
}

func (l *leaseDB) toEntity() *entity.Lease {
	return &entity.Lease{
		ID:         l.ID,
		PathPrefix: l.PathPrefix,
		OwnerID:    l.OwnerID,
		Status:     entity.LeaseStatus(l.Status),
		CreatedAt:  l.CreatedAt,
		ExpiresAt:  l.ExpiresAt,
		Version:    l.Version,
	}
}

type LeaseRepository struct {
	db *sqlx.DB
}

func NewLeaseRepository(db *sqlx.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

func (r *LeaseRepository) Create(ctx context.Context, prefix string, ownerID int64, createdAt time.Time) (*entity.Lease, error) {
	const op = "adapter.repository.postgres.LeaseRepository.Create"
	const query = `INSERT INTO subscriptions(path_prefix, owner_id, status, created_at) VALUES ($1, $2, $3, $4) RETURNING *`

	var l leaseDB

	if err := r.db.GetContext(ctx, &l, query, prefix, ownerID, string(entity.LeaseUnpaid), createdAt); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrPrefixExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into subscriptions table: %w", op, err)
	}

	return l.toEntity(), nil
}

func (r *LeaseRepository) RetrieveByPrefix(ctx context.Context, prefix string) (*entity.Lease, error) {
	const op = "adapter.repository.postgres.LeaseRepository.RetrieveByPrefix"
	const query = `SELECT * FROM subscriptions WHERE path_prefix = $1`

	return r.get(ctx, op, query, prefix)
}

func (r *LeaseRepository) RetrieveByID(ctx context.Context, id int64) (*entity.Lease, error) {
	const op = "adapter.repository.postgres.LeaseRepository.RetrieveByID"
	const query = `SELECT * FROM subscriptions WHERE id = $1`

	return r.get(ctx, op, query, id)
}

func (r *LeaseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Lease, error) {
	const op = "adapter.repository.postgres.LeaseRepository.ListByOwner"
	const query = `SELECT * FROM subscriptions WHERE owner_id = $1 ORDER BY id`

	var rows []leaseDB

	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from subscriptions table: %w", op, err)
	}

	leases := make([]entity.Lease, 0, len(rows))
	for i := range rows {
		leases = append(leases, *rows[i].toEntity())
	}

	return leases, nil
}

// Update writes lease only if the stored version still equals lease.Version.
// A lost race yields entity.ErrStaleLease.
func (r *LeaseRepository) Update(ctx context.Context, lease *entity.Lease) (*entity.Lease, error) {
	const op = "adapter.repository.postgres.LeaseRepository.Update"
	const query = `UPDATE subscriptions
		SET owner_id = $1, status = $2, created_at = $3, expires_at = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING *`
	const existsQuery = `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE id = $1)`

	var l leaseDB

	err := r.db.GetContext(ctx, &l, query,
		lease.OwnerID, string(lease.Status), lease.CreatedAt, lease.ExpiresAt, lease.ID, lease.Version)
	if err == nil {
		return l.toEntity(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: failed to update subscriptions table row: %w", op, err)
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsQuery, lease.ID); err != nil {
		return nil, fmt.Errorf("%s: failed to check subscription existence: %w", op, err)
	}

	if exists {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrStaleLease)
	}

	return nil, fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
}

func (r *LeaseRepository) Remove(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.LeaseRepository.Remove"
	const query = `DELETE FROM subscriptions WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from subscriptions table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
	}

	return nil
}

func (r *LeaseRepository) get(ctx context.Context, op, query string, args ...any) (*entity.Lease, error) {
	var l leaseDB

	if err := r.db.GetContext(ctx, &l, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLeaseNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from subscriptions table: %w", op, err)
	}

	return l.toEntity(), nil
}
