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

type bindingDB struct {
	ID          int64     `db:"id"`
	UID         string    `db:"uid"`
	OriginalURL string    `db:"original_url"`
	OwnerID     int64     `db:"owner_id"`
	Count       int64     `db:"count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (b *bindingDB) toEntity() *entity.Binding {
	return &entity.Binding{
		ID:          b.ID,
		UID:         b.UID,
		OriginalURL: b.OriginalURL,
		OwnerID:     b.OwnerID,
		Count:       b.Count,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type BindingRepository struct {
	db *sqlx.DB
}

func NewBindingRepository(db *sqlx.DB) *BindingRepository {
	return &BindingRepository{db: db}
}

func (r *BindingRepository) Create(ctx context.Context, uid, originalURL string, ownerID int64) (*entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.Create"
	const query = `INSERT INTO url_bindings(uid, original_url, owner_id) VALUES ($1, $2, $3) RETURNING *`

	var b bindingDB

	if err := r.db.GetContext(ctx, &b, query, uid, originalURL, ownerID); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUIDExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into url_bindings table: %w", op, err)
	}

	return b.toEntity(), nil
}

func (r *BindingRepository) RetrieveByUID(ctx context.Context, uid string) (*entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.RetrieveByUID"
	const query = `SELECT * FROM url_bindings WHERE uid = $1`

	return r.get(ctx, op, query, uid)
}

func (r *BindingRepository) RetrieveByID(ctx context.Context, id int64) (*entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.RetrieveByID"
	const query = `SELECT * FROM url_bindings WHERE id = $1`

	return r.get(ctx, op, query, id)
}

func (r *BindingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.ListByOwner"
	const query = `SELECT * FROM url_bindings WHERE owner_id = $1 ORDER BY id`

	var rows []bindingDB

	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from url_bindings table: %w", op, err)
	}

	bindings := make([]entity.Binding, 0, len(rows))
	for i := range rows {
		bindings = append(bindings, *rows[i].toEntity())
	}

	return bindings, nil
}

func (r *BindingRepository) Reassign(ctx context.Context, id, ownerID int64) (*entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.Reassign"
	const query = `UPDATE url_bindings SET owner_id = $1, count = 0, updated_at = NOW() WHERE id = $2 RETURNING *`

	return r.get(ctx, op, query, ownerID, id)
}

func (r *BindingRepository) ResetCount(ctx context.Context, id int64) (*entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.ResetCount"
	const query = `UPDATE url_bindings SET count = 0, updated_at = NOW() WHERE id = $1 RETURNING *`

	return r.get(ctx, op, query, id)
}

// IncrementCount adds one to the counter in a single statement, so concurrent
// redirects never lose an update.
func (r *BindingRepository) IncrementCount(ctx context.Context, id int64) (*entity.Binding, error) {
	const op = "adapter.repository.postgres.BindingRepository.IncrementCount"
	const query = `UPDATE url_bindings SET count = count + 1 WHERE id = $1 RETURNING *`

	return r.get(ctx, op, query, id)
}

func (r *BindingRepository) Remove(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.BindingRepository.Remove"
	const query = `DELETE FROM url_bindings WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from url_bindings table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrBindingNotFound)
	}

	return nil
}

func (r *BindingRepository) get(ctx context.Context, op, query string, args ...any) (*entity.Binding, error) {
	var b bindingDB

	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrBindingNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from url_bindings table: %w", op, err)
	}

	return b.toEntity(), nil
}
