package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/domain"
)

// Repository is the generic gorm-backed data access component. All reads go
// through live so soft-deleted rows never escape.
type Repository[T any] struct{ s *session }

func newRepository[T any](s *session) Repository[T] { return Repository[T]{s: s} }

func (r *Repository[T]) live(ctx context.Context) *gorm.DB {
	return r.s.conn().WithContext(ctx).Model(new(T)).Where("is_deleted = ?", false)
}

func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.live(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetPaged reads one page in id order. A page whose offset overflows is empty.
func (r *Repository[T]) GetPaged(ctx context.Context, pageNumber, pageSize int) ([]T, error) {
	pageNumber, pageSize = domain.NormalizePage(pageNumber, pageSize)
	offset, ok := domain.PageOffset(pageNumber, pageSize)
	if !ok {
		return []T{}, nil
	}
	var out []T
	err := r.live(ctx).
		Order("id").
		Offset(offset).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.live(ctx).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.live(ctx).Count(&n).Error
	return n, err
}

// Add queues an insert; the id is populated on the entity by SaveChanges.
func (r *Repository[T]) Add(entity *T) {
	r.s.enqueue(func(tx *gorm.DB) error { return tx.Create(entity).Error })
}

// Update queues a full overwrite of the mutable columns of a live row.
// Audit fields must already be stamped by the caller.
func (r *Repository[T]) Update(entity *T) {
	r.s.enqueue(func(tx *gorm.DB) error {
		return tx.Model(entity).
			Where("is_deleted = ?", false).
			Select("*").
			Omit("id", "created_at", "created_by", "is_deleted").
			Updates(entity).Error
	})
}

// Delete queues a soft delete. Unknown or already deleted ids are a no-op.
func (r *Repository[T]) Delete(id uint) {
	r.s.enqueue(func(tx *gorm.DB) error {
		return tx.Model(new(T)).
			Where("id = ? AND is_deleted = ?", id, false).
			Updates(map[string]any{"is_deleted": true, "updated_at": r.s.now()}).Error
	})
}

func (r *Repository[T]) first(ctx context.Context, query string, args ...any) (*T, error) {
	var e T
	err := r.live(ctx).Where(query, args...).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository[T]) find(ctx context.Context, query string, args ...any) ([]T, error) {
	var out []T
	if err := r.live(ctx).Where(query, args...).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// likeEscaper escapes LIKE wildcards with '!' so a term matches literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// search matches term as a substring of any of columns. Case sensitivity
// follows the store collation.
func (r *Repository[T]) search(ctx context.Context, term string, columns ...string) ([]T, error) {
	like := "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		conds[i] = c + " LIKE ? ESCAPE '!'"
		args[i] = like
	}
	return r.find(ctx, "("+strings.Join(conds, " OR ")+")", args...)
}
