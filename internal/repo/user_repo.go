package repo

import (
	"context"

	"go-gin-gorm-crm/internal/domain"
)

type UserRepo struct{ Repository[domain.User] }

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepo) GetByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	return r.find(ctx, "role = ?", role)
}

func (r *UserRepo) Search(ctx context.Context, term string) ([]domain.User, error) {
	return r.search(ctx, term, "username", "email", "first_name", "last_name")
}
