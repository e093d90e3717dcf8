package repo

import (
	"context"

	"go-gin-gorm-crm/internal/domain"
)

type ProductRepo struct{ Repository[domain.Product] }

func (r *ProductRepo) GetByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.find(ctx, "category = ?", category)
}

func (r *ProductRepo) GetActive(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, "is_active = ?", true)
}

func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.first(ctx, "sku = ?", sku)
}

func (r *ProductRepo) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return r.search(ctx, term, "name", "sku", "description")
}
