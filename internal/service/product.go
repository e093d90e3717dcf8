package service

import (
	"context"
	"fmt"

	"go-gin-gorm-crm/internal/domain"
	"go-gin-gorm-crm/internal/dto"
)

type ProductService struct{ base }

func (s *ProductService) GetByID(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	p, err := get[domain.Product](ctx, s.uow.Products(), "product", id)
	if err != nil {
		return nil, err
	}
	out := toProductDTO(p)
	return &out, nil
}

func (s *ProductService) GetAll(ctx context.Context, pageNumber, pageSize int) (dto.PagedResult[dto.ProductDTO], error) {
	all, err := s.uow.Products().GetAll(ctx)
	if err != nil {
		return dto.PagedResult[dto.ProductDTO]{}, fmt.Errorf("list products: %w", err)
	}
	return paginate(all, pageNumber, pageSize, toProductDTO), nil
}

func (s *ProductService) Search(ctx context.Context, term string, pageNumber, pageSize int) (dto.PagedResult[dto.ProductDTO], error) {
	found, err := s.uow.Products().Search(ctx, term)
	if err != nil {
		return dto.PagedResult[dto.ProductDTO]{}, fmt.Errorf("search products: %w", err)
	}
	return paginate(found, pageNumber, pageSize, toProductDTO), nil
}

func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]dto.ProductDTO, error) {
	found, err := s.uow.Products().GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("products by category: %w", err)
	}
	return mapAll(found, toProductDTO), nil
}

func (s *ProductService) GetActive(ctx context.Context) ([]dto.ProductDTO, error) {
	found, err := s.uow.Products().GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("active products: %w", err)
	}
	return mapAll(found, toProductDTO), nil
}

// Create stores a new product; an omitted IsActive means active.
func (s *ProductService) Create(ctx context.Context, in dto.CreateProductDTO, actor string) (*dto.ProductDTO, error) {
	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Price:       in.Price,
		Cost:        in.Cost,
		Category:    in.Category,
		IsActive:    true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.Created(actor, s.now())
	s.uow.Products().Add(p)
	if err := s.save(ctx, "create product"); err != nil {
		return nil, err
	}
	out := toProductDTO(p)
	return &out, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in dto.UpdateProductDTO, actor string) (*dto.ProductDTO, error) {
	p, err := get[domain.Product](ctx, s.uow.Products(), "product", id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.SKU = in.SKU
	p.Price = in.Price
	p.Cost = in.Cost
	p.Category = in.Category
	p.IsActive = in.IsActive
	p.Touched(actor, s.now())
	s.uow.Products().Update(p)
	if err := s.save(ctx, "update product"); err != nil {
		return nil, err
	}
	out := toProductDTO(p)
	return &out, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return remove[domain.Product](ctx, &s.base, s.uow.Products(), "product", id)
}
