package dto

import "github.com/shopspring/decimal"

type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"isActive"`
	AuditDTO
}

// CreateProductDTO leaves IsActive nil to mean active.
type CreateProductDTO struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	SKU         string          `json:"sku" binding:"max=50"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    string          `json:"category" binding:"max=100"`
	IsActive    *bool           `json:"isActive"`
}

type UpdateProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	SKU         string          `json:"sku" binding:"max=50"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    string          `json:"category" binding:"max=100"`
	IsActive    bool            `json:"isActive"`
}
