package domain

import "github.com/shopspring/decimal"

// Product SKU is meant to be unique but nothing enforces it.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `gorm:"size:2000" json:"description"`
	SKU         string          `gorm:"column:sku;size:50;index" json:"sku"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Cost        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"cost"`
	Category    string          `gorm:"size:100;index" json:"category"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	Audit
}
