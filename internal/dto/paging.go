package dto

import (
	"time"

	"go-gin-gorm-crm/internal/domain"
)

// PagedResult is the list envelope returned by every paged endpoint.
type PagedResult[T any] struct {
	Data       []T `json:"data"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPagedResult fills the envelope; TotalPages is ceil(total/size).
func NewPagedResult[T any](data []T, total, pageNumber, pageSize int) PagedResult[T] {
	if data == nil {
		data = []T{}
	}
	return PagedResult[T]{
		Data:       data,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: domain.PageCount(total, pageSize),
	}
}

type PageQuery struct {
	PageNumber int `form:"pageNumber,default=1" binding:"min=1"`
	PageSize   int `form:"pageSize,default=10" binding:"min=1,max=100"`
}

type SearchQuery struct {
	Term       string `form:"term" binding:"required,max=200"`
	PageNumber int    `form:"pageNumber,default=1" binding:"min=1"`
	PageSize   int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// AuditDTO exposes the audit columns on every read shape.
type AuditDTO struct {
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt"`
	UpdatedBy *string    `json:"updatedBy"`
}
