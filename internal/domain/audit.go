package domain

import "time"

// Audit is embedded by every entity. UpdatedAt/UpdatedBy stay nil until the
// first mutation; IsDeleted rows are invisible to every read path.
type Audit struct {
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy string     `gorm:"size:100;not null" json:"createdBy"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	UpdatedBy *string    `gorm:"size:100" json:"updatedBy"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
}

// Created stamps the creation fields.
func (a *Audit) Created(by string, at time.Time) {
	a.CreatedAt = at
	a.CreatedBy = by
	a.UpdatedAt = nil
	a.UpdatedBy = nil
	a.IsDeleted = false
}

// Touched stamps the mutation fields.
func (a *Audit) Touched(by string, at time.Time) {
	a.UpdatedAt = &at
	a.UpdatedBy = &by
}
