package database

import (
	"gorm.io/gorm"

	"go-gin-gorm-crm/internal/domain"
)

// Models lists every persisted entity, one table each.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Customer{},
		&domain.Contact{},
		&domain.Lead{},
		&domain.Opportunity{},
		&domain.WorkItem{},
		&domain.Product{},
	}
}

func Migrate(db *gorm.DB) error { return db.AutoMigrate(Models()...) }
