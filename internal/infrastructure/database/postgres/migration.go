// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront/internal/domain/order"
	"gorm.io/gorm"
)

// Migration handles database schema migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration handler
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations runs GORM auto-migrations for all entities
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database migrations...")

	if err := m.db.AutoMigrate(&order.Record{}); err != nil {
		return fmt.Errorf("failed to migrate order records: %w", err)
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// CreateIndexes creates additional indexes not covered by auto-migration
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_order_records_user_id ON order_records (user_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_records_created_at ON order_records (created_at DESC)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
