// internal/domain/order/record.go
package order

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Record is the minimal order row written to the backing store at
// checkout, independent of the session order log.
type Record struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"uniqueIndex;not null;size:50" json:"order_id"`
	UserID      string    `gorm:"not null;size:255;index" json:"user_id"`
	TotalAmount float64   `gorm:"not null" json:"total_payment"`
	Items       string    `gorm:"type:text" json:"items"` // JSON-encoded line items
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Record) TableName() string {
	return "order_records"
}

// RecordService writes order records to the database
type RecordService struct {
	db *gorm.DB
}

// NewRecordService creates a new order record service
func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// Create writes the record for an order. The user identifier is the
// authenticated shopper email when present, otherwise the checkout
// email address.
func (s *RecordService) Create(o Order, userID string) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	if userID == "" {
		userID = o.Shipping.Email
	}

	record := Record{
		OrderID:     o.ID,
		UserID:      userID,
		TotalAmount: o.Total,
		Items:       string(items),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create order record: %w", err)
	}

	return nil
}
