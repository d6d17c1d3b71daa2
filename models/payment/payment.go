package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Payment is a manually recorded payment row used by the finance reports.
// Actual payment processing is out of scope; these are bookkeeping entries.
type Payment struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID *uint           `gorm:"index" json:"customer_id,omitempty"`
	OrderID    *uint           `gorm:"index" json:"order_id,omitempty"`
	Amount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method     string          `gorm:"type:varchar(50);not null" json:"method"`
	Status     string          `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	PaidAt     time.Time       `gorm:"not null" json:"paid_at"`
	Notes      *string         `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Payment model
func (Payment) TableName() string {
	return "admin_payments"
}
