package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminOrder is a back-office order record created manually by admins
// (legacy flow, separate from the user_orders pipeline). order_number is
// unique; duplicate inserts surface as a conflict.
type AdminOrder struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  *uint           `gorm:"index" json:"customer_id,omitempty"`
	ChefID      *uint           `gorm:"index" json:"chef_id,omitempty"`
	OrderNumber string          `gorm:"type:varchar(50);not null;unique" json:"order_number"`
	Status      string          `gorm:"type:varchar(30);not null;default:'pending'" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	OrderDate    time.Time  `gorm:"type:date;not null" json:"order_date"`
	DeliveryDate *time.Time `gorm:"type:date" json:"delivery_date,omitempty"`
	Notes        *string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the AdminOrder model
func (AdminOrder) TableName() string {
	return "admin_orders"
}
