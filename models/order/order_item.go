package order

import (
	"time"

	"fitchef-backend/models/dish"

	"github.com/shopspring/decimal"
)

// OrderItem is one dish line on an order. Price is the unit price captured
// at order time (discount price if set, else base price); catalog price
// changes never retroactively alter it. Items are immutable after creation.
type OrderItem struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OrderID string `gorm:"type:uuid;not null;index" json:"order_id"`

	DishID uint      `gorm:"not null" json:"dish_id"`
	Dish   dish.Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`

	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "user_order_items"
}

// LineTotal is quantity times the captured unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
