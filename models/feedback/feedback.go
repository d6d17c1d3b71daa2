package feedback

import (
	"time"
)

// Feedback is a customer rating for a delivered order.
type Feedback struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint    `gorm:"not null;index" json:"user_id"`
	OrderID  string  `gorm:"type:uuid;not null;index" json:"order_id"`
	Rating   int     `gorm:"not null" json:"rating"`
	Comments *string `gorm:"type:text" json:"comments,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Feedback model
func (Feedback) TableName() string {
	return "order_feedback"
}
