package notification

import (
	"time"
)

// Notification is an append-only message addressed to either a site user
// or an admin (exactly one of UserID/AdminID is set). Consumers poll and
// may mark rows read; there is no delivery guarantee beyond the insert.
type Notification struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID  *uint `gorm:"index" json:"user_id,omitempty"`
	AdminID *uint `gorm:"index" json:"admin_id,omitempty"`

	OrderID string `gorm:"type:uuid;not null;index" json:"order_id"`
	Message string `gorm:"type:text;not null" json:"message"`

	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
