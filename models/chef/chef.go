package chef

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Chef prepares confirmed orders. The lowest-id active chef is the default
// assignment when the admin confirms without choosing one.
type Chef struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone        *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialty    *string `gorm:"type:varchar(255)" json:"specialty,omitempty"`

	// Copied onto orders at confirmation so logistics knows the pickup point.
	KitchenLocation *string `gorm:"type:varchar(255)" json:"kitchen_location,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Chef model
func (Chef) TableName() string {
	return "chefs"
}
