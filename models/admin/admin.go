package admin

import (
	"time"
)

// Admin is a back-office operator. The first admin on record receives the
// admin copy of milestone notifications.
type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	Role         string `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Admin model
func (Admin) TableName() string {
	return "admin_users"
}
