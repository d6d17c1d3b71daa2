package lead

import (
	"time"
)

// EarlyAccess is one row per email captured by the marketing site's
// early-access form.
type EarlyAccess struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the EarlyAccess model
func (EarlyAccess) TableName() string {
	return "early_access"
}
