package lead

import (
	"time"
)

// Consultation is a free-consultation form submission, listed read-only in
// the admin back-office.
type Consultation struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Email         string  `gorm:"type:varchar(255);not null" json:"email"`
	Phone         *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Goal          *string `gorm:"type:varchar(255)" json:"goal,omitempty"`
	PreferredTime *string `gorm:"type:varchar(100)" json:"preferred_time,omitempty"`
	Message       *string `gorm:"type:text" json:"message,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Consultation model
func (Consultation) TableName() string {
	return "consultations"
}
