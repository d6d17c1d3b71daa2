package lead

import (
	"time"
)

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
	StatusClosed    = "closed"
)

const (
	SourceEarlyAccess  = "early_access"
	SourceConsultation = "consultation"
	SourceManual       = "manual"
)

// Lead is a sales lead in the admin back-office. Public capture forms
// (early access, consultation) sync into this table.
type Lead struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   *string `gorm:"type:varchar(255)" json:"name,omitempty"`
	Email  string  `gorm:"type:varchar(255);not null" json:"email"`
	Phone  *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Source string  `gorm:"type:varchar(50);not null;index" json:"source"`
	Status string  `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Lead model
func (Lead) TableName() string {
	return "admin_leads"
}
