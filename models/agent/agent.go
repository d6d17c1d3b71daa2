package agent

import (
	"time"
)

const (
	AvailabilityAvailable  = "available"
	AvailabilityOnDelivery = "on_delivery"
	AvailabilityOffDuty    = "off_duty"
)

// Agent is a delivery agent assignable to Ready for Dispatch orders.
type Agent struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string  `gorm:"type:varchar(255);not null" json:"name"`
	Mobile             string  `gorm:"type:varchar(20);not null" json:"mobile"`
	VehicleNumber      *string `gorm:"type:varchar(50)" json:"vehicle_number,omitempty"`
	AvailabilityStatus string  `gorm:"type:varchar(20);not null;default:'available'" json:"availability_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Agent model
func (Agent) TableName() string {
	return "delivery_agents"
}
