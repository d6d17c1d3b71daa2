package user

import (
	"time"
)

// Signup approval states for a site user account.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User is a site customer. Signups start as pending and can only sign in
// once an admin approves them.
type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone        string     `gorm:"type:varchar(20);not null" json:"phone"`
	City         *string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Gender       *string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`

	// Address fields; snapshotted onto an order at admin confirmation.
	AddressLine1         *string `gorm:"type:varchar(255)" json:"address_line1,omitempty"`
	AddressLine2         *string `gorm:"type:varchar(255)" json:"address_line2,omitempty"`
	State                *string `gorm:"type:varchar(100)" json:"state,omitempty"`
	Pincode              *string `gorm:"type:varchar(20)" json:"pincode,omitempty"`
	DeliveryInstructions *string `gorm:"type:text" json:"delivery_instructions,omitempty"`

	// Fitness profile
	Height            *float64 `gorm:"type:numeric(5,2)" json:"height,omitempty"`
	Weight            *float64 `gorm:"type:numeric(5,2)" json:"weight,omitempty"`
	TargetWeight      *float64 `gorm:"type:numeric(5,2)" json:"target_weight,omitempty"`
	FitnessGoal       *string  `gorm:"type:varchar(100)" json:"fitness_goal,omitempty"`
	DietaryPreference *string  `gorm:"type:varchar(100)" json:"dietary_preference,omitempty"`
	Allergies         *string  `gorm:"type:text" json:"allergies,omitempty"`
	ProteinTarget     *int     `gorm:"type:int" json:"protein_target,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "site_users"
}

// FirstName is the leading word of the full name, used where a projection
// must not expose the customer's full identity.
func (u *User) FirstName() string {
	name := u.FullName
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			return name[:i]
		}
	}
	if name == "" {
		return "Customer"
	}
	return name
}
