package order

import (
	"strings"
	"time"

	"fitchef-backend/models/agent"
	"fitchef-backend/models/chef"
	"fitchef-backend/models/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a customer's purchase request tracked through the fulfillment
// pipeline. delivery_address and delivery_instructions are snapshots taken
// at admin confirmation: later profile edits never touch an in-flight order.
type Order struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Nullable until admin confirmation; admin may reassign while Confirmed.
	ChefID *uint      `gorm:"index" json:"chef_id,omitempty"`
	Chef   *chef.Chef `gorm:"foreignKey:ChefID" json:"chef,omitempty"`

	// Nullable until logistics assigns an agent; required before Out for Delivery.
	AssignedAgentID *uint        `gorm:"index" json:"assigned_agent_id,omitempty"`
	AssignedAgent   *agent.Agent `gorm:"foreignKey:AssignedAgentID" json:"assigned_agent,omitempty"`

	Status        Status          `gorm:"type:varchar(30);not null;default:'Open'" json:"status"`
	AdminApproved bool            `gorm:"not null;default:false" json:"admin_approved"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	PaymentStatus string          `gorm:"type:varchar(30);not null;default:'pending'" json:"payment_status"`

	RequestedDeliveryDate time.Time `gorm:"type:date;not null" json:"requested_delivery_date"`

	// Snapshots populated by the admin confirm transition.
	DeliveryAddress      *string `gorm:"type:text" json:"delivery_address,omitempty"`
	DeliveryInstructions *string `gorm:"type:text" json:"delivery_instructions,omitempty"`
	DeliveryTimeSlot     *string `gorm:"type:varchar(100)" json:"delivery_time_slot,omitempty"`
	KitchenLocation      *string `gorm:"type:varchar(255)" json:"kitchen_location,omitempty"`

	// Each timestamp is written at most once, by its owning transition.
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	DispatchTime  *time.Time `json:"dispatch_time,omitempty"`
	DeliveredTime *time.Time `json:"delivered_time,omitempty"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name for the Order model
func (Order) TableName() string {
	return "user_orders"
}

// BeforeCreate assigns the opaque order identifier.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ShortID is the display form used in notification messages.
func (o *Order) ShortID() string {
	return ShortID(o.ID)
}

// ShortID truncates an order id to its first 8 characters for messages.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// DishNames returns the names of the dishes on the order, in item order.
// Items must be loaded with their Dish association.
func (o *Order) DishNames() []string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		if it.Dish.Name != "" {
			names = append(names, it.Dish.Name)
		}
	}
	return names
}

// DishSummary is the comma-joined human readable dish list, "N/A" when empty.
func (o *Order) DishSummary() string {
	names := o.DishNames()
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}
