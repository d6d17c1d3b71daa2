package dish

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish is a catalog entry. Orders capture EffectivePrice at creation time;
// editing these prices never changes an existing order.
type Dish struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Category    *string `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Tags        *string `gorm:"type:text" json:"tags,omitempty"`

	BasePrice     decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"base_price"`
	DiscountPrice *decimal.Decimal `gorm:"type:numeric(10,2)" json:"discount_price,omitempty"`

	ImageURL *string `gorm:"type:varchar(2048)" json:"image_url,omitempty"`

	Ingredients *string `gorm:"type:text" json:"ingredients,omitempty"`
	Allergens   *string `gorm:"type:text" json:"allergens,omitempty"`
	PortionSize *string `gorm:"type:varchar(100)" json:"portion_size,omitempty"`

	Calories *int     `gorm:"type:int" json:"calories,omitempty"`
	Protein  *float64 `gorm:"type:numeric(6,2)" json:"protein,omitempty"`
	Carbs    *float64 `gorm:"type:numeric(6,2)" json:"carbs,omitempty"`
	Fats     *float64 `gorm:"type:numeric(6,2)" json:"fats,omitempty"`

	DietaryType          *string `gorm:"type:varchar(50)" json:"dietary_type,omitempty"`
	SubscriptionEligible bool    `gorm:"not null;default:false" json:"subscription_eligible"`
	Available            bool    `gorm:"not null;default:true;index" json:"available"`
	Featured             bool    `gorm:"not null;default:false" json:"featured"`

	ChefID *uint `gorm:"index" json:"chef_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Dish model
func (Dish) TableName() string {
	return "dishes"
}

// EffectivePrice is the unit price captured onto order items: the discount
// price when set, otherwise the base price.
func (d *Dish) EffectivePrice() decimal.Decimal {
	if d.DiscountPrice != nil {
		return *d.DiscountPrice
	}
	return d.BasePrice
}
