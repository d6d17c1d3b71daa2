package admin

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AdminOrderCreateRequest creates a legacy back-office order. OrderNumber
// is unique; duplicates are reported as a conflict.
type AdminOrderCreateRequest struct {
	CustomerID   *uint   `json:"customer_id,omitempty"`
	ChefID       *uint   `json:"chef_id,omitempty"`
	OrderNumber  string  `json:"order_number"`
	Status       string  `json:"status,omitempty"`
	TotalAmount  *string `json:"total_amount,omitempty"`
	OrderDate    string  `json:"order_date,omitempty"`
	DeliveryDate string  `json:"delivery_date,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r AdminOrderCreateRequest) Validate() error {
	if strings.TrimSpace(r.OrderNumber) == "" {
		return fmt.Errorf("order_number required")
	}
	if r.TotalAmount != nil {
		if _, err := decimal.NewFromString(*r.TotalAmount); err != nil {
			return fmt.Errorf("invalid total_amount")
		}
	}
	return nil
}

// AdminOrderUpdateRequest patches a legacy order; nil fields keep current
// values.
type AdminOrderUpdateRequest struct {
	CustomerID   *uint   `json:"customer_id,omitempty"`
	ChefID       *uint   `json:"chef_id,omitempty"`
	Status       *string `json:"status,omitempty"`
	TotalAmount  *string `json:"total_amount,omitempty"`
	OrderDate    *string `json:"order_date,omitempty"`
	DeliveryDate *string `json:"delivery_date,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ChefUpsertRequest creates or updates an operational chef record.
type ChefUpsertRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password,omitempty"`
	Name            string  `json:"name"`
	Phone           *string `json:"phone,omitempty"`
	Specialty       *string `json:"specialty,omitempty"`
	KitchenLocation *string `json:"kitchen_location,omitempty"`
	Status          string  `json:"status,omitempty"`
}

func (r ChefUpsertRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// AgentUpsertRequest creates or updates a delivery agent.
type AgentUpsertRequest struct {
	Name               string  `json:"name"`
	Mobile             string  `json:"mobile"`
	VehicleNumber      *string `json:"vehicle_number,omitempty"`
	AvailabilityStatus string  `json:"availability_status,omitempty"`
}

func (r AgentUpsertRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Mobile) == "" {
		return fmt.Errorf("mobile is required")
	}
	return nil
}

// DishUpsertRequest creates or updates a catalog dish. Image handling is a
// plain URL string.
type DishUpsertRequest struct {
	Name                 string   `json:"name"`
	Description          *string  `json:"description,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Tags                 *string  `json:"tags,omitempty"`
	BasePrice            string   `json:"base_price"`
	DiscountPrice        *string  `json:"discount_price,omitempty"`
	ImageURL             *string  `json:"image_url,omitempty"`
	Ingredients          *string  `json:"ingredients,omitempty"`
	Allergens            *string  `json:"allergens,omitempty"`
	PortionSize          *string  `json:"portion_size,omitempty"`
	Calories             *int     `json:"calories,omitempty"`
	Protein              *float64 `json:"protein,omitempty"`
	Carbs                *float64 `json:"carbs,omitempty"`
	Fats                 *float64 `json:"fats,omitempty"`
	DietaryType          *string  `json:"dietary_type,omitempty"`
	SubscriptionEligible bool     `json:"subscription_eligible,omitempty"`
	Available            *bool    `json:"available,omitempty"`
	Featured             bool     `json:"featured,omitempty"`
	ChefID               *uint    `json:"chef_id,omitempty"`
}

func (r DishUpsertRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	price, err := decimal.NewFromString(r.BasePrice)
	if err != nil || price.IsNegative() {
		return fmt.Errorf("base_price must be a non-negative number")
	}
	if r.DiscountPrice != nil {
		if _, err := decimal.NewFromString(*r.DiscountPrice); err != nil {
			return fmt.Errorf("invalid discount_price")
		}
	}
	return nil
}

// PaymentCreateRequest records a bookkeeping payment row.
type PaymentCreateRequest struct {
	CustomerID *uint   `json:"customer_id,omitempty"`
	OrderID    *uint   `json:"order_id,omitempty"`
	Amount     string  `json:"amount"`
	Method     string  `json:"method"`
	Status     string  `json:"status,omitempty"`
	PaidAt     string  `json:"paid_at,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r PaymentCreateRequest) Validate() error {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || !amount.IsPositive() {
		return fmt.Errorf("amount must be a positive number")
	}
	if strings.TrimSpace(r.Method) == "" {
		return fmt.Errorf("method is required")
	}
	return nil
}
