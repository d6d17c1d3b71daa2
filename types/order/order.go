package order

import (
	"fmt"
)

// CreateOrderRequest is the customer cart submission.
type CreateOrderRequest struct {
	Items                 []OrderItemRequest `json:"items"`
	RequestedDeliveryDate string             `json:"requested_delivery_date"`
}

type OrderItemRequest struct {
	DishID   uint `json:"dish_id"`
	Quantity int  `json:"quantity"`
}

func (r CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for _, it := range r.Items {
		if it.DishID == 0 {
			return fmt.Errorf("dish_id is required for every item")
		}
		if it.Quantity < 1 {
			return fmt.Errorf("quantity must be at least 1")
		}
	}
	if r.RequestedDeliveryDate == "" {
		return fmt.Errorf("please select a delivery date (at least 24 hours from now)")
	}
	return nil
}

// ConfirmOrderRequest is the optional admin confirm body. When ChefID is
// nil the first available chef is assigned.
type ConfirmOrderRequest struct {
	ChefID           *uint  `json:"chef_id,omitempty"`
	DeliveryTimeSlot string `json:"delivery_time_slot,omitempty"`
}

// AssignChefRequest reassigns the chef on a Confirmed order.
type AssignChefRequest struct {
	ChefID uint `json:"chef_id"`
}

func (r AssignChefRequest) Validate() error {
	if r.ChefID == 0 {
		return fmt.Errorf("chef_id is required")
	}
	return nil
}

// AssignAgentRequest sets the delivery agent on a Ready for Dispatch order.
type AssignAgentRequest struct {
	AgentID uint `json:"agent_id"`
}

func (r AssignAgentRequest) Validate() error {
	if r.AgentID == 0 {
		return fmt.Errorf("agent_id is required")
	}
	return nil
}
