package notification

import (
	"fmt"

	"fitchef-backend/models/order"
)

// Message builders for order milestones. Delivered intentionally has no
// builder: the mobile app shows delivery confirmation in the order view
// itself, so no notification is appended for that transition.

func OrderConfirmedMessage() string {
	return "Your order has been confirmed. Thank you for choosing FitChef!"
}

func OrderReadyUserMessage(dishSummary string) string {
	return fmt.Sprintf("Your order is ready for dispatch. Dishes: %s.", dishSummary)
}

func OrderReadyAdminMessage(orderID, dishSummary string) string {
	return fmt.Sprintf("Order %s... is ready for dispatch. Dishes: %s.", order.ShortID(orderID), dishSummary)
}

func OutForDeliveryUserMessage(orderID string) string {
	return fmt.Sprintf("Your FitChef order #%s is out for delivery and will arrive soon.", order.ShortID(orderID))
}

func OutForDeliveryAdminMessage(orderID, agentName string) string {
	return fmt.Sprintf("Order #%s is out for delivery. Agent: %s.", order.ShortID(orderID), agentName)
}
