package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testOrderID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func TestOrderConfirmedMessage(t *testing.T) {
	assert.Equal(t,
		"Your order has been confirmed. Thank you for choosing FitChef!",
		OrderConfirmedMessage())
}

func TestOrderReadyMessages(t *testing.T) {
	assert.Equal(t,
		"Your order is ready for dispatch. Dishes: Paneer Power Bowl, Dal Tadka.",
		OrderReadyUserMessage("Paneer Power Bowl, Dal Tadka"))

	// Admin copy carries the truncated order id.
	assert.Equal(t,
		"Order 6ba7b810... is ready for dispatch. Dishes: Dal Tadka.",
		OrderReadyAdminMessage(testOrderID, "Dal Tadka"))
}

func TestOutForDeliveryMessages(t *testing.T) {
	assert.Equal(t,
		"Your FitChef order #6ba7b810 is out for delivery and will arrive soon.",
		OutForDeliveryUserMessage(testOrderID))

	assert.Equal(t,
		"Order #6ba7b810 is out for delivery. Agent: Ravi Kumar.",
		OutForDeliveryAdminMessage(testOrderID, "Ravi Kumar"))
}
