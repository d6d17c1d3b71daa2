package feedback

import (
	"fmt"
)

// FeedbackCreateRequest rates a delivered order.
type FeedbackCreateRequest struct {
	OrderID  string `json:"order_id"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments,omitempty"`
}

func (r FeedbackCreateRequest) Validate() error {
	if r.OrderID == "" {
		return fmt.Errorf("order_id is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
