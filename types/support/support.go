package support

import (
	"fmt"
	"strings"
)

// TicketCreateRequest opens a support ticket for the current user.
type TicketCreateRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r TicketCreateRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
