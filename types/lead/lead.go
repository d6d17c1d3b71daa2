package lead

import (
	"fmt"
	"strings"
)

// EarlyAccessRequest is the public early-access signup form.
type EarlyAccessRequest struct {
	Email string `json:"email"`
}

func (r EarlyAccessRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("please provide a valid email address")
	}
	return nil
}

// ConsultationRequest is the public free-consultation form.
type ConsultationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Goal          string `json:"goal,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Message       string `json:"message,omitempty"`
}

func (r ConsultationRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("please provide a valid email address")
	}
	return nil
}

// LeadUpsertRequest creates or updates a back-office lead.
type LeadUpsertRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Source string  `json:"source,omitempty"`
	Status string  `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

func (r LeadUpsertRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
