package auth

import (
	"fmt"
	"strings"
)

// SignupRequest creates a pending site-user account.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	City            string `json:"city,omitempty"`
}

func (r SignupRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" || strings.TrimSpace(r.FullName) == "" {
		return fmt.Errorf("email, password and full name are required")
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("password and confirm password do not match")
	}
	if len(strings.TrimSpace(r.FullName)) < 2 {
		return fmt.Errorf("please enter your full name")
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	digits := PhoneDigits(r.Phone)
	if len(digits) < 10 || len(digits) > 15 {
		return fmt.Errorf("a valid mobile number (10-15 digits) is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("please provide a valid email address")
	}
	return nil
}

// PhoneDigits strips every non-digit rune from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LoginRequest is shared by all role sign-ins.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// TokenResponse is returned on successful sign-in.
type TokenResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	Actor interface{} `json:"actor,omitempty"`
}
