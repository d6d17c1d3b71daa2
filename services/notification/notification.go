package notification

import (
	"fitchef-backend/logger"
	"fitchef-backend/models/notification"

	"gorm.io/gorm"
)

// Sink appends milestone notifications. Appends are best effort and run
// after the status transition commits: a failed insert is logged and
// swallowed, it never rolls a transition back.
type Sink struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Sink {
	return &Sink{db: db}
}

// NotifyUser appends a notification for a site customer.
func (s *Sink) NotifyUser(userID uint, orderID, message string) {
	n := notification.Notification{
		UserID:  &userID,
		OrderID: orderID,
		Message: message,
	}
	if err := s.db.Create(&n).Error; err != nil {
		logger.Error("Failed to append user notification: ", err)
	}
}

// NotifyAdmin appends a notification for an admin user.
func (s *Sink) NotifyAdmin(adminID uint, orderID, message string) {
	n := notification.Notification{
		AdminID: &adminID,
		OrderID: orderID,
		Message: message,
	}
	if err := s.db.Create(&n).Error; err != nil {
		logger.Error("Failed to append admin notification: ", err)
	}
}
