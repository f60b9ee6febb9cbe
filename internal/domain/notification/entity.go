package notification

import (
	"time"
)

// NotificationType classifies the workflow transition a notification
// reports on
type NotificationType string

const (
	TypeSubmitted NotificationType = "submitted"
	TypeApproved  NotificationType = "approved"
	TypeRejected  NotificationType = "rejected"
	TypeModified  NotificationType = "modified"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeSubmitted,
		TypeApproved,
		TypeRejected,
		TypeModified,
	}
}

// IsValid reports whether t is a known notification type
func (t NotificationType) IsValid() bool {
	for _, known := range AllNotificationTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Notification represents an in-app notification addressed to one user
type Notification struct {
	ID               string
	UserID           string
	Title            string
	Content          string
	Type             NotificationType
	RelatedRequestID *string
	IsRead           bool
	CreatedAt        time.Time
}
