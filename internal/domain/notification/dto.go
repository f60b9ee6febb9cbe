package notification

import (
	"time"

	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

// CreateNotificationRequest carries the data needed to emit one
// notification. It is built by services, never bound from a client
// payload.
type CreateNotificationRequest struct {
	UserID           string
	Title            string
	Content          string
	Type             NotificationType
	RelatedRequestID *string
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}
	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: submitted, approved, rejected, modified",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NotificationResponse is the JSON shape returned to clients
type NotificationResponse struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Title            string           `json:"title"`
	Content          string           `json:"content"`
	Type             NotificationType `json:"type"`
	RelatedRequestID *string          `json:"relatedRequestId,omitempty"`
	IsRead           bool             `json:"isRead"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func (n *Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		UserID:           n.UserID,
		Title:            n.Title,
		Content:          n.Content,
		Type:             n.Type,
		RelatedRequestID: n.RelatedRequestID,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt,
	}
}

// NotificationListResponse bundles a page of notifications with the
// recipient's unread count
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// UnreadCountResponse reports how many notifications remain unread
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// SSETokenResponse carries a short-lived token used to open the
// notification event stream
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// SSEEvent represents a Server-Sent Event pushed to a subscriber
type SSEEvent struct {
	Event string               `json:"event"`
	Data  NotificationResponse `json:"data"`
}
