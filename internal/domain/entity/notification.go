package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of outbound notification.
type NotificationType string

const (
	NotificationTypeVerification  NotificationType = "verification"
	NotificationTypeStarterNudge  NotificationType = "starter_nudge"
	NotificationTypeInactivity    NotificationType = "inactivity_nudge"
	NotificationTypeMonthlyReport NotificationType = "monthly_report"
)

// NotificationStatus represents the delivery state of a notification.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification records one outbound email, whether it was delivered,
// and why it failed if it wasn't.
type Notification struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Type    NotificationType
	Status  NotificationStatus
	Subject string
	To      string

	Error  *string
	SentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNotification creates a pending notification record.
func NewNotification(userID uuid.UUID, kind NotificationType, subject, to string, now time.Time) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      kind,
		Status:    NotificationStatusPending,
		Subject:   subject,
		To:        to,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkSent transitions the notification to sent.
func (n *Notification) MarkSent(now time.Time) {
	n.Status = NotificationStatusSent
	n.SentAt = &now
	n.UpdatedAt = now
}

// MarkFailed transitions the notification to failed with the error text.
func (n *Notification) MarkFailed(reason string, now time.Time) {
	n.Status = NotificationStatusFailed
	n.Error = &reason
	n.UpdatedAt = now
}
