package service

import "context"

// NotificationService defines the interface for sending push notifications.
// Assignment pushes a message to the delivery agent's registered device.
type NotificationService interface {
	// SendNotification sends a push notification to a single device token.
	SendNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
