package domain

import "context"

// NotificationRequest is a message for a candidate
type NotificationRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Body        string `json:"body" validate:"required,max=10000"`
}

// NotificationReceipt acknowledges an accepted notification
type NotificationReceipt struct {
	Sent           bool   `json:"sent"`
	NotificationID string `json:"notification_id"`
}

type NotificationUsecase interface {
	SendNotification(ctx context.Context, req *NotificationRequest) (*NotificationReceipt, error)
}
