package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/email"
	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Mailer delivers candidate notifications.
type Mailer interface {
	IsConfigured() bool
	SendNotification(data email.NotificationEmailData) error
}

type notificationUsecase struct {
	candidates domain.CandidateRepository
	mailer     Mailer
	validate   *validator.Validate
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(candidates domain.CandidateRepository, mailer Mailer, validate *validator.Validate) domain.NotificationUsecase {
	return &notificationUsecase{
		candidates: candidates,
		mailer:     mailer,
		validate:   validate,
	}
}

// SendNotification acknowledges a message for a known candidate. Mail is
// only delivered when SMTP is configured.
func (uc *notificationUsecase) SendNotification(ctx context.Context, req *domain.NotificationRequest) (*domain.NotificationReceipt, error) {
	req.CandidateID = strings.TrimSpace(req.CandidateID)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)

	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	candidate, err := uc.candidates.GetByID(ctx, req.CandidateID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return nil, err
	}

	receipt := &domain.NotificationReceipt{
		Sent:           true,
		NotificationID: uuid.NewString(),
	}
	log := logger.With("notifications").With("notification_id", receipt.NotificationID, "candidate_id", candidate.ID)

	if uc.mailer == nil || !uc.mailer.IsConfigured() {
		log.Info("SMTP not configured, notification acknowledged without delivery")
		return receipt, nil
	}

	data := email.NotificationEmailData{
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		Subject:        req.Subject,
		Body:           req.Body,
	}
	if err := uc.mailer.SendNotification(data); err != nil {
		log.Error("Failed to deliver notification", "error", err)
		return nil, apperror.New(http.StatusBadGateway, "Failed to deliver notification", err)
	}

	log.Info("Notification delivered")
	return receipt, nil
}
