package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"caminodevida-backend/internal/infrastructure/email"
)

// ContactNotificationHandler delivers contact form submissions to the
// ministry team inbox.
type ContactNotificationHandler struct {
	emailService email.EmailService
}

func NewContactNotificationHandler(emailService email.EmailService) *ContactNotificationHandler {
	return &ContactNotificationHandler{emailService: emailService}
}

func (h *ContactNotificationHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.ContactNotificationData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal contact notification payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.emailService.SendContactNotification(ctx, payload); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to send contact notification")
		return fmt.Errorf("send contact notification: %w", err)
	}

	log.Info().Str("email", payload.Email).Msg("Contact notification sent")
	return nil
}

// DecisionFollowupHandler sends the followup email after a decision
// form submission.
type DecisionFollowupHandler struct {
	emailService email.EmailService
}

func NewDecisionFollowupHandler(emailService email.EmailService) *DecisionFollowupHandler {
	return &DecisionFollowupHandler{emailService: emailService}
}

func (h *DecisionFollowupHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.DecisionFollowupData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal decision followup payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.emailService.SendDecisionFollowup(ctx, payload); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Str("kind", payload.Kind).Msg("Failed to send decision followup")
		return fmt.Errorf("send decision followup: %w", err)
	}

	log.Info().Str("email", payload.Email).Str("kind", payload.Kind).Msg("Decision followup sent")
	return nil
}
