package main

import (
	"github.com/hibiken/asynq"

	chatJob "caminodevida-backend/internal/domains/chat/job"
	"caminodevida-backend/internal/infrastructure/email"
	emailjob "caminodevida-backend/internal/infrastructure/email/job"
	"caminodevida-backend/internal/shared"
	"caminodevida-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	contactNotification *emailjob.ContactNotificationHandler
	decisionFollowup    *emailjob.DecisionFollowupHandler
	pruneChatSessions   *chatJob.PruneSessionsHandler
}

func initializeHandlers(c *container.Container, cfg *WorkerConfig) *HandlerRegistry {
	var emailSvc email.EmailService
	if cfg.EmailProvider == "resend" && cfg.ResendAPIKey != "" {
		emailSvc = email.NewResendEmailService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.NotifyTo)
	} else {
		emailSvc = email.NewDevEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.NotifyTo)
	}

	return &HandlerRegistry{
		contactNotification: emailjob.NewContactNotificationHandler(emailSvc),
		decisionFollowup:    emailjob.NewDecisionFollowupHandler(emailSvc),
		pruneChatSessions:   chatJob.NewPruneSessionsHandler(c.Redis.Client),
	}
}

// RegisterHandlers wires every task type to its handler.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeSendContactNotification, h.contactNotification.ProcessTask)
	mux.HandleFunc(shared.TypeSendDecisionFollowup, h.decisionFollowup.ProcessTask)
	mux.HandleFunc(shared.TypePruneChatSessions, h.pruneChatSessions.ProcessTask)
}
