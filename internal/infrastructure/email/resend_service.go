package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"caminodevida-backend/pkg/logger"
)

type resendEmailService struct {
	client    *resend.Client
	from      string
	teamInbox string
}

// NewResendEmailService sends transactional mail through the Resend API.
// Used in production; dev environments fall back to SMTP.
func NewResendEmailService(apiKey, from, teamInbox string) EmailService {
	return &resendEmailService{
		client:    resend.NewClient(apiKey),
		from:      from,
		teamInbox: teamInbox,
	}
}

func (s *resendEmailService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	subject := fmt.Sprintf("[Contacto] %s", data.Subject)
	html := fmt.Sprintf(`<p><strong>Nombre:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>País:</strong> %s</p>
<p><strong>Mensaje:</strong></p>
<p>%s</p>`, data.Name, data.Email, data.CountryCode, data.Message)

	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.teamInbox},
		ReplyTo: data.Email,
		Subject: subject,
		Html:    html,
	}

	sent, err := s.client.Emails.Send(req)
	if err != nil {
		return fmt.Errorf("resend contact notification: %w", err)
	}

	logger.Info("Contact notification sent", map[string]interface{}{
		"resend_id": sent.Id,
	})
	return nil
}

func (s *resendEmailService) SendDecisionFollowup(ctx context.Context, data DecisionFollowupData) error {
	subject := "Gracias por tu decisión"
	body := fmt.Sprintf(`<p>Hola %s,</p>
<p>Gracias por compartir tu decisión con nosotros. Un miembro de nuestro equipo se pondrá en contacto contigo pronto.</p>
<p>Equipo Camino de Vida</p>`, data.Name)
	if data.Locale == "pt" {
		subject = "Obrigado pela sua decisão"
		body = fmt.Sprintf(`<p>Olá %s,</p>
<p>Obrigado por compartilhar sua decisão conosco. Um membro da nossa equipe entrará em contato com você em breve.</p>
<p>Equipe Caminho de Vida</p>`, data.Name)
	}

	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{data.Email},
		Bcc:     []string{s.teamInbox},
		Subject: subject,
		Html:    body,
	}

	sent, err := s.client.Emails.Send(req)
	if err != nil {
		return fmt.Errorf("resend decision followup: %w", err)
	}

	logger.Info("Decision followup sent", map[string]interface{}{
		"resend_id": sent.Id,
		"kind":      data.Kind,
	})
	return nil
}
