package email

import (
	"context"
	"fmt"
	"net/smtp"
)

type smtpEmailService struct {
	smtpAddr  string
	smtpFrom  string
	teamInbox string
}

// NewDevEmailService delivers mail through a local SMTP relay such as
// Mailpit. Development only.
func NewDevEmailService(smtpHost, smtpPort, teamInbox string) EmailService {
	return &smtpEmailService{
		smtpAddr:  smtpHost + ":" + smtpPort,
		smtpFrom:  "noreply@caminodevida.dev",
		teamInbox: teamInbox,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	subject := fmt.Sprintf("[Contacto] %s", data.Subject)
	body := fmt.Sprintf("Nombre: %s\nEmail: %s\nPaís: %s\n\n%s",
		data.Name, data.Email, data.CountryCode, data.Message)
	return s.send(s.teamInbox, subject, body)
}

func (s *smtpEmailService) SendDecisionFollowup(ctx context.Context, data DecisionFollowupData) error {
	subject := "Gracias por tu decisión"
	body := fmt.Sprintf("Hola %s,\n\nGracias por compartir tu decisión con nosotros. Un miembro de nuestro equipo se pondrá en contacto contigo pronto.", data.Name)
	if data.Locale == "pt" {
		subject = "Obrigado pela sua decisão"
		body = fmt.Sprintf("Olá %s,\n\nObrigado por compartilhar sua decisão conosco. Um membro da nossa equipe entrará em contato com você em breve.", data.Name)
	}
	return s.send(data.Email, subject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
}
