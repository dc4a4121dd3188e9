package main

import (
	"log"

	"caminodevida-backend/internal/shared/utils"
)

// WorkerConfig holds the worker's own configuration. The rest comes
// from the shared container.
type WorkerConfig struct {
	RedisAddr     string
	EmailProvider string
	ResendAPIKey  string
	EmailFrom     string
	NotifyTo      string
	SMTPHost      string
	SMTPPort      string
}

func loadWorkerConfig() *WorkerConfig {
	cfg := &WorkerConfig{
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		EmailProvider: utils.GetEnvVariable("EMAIL_PROVIDER", "resend"),
		ResendAPIKey:  utils.GetEnvVariable("RESEND_API_KEY", ""),
		EmailFrom:     utils.GetEnvVariable("EMAIL_FROM", "Camino de Vida <noreply@caminodevida.com>"),
		NotifyTo:      utils.GetEnvVariable("EMAIL_NOTIFY_TO", "equipo@caminodevida.com"),
		SMTPHost:      utils.GetEnvVariable("SMTP_HOST", "localhost"),
		SMTPPort:      utils.GetEnvVariable("SMTP_PORT", "1025"),
	}

	log.Printf("[Config] Redis: %s, Email provider: %s", cfg.RedisAddr, cfg.EmailProvider)

	return cfg
}
