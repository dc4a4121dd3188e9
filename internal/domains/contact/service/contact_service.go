package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/xuri/excelize/v2"

	"caminodevida-backend/internal/domains/contact"
	"caminodevida-backend/internal/infrastructure/email"
	"caminodevida-backend/internal/shared"
	"caminodevida-backend/pkg/logger"
)

// Export reads all rows in pages of this size.
const exportPageSize = 500

type contactService struct {
	repo  contact.Repository
	asynq *asynq.Client
}

func NewContactService(repo contact.Repository, asynqClient *asynq.Client) contact.Service {
	return &contactService{
		repo:  repo,
		asynq: asynqClient,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req contact.CreateMessageRequest, sub contact.SubmissionContext) (*contact.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", contact.ErrValidation, err)
	}

	m := &contact.Message{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		CountryCode: sub.CountryCode,
		Subject:     req.Subject,
		Message:     req.Message,
		VisitorID:   sub.VisitorID,
	}

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	// The submission is already persisted, so a queue outage must not
	// fail the request. The team can still read it in the admin console.
	s.enqueue(shared.TypeSendContactNotification, email.ContactNotificationData{
		Name:        m.Name,
		Email:       m.Email,
		CountryCode: m.CountryCode,
		Subject:     m.Subject,
		Message:     m.Message,
	})

	logger.Info("Contact message received", map[string]interface{}{
		"message_id": m.ID.String(),
		"country":    m.CountryCode,
	})
	return m, nil
}

func (s *contactService) SubmitDecision(ctx context.Context, req contact.CreateDecisionRequest, sub contact.SubmissionContext) (*contact.Decision, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", contact.ErrValidation, err)
	}

	d := &contact.Decision{
		ID:          uuid.New(),
		Kind:        req.Kind,
		Name:        req.Name,
		Email:       req.Email,
		CountryCode: sub.CountryCode,
		Locale:      sub.Locale,
		Message:     req.Message,
		VisitorID:   sub.VisitorID,
	}

	if err := s.repo.CreateDecision(ctx, d); err != nil {
		return nil, err
	}

	s.enqueue(shared.TypeSendDecisionFollowup, email.DecisionFollowupData{
		Name:        d.Name,
		Email:       d.Email,
		CountryCode: d.CountryCode,
		Kind:        d.Kind,
		Locale:      d.Locale,
	})

	logger.Info("Decision received", map[string]interface{}{
		"decision_id": d.ID.String(),
		"kind":        d.Kind,
		"country":     d.CountryCode,
	})
	return d, nil
}

func (s *contactService) enqueue(taskType string, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal task payload", err)
		return
	}

	task := asynq.NewTask(taskType, b)
	if _, err := s.asynq.Enqueue(task, asynq.Queue(shared.QueueHigh)); err != nil {
		logger.Error("Failed to enqueue "+taskType, err)
	}
}

func (s *contactService) ListMessages(ctx context.Context, limit, offset int) ([]contact.Message, int64, error) {
	return s.repo.ListMessages(ctx, normalizeLimit(limit), max(offset, 0))
}

func (s *contactService) ListDecisions(ctx context.Context, kind string, limit, offset int) ([]contact.Decision, int64, error) {
	return s.repo.ListDecisions(ctx, kind, normalizeLimit(limit), max(offset, 0))
}

func (s *contactService) ExportDecisionsToExcel(ctx context.Context, kind string) (*excelize.File, error) {
	var all []contact.Decision
	for offset := 0; ; offset += exportPageSize {
		page, _, err := s.repo.ListDecisions(ctx, kind, exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	return buildDecisionsExcelFile(all)
}

func buildDecisionsExcelFile(decisions []contact.Decision) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Decisions"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"ID", "Kind", "Name", "Email", "Country", "Locale", "Message", "Submitted At"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	}

	for i, d := range decisions {
		rowNum := i + 2
		cell := func(col int) string {
			c, _ := excelize.CoordinatesToCellName(col, rowNum)
			return c
		}

		f.SetCellValue(sheetName, cell(1), d.ID.String())
		f.SetCellValue(sheetName, cell(2), d.Kind)
		f.SetCellValue(sheetName, cell(3), d.Name)
		f.SetCellValue(sheetName, cell(4), d.Email)
		f.SetCellValue(sheetName, cell(5), d.CountryCode)
		f.SetCellValue(sheetName, cell(6), d.Locale)
		f.SetCellValue(sheetName, cell(7), d.Message)
		f.SetCellValue(sheetName, cell(8), d.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return f, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
