package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"caminodevida-backend/internal/config"
	"caminodevida-backend/internal/domains/chat"
	"caminodevida-backend/internal/domains/flags"
	"caminodevida-backend/pkg/logger"
)

const sessionKeyPrefix = "chat:session:"

const systemPromptES = "Eres un consejero espiritual del ministerio Camino de Vida. Responde con calidez, brevedad y fundamento bíblico. Si la persona expresa una decisión de fe, invítala a llenar el formulario de decisión del sitio. Nunca des consejo médico ni legal."

const systemPromptPT = "Você é um conselheiro espiritual do ministério Caminho de Vida. Responda com carinho, brevidade e fundamento bíblico. Se a pessoa expressar uma decisão de fé, convide-a a preencher o formulário de decisão do site. Nunca dê conselhos médicos ou jurídicos."

type chatService struct {
	cfg        config.ChatConfig
	redis      *redis.Client
	flagsCache *flags.Cache
	httpClient *http.Client
}

func NewChatService(cfg config.ChatConfig, redisClient *redis.Client, flagsCache *flags.Cache) chat.Service {
	return &chatService{
		cfg:        cfg,
		redis:      redisClient,
		flagsCache: flagsCache,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// completionRequest is the OpenAI-compatible wire format the provider
// expects.
type completionRequest struct {
	Model    string         `json:"model"`
	Messages []chat.Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chat.Message `json:"message"`
	} `json:"choices"`
}

func (s *chatService) Send(ctx context.Context, visitorID, countryCode, locale string, req chat.SendMessageRequest) (*chat.Reply, error) {
	if visitorID == "" {
		return nil, chat.ErrNoVisitor
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", chat.ErrValidation, err)
	}
	if !s.flagsCache.IsEnabled(ctx, "chat", countryCode) {
		return nil, chat.ErrDisabled
	}

	degraded := false
	session, err := s.loadSession(ctx, visitorID)
	if err != nil {
		// A Redis outage downgrades to a stateless turn instead of
		// refusing the conversation.
		logger.Warn("Chat session load failed, continuing stateless", map[string]interface{}{
			"error": err.Error(),
		})
		degraded = true
		session = &chat.Session{VisitorID: visitorID, Locale: locale}
	}

	session.Messages = append(session.Messages, chat.Message{
		Role:    chat.RoleUser,
		Content: req.Message,
	})
	session.Messages = trimHistory(session.Messages, s.cfg.MaxTurns)

	reply, err := s.complete(ctx, locale, session.Messages)
	if err != nil {
		return nil, err
	}

	session.Messages = append(session.Messages, *reply)
	session.Locale = locale
	session.UpdatedAt = time.Now().UTC()

	if !degraded {
		if err := s.saveSession(ctx, session); err != nil {
			logger.Warn("Chat session save failed", map[string]interface{}{
				"error": err.Error(),
			})
			degraded = true
		}
	}

	return &chat.Reply{Message: *reply, Degraded: degraded}, nil
}

func (s *chatService) complete(ctx context.Context, locale string, history []chat.Message) (*chat.Message, error) {
	prompt := systemPromptES
	if locale == "pt" {
		prompt = systemPromptPT
	}

	messages := make([]chat.Message, 0, len(history)+1)
	messages = append(messages, chat.Message{Role: chat.RoleSystem, Content: prompt})
	messages = append(messages, history...)

	body, err := json.Marshal(completionRequest{
		Model:    s.cfg.Model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Chat provider request failed", err)
		return nil, chat.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Chat provider returned non-200", fmt.Errorf("status %d", resp.StatusCode))
		return nil, chat.ErrUpstream
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		logger.Error("Chat provider response decode failed", err)
		return nil, chat.ErrUpstream
	}
	if len(completion.Choices) == 0 {
		return nil, chat.ErrUpstream
	}

	msg := completion.Choices[0].Message
	msg.Role = chat.RoleAssistant
	return &msg, nil
}

func (s *chatService) History(ctx context.Context, visitorID string) (*chat.Session, error) {
	if visitorID == "" {
		return nil, chat.ErrNoVisitor
	}

	session, err := s.loadSession(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *chatService) Reset(ctx context.Context, visitorID string) error {
	if visitorID == "" {
		return chat.ErrNoVisitor
	}
	return s.redis.Del(ctx, sessionKeyPrefix+visitorID).Err()
}

func (s *chatService) loadSession(ctx context.Context, visitorID string) (*chat.Session, error) {
	raw, err := s.redis.Get(ctx, sessionKeyPrefix+visitorID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &chat.Session{VisitorID: visitorID, Messages: []chat.Message{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load chat session: %w", err)
	}

	var session chat.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt session is dropped rather than wedging the visitor.
		return &chat.Session{VisitorID: visitorID, Messages: []chat.Message{}}, nil
	}
	return &session, nil
}

func (s *chatService) saveSession(ctx context.Context, session *chat.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal chat session: %w", err)
	}

	ttl := time.Duration(s.cfg.SessionTTL) * time.Minute
	if err := s.redis.Set(ctx, sessionKeyPrefix+session.VisitorID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("save chat session: %w", err)
	}
	return nil
}

// trimHistory keeps the most recent maxTurns user/assistant pairs so
// the upstream context window stays bounded.
func trimHistory(messages []chat.Message, maxTurns int) []chat.Message {
	if maxTurns <= 0 {
		return messages
	}
	limit := maxTurns * 2
	if len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}
