// internal/domain/chat/service.go
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/config"
)

// Request is a single chat message from the widget
type Request struct {
	Message string `json:"message" binding:"required"`
}

// Response is the AI service's reply
type Response struct {
	Reply string `json:"reply"`
}

// Service proxies chat messages to the external AI nutrition-advice service
type Service struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logrus.Entry
}

// NewService creates a new chat proxy service
func NewService(cfg *config.Config, log *logrus.Entry) *Service {
	return &Service{
		baseURL: cfg.Chatbot.BaseURL,
		apiKey:  cfg.Chatbot.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Chatbot.Timeout,
		},
		log: log,
	}
}

// Enabled reports whether a chat backend is configured
func (s *Service) Enabled() bool {
	return s.baseURL != ""
}

// Ask forwards a message to the AI service and returns its reply
func (s *Service) Ask(ctx context.Context, req *Request) (*Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		s.log.WithField("status", resp.StatusCode).Warn("Chat service rejected request")
		return nil, fmt.Errorf("chat service returned status %d: %s", resp.StatusCode, body)
	}

	var reply Response
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode chat reply: %w", err)
	}

	return &reply, nil
}
