package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/om607397-wq/namaa/internal/models"
)

// HTTPChatProvider forwards chat turns to a configured completion endpoint.
// The endpoint contract is a POST of {history, message} answered with
// {reply}; the content is opaque to this service.
type HTTPChatProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPChatProvider creates a provider against endpoint. apiKey, when
// non-empty, is sent as a bearer token.
func NewHTTPChatProvider(endpoint, apiKey string) *HTTPChatProvider {
	return &HTTPChatProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Complete sends the prior transcript and the new user text, returning the
// model's reply.
func (p *HTTPChatProvider) Complete(ctx context.Context, history []models.ChatMessage, text string) (string, error) {
	payload, err := json.Marshal(chatRequest{History: history, Message: text})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat provider returned status %d", resp.StatusCode)
	}
	var body chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return body.Reply, nil
}
