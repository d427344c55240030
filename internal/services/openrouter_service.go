package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterModel   = "meta-llama/llama-3.1-8b-instruct:free"
)

type OpenRouterService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenRouterService(apiKey string) *OpenRouterService {
	return &OpenRouterService{
		apiKey:     apiKey,
		baseURL:    openRouterBaseURL,
		httpClient: http.DefaultClient,
	}
}

// NewOpenRouterServiceWithBaseURL exists for tests against a local server.
func NewOpenRouterServiceWithBaseURL(apiKey, baseURL string) *OpenRouterService {
	s := NewOpenRouterService(apiKey)
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat forwards the assembled prompt to the chat completion API. Every
// failure is folded into the returned message; the caller never sees an
// error status from this service.
func (s *OpenRouterService) Chat(ctx context.Context, prompt string) string {
	if s.apiKey == "" {
		return "OpenRouter API key not configured. Please set OPENROUTER_API_KEY."
	}

	payload := chatCompletionRequest{
		Model: openRouterModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a yoga assistant. Be concise and actionable."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("Chat service error: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Sprintf("Chat service error: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://example.com")
	req.Header.Set("X-Title", "Samartha Yoga")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf("Chat service error: %v", err)
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&completion); err != nil {
		return fmt.Sprintf("Chat service error: %v", err)
	}
	if completion.Error != nil && completion.Error.Message != "" {
		return "Chat service error: " + completion.Error.Message
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Sprintf("Chat service error: status %d", resp.StatusCode)
	}
	if len(completion.Choices) == 0 {
		return "No response"
	}
	return completion.Choices[0].Message.Content
}
