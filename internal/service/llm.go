package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIURL = "https://api.openai.com/v1/chat/completions"
	defaultModel  = "gpt-4o-mini"

	// Moderate randomness: the soft preferences tolerate variety, the
	// absolute rules are enforced by instruction and do not depend on
	// temperature.
	completionTemperature = 0.7
)

// Completion is the result of one backend call.
type Completion struct {
	Content     string
	Model       string
	TotalTokens int
}

// CompletionClient abstracts the chat-completions backend so orchestrators
// can be exercised without network access.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
}

// LLMService calls an OpenAI-compatible chat-completions API.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates an LLMService from the process environment. The
// API key comes from OPENAI_API_KEY or, as a fallback, from the file named
// by OPENAI_API_KEY_FILE.
func NewLLMService() (*LLMService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completions API request.
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

// Complete sends the prompt pair to the backend once and returns the raw
// response text plus usage. No retry is attempted; any transport or API
// failure is reported as a *GenerationError.
func (s *LLMService) Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    completionTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &GenerationError{Message: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &GenerationError{Message: "failed to create request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &GenerationError{Message: "failed to reach completion API", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Message: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &GenerationError{Message: fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, string(body))}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &GenerationError{Message: "failed to decode response", Err: err}
	}

	if len(result.Choices) == 0 {
		return nil, &GenerationError{Message: "no response from API"}
	}

	return &Completion{
		Content:     result.Choices[0].Message.Content,
		Model:       s.model,
		TotalTokens: result.Usage.TotalTokens,
	}, nil
}
