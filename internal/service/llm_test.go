package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMService(t *testing.T) {
	t.Run("should create service with API key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-api-key")
		t.Setenv("OPENAI_MODEL", "")
		t.Setenv("OPENAI_API_URL", "")

		service, err := NewLLMService()

		require.NoError(t, err)
		assert.NotNil(t, service)
		assert.Equal(t, "gpt-4o-mini", service.model)
		assert.Equal(t, defaultAPIURL, service.apiURL)
	})

	t.Run("should fail without API key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("OPENAI_API_KEY_FILE", "")

		service, err := NewLLMService()

		assert.Error(t, err)
		assert.Nil(t, service)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	})

	t.Run("should read API key from file", func(t *testing.T) {
		keyFile := t.TempDir() + "/key"
		require.NoError(t, os.WriteFile(keyFile, []byte("file-key\n"), 0o600))
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("OPENAI_API_KEY_FILE", keyFile)

		service, err := NewLLMService()

		require.NoError(t, err)
		assert.Equal(t, "file-key", service.apiKey)
	})
}

func TestLLMServiceComplete(t *testing.T) {
	t.Run("returns content and token usage", func(t *testing.T) {
		var gotReq Request
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"choices":[{"message":{"content":"{\"ok\":true}"}}],"usage":{"total_tokens":321}}`)
		}))
		defer ts.Close()

		svc := testLLMService(t, ts.URL)
		comp, err := svc.Complete(context.Background(), "system prompt", "user prompt")

		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, comp.Content)
		assert.Equal(t, 321, comp.TotalTokens)
		assert.Equal(t, "gpt-4o-mini", comp.Model)

		// One system and one user message, structured output requested.
		require.Len(t, gotReq.Messages, 2)
		assert.Equal(t, "system", gotReq.Messages[0].Role)
		assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
		assert.Equal(t, "user", gotReq.Messages[1].Role)
		assert.Equal(t, map[string]string{"type": "json_object"}, gotReq.ResponseFormat)
		assert.InDelta(t, completionTemperature, gotReq.Temperature, 0.001)
	})

	t.Run("transport failure is a GenerationError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()

		svc := testLLMService(t, ts.URL)
		comp, err := svc.Complete(context.Background(), "s", "u")

		assert.Nil(t, comp)
		var gErr *GenerationError
		require.ErrorAs(t, err, &gErr)
	})

	t.Run("non-200 status is a GenerationError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
		}))
		defer ts.Close()

		svc := testLLMService(t, ts.URL)
		_, err := svc.Complete(context.Background(), "s", "u")

		var gErr *GenerationError
		require.ErrorAs(t, err, &gErr)
		assert.Contains(t, gErr.Message, "429")
	})

	t.Run("empty choices is a GenerationError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"choices":[]}`)
		}))
		defer ts.Close()

		svc := testLLMService(t, ts.URL)
		_, err := svc.Complete(context.Background(), "s", "u")

		var gErr *GenerationError
		require.ErrorAs(t, err, &gErr)
		assert.Contains(t, gErr.Message, "no response")
	})
}

func testLLMService(t *testing.T, url string) *LLMService {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-api-key")
	t.Setenv("OPENAI_API_URL", url)
	t.Setenv("OPENAI_MODEL", "")

	svc, err := NewLLMService()
	require.NoError(t, err)
	return svc
}
