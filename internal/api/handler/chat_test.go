package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomoki/kanjilens/internal/service"
)

func newChatRouter(opts ...service.ChatOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(service.NewChatService(opts...))

	r := gin.New()
	r.POST("/api/chat", h.Chat)
	return r
}

func TestChatHandler_Echo(t *testing.T) {
	// Force the template that embeds the message
	r := newChatRouter(service.WithRand(func(n int) int { return 0 }))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "おはよう"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success=true")
	}
	if !strings.Contains(resp.Response, "おはよう") {
		t.Errorf("expected echoed message in response, got %q", resp.Response)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("expected RFC3339 timestamp, got %q", resp.Timestamp)
	}
}

func TestChatHandler_MissingMessage(t *testing.T) {
	r := newChatRouter()

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"blank message", `{"message": ""}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler().Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", resp["status"])
	}
	if resp["service"] != "kanji-ocr-api" {
		t.Errorf("unexpected service name %v", resp["service"])
	}
	if resp["version"] != Version {
		t.Errorf("unexpected version %v", resp["version"])
	}
}
