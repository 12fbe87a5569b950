package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomoki/kanjilens/internal/cache"
	"github.com/tomoki/kanjilens/internal/dictionary"
	"github.com/tomoki/kanjilens/internal/domain"
	"github.com/tomoki/kanjilens/internal/service"
)

type stubSearcher struct {
	results []dictionary.SearchResult
	err     error
}

func (s stubSearcher) Search(ctx context.Context, term string) ([]dictionary.SearchResult, error) {
	return s.results, s.err
}

func newLookupRouter(searcher service.Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewLookupService(searcher, cache.New[domain.Record](time.Hour), nil)
	h := NewLookupHandler(svc)

	r := gin.New()
	r.GET("/api/lookup/:term", h.Lookup)
	return r
}

func TestLookupHandler_Success(t *testing.T) {
	r := newLookupRouter(stubSearcher{
		results: []dictionary.SearchResult{
			{
				IsCommon: true,
				JLPT:     []string{"jlpt-n5"},
				Japanese: []dictionary.Reading{{Word: "日", Reading: "ひ"}},
				Senses: []dictionary.Sense{
					{EnglishDefinitions: []string{"day", "sun"}, PartsOfSpeech: []string{"Noun"}},
				},
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/lookup/%E6%97%A5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool          `json:"success"`
		Kanji   string        `json:"kanji"`
		Data    domain.Record `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Kanji != "日" {
		t.Errorf("expected kanji echo, got %q", resp.Kanji)
	}
	if resp.Data.JLPTLevel != "N5" {
		t.Errorf("expected N5, got %q", resp.Data.JLPTLevel)
	}
	if len(resp.Data.Meanings) != 2 {
		t.Errorf("expected 2 meanings, got %v", resp.Data.Meanings)
	}
}

func TestLookupHandler_NotFound(t *testing.T) {
	r := newLookupRouter(stubSearcher{results: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/lookup/xyzzy", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Errorf("expected success=false, got %v", resp["success"])
	}
	if msg, _ := resp["error"].(string); msg == "" {
		t.Error("expected an error message in the body")
	}
}

func TestLookupHandler_UpstreamFailure(t *testing.T) {
	r := newLookupRouter(stubSearcher{err: errors.New("dial tcp: connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/lookup/%E6%97%A5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	// The generic message must not leak upstream detail
	if msg, _ := resp["error"].(string); msg != "Failed to lookup kanji" {
		t.Errorf("unexpected error message: %q", msg)
	}
}
