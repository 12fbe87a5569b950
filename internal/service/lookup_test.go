package service

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomoki/kanjilens/internal/cache"
	"github.com/tomoki/kanjilens/internal/dictionary"
	"github.com/tomoki/kanjilens/internal/domain"
	"github.com/tomoki/kanjilens/internal/logger"
)

// fakeSearcher counts calls and replays canned results per term.
type fakeSearcher struct {
	calls   int
	results map[string][]dictionary.SearchResult
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, term string) ([]dictionary.SearchResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results[term], nil
}

func singleResult(word, reading, meaning string) []dictionary.SearchResult {
	return []dictionary.SearchResult{
		{
			Japanese: []dictionary.Reading{{Word: word, Reading: reading}},
			Senses:   []dictionary.Sense{{EnglishDefinitions: []string{meaning}, PartsOfSpeech: []string{"Noun"}}},
		},
	}
}

func TestLookupService_CacheMissThenHit(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string][]dictionary.SearchResult{
			"日": singleResult("日", "ひ", "day"),
		},
	}
	svc := NewLookupService(searcher, cache.New[domain.Record](time.Hour), nil)

	first, err := svc.Lookup(context.Background(), "日")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.calls != 1 {
		t.Errorf("expected exactly one outbound call, got %d", searcher.calls)
	}

	second, err := svc.Lookup(context.Background(), "日")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.calls != 1 {
		t.Errorf("expected cached lookup to make zero calls, got %d total", searcher.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical record from cache:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestLookupService_TTLExpiryRefetches(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	searcher := &fakeSearcher{
		results: map[string][]dictionary.SearchResult{
			"本": singleResult("本", "ほん", "book"),
		},
	}
	svc := NewLookupService(searcher, cache.New(time.Hour, cache.WithClock[domain.Record](clock)), nil)

	if _, err := svc.Lookup(context.Background(), "本"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(30 * time.Minute)
	if _, err := svc.Lookup(context.Background(), "本"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.calls != 1 {
		t.Fatalf("expected lookup within TTL to be served from cache, got %d calls", searcher.calls)
	}

	now = now.Add(31 * time.Minute)
	if _, err := svc.Lookup(context.Background(), "本"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.calls != 2 {
		t.Errorf("expected a new outbound call after TTL, got %d calls", searcher.calls)
	}
}

func TestLookupService_ExactTermMatch(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string][]dictionary.SearchResult{
			"語":  singleResult("語", "ご", "language"),
			"語 ": singleResult("語", "ご", "language"),
		},
	}
	svc := NewLookupService(searcher, cache.New[domain.Record](time.Hour), nil)

	svc.Lookup(context.Background(), "語")
	svc.Lookup(context.Background(), "語 ")

	// No normalization: the trailing-space variant is a separate key
	if searcher.calls != 2 {
		t.Errorf("expected no term normalization, got %d calls", searcher.calls)
	}
}

func TestLookupService_NotFound(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]dictionary.SearchResult{}}
	svc := NewLookupService(searcher, cache.New[domain.Record](time.Hour), nil)

	_, err := svc.Lookup(context.Background(), "存在しない")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Empty results are not cached; the next lookup hits upstream again
	svc.Lookup(context.Background(), "存在しない")
	if searcher.calls != 2 {
		t.Errorf("expected not-found lookups to stay uncached, got %d calls", searcher.calls)
	}
}

func TestLookupService_UpstreamError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("connection refused")}
	svc := NewLookupService(searcher, cache.New[domain.Record](time.Hour), nil)

	_, err := svc.Lookup(context.Background(), "日")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("upstream failure must not be reported as not-found")
	}
}

func TestLookupService_InjectedLoggerUsedWithoutContextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&logger.Config{
		Level:       "debug",
		Format:      "json",
		Output:      &buf,
		ServiceName: "test",
		Environment: "local",
	})

	searcher := &fakeSearcher{
		results: map[string][]dictionary.SearchResult{
			"日": singleResult("日", "ひ", "day"),
		},
	}
	svc := NewLookupService(searcher, cache.New[domain.Record](time.Hour), log)

	// The context carries no logger, so the injected one must receive
	// both the fetch log and the cache-hit log.
	if _, err := svc.Lookup(context.Background(), "日"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Fetched dictionary entry") {
		t.Errorf("expected fetch log on injected logger, got: %s", buf.String())
	}

	buf.Reset()
	if _, err := svc.Lookup(context.Background(), "日"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Cache hit") {
		t.Errorf("expected cache-hit log on injected logger, got: %s", buf.String())
	}
}
