package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomoki/kanjilens/internal/cache"
	"github.com/tomoki/kanjilens/internal/dictionary"
	"github.com/tomoki/kanjilens/internal/domain"
	"github.com/tomoki/kanjilens/internal/logger"
)

// ErrNotFound indicates the upstream dictionary has no entry for a term.
var ErrNotFound = errors.New("no dictionary entry found")

// Searcher queries the upstream dictionary API.
type Searcher interface {
	Search(ctx context.Context, term string) ([]dictionary.SearchResult, error)
}

// LookupService answers dictionary lookups from a TTL cache, falling back
// to the upstream API on a miss. Terms are matched exactly: no case
// folding, no trimming.
type LookupService struct {
	searcher Searcher
	cache    *cache.TTLCache[domain.Record]
	logger   *logger.Logger
}

// NewLookupService creates a lookup service.
// Parameters:
//   - searcher: upstream dictionary client.
//   - recordCache: cache for reshaped records.
//   - log: logger instance.
// Returns:
//   - *LookupService: initialized service.
func NewLookupService(searcher Searcher, recordCache *cache.TTLCache[domain.Record], log *logger.Logger) *LookupService {
	if log == nil {
		log = logger.GetDefault()
	}
	return &LookupService{
		searcher: searcher,
		cache:    recordCache,
		logger:   log,
	}
}

// withLogger seeds ctx with the service logger when no request logger is
// attached, so the log calls below pick it up via FromContext.
func (s *LookupService) withLogger(ctx context.Context) context.Context {
	if logger.InContext(ctx) == nil {
		ctx = s.logger.WithContext(ctx)
	}
	return ctx
}

// Lookup returns dictionary information for term.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - term: character or word to look up; used verbatim as cache key and
//     upstream keyword.
// Returns:
//   - domain.Record: reshaped dictionary record.
//   - error: ErrNotFound when the upstream has no entry; otherwise a
//     wrapped internal error. Callers cannot distinguish transport,
//     status, and decode failures beyond the log message.
func (s *LookupService) Lookup(ctx context.Context, term string) (domain.Record, error) {
	if term == "" {
		return domain.Record{}, fmt.Errorf("lookup term is required")
	}

	ctx = logger.SetTerm(s.withLogger(ctx), term)

	if record, ok := s.cache.Get(term); ok {
		logger.CtxDebug(ctx, "Cache hit for term %q", term)
		return record, nil
	}

	start := time.Now()
	results, err := s.searcher.Search(ctx, term)
	if err != nil {
		return domain.Record{}, fmt.Errorf("dictionary search for %q: %w", term, err)
	}

	record, ok := dictionary.Reshape(results)
	if !ok {
		return domain.Record{}, fmt.Errorf("term %q: %w", term, ErrNotFound)
	}

	s.cache.Set(term, record)

	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldCount:      len(results),
	}).Info(ctx, "Fetched dictionary entry for %q", term)

	return record, nil
}
