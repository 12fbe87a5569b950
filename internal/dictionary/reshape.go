package dictionary

import (
	"strings"

	"github.com/tomoki/kanjilens/internal/domain"
)

const (
	maxMeanings      = 10
	maxPartsOfSpeech = 5
	maxExamples      = 4

	// placeholder for readings the word-search API does not provide
	readingPlaceholder = "—"

	sourceLabel = "Jisho.org"
)

// Reshape converts raw search results into the externally-facing Record.
// The first result is the primary entry; up to four of the following
// results contribute example words. ok is false when results is empty.
func Reshape(results []SearchResult) (domain.Record, bool) {
	if len(results) == 0 {
		return domain.Record{}, false
	}

	primary := results[0]
	primaryWord, primaryReading := primaryForm(primary)

	meanings := make([]string, 0, maxMeanings)
	posTags := make([]string, 0, maxPartsOfSpeech)
	for _, sense := range primary.Senses {
		meanings = appendUnique(meanings, sense.EnglishDefinitions, maxMeanings)
		posTags = appendUnique(posTags, sense.PartsOfSpeech, maxPartsOfSpeech)
	}

	kun := readingPlaceholder
	if primaryReading != "" {
		kun = primaryReading
	}

	return domain.Record{
		Meanings:      meanings,
		KunReading:    kun,
		OnReading:     readingPlaceholder,
		JLPTLevel:     jlptLevel(primary),
		PartsOfSpeech: strings.Join(posTags, ", "),
		IsCommon:      primary.IsCommon,
		StrokeCount:   0, // not available from the word-search API
		Examples:      extractExamples(results, primaryWord),
		Source:        sourceLabel,
	}, true
}

// primaryForm returns the written form and kana reading of a result,
// falling back to the reading when no kanji form is present.
func primaryForm(r SearchResult) (word, reading string) {
	if len(r.Japanese) == 0 {
		return r.Slug, ""
	}
	word = r.Japanese[0].Word
	reading = r.Japanese[0].Reading
	if word == "" {
		word = reading
	}
	return word, reading
}

// jlptLevel finds the first jlpt-n* tag and renders it as "N5".
// Returns "Unknown" when the result carries no JLPT tag.
func jlptLevel(r SearchResult) string {
	tags := make([]string, 0, len(r.JLPT)+len(r.Tags))
	tags = append(tags, r.JLPT...)
	tags = append(tags, r.Tags...)

	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if strings.HasPrefix(lower, "jlpt-n") {
			return "N" + strings.TrimPrefix(lower, "jlpt-n")
		}
	}
	return "Unknown"
}

// extractExamples collects example words from the four results following
// the primary entry. Candidates whose word matches the primary entry are
// skipped, not replaced from later results.
func extractExamples(results []SearchResult, primaryWord string) []domain.Example {
	candidates := results[1:]
	if len(candidates) > maxExamples {
		candidates = candidates[:maxExamples]
	}

	examples := make([]domain.Example, 0, maxExamples)
	for _, r := range candidates {
		word, reading := primaryForm(r)
		if word == "" || word == primaryWord {
			continue
		}
		meaning := ""
		if len(r.Senses) > 0 && len(r.Senses[0].EnglishDefinitions) > 0 {
			meaning = r.Senses[0].EnglishDefinitions[0]
		}
		examples = append(examples, domain.Example{
			Word:    word,
			Reading: reading,
			Meaning: meaning,
		})
	}
	return examples
}

// appendUnique appends items to dst preserving first-seen order, skipping
// duplicates and stopping at the limit.
func appendUnique(dst, items []string, limit int) []string {
	for _, item := range items {
		if len(dst) == limit {
			break
		}
		if item == "" || contains(dst, item) {
			continue
		}
		dst = append(dst, item)
	}
	return dst
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
