package dictionary

import (
	"fmt"
	"testing"
)

func sampleResults() []SearchResult {
	return []SearchResult{
		{
			Slug:     "日",
			IsCommon: true,
			JLPT:     []string{"jlpt-n5"},
			Japanese: []Reading{{Word: "日", Reading: "ひ"}},
			Senses: []Sense{
				{
					EnglishDefinitions: []string{"day", "sun"},
					PartsOfSpeech:      []string{"Noun"},
				},
				{
					EnglishDefinitions: []string{"sun", "sunshine"},
					PartsOfSpeech:      []string{"Noun", "Suffix"},
				},
			},
		},
		{
			Slug:     "日本",
			Japanese: []Reading{{Word: "日本", Reading: "にほん"}},
			Senses: []Sense{
				{EnglishDefinitions: []string{"Japan"}},
			},
		},
		{
			// Same written form as the primary entry, must be skipped
			Slug:     "日-duplicate",
			Japanese: []Reading{{Word: "日", Reading: "にち"}},
			Senses: []Sense{
				{EnglishDefinitions: []string{"counter for days"}},
			},
		},
		{
			Slug:     "毎日",
			Japanese: []Reading{{Word: "毎日", Reading: "まいにち"}},
			Senses: []Sense{
				{EnglishDefinitions: []string{"every day"}},
			},
		},
	}
}

func TestReshape_Empty(t *testing.T) {
	if _, ok := Reshape(nil); ok {
		t.Error("expected ok=false for empty results")
	}
}

func TestReshape_Primary(t *testing.T) {
	record, ok := Reshape(sampleResults())
	if !ok {
		t.Fatal("expected ok=true")
	}

	// Definitions de-duplicated in first-seen order
	wantMeanings := []string{"day", "sun", "sunshine"}
	if len(record.Meanings) != len(wantMeanings) {
		t.Fatalf("expected %d meanings, got %v", len(wantMeanings), record.Meanings)
	}
	for i, want := range wantMeanings {
		if record.Meanings[i] != want {
			t.Errorf("meaning[%d]: expected %q, got %q", i, want, record.Meanings[i])
		}
	}

	if record.PartsOfSpeech != "Noun, Suffix" {
		t.Errorf("expected de-duplicated POS string, got %q", record.PartsOfSpeech)
	}
	if record.JLPTLevel != "N5" {
		t.Errorf("expected JLPT N5, got %q", record.JLPTLevel)
	}
	if !record.IsCommon {
		t.Error("expected is_common to carry over")
	}
	if record.StrokeCount != 0 {
		t.Errorf("expected fixed zero stroke count, got %d", record.StrokeCount)
	}
	if record.KunReading != "ひ" {
		t.Errorf("expected primary reading in kun slot, got %q", record.KunReading)
	}
	if record.OnReading != "—" {
		t.Errorf("expected placeholder on reading, got %q", record.OnReading)
	}
	if record.Source != "Jisho.org" {
		t.Errorf("unexpected source label %q", record.Source)
	}
}

func TestReshape_ExamplesSkipPrimary(t *testing.T) {
	record, _ := Reshape(sampleResults())

	if len(record.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d: %v", len(record.Examples), record.Examples)
	}
	if record.Examples[0].Word != "日本" || record.Examples[0].Reading != "にほん" || record.Examples[0].Meaning != "Japan" {
		t.Errorf("unexpected first example: %+v", record.Examples[0])
	}
	if record.Examples[1].Word != "毎日" {
		t.Errorf("expected duplicate of primary word to be skipped, got %+v", record.Examples[1])
	}
}

func TestReshape_ExampleWindowIsFixed(t *testing.T) {
	// A skipped duplicate inside the window must not pull a replacement
	// from beyond the first four secondary results.
	mkResult := func(word, reading, meaning string) SearchResult {
		return SearchResult{
			Japanese: []Reading{{Word: word, Reading: reading}},
			Senses:   []Sense{{EnglishDefinitions: []string{meaning}}},
		}
	}

	results := []SearchResult{
		mkResult("日", "ひ", "day"),
		mkResult("日", "にち", "counter for days"), // duplicate of the primary word
		mkResult("二", "に", "two"),
		mkResult("三", "さん", "three"),
		mkResult("四", "し", "four"),
		mkResult("五", "ご", "five"), // beyond the window
	}

	record, ok := Reshape(results)
	if !ok {
		t.Fatal("expected ok=true")
	}

	want := []string{"二", "三", "四"}
	if len(record.Examples) != len(want) {
		t.Fatalf("expected %d examples, got %d: %+v", len(want), len(record.Examples), record.Examples)
	}
	for i, w := range want {
		if record.Examples[i].Word != w {
			t.Errorf("example[%d]: expected %q, got %q", i, w, record.Examples[i].Word)
		}
	}
}

func TestReshape_Caps(t *testing.T) {
	primary := SearchResult{
		Slug:     "語",
		Japanese: []Reading{{Word: "語", Reading: "ご"}},
	}
	for i := 0; i < 8; i++ {
		primary.Senses = append(primary.Senses, Sense{
			EnglishDefinitions: []string{
				fmt.Sprintf("meaning-%d", i*2),
				fmt.Sprintf("meaning-%d", i*2+1),
			},
			PartsOfSpeech: []string{fmt.Sprintf("pos-%d", i)},
		})
	}
	results := []SearchResult{primary}
	for i := 0; i < 10; i++ {
		results = append(results, SearchResult{
			Japanese: []Reading{{Word: fmt.Sprintf("単語%d", i), Reading: "たんご"}},
			Senses:   []Sense{{EnglishDefinitions: []string{"word"}}},
		})
	}

	record, _ := Reshape(results)

	if len(record.Meanings) != 10 {
		t.Errorf("expected meanings capped at 10, got %d", len(record.Meanings))
	}
	seen := map[string]bool{}
	for _, m := range record.Meanings {
		if seen[m] {
			t.Errorf("duplicate meaning %q", m)
		}
		seen[m] = true
	}

	// 8 distinct POS tags, capped at 5
	if record.PartsOfSpeech != "pos-0, pos-1, pos-2, pos-3, pos-4" {
		t.Errorf("expected POS capped at 5 source tags, got %q", record.PartsOfSpeech)
	}

	if len(record.Examples) != 4 {
		t.Errorf("expected examples capped at 4, got %d", len(record.Examples))
	}

	if record.JLPTLevel != "Unknown" {
		t.Errorf("expected Unknown JLPT level, got %q", record.JLPTLevel)
	}
}

func TestJLPTLevel_FromTags(t *testing.T) {
	r := SearchResult{Tags: []string{"wanikani8", "jlpt-n3"}}
	if got := jlptLevel(r); got != "N3" {
		t.Errorf("expected N3 from tags list, got %q", got)
	}
}
