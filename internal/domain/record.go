package domain

// Record is the reshaped dictionary entry returned to callers, independent
// of the upstream API's raw schema.
type Record struct {
	Meanings      []string  `json:"meanings"`
	KunReading    string    `json:"kun_reading"`
	OnReading     string    `json:"on_reading"`
	JLPTLevel     string    `json:"jlpt_level"`
	PartsOfSpeech string    `json:"parts_of_speech"`
	IsCommon      bool      `json:"is_common"`
	StrokeCount   int       `json:"stroke_count"`
	Examples      []Example `json:"examples"`
	Source        string    `json:"source"`
}

// Example is a related word extracted from secondary search results.
type Example struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`
}
