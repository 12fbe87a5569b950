package domain

// OCRResult holds the recognized characters for an uploaded image.
type OCRResult struct {
	DetectedText     string      `json:"detected_text"`
	Characters       []Character `json:"characters"`
	Language         string      `json:"language"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
	Note             string      `json:"note,omitempty"`
}

// Character is a single recognized character with its confidence and
// bounding box in image coordinates.
type Character struct {
	Character  string   `json:"character"`
	Confidence float64  `json:"confidence"`
	Position   Position `json:"position"`
}

// Position is a bounding box in pixels.
type Position struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}
