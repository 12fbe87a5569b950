package service

import (
	"bytes"
	"context"
	"image"

	"github.com/tomoki/kanjilens/internal/domain"

	// Register decoders for dimension probing
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// OCRService produces recognition results for uploaded images.
//
// Recognition itself is a stub: no engine is integrated yet, so Recognize
// returns a fixed set of characters regardless of image content. The
// service still probes image dimensions for upload metadata.
type OCRService struct{}

// NewOCRService creates a new OCR service.
func NewOCRService() *OCRService {
	return &OCRService{}
}

// Recognize returns the recognition result for an image.
// The payload is static placeholder data, independent of the image bytes.
func (s *OCRService) Recognize(ctx context.Context, imageData []byte) *domain.OCRResult {
	return &domain.OCRResult{
		DetectedText: "日本語",
		Characters: []domain.Character{
			{
				Character:  "日",
				Confidence: 0.95,
				Position:   domain.Position{X: 10, Y: 20, Width: 50, Height: 50},
			},
			{
				Character:  "本",
				Confidence: 0.92,
				Position:   domain.Position{X: 70, Y: 20, Width: 50, Height: 50},
			},
			{
				Character:  "語",
				Confidence: 0.89,
				Position:   domain.Position{X: 130, Y: 20, Width: 50, Height: 50},
			},
		},
		Language:         "Japanese",
		ProcessingTimeMs: 123,
		Note:             "This is stubbed OCR data. Real recognition integration pending.",
	}
}

// ProbeDimensions decodes the image header and returns its width and
// height. Returns zeros when the data is not a decodable image.
func (s *OCRService) ProbeDimensions(imageData []byte) (width, height int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
