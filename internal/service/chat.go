package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// chatTemplates are the canned responses. %s is replaced with the
// caller's message where present.
var chatTemplates = []string{
	"「%s」ですね。いい言葉です！",
	"なるほど、面白いですね。もっと教えてください。",
	"日本語の勉強、頑張っていますね！",
	"それについて、漢字で書いてみませんか？",
}

// ChatService returns canned conversational responses. There is no
// conversation state and no external call; the reply is picked at random
// from a fixed template set.
type ChatService struct {
	templates []string
	intn      func(n int) int
}

// ChatOption configures a ChatService.
type ChatOption func(*ChatService)

// WithRand overrides the random source. Used in tests for deterministic
// template selection.
func WithRand(intn func(n int) int) ChatOption {
	return func(s *ChatService) {
		s.intn = intn
	}
}

// NewChatService creates a chat service.
func NewChatService(opts ...ChatOption) *ChatService {
	s := &ChatService{
		templates: chatTemplates,
		intn:      rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond returns a response for the given message.
func (s *ChatService) Respond(ctx context.Context, message string) string {
	template := s.templates[s.intn(len(s.templates))]
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, message)
	}
	return template
}
