// File: internal/services/completion/service.go
package completion

import (
	"context"
	"strings"

	"github.com/nordsted/juridisk-ai/internal/services"
)

// Service is the completion orchestrator: it builds the prompt from the
// question plus client-held history and passes provider failures through
// untouched. There is no retry and no answer caching.
type Service struct {
	provider Provider
	logger   services.Logger
}

func NewService(provider Provider, logger services.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Answer returns one complete answer for the question in the context of the
// given history.
func (s *Service) Answer(ctx context.Context, question string, history []Turn) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", NewValidationError("answer", "question is empty")
	}

	prompt := BuildPrompt(question, history)
	s.logger.Debug("sending completion request", "prompt_length", len(prompt), "history_turns", len(history))

	answer, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("completion failed", "error", err, "type", string(TypeOf(err)))
		return "", err
	}

	s.logger.Info("completion succeeded", "answer_length", len(answer))
	return answer, nil
}
