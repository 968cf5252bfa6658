// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

// MessageRepository handles chat message data operations.
type MessageRepository interface {
	FindByChatID(ctx context.Context, chatID uint) ([]domain.ChatMessage, error)
	// ReplaceByChatID deletes every message of the chat and inserts the given
	// set in one transaction. Order must already mirror array position.
	ReplaceByChatID(ctx context.Context, chatID uint, messages []domain.ChatMessage) ([]domain.ChatMessage, error)
	DeleteByChatID(ctx context.Context, chatID uint) error
	CountByChatID(ctx context.Context, chatID uint) (int64, error)
}
