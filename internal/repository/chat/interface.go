// File: internal/repository/chat/interface.go
package chat

import (
	"context"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

// ChatRepository handles chat data operations. Every lookup that acts on a
// single chat filters on both chat id and owner id, so a miss never reveals
// whether the chat exists under another owner.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByIDAndUserID(ctx context.Context, chatID, userID uint) (*domain.Chat, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Chat, error)
	Delete(ctx context.Context, chatID, userID uint) error
	UpdateTitle(ctx context.Context, chatID uint, title string) error
}
