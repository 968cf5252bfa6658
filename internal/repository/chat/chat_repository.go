// File: internal/repository/chat/chat_repository.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

var ErrChatNotFound = errors.New("chat not found")

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if err := r.validateChatInput(chat); err != nil {
		log.Printf("[ChatRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		log.Printf("[ChatRepository] Database error during chat creation for user ID %d: %v", chat.UserID, err)
		return nil, errors.New("database error creating chat")
	}

	log.Printf("[ChatRepository] Chat created successfully with ID: %d for user: %d", chat.ID, chat.UserID)
	return chat, nil
}

// FindByIDAndUserID returns the chat only when both id and owner match.
func (r *gormChatRepository) FindByIDAndUserID(ctx context.Context, chatID, userID uint) (*domain.Chat, error) {
	if chatID == 0 || userID == 0 {
		return nil, errors.New("invalid chat ID or user ID")
	}

	var chat domain.Chat
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", chatID, userID).
		First(&chat).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		log.Printf("[ChatRepository] Database error finding chat ID %d for user ID %d: %v", chatID, userID, err)
		return nil, errors.New("database query failed")
	}

	return &chat, nil
}

func (r *gormChatRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Chat, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var chats []domain.Chat
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&chats).Error

	if err != nil {
		log.Printf("[ChatRepository] Database error finding chats for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching chats")
	}

	return chats, nil
}

func (r *gormChatRepository) Delete(ctx context.Context, chatID, userID uint) error {
	if chatID == 0 || userID == 0 {
		return errors.New("invalid chat ID or user ID")
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", chatID, userID).
		Delete(&domain.Chat{})

	if result.Error != nil {
		log.Printf("[ChatRepository] Database error deleting chat ID %d for user ID %d: %v", chatID, userID, result.Error)
		return errors.New("database error deleting chat")
	}

	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	log.Printf("[ChatRepository] Chat deleted successfully: ID %d for user %d", chatID, userID)
	return nil
}

// UpdateTitle sets the title and refreshes updated_at in one statement.
func (r *gormChatRepository) UpdateTitle(ctx context.Context, chatID uint, title string) error {
	if chatID == 0 {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Chat{}).
		Where("id = ?", chatID).
		Updates(map[string]interface{}{
			"title":      title,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating title for chat ID %d: %v", chatID, result.Error)
		return errors.New("database error updating chat title")
	}

	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

func (r *gormChatRepository) validateChatInput(chat *domain.Chat) error {
	if chat == nil {
		return errors.New("chat cannot be nil")
	}
	if chat.UserID == 0 {
		return errors.New("user ID is required")
	}
	if len([]rune(chat.Title)) > domain.MaxChatTitleLength {
		return fmt.Errorf("title must be %d characters or less", domain.MaxChatTitleLength)
	}
	return nil
}
