// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) FindByChatID(ctx context.Context, chatID uint) ([]domain.ChatMessage, error) {
	if chatID == 0 {
		return nil, errors.New("invalid chat ID")
	}

	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("position ASC").
		Find(&messages).Error

	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages for chat ID %d: %v", chatID, err)
		return nil, errors.New("database error fetching messages")
	}

	return messages, nil
}

// ReplaceByChatID runs the delete and the re-insert inside a single
// transaction, so a failed insert can never leave the chat emptied.
func (r *gormMessageRepository) ReplaceByChatID(ctx context.Context, chatID uint, messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
	if chatID == 0 {
		return nil, errors.New("invalid chat ID")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&domain.ChatMessage{}).Error; err != nil {
			return err
		}
		if len(messages) == 0 {
			return nil
		}
		return tx.Create(&messages).Error
	})

	if err != nil {
		log.Printf("[MessageRepository] Database error replacing messages for chat ID %d: %v", chatID, err)
		return nil, errors.New("database error replacing messages")
	}

	log.Printf("[MessageRepository] Replaced messages for chat %d: %d rows", chatID, len(messages))
	return messages, nil
}

func (r *gormMessageRepository) DeleteByChatID(ctx context.Context, chatID uint) error {
	if chatID == 0 {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&domain.ChatMessage{})
	if result.Error != nil {
		log.Printf("[MessageRepository] Database error deleting messages for chat ID %d: %v", chatID, result.Error)
		return errors.New("database error deleting messages by chat ID")
	}

	log.Printf("[MessageRepository] Deleted %d messages for chat %d", result.RowsAffected, chatID)
	return nil
}

func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID uint) (int64, error) {
	if chatID == 0 {
		return 0, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).Where("chat_id = ?", chatID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for chat ID %d: %v", chatID, err)
		return 0, errors.New("database error counting chat messages")
	}

	return count, nil
}
