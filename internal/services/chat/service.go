// File: internal/services/chat/service.go
package chat

import (
	"context"

	"github.com/nordsted/juridisk-ai/internal/domain"
	chatrepo "github.com/nordsted/juridisk-ai/internal/repository/chat"
	"github.com/nordsted/juridisk-ai/internal/repository/message"
	"github.com/nordsted/juridisk-ai/internal/services"
)

// ErrChatNotFound covers both a missing chat and a chat owned by someone
// else; callers cannot tell the two apart.
var ErrChatNotFound = chatrepo.ErrChatNotFound

// MessageInput is one incoming message in a replace-all save.
type MessageInput struct {
	Text   string
	IsUser bool
}

// Service implements the chat CRUD operations. Every operation takes the
// authenticated user's id and filters on it; there is no other access control.
type Service struct {
	chatRepo    chatrepo.ChatRepository
	messageRepo message.MessageRepository
	logger      services.Logger
}

func NewService(chatRepo chatrepo.ChatRepository, messageRepo message.MessageRepository, logger services.Logger) *Service {
	return &Service{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// ListChats returns the user's chats, most recently updated first.
func (s *Service) ListChats(ctx context.Context, userID uint) ([]domain.Chat, error) {
	return s.chatRepo.FindByUserID(ctx, userID)
}

// CreateChat inserts a new chat, defaulting the title when none is given.
func (s *Service) CreateChat(ctx context.Context, userID uint, title string) (*domain.Chat, error) {
	if title == "" {
		title = domain.DefaultChatTitle
	}

	chat := &domain.Chat{UserID: userID, Title: title}
	created, err := s.chatRepo.Create(ctx, chat)
	if err != nil {
		return nil, err
	}

	s.logger.Info("chat created", "chat_id", created.ID, "user_id", userID)
	return created, nil
}

// GetChat returns the chat and its messages in order. ErrChatNotFound when
// the chat does not exist or belongs to another user.
func (s *Service) GetChat(ctx context.Context, userID, chatID uint) (*domain.Chat, []domain.ChatMessage, error) {
	chat, err := s.chatRepo.FindByIDAndUserID(ctx, chatID, userID)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}

	return chat, messages, nil
}

// DeleteChat removes the chat; its messages cascade at the store level.
func (s *Service) DeleteChat(ctx context.Context, userID, chatID uint) error {
	if err := s.chatRepo.Delete(ctx, chatID, userID); err != nil {
		return err
	}

	s.logger.Info("chat deleted", "chat_id", chatID, "user_id", userID)
	return nil
}

// ReplaceMessages swaps the chat's entire message set for the given list,
// then refreshes the title and updated-at timestamp. Order is assigned from
// array position. The delete and insert run in one transaction; the title
// update follows separately, so a failure there leaves the messages intact
// with a stale title.
func (s *Service) ReplaceMessages(ctx context.Context, userID, chatID uint, inputs []MessageInput) ([]domain.ChatMessage, error) {
	if _, err := s.chatRepo.FindByIDAndUserID(ctx, chatID, userID); err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, len(inputs))
	for i, input := range inputs {
		messages[i] = domain.ChatMessage{
			ChatID:  chatID,
			Content: input.Text,
			IsUser:  input.IsUser,
			Order:   i,
		}
	}

	saved, err := s.messageRepo.ReplaceByChatID(ctx, chatID, messages)
	if err != nil {
		return nil, err
	}

	title := domain.DefaultChatTitle
	if len(inputs) > 0 {
		title = domain.DeriveTitle(inputs[0].Text)
	}
	if err := s.chatRepo.UpdateTitle(ctx, chatID, title); err != nil {
		return nil, err
	}

	s.logger.Info("messages replaced", "chat_id", chatID, "user_id", userID, "count", len(saved))
	return saved, nil
}
