// File: internal/domain/message.go
package domain

import "time"

// ChatMessage represents one ordered turn within a chat. The set for a chat is
// replaced wholesale on every save; Order mirrors the array position at save time.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ChatID    uint      `json:"chatId" gorm:"not null;uniqueIndex:idx_chat_message_order"`
	Chat      Chat      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"not null"`
	IsUser    bool      `json:"isUser" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:position;not null;uniqueIndex:idx_chat_message_order"`
	CreatedAt time.Time `json:"createdAt"`
}
