// File: internal/domain/chat.go
package domain

import "time"

// DefaultChatTitle is used when a chat has no messages to derive a title from.
const DefaultChatTitle = "Ny chat"

// MaxChatTitleLength caps derived titles at 50 characters.
const MaxChatTitleLength = 50

// Chat represents a single conversation session owned by one user.
type Chat struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeriveTitle returns the leading MaxChatTitleLength characters of the first
// message's text, or DefaultChatTitle when there is no first message.
func DeriveTitle(firstMessageText string) string {
	runes := []rune(firstMessageText)
	if len(runes) == 0 {
		return DefaultChatTitle
	}
	if len(runes) > MaxChatTitleLength {
		runes = runes[:MaxChatTitleLength]
	}
	return string(runes)
}
