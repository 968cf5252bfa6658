// File: internal/repository/chat/chat_repository_test.go
package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nordsted/juridisk-ai/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.ChatMessage{}))
	return db
}

func TestChatRepository_CreateAndFind(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: "Lejeret"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByIDAndUserID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lejeret", found.Title)
}

func TestChatRepository_FindWrongOwner(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: "Privat"})
	require.NoError(t, err)

	_, err = repo.FindByIDAndUserID(ctx, created.ID, 2)
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestChatRepository_CreateRejectsLongTitle(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))

	_, err := repo.Create(context.Background(), &domain.Chat{
		UserID: 1,
		Title:  strings.Repeat("a", domain.MaxChatTitleLength+1),
	})
	assert.Error(t, err)
}

func TestChatRepository_FindByUserIDOrdersByUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: "Ældst"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: "Nyest"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Chat{UserID: 2, Title: "Anden bruger"})
	require.NoError(t, err)

	// Push the first chat to the top by touching its title.
	require.NoError(t, db.Model(&domain.Chat{}).Where("id = ?", first.ID).
		Update("updated_at", time.Now().Add(time.Hour)).Error)

	chats, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, first.ID, chats[0].ID)
	assert.Equal(t, second.ID, chats[1].ID)
}

func TestChatRepository_DeleteRequiresOwnership(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: "Slet mig"})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID, 2), ErrChatNotFound)
	require.NoError(t, repo.Delete(ctx, created.ID, 1))

	_, err = repo.FindByIDAndUserID(ctx, created.ID, 1)
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestChatRepository_DeleteCascadesToMessages(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: "Med beskeder"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&[]domain.ChatMessage{
		{ChatID: created.ID, Content: "Spørgsmål", IsUser: true, Order: 0},
		{ChatID: created.ID, Content: "Svar", IsUser: false, Order: 1},
	}).Error)

	require.NoError(t, repo.Delete(ctx, created.ID, 1))

	var orphans int64
	require.NoError(t, db.Model(&domain.ChatMessage{}).
		Where("chat_id = ?", created.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestChatRepository_UpdateTitle(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: 1, Title: domain.DefaultChatTitle})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTitle(ctx, created.ID, "Nyt emne"))

	found, err := repo.FindByIDAndUserID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nyt emne", found.Title)

	assert.ErrorIs(t, repo.UpdateTitle(ctx, 9999, "X"), ErrChatNotFound)
}
