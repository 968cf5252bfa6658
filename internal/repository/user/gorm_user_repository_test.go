// File: internal/repository/user/gorm_user_repository_test.go
package user

import (
	"context"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Name:     "Mette Hansen",
		Email:    "mette@example.dk",
		Password: "hashed",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mette@example.dk", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "mette@example.dk")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "ingen@example.dk")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "A", Email: "a@b.dk", Password: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Name: "B", Email: "a@b.dk", Password: "h"})
	assert.Error(t, err)
}
