package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vaultlist/internal/entity"
)

func openSignupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.EmailSignup{}, &entity.SignupEvent{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func TestCreateEnforcesEmailUniqueness(t *testing.T) {
	db := openSignupTestDB(t)
	repo := NewSignupRepository(db)
	ctx := context.Background()

	first := &entity.EmailSignup{
		Email:              "dup@example.com",
		VerificationToken:  "token-a",
		VerificationSentAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.EmailSignup{
		Email:              "dup@example.com",
		VerificationToken:  "token-b",
		VerificationSentAt: time.Now(),
	}
	require.Error(t, repo.Create(ctx, second))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestFindByEmailMissingReturnsNil(t *testing.T) {
	db := openSignupTestDB(t)
	repo := NewSignupRepository(db)

	signup, err := repo.FindByEmail(context.Background(), "absent@example.com")
	require.NoError(t, err)
	require.Nil(t, signup)
}

func TestFindByTokenIgnoresClearedTokens(t *testing.T) {
	db := openSignupTestDB(t)
	repo := NewSignupRepository(db)
	ctx := context.Background()

	now := time.Now()
	verified := &entity.EmailSignup{
		Email:              "done@example.com",
		VerificationToken:  "",
		VerificationSentAt: now.Add(-time.Hour),
		IsVerified:         true,
		VerifiedAt:         &now,
	}
	require.NoError(t, db.Create(verified).Error)

	// An empty token must never match the cleared-token rows.
	signup, err := repo.FindByToken(ctx, "")
	require.NoError(t, err)
	require.Nil(t, signup)
}

func TestMarkVerifiedIsConditional(t *testing.T) {
	db := openSignupTestDB(t)
	repo := NewSignupRepository(db)
	ctx := context.Background()

	signup := &entity.EmailSignup{
		Email:              "flip@example.com",
		VerificationToken:  "flip-token",
		VerificationSentAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Create(ctx, signup))

	now := time.Now().UTC().Truncate(time.Second)

	won, err := repo.MarkVerified(ctx, "some-other-token", now)
	require.NoError(t, err)
	require.False(t, won)

	won, err = repo.MarkVerified(ctx, "flip-token", now)
	require.NoError(t, err)
	require.True(t, won)

	var stored entity.EmailSignup
	require.NoError(t, db.First(&stored).Error)
	require.True(t, stored.IsVerified)
	require.NotNil(t, stored.VerifiedAt)
	require.Empty(t, stored.VerificationToken)

	// The losing side of a race observes zero rows affected.
	won, err = repo.MarkVerified(ctx, "flip-token", now)
	require.NoError(t, err)
	require.False(t, won)
}
