package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAccessSecret  = "access-secret-key-that-is-at-least-32-chars"
	testRefreshSecret = "refresh-secret-key-that-is-at-least-32-chars"
	testUserID        = "6f1d2c3b-4a59-4e8d-9c7b-1a2b3c4d5e6f"
	otherUserID       = "0b9a8c7d-6e5f-4a3b-8c2d-1e0f9a8b7c6d"
)

func newTestJWT() *utils.JWTManager {
	return utils.NewJWTManager(testAccessSecret, testRefreshSecret, 15*time.Minute, 24*time.Hour)
}

func testUser() *domain.User {
	return &domain.User{
		ID:         testUserID,
		Username:   "alice",
		Email:      "alice@example.com",
		FullName:   "Alice Liddell",
		IsVerified: true,
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, status, apierror.StatusCode(err), err.Error())
}

func TestSession_IssueAndRenew(t *testing.T) {
	users := new(MockUserRepository)
	sessions := NewSessionService(users, newTestJWT(), nil, zap.NewNop())
	ctx := context.Background()
	user := testUser()

	var stored *string
	users.On("SetRefreshTokenHash", ctx, testUserID, mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) { stored = args.Get(2).(*string) }).
		Return(nil)

	pair, err := sessions.IssueTokenPair(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, pair.RefreshToken, *stored, "only the digest is persisted")
	assert.Equal(t, utils.HashToken(pair.RefreshToken), *stored)

	withSlot := *user
	withSlot.RefreshTokenHash = stored
	users.On("GetByID", ctx, testUserID).Return(&withSlot, nil).Once()

	renewed, err := sessions.RenewAccessToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, renewed.RefreshToken)

	t.Run("replayed token is rejected", func(t *testing.T) {
		rotated := *user
		rotated.RefreshTokenHash = stored
		users.On("GetByID", ctx, testUserID).Return(&rotated, nil).Once()

		_, err := sessions.RenewAccessToken(ctx, pair.RefreshToken)
		assertStatus(t, err, http.StatusUnauthorized)
		assert.Contains(t, err.Error(), "expired or used")
	})

	users.AssertExpectations(t)
}

func TestSession_RenewFailures(t *testing.T) {
	jwt := newTestJWT()
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		sessions := NewSessionService(new(MockUserRepository), jwt, nil, zap.NewNop())
		_, err := sessions.RenewAccessToken(ctx, "not-a-token")
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("access token presented as refresh token", func(t *testing.T) {
		sessions := NewSessionService(new(MockUserRepository), jwt, nil, zap.NewNop())
		access, err := jwt.GenerateAccessToken(utils.TokenSubject{UserID: testUserID})
		require.NoError(t, err)

		_, err = sessions.RenewAccessToken(ctx, access)
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("user deleted", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", ctx, testUserID).Return(nil, repository.ErrNotFound)
		sessions := NewSessionService(users, jwt, nil, zap.NewNop())

		refresh, err := jwt.GenerateRefreshToken(testUserID)
		require.NoError(t, err)

		_, err = sessions.RenewAccessToken(ctx, refresh)
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("logged out", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByID", ctx, testUserID).Return(testUser(), nil)
		sessions := NewSessionService(users, jwt, nil, zap.NewNop())

		refresh, err := jwt.GenerateRefreshToken(testUserID)
		require.NoError(t, err)

		_, err = sessions.RenewAccessToken(ctx, refresh)
		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestSession_Authenticate(t *testing.T) {
	rdb, _ := newTestRedis(t)
	jwt := newTestJWT()
	users := new(MockUserRepository)
	users.On("GetProfileByID", mock.Anything, testUserID).Return(testUser(), nil)
	users.On("GetProfileByID", mock.Anything, otherUserID).Return(nil, repository.ErrNotFound)
	sessions := NewSessionService(users, jwt, NewTokenBlacklistService(rdb), zap.NewNop())
	ctx := context.Background()

	access, err := jwt.GenerateAccessToken(utils.TokenSubject{UserID: testUserID, Username: "alice"})
	require.NoError(t, err)

	user, err := sessions.Authenticate(ctx, access)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = sessions.Authenticate(ctx, "")
	assertStatus(t, err, http.StatusUnauthorized)

	refresh, err := jwt.GenerateRefreshToken(testUserID)
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, refresh)
	assertStatus(t, err, http.StatusUnauthorized)

	orphan, err := jwt.GenerateAccessToken(utils.TokenSubject{UserID: otherUserID})
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, orphan)
	assertStatus(t, err, http.StatusUnauthorized)

	require.NoError(t, sessions.BlacklistAccessToken(ctx, access))
	_, err = sessions.Authenticate(ctx, access)
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestSession_Revoke(t *testing.T) {
	users := new(MockUserRepository)
	users.On("SetRefreshTokenHash", mock.Anything, testUserID, (*string)(nil)).Return(nil)
	sessions := NewSessionService(users, newTestJWT(), nil, zap.NewNop())

	require.NoError(t, sessions.Revoke(context.Background(), testUserID))
	users.AssertExpectations(t)
}
