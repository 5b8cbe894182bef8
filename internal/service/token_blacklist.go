package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prperemyshlev/vidverse/internal/utils"
	"github.com/prperemyshlev/vidverse/pkg/database"
)

// TokenBlacklistService keeps revoked access tokens in Redis until they expire
type TokenBlacklistService struct {
	redis *database.Redis
}

// NewTokenBlacklistService creates a new token blacklist service
func NewTokenBlacklistService(redis *database.Redis) *TokenBlacklistService {
	return &TokenBlacklistService{redis: redis}
}

// blacklistKey stores a digest so raw tokens never reach Redis
func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:token:%s", utils.HashToken(token))
}

// AddToken adds a token to the blacklist for ttl; a non-positive ttl is a no-op
func (s *TokenBlacklistService) AddToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.Client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsTokenBlacklisted checks if a token is in the blacklist
func (s *TokenBlacklistService) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	exists, err := s.redis.Client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}
