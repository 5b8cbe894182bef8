package service

import (
	"context"
	"errors"
	"time"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/utils"
	"go.uber.org/zap"
)

// TokenPair is an access and refresh token issued together
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// sessionService implements SessionService
type sessionService struct {
	userRepo  repository.UserRepository
	jwt       *utils.JWTManager
	blacklist *TokenBlacklistService
	logger    *zap.Logger
}

// NewSessionService creates the token session service. blacklist may be nil.
func NewSessionService(
	userRepo repository.UserRepository,
	jwt *utils.JWTManager,
	blacklist *TokenBlacklistService,
	logger *zap.Logger,
) SessionService {
	return &sessionService{
		userRepo:  userRepo,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

var errTokenGeneration = apierror.Internal("Something went wrong while generating referesh and access token", nil)

// IssueTokenPair signs a new pair and stores the refresh token digest in the user's single slot
func (s *sessionService) IssueTokenPair(ctx context.Context, user *domain.User) (*TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(utils.TokenSubject{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	})
	if err != nil {
		return nil, errTokenGeneration.Wrap(err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errTokenGeneration.Wrap(err)
	}

	hash := utils.HashToken(refreshToken)
	if err := s.userRepo.SetRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		return nil, errTokenGeneration.Wrap(err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RenewAccessToken rotates the pair; the presented token must be the one stored for its user
func (s *sessionService) RenewAccessToken(ctx context.Context, presented string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(presented)
	if err != nil {
		return nil, apierror.Unauthorized("Invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.Unauthorized("Invalid refresh token")
		}
		return nil, apierror.Internal("Internal server error", err)
	}

	if user.RefreshTokenHash == nil || !utils.TokenMatches(presented, *user.RefreshTokenHash) {
		return nil, apierror.Unauthorized("Refresh token is expired or used")
	}

	return s.IssueTokenPair(ctx, user)
}

// Revoke clears the stored refresh token
func (s *sessionService) Revoke(ctx context.Context, userID string) error {
	if err := s.userRepo.SetRefreshTokenHash(ctx, userID, nil); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return apierror.Internal("Internal server error", err)
	}
	return nil
}

// BlacklistAccessToken rejects accessToken until it would have expired anyway
func (s *sessionService) BlacklistAccessToken(ctx context.Context, accessToken string) error {
	if s.blacklist == nil || accessToken == "" {
		return nil
	}
	claims, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.blacklist.AddToken(ctx, accessToken, ttl)
}

// Authenticate resolves an access token to the persisted user, without credential columns
func (s *sessionService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	if accessToken == "" {
		return nil, apierror.Unauthorized("Unauthorized request")
	}

	claims, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, apierror.Unauthorized("Invalid Access Token")
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsTokenBlacklisted(ctx, accessToken)
		if err != nil {
			s.logger.Warn("Failed to check token blacklist", zap.Error(err))
		} else if revoked {
			return nil, apierror.Unauthorized("Invalid Access Token")
		}
	}

	user, err := s.userRepo.GetProfileByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.Unauthorized("Invalid Access Token")
		}
		return nil, apierror.Internal("Internal server error", err)
	}
	return user, nil
}
