package service

import (
	"context"
	"strings"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/utils"
)

// tweetService implements TweetService
type tweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

// NewTweetService creates a new tweet service
func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo, userRepo: userRepo}
}

func (s *tweetService) Create(ctx context.Context, actorID, content string) (*domain.Tweet, error) {
	if utils.IsBlank(content) {
		return nil, apierror.BadRequest("Tweet content is required")
	}

	tweet := &domain.Tweet{Content: strings.TrimSpace(content), OwnerID: actorID}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, apierror.Internal("Failed to create tweet", err)
	}
	return tweet, nil
}

// ListByUser pages through a user's tweets, newest first
func (s *tweetService) ListByUser(ctx context.Context, userID string, q dto.PageQuery) (domain.Page[domain.Tweet], error) {
	var empty domain.Page[domain.Tweet]
	if err := validID(userID, "Invalid userId"); err != nil {
		return empty, err
	}
	if _, err := s.userRepo.GetProfileByID(ctx, userID); err != nil {
		return empty, lookupError(err, "User not found")
	}

	page, err := s.tweetRepo.ListByOwner(ctx, userID, pageOf(q, defaultPageSize))
	if err != nil {
		return page, apierror.Internal("Failed to fetch tweets", err)
	}
	return page, nil
}

func (s *tweetService) owned(ctx context.Context, actorID, tweetID, message string) error {
	if err := validID(tweetID, "Invalid tweetId"); err != nil {
		return err
	}
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return lookupError(err, "Tweet not found")
	}
	return authorizeOwner(actorID, tweet.OwnerID, message)
}

func (s *tweetService) Update(ctx context.Context, actorID, tweetID, content string) (*domain.Tweet, error) {
	if utils.IsBlank(content) {
		return nil, apierror.BadRequest("Tweet content is required")
	}
	if err := s.owned(ctx, actorID, tweetID, "You are not allowed to update this tweet"); err != nil {
		return nil, err
	}

	tweet, err := s.tweetRepo.UpdateContent(ctx, tweetID, strings.TrimSpace(content))
	if err != nil {
		return nil, apierror.Internal("Failed to update tweet", err)
	}
	return tweet, nil
}

func (s *tweetService) Delete(ctx context.Context, actorID, tweetID string) error {
	if err := s.owned(ctx, actorID, tweetID, "You are not allowed to delete this tweet"); err != nil {
		return err
	}
	if err := s.tweetRepo.Delete(ctx, tweetID); err != nil {
		return apierror.Internal("Failed to delete tweet", err)
	}
	return nil
}
