package service

import (
	"context"
	"errors"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/repository"
)

// likeService implements LikeService
type likeService struct {
	likeRepo repository.LikeRepository
}

// NewLikeService creates a new like service
func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

var likeTargetNames = map[domain.LikeTarget]string{
	domain.LikeTargetVideo:   "Video",
	domain.LikeTargetComment: "Comment",
	domain.LikeTargetTweet:   "Tweet",
}

// Toggle likes the target, or removes the like when it exists; it reports the new state
func (s *likeService) Toggle(ctx context.Context, actorID string, target domain.LikeTarget, targetID string) (bool, error) {
	name, ok := likeTargetNames[target]
	if !ok {
		return false, apierror.BadRequest("Invalid like target")
	}
	if err := validID(targetID, "Invalid "+string(target)+"Id"); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.Toggle(ctx, actorID, target, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apierror.NotFound(name + " not found")
		}
		return false, apierror.Internal("Failed to toggle like", err)
	}
	return liked, nil
}

func (s *likeService) LikedVideos(ctx context.Context, actorID string, q dto.PageQuery) (domain.Page[domain.Video], error) {
	page, err := s.likeRepo.LikedVideos(ctx, actorID, pageOf(q, defaultPageSize))
	if err != nil {
		return page, apierror.Internal("Failed to fetch liked videos", err)
	}
	return page, nil
}

// subscriptionService implements SubscriptionService
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

// Toggle subscribes actorID to channelID or cancels an existing subscription
func (s *subscriptionService) Toggle(ctx context.Context, actorID, channelID string) (bool, error) {
	if err := validID(channelID, "Invalid ChannelId"); err != nil {
		return false, err
	}

	subscribed, err := s.subscriptionRepo.Toggle(ctx, actorID, channelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apierror.NotFound("Channel not found")
		}
		return false, apierror.Internal("Failed to toggle subscription", err)
	}
	return subscribed, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelID string, q dto.PageQuery) (domain.Page[domain.Subscriber], error) {
	if err := validID(channelID, "Invalid ChannelId"); err != nil {
		return domain.Page[domain.Subscriber]{}, err
	}

	page, err := s.subscriptionRepo.Subscribers(ctx, channelID, pageOf(q, defaultPageSize))
	if err != nil {
		return page, apierror.Internal("Failed to fetch subscribers", err)
	}
	return page, nil
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID string, q dto.PageQuery) (domain.Page[domain.Subscriber], error) {
	if err := validID(subscriberID, "Invalid subscriberId"); err != nil {
		return domain.Page[domain.Subscriber]{}, err
	}

	page, err := s.subscriptionRepo.SubscribedChannels(ctx, subscriberID, pageOf(q, defaultPageSize))
	if err != nil {
		return page, apierror.Internal("Failed to fetch subscribed channels", err)
	}
	return page, nil
}
