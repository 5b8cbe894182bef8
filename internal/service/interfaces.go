package service

import (
	"context"

	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/storage"
)

// SessionService issues, rotates and checks tokens
type SessionService interface {
	IssueTokenPair(ctx context.Context, user *domain.User) (*TokenPair, error)
	RenewAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Revoke(ctx context.Context, userID string) error
	BlacklistAccessToken(ctx context.Context, accessToken string) error
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

// UserService defines account and channel operations
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	Verify(ctx context.Context, req *dto.VerifyRequest) (bool, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID, accessToken string) error
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	UpdateAccount(ctx context.Context, userID string, req *dto.UpdateAccountRequest) (*domain.User, error)
	UpdateAvatar(ctx context.Context, user *domain.User, file *storage.Object) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, user *domain.User, file *storage.Object) (*domain.User, error)
	Channel(ctx context.Context, username, viewerID string) (*domain.Channel, error)
	WatchHistory(ctx context.Context, userID string) ([]domain.Video, error)
}

// VideoService defines video operations
type VideoService interface {
	List(ctx context.Context, q dto.VideoListQuery) (domain.Page[domain.Video], error)
	Publish(ctx context.Context, ownerID string, req *dto.PublishVideoRequest, videoFile, thumbnail *storage.Object) (*domain.Video, error)
	Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error)
	Update(ctx context.Context, actorID, videoID string, req *dto.UpdateVideoRequest, thumbnail *storage.Object) (*domain.Video, error)
	Delete(ctx context.Context, actorID, videoID string) error
	TogglePublish(ctx context.Context, actorID, videoID string) (*domain.Video, error)
}

// CommentService defines comment operations
type CommentService interface {
	List(ctx context.Context, videoID string, q dto.PageQuery) (domain.Page[domain.Comment], error)
	Create(ctx context.Context, actorID, videoID, content string) (*domain.Comment, error)
	Update(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, actorID, commentID string) error
}

// TweetService defines tweet operations
type TweetService interface {
	Create(ctx context.Context, actorID, content string) (*domain.Tweet, error)
	ListByUser(ctx context.Context, userID string, q dto.PageQuery) (domain.Page[domain.Tweet], error)
	Update(ctx context.Context, actorID, tweetID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, actorID, tweetID string) error
}

// LikeService defines like operations
type LikeService interface {
	Toggle(ctx context.Context, actorID string, target domain.LikeTarget, targetID string) (bool, error)
	LikedVideos(ctx context.Context, actorID string, q dto.PageQuery) (domain.Page[domain.Video], error)
}

// SubscriptionService defines subscription operations
type SubscriptionService interface {
	Toggle(ctx context.Context, actorID, channelID string) (bool, error)
	Subscribers(ctx context.Context, channelID string, q dto.PageQuery) (domain.Page[domain.Subscriber], error)
	SubscribedChannels(ctx context.Context, subscriberID string, q dto.PageQuery) (domain.Page[domain.Subscriber], error)
}

// PlaylistService defines playlist operations
type PlaylistService interface {
	Create(ctx context.Context, actorID string, req *dto.PlaylistRequest) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PlaylistDetail, error)
	Get(ctx context.Context, playlistID string) (*domain.PlaylistDetail, error)
	Update(ctx context.Context, actorID, playlistID string, req *dto.PlaylistRequest) (*domain.Playlist, error)
	Delete(ctx context.Context, actorID, playlistID string) error
	AddVideo(ctx context.Context, actorID, videoID, playlistID string) (*domain.PlaylistDetail, error)
	RemoveVideo(ctx context.Context, actorID, videoID, playlistID string) (*domain.PlaylistDetail, error)
}

// DashboardService defines channel dashboard operations
type DashboardService interface {
	Stats(ctx context.Context, userID string) (*domain.ChannelStats, error)
	Videos(ctx context.Context, userID string) ([]domain.Video, error)
}

// Services bundles every service used by the HTTP layer
type Services struct {
	Session      SessionService
	User         UserService
	Video        VideoService
	Comment      CommentService
	Tweet        TweetService
	Like         LikeService
	Subscription SubscriptionService
	Playlist     PlaylistService
	Dashboard    DashboardService
}
