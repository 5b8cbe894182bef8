package repository

import (
	"context"

	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetProfileByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePending(ctx context.Context, user *domain.User) error
	MarkVerified(ctx context.Context, id string) error
	SetRefreshTokenHash(ctx context.Context, id string, hash *string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, url string) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, id, url string) (*domain.User, error)
	GetChannel(ctx context.Context, username, viewerID string) (*domain.Channel, error)
	WatchHistory(ctx context.Context, userID string) ([]domain.Video, error)
}

// VideoFilter selects and orders the public video listing
type VideoFilter struct {
	OwnerID  string
	Query    string
	SortBy   string
	SortType string
	Page     pipeline.Pagination
}

// VideoRepository defines methods for video operations
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	GetDetail(ctx context.Context, id, viewerID string) (*domain.VideoDetail, error)
	List(ctx context.Context, filter VideoFilter) (domain.Page[domain.Video], error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Video, error)
	RecordView(ctx context.Context, userID, videoID string) (bool, error)
	Update(ctx context.Context, id, title, description, thumbnail string) (*domain.Video, error)
	SetPublished(ctx context.Context, id string, published bool) (*domain.Video, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines methods for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByVideo(ctx context.Context, videoID string, page pipeline.Pagination) (domain.Page[domain.Comment], error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// TweetRepository defines methods for tweet operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) error
	GetByID(ctx context.Context, id string) (*domain.Tweet, error)
	ListByOwner(ctx context.Context, ownerID string, page pipeline.Pagination) (domain.Page[domain.Tweet], error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, id string) error
}

// LikeRepository defines methods for like operations
type LikeRepository interface {
	Toggle(ctx context.Context, userID string, target domain.LikeTarget, targetID string) (bool, error)
	LikedVideos(ctx context.Context, userID string, page pipeline.Pagination) (domain.Page[domain.Video], error)
}

// SubscriptionRepository defines methods for subscription operations
type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	Subscribers(ctx context.Context, channelID string, page pipeline.Pagination) (domain.Page[domain.Subscriber], error)
	SubscribedChannels(ctx context.Context, subscriberID string, page pipeline.Pagination) (domain.Page[domain.Subscriber], error)
}

// PlaylistRepository defines methods for playlist operations
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	GetDetail(ctx context.Context, id string) (*domain.PlaylistDetail, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.PlaylistDetail, error)
	Update(ctx context.Context, id string, name, description *string) (*domain.Playlist, error)
	Delete(ctx context.Context, id string) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}

// DashboardRepository defines methods for channel dashboard aggregates
type DashboardRepository interface {
	Stats(ctx context.Context, userID string) (*domain.ChannelStats, error)
}
