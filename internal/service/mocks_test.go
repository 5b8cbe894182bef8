package service

import (
	"context"

	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
	"github.com/prperemyshlev/vidverse/internal/storage"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) GetProfileByID(ctx context.Context, id string) (*domain.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) UpdatePending(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) SetRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error) {
	return m.user(m.Called(ctx, id, fullName, email))
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id, url string) (*domain.User, error) {
	return m.user(m.Called(ctx, id, url))
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id, url string) (*domain.User, error) {
	return m.user(m.Called(ctx, id, url))
}

func (m *MockUserRepository) GetChannel(ctx context.Context, username, viewerID string) (*domain.Channel, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *MockUserRepository) WatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

// MockVideoRepository is a mock implementation of repository.VideoRepository.
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) video(args mock.Arguments) (*domain.Video, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	return m.video(m.Called(ctx, id))
}

func (m *MockVideoRepository) GetDetail(ctx context.Context, id, viewerID string) (*domain.VideoDetail, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, filter repository.VideoFilter) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.Page[domain.Video]), args.Error(1)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Video, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoRepository) RecordView(ctx context.Context, userID, videoID string) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id, title, description, thumbnail string) (*domain.Video, error) {
	return m.video(m.Called(ctx, id, title, description, thumbnail))
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, id string, published bool) (*domain.Video, error) {
	return m.video(m.Called(ctx, id, published))
}

func (m *MockVideoRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockCommentRepository is a mock implementation of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) comment(args mock.Arguments) (*domain.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID string, page pipeline.Pagination) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, videoID, page)
	return args.Get(0).(domain.Page[domain.Comment]), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, id, content))
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTweetRepository is a mock implementation of repository.TweetRepository.
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) tweet(args mock.Arguments) (*domain.Tweet, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id string) (*domain.Tweet, error) {
	return m.tweet(m.Called(ctx, id))
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID string, page pipeline.Pagination) (domain.Page[domain.Tweet], error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).(domain.Page[domain.Tweet]), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error) {
	return m.tweet(m.Called(ctx, id, content))
}

func (m *MockTweetRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockLikeRepository is a mock implementation of repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, userID string, target domain.LikeTarget, targetID string) (bool, error) {
	args := m.Called(ctx, userID, target, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, userID string, page pipeline.Pagination) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(domain.Page[domain.Video]), args.Error(1)
}

// MockSubscriptionRepository is a mock implementation of repository.SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Subscribers(ctx context.Context, channelID string, page pipeline.Pagination) (domain.Page[domain.Subscriber], error) {
	args := m.Called(ctx, channelID, page)
	return args.Get(0).(domain.Page[domain.Subscriber]), args.Error(1)
}

func (m *MockSubscriptionRepository) SubscribedChannels(ctx context.Context, subscriberID string, page pipeline.Pagination) (domain.Page[domain.Subscriber], error) {
	args := m.Called(ctx, subscriberID, page)
	return args.Get(0).(domain.Page[domain.Subscriber]), args.Error(1)
}

// MockPlaylistRepository is a mock implementation of repository.PlaylistRepository.
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetDetail(ctx context.Context, id string) (*domain.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.PlaylistDetail, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id string, name, description *string) (*domain.Playlist, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

// MockDashboardRepository is a mock implementation of repository.DashboardRepository.
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Stats(ctx context.Context, userID string) (*domain.ChannelStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelStats), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationCode(ctx context.Context, to, username, code string) error {
	return m.Called(ctx, to, username, code).Error(0)
}

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, folder string, obj storage.Object) (string, error) {
	args := m.Called(ctx, folder, obj)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, location string) error {
	return m.Called(ctx, location).Error(0)
}
