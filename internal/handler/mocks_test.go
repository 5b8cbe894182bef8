package handler

import (
	"context"

	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
	"github.com/prperemyshlev/vidverse/internal/storage"
	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) IssueTokenPair(ctx context.Context, user *domain.User) (*service.TokenPair, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockSessionService) RenewAccessToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionService) BlacklistAccessToken(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

func (m *MockSessionService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	return m.user(m.Called(ctx, req))
}

func (m *MockUserService) Verify(ctx context.Context, req *dto.VerifyRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, *service.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*service.TokenPair), args.Error(2)
}

func (m *MockUserService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, userID, accessToken string) error {
	return m.Called(ctx, userID, accessToken).Error(0)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockUserService) UpdateAccount(ctx context.Context, userID string, req *dto.UpdateAccountRequest) (*domain.User, error) {
	return m.user(m.Called(ctx, userID, req))
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, user *domain.User, file *storage.Object) (*domain.User, error) {
	return m.user(m.Called(ctx, user, file))
}

func (m *MockUserService) UpdateCoverImage(ctx context.Context, user *domain.User, file *storage.Object) (*domain.User, error) {
	return m.user(m.Called(ctx, user, file))
}

func (m *MockUserService) Channel(ctx context.Context, username, viewerID string) (*domain.Channel, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *MockUserService) WatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

// MockVideoService is a mock implementation of service.VideoService.
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) video(args mock.Arguments) (*domain.Video, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) List(ctx context.Context, q dto.VideoListQuery) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.Video]), args.Error(1)
}

func (m *MockVideoService) Publish(ctx context.Context, ownerID string, req *dto.PublishVideoRequest, videoFile, thumbnail *storage.Object) (*domain.Video, error) {
	return m.video(m.Called(ctx, ownerID, req, videoFile, thumbnail))
}

func (m *MockVideoService) Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error) {
	args := m.Called(ctx, videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoDetail), args.Error(1)
}

func (m *MockVideoService) Update(ctx context.Context, actorID, videoID string, req *dto.UpdateVideoRequest, thumbnail *storage.Object) (*domain.Video, error) {
	return m.video(m.Called(ctx, actorID, videoID, req, thumbnail))
}

func (m *MockVideoService) Delete(ctx context.Context, actorID, videoID string) error {
	return m.Called(ctx, actorID, videoID).Error(0)
}

func (m *MockVideoService) TogglePublish(ctx context.Context, actorID, videoID string) (*domain.Video, error) {
	return m.video(m.Called(ctx, actorID, videoID))
}

// MockLikeService is a mock implementation of service.LikeService.
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Toggle(ctx context.Context, actorID string, target domain.LikeTarget, targetID string) (bool, error) {
	args := m.Called(ctx, actorID, target, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeService) LikedVideos(ctx context.Context, actorID string, q dto.PageQuery) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, actorID, q)
	return args.Get(0).(domain.Page[domain.Video]), args.Error(1)
}

// MockCommentService is a mock implementation of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context, videoID string, q dto.PageQuery) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, videoID, q)
	return args.Get(0).(domain.Page[domain.Comment]), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, actorID, videoID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, actorID, videoID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, actorID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, actorID, commentID string) error {
	return m.Called(ctx, actorID, commentID).Error(0)
}
