package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/config"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/mailer"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/storage"
	"github.com/prperemyshlev/vidverse/internal/utils"
	"github.com/prperemyshlev/vidverse/pkg/observability"
	"go.uber.org/zap"
)

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
	session  SessionService
	mailer   mailer.Mailer
	media    media
	metrics  *observability.Metrics
	cfg      *config.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	session SessionService,
	mail mailer.Mailer,
	store storage.Storage,
	metrics *observability.Metrics,
	cfg *config.Config,
	logger *zap.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		session:  session,
		mailer:   mail,
		media:    media{store: store, metrics: metrics, logger: logger},
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an unverified account, or refreshes a still pending one, and mails a verification code
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	if utils.AnyBlank(req.FullName, req.Email, req.Username, req.Password) {
		return nil, apierror.BadRequest("All fields are required")
	}

	username := utils.SanitizeUsername(req.Username)
	email := utils.SanitizeEmail(req.Email)
	if !utils.ValidateEmail(email) {
		return nil, apierror.BadRequest("Invalid email format")
	}

	byUsername, err := s.findUser(ctx, s.userRepo.GetByUsername, username)
	if err != nil {
		return nil, err
	}
	if byUsername != nil && byUsername.IsVerified {
		return nil, apierror.Conflict("Username is already taken")
	}

	byEmail, err := s.findUser(ctx, s.userRepo.GetByEmail, email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil && byEmail.IsVerified {
		return nil, apierror.Conflict("User already exists with this email")
	}

	passwordHash, err := utils.HashPassword(req.Password, s.cfg.Security.BCryptCost)
	if err != nil {
		return nil, apierror.Internal("Failed to hash password", err)
	}
	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, apierror.Internal("Failed to generate verification code", err)
	}

	pending := byEmail
	if pending == nil {
		pending = byUsername
	}

	user := pending
	if user == nil {
		user = &domain.User{}
	}
	user.Username = username
	user.Email = email
	user.FullName = strings.TrimSpace(req.FullName)
	user.PasswordHash = passwordHash
	user.VerifyCode = code
	user.VerifyCodeExpiry = s.now().Add(s.cfg.Verification.CodeTTL.Duration)

	if pending != nil {
		err = s.userRepo.UpdatePending(ctx, user)
	} else {
		err = s.userRepo.Create(ctx, user)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apierror.Conflict("Username or email is already taken")
		}
		return nil, apierror.Internal("Something went wrong while registering the user", err)
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Email, user.Username, code); err != nil {
		return nil, apierror.Internal("Failed to send verification email", err)
	}

	s.metrics.Registration(ctx, pending != nil)
	s.logger.Info("User registered", zap.String("user_id", user.ID), zap.Bool("pending_update", pending != nil))

	return user, nil
}

// findUser returns nil without error when the lookup finds nothing
func (s *userService) findUser(
	ctx context.Context,
	lookup func(context.Context, string) (*domain.User, error),
	key string,
) (*domain.User, error) {
	user, err := lookup(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apierror.Internal("Internal server error", err)
	}
	return user, nil
}

// Verify confirms a registration; it reports true when the account was already verified
func (s *userService) Verify(ctx context.Context, req *dto.VerifyRequest) (bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, utils.SanitizeUsername(req.Username))
	if err != nil {
		return false, lookupError(err, "User not found")
	}
	if user.IsVerified {
		return true, nil
	}

	if user.VerificationExpired(s.now()) {
		return false, apierror.BadRequest("Verification code has expired, please signup again to get verified")
	}
	if !utils.CodeMatches(strings.TrimSpace(req.OTP), user.VerifyCode) {
		return false, apierror.BadRequest("Incorrect verification code")
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return false, apierror.Internal("Failed to verify user", err)
	}
	return false, nil
}

// Login checks credentials and opens a session
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, *TokenPair, error) {
	var (
		user *domain.User
		err  error
	)
	switch {
	case !utils.IsBlank(req.Username):
		user, err = s.userRepo.GetByUsername(ctx, utils.SanitizeUsername(req.Username))
	case !utils.IsBlank(req.Email):
		user, err = s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	default:
		return nil, nil, apierror.BadRequest("Username or email is required")
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.Login(ctx, "unknown_user")
		}
		return nil, nil, lookupError(err, "User does not exist")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.metrics.Login(ctx, "invalid_credentials")
		return nil, nil, apierror.Unauthorized("Invalid user credentials")
	}

	tokens, err := s.session.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.Login(ctx, "success")
	s.logger.Info("User logged in", zap.String("user_id", user.ID))

	return user, tokens, nil
}

// RefreshToken rotates the caller's token pair
func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if utils.IsBlank(refreshToken) {
		return nil, apierror.Unauthorized("Unauthorized request")
	}
	return s.session.RenewAccessToken(ctx, refreshToken)
}

// Logout clears the stored refresh token and blacklists the presented access token
func (s *userService) Logout(ctx context.Context, userID, accessToken string) error {
	if err := s.session.Revoke(ctx, userID); err != nil {
		return err
	}
	if err := s.session.BlacklistAccessToken(ctx, accessToken); err != nil {
		s.logger.Warn("Failed to blacklist access token", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return lookupError(err, "User not found")
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apierror.BadRequest("Invalid old password")
	}

	passwordHash, err := utils.HashPassword(req.NewPassword, s.cfg.Security.BCryptCost)
	if err != nil {
		return apierror.Internal("Failed to hash password", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return apierror.Internal("Failed to update password", err)
	}
	return nil
}

func (s *userService) UpdateAccount(ctx context.Context, userID string, req *dto.UpdateAccountRequest) (*domain.User, error) {
	if utils.AnyBlank(req.FullName, req.Email) {
		return nil, apierror.BadRequest("All fields are required")
	}
	email := utils.SanitizeEmail(req.Email)
	if !utils.ValidateEmail(email) {
		return nil, apierror.BadRequest("Invalid email format")
	}

	user, err := s.userRepo.UpdateAccount(ctx, userID, strings.TrimSpace(req.FullName), email)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apierror.Conflict("Email is already in use")
		}
		return nil, lookupError(err, "User not found")
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, user *domain.User, file *storage.Object) (*domain.User, error) {
	if file == nil {
		return nil, apierror.BadRequest("Avatar file is missing")
	}
	return s.replaceImage(ctx, storage.FolderAvatars, user.Avatar, domain.DefaultAvatarURL, *file,
		"Error while uploading avatar",
		func(url string) (*domain.User, error) { return s.userRepo.UpdateAvatar(ctx, user.ID, url) },
	)
}

func (s *userService) UpdateCoverImage(ctx context.Context, user *domain.User, file *storage.Object) (*domain.User, error) {
	if file == nil {
		return nil, apierror.BadRequest("Cover image file is missing")
	}
	return s.replaceImage(ctx, storage.FolderCoverImages, user.CoverImage, domain.DefaultCoverImageURL, *file,
		"Error while uploading cover image",
		func(url string) (*domain.User, error) { return s.userRepo.UpdateCoverImage(ctx, user.ID, url) },
	)
}

// replaceImage uploads file, persists its location and then removes the previous upload
func (s *userService) replaceImage(
	ctx context.Context,
	folder, previous, fallback string,
	file storage.Object,
	uploadMessage string,
	persist func(url string) (*domain.User, error),
) (*domain.User, error) {
	location, err := s.media.upload(ctx, folder, file)
	if err != nil {
		return nil, apierror.BadRequest(uploadMessage)
	}

	updated, err := persist(location)
	if err != nil {
		s.media.remove(ctx, location)
		return nil, lookupError(err, "User not found")
	}

	if previous != fallback {
		s.media.remove(ctx, previous)
	}
	return updated, nil
}

// Channel loads the public profile of username as seen by viewerID
func (s *userService) Channel(ctx context.Context, username, viewerID string) (*domain.Channel, error) {
	if utils.IsBlank(username) {
		return nil, apierror.BadRequest("Username is missing")
	}

	channel, err := s.userRepo.GetChannel(ctx, utils.SanitizeUsername(username), viewerID)
	if err != nil {
		return nil, lookupError(err, "Channel does not exist")
	}
	return channel, nil
}

func (s *userService) WatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	videos, err := s.userRepo.WatchHistory(ctx, userID)
	if err != nil {
		return nil, apierror.Internal("Failed to fetch watch history", err)
	}
	return videos, nil
}
