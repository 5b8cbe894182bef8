package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
	"github.com/prperemyshlev/vidverse/pkg/database"
)

const (
	userColumns = `id, username, email, full_name, avatar, cover_image, is_verified,
		password_hash, verify_code, verify_code_expiry, refresh_token_hash, created_at, updated_at`

	profileColumns = `id, username, email, full_name, avatar, cover_image, is_verified, created_at, updated_at`
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *database.Postgres
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.Postgres) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.Avatar,
		&user.CoverImage,
		&user.IsVerified,
		&user.PasswordHash,
		&user.VerifyCode,
		&user.VerifyCodeExpiry,
		&user.RefreshTokenHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

func scanProfile(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.Avatar,
		&user.CoverImage,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// Create inserts a new unverified user
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, full_name, password_hash, verify_code, verify_code_expiry,
			is_verified, avatar, cover_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Avatar == "" {
		user.Avatar = domain.DefaultAvatarURL
	}
	if user.CoverImage == "" {
		user.CoverImage = domain.DefaultCoverImageURL
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.VerifyCode,
		user.VerifyCodeExpiry,
		user.IsVerified,
		user.Avatar,
		user.CoverImage,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("user %s already exists: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user with credential columns
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// GetProfileByID retrieves a user without password, verification or refresh token columns
func (r *userRepository) GetProfileByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	user, err := scanProfile(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// UpdatePending rewrites a still unverified registration in place
func (r *userRepository) UpdatePending(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, full_name = $4, password_hash = $5,
			verify_code = $6, verify_code_expiry = $7, updated_at = $8
		WHERE id = $1 AND is_verified = FALSE
	`

	user.UpdatedAt = time.Now()

	tag, err := r.db.Pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.VerifyCode,
		user.VerifyCodeExpiry,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("user %s already exists: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to update pending user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending user %s: %w", user.ID, ErrNotFound)
	}

	return nil
}

// MarkVerified flags the user as verified and clears the verification code
func (r *userRepository) MarkVerified(ctx context.Context, id string) error {
	query := `UPDATE users SET is_verified = TRUE, verify_code = '', updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to verify user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetRefreshTokenHash overwrites the single refresh token slot; nil clears it
func (r *userRepository) SetRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	query := `UPDATE users SET refresh_token_hash = $2 WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdatePassword replaces the password hash
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateAccount updates display name and email
func (r *userRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error) {
	query := `
		UPDATE users SET full_name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns

	user, err := scanProfile(r.db.Pool.QueryRow(ctx, query, id, fullName, email))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email %s already in use: %w", email, ErrDuplicate)
		}
		return nil, notFound(err, "user")
	}
	return user, nil
}

// UpdateAvatar stores a new avatar URL
func (r *userRepository) UpdateAvatar(ctx context.Context, id, url string) (*domain.User, error) {
	return r.updateImage(ctx, "avatar", id, url)
}

// UpdateCoverImage stores a new cover image URL
func (r *userRepository) UpdateCoverImage(ctx context.Context, id, url string) (*domain.User, error) {
	return r.updateImage(ctx, "cover_image", id, url)
}

func (r *userRepository) updateImage(ctx context.Context, column, id, url string) (*domain.User, error) {
	query := `UPDATE users SET ` + column + ` = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + profileColumns

	user, err := scanProfile(r.db.Pool.QueryRow(ctx, query, id, url))
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// GetChannel returns the public channel profile of username as seen by viewerID
func (r *userRepository) GetChannel(ctx context.Context, username, viewerID string) (*domain.Channel, error) {
	data, _ := pipeline.From("users u").
		Select(
			"u.id", "u.username", "u.full_name", "u.email", "u.avatar", "u.cover_image",
			pipeline.CountOf("subscriptions", "channel_id", "u.id"),
			pipeline.CountOf("subscriptions", "subscriber_id", "u.id"),
		).
		SelectArg("EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = %s)", viewerID).
		Where(pipeline.Eq("u.username", username)).
		Build()

	channel := &domain.Channel{}
	err := r.db.Pool.QueryRow(ctx, data.SQL, data.Args...).Scan(
		&channel.ID,
		&channel.Username,
		&channel.FullName,
		&channel.Email,
		&channel.Avatar,
		&channel.CoverImage,
		&channel.SubscribersCount,
		&channel.ChannelsSubscribedToCount,
		&channel.IsSubscribed,
	)
	if err != nil {
		return nil, notFound(err, "channel")
	}
	return channel, nil
}

// WatchHistory lists the user's watched videos in the order they were first watched
func (r *userRepository) WatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	owner := pipeline.OwnerProjection{Alias: "o"}

	data, _ := pipeline.From("watch_history wh").
		Select(videoColumns...).
		Select(owner.Columns()...).
		Join("JOIN videos v ON v.id = wh.video_id").
		Join(owner.Join("v.owner_id")).
		Where(pipeline.Eq("wh.user_id", userID)).
		OrderBy(pipeline.Sort{Column: "wh.watched_at"}).
		Build()

	rows, err := r.db.Pool.Query(ctx, data.SQL, data.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		video, err := scanVideoWithOwner(rows, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watch history: %w", err)
	}

	return videos, nil
}
