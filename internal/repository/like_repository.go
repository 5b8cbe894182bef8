package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
	"github.com/prperemyshlev/vidverse/pkg/database"
)

// likeRepository implements LikeRepository interface
type likeRepository struct {
	db *database.Postgres
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *database.Postgres) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle removes the user's like on the target if present, otherwise adds it.
// It reports whether the target is liked afterwards.
func (r *likeRepository) Toggle(ctx context.Context, userID string, target domain.LikeTarget, targetID string) (bool, error) {
	column := target.Column()
	if column == "" {
		return false, fmt.Errorf("unknown like target %q", target)
	}

	tag, err := r.db.Pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM likes WHERE liked_by = $1 AND %s = $2`, column),
		userID, targetID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO likes (id, liked_by, %s) VALUES ($1, $2, $3)`, column),
		uuid.New().String(), userID, targetID,
	)
	switch {
	case err == nil, database.IsUniqueViolation(err):
		return true, nil
	case database.IsForeignKeyViolation(err):
		return false, fmt.Errorf("%s %s: %w", target, targetID, ErrNotFound)
	default:
		return false, fmt.Errorf("failed to add like: %w", err)
	}
}

// LikedVideos pages through published videos the user liked, most recent like first
func (r *likeRepository) LikedVideos(ctx context.Context, userID string, page pipeline.Pagination) (domain.Page[domain.Video], error) {
	owner := pipeline.OwnerProjection{Alias: "o"}

	q := pipeline.From("likes l").
		Select(videoColumns...).
		Select(owner.Columns()...).
		Join("JOIN videos v ON v.id = l.video_id").
		Join(owner.Join("v.owner_id")).
		Where(
			pipeline.Eq("l.liked_by", userID),
			pipeline.Raw("v.is_published"),
		).
		OrderBy(pipeline.Sort{Column: "l.created_at", Desc: true}).
		TieBreak("v.id")

	return fetchPage(ctx, r.db, q, page, domain.LikedVideoLabels, func(row pgx.Row) (domain.Video, error) {
		return scanVideoWithOwner(row, owner)
	})
}
