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

const commentColumns = "c.id, c.content, c.video_id, c.owner_id, c.created_at, c.updated_at"

// commentRepository implements CommentRepository interface
type commentRepository struct {
	db *database.Postgres
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *database.Postgres) CommentRepository {
	return &commentRepository{db: db}
}

func commentDest(c *domain.Comment) []any {
	return []any{&c.ID, &c.Content, &c.VideoID, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, content, video_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, query,
		comment.ID, comment.Content, comment.VideoID, comment.OwnerID, comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("video %s: %w", comment.VideoID, ErrNotFound)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments c WHERE c.id = $1`

	comment := &domain.Comment{}
	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(commentDest(comment)...); err != nil {
		return nil, notFound(err, "comment")
	}
	return comment, nil
}

// ListByVideo pages through a video's comments, oldest first
func (r *commentRepository) ListByVideo(ctx context.Context, videoID string, page pipeline.Pagination) (domain.Page[domain.Comment], error) {
	owner := pipeline.OwnerProjection{Alias: "o"}

	q := pipeline.From("comments c").
		Select(commentColumns).
		Select(owner.Columns()...).
		Join(owner.Join("c.owner_id")).
		Where(pipeline.Eq("c.video_id", videoID)).
		OrderBy(pipeline.Sort{Column: "c.created_at"}).
		TieBreak("c.id")

	return fetchPage(ctx, r.db, q, page, domain.CommentLabels, func(row pgx.Row) (domain.Comment, error) {
		var c domain.Comment
		o := owner.Scan()
		if err := row.Scan(append(commentDest(&c), o.Dest()...)...); err != nil {
			return c, err
		}
		c.Owner = o.Owner()
		return c, nil
	})
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	query := `
		UPDATE comments c SET content = $2, updated_at = NOW()
		WHERE c.id = $1
		RETURNING ` + commentColumns

	comment := &domain.Comment{}
	if err := r.db.Pool.QueryRow(ctx, query, id, content).Scan(commentDest(comment)...); err != nil {
		return nil, notFound(err, "comment")
	}
	return comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, ErrNotFound)
	}
	return nil
}
