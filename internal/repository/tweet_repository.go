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

const tweetColumns = "t.id, t.content, t.owner_id, t.created_at, t.updated_at"

// tweetRepository implements TweetRepository interface
type tweetRepository struct {
	db *database.Postgres
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *database.Postgres) TweetRepository {
	return &tweetRepository{db: db}
}

func tweetDest(t *domain.Tweet) []any {
	return []any{&t.ID, &t.Content, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	query := `INSERT INTO tweets (id, content, owner_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`

	if tweet.ID == "" {
		tweet.ID = uuid.New().String()
	}
	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	if _, err := r.db.Pool.Exec(ctx, query, tweet.ID, tweet.Content, tweet.OwnerID, tweet.CreatedAt, tweet.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id string) (*domain.Tweet, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets t WHERE t.id = $1`

	tweet := &domain.Tweet{}
	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(tweetDest(tweet)...); err != nil {
		return nil, notFound(err, "tweet")
	}
	return tweet, nil
}

// ListByOwner pages through a user's tweets, newest first
func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID string, page pipeline.Pagination) (domain.Page[domain.Tweet], error) {
	owner := pipeline.OwnerProjection{Alias: "o", WithEmail: true}

	q := pipeline.From("tweets t").
		Select(tweetColumns).
		Select(owner.Columns()...).
		Join(owner.Join("t.owner_id")).
		Where(pipeline.Eq("t.owner_id", ownerID)).
		OrderBy(pipeline.Sort{Column: "t.created_at", Desc: true}).
		TieBreak("t.id")

	return fetchPage(ctx, r.db, q, page, domain.TweetLabels, func(row pgx.Row) (domain.Tweet, error) {
		var t domain.Tweet
		o := owner.Scan()
		if err := row.Scan(append(tweetDest(&t), o.Dest()...)...); err != nil {
			return t, err
		}
		t.Owner = o.Owner()
		return t, nil
	})
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error) {
	query := `
		UPDATE tweets t SET content = $2, updated_at = NOW()
		WHERE t.id = $1
		RETURNING ` + tweetColumns

	tweet := &domain.Tweet{}
	if err := r.db.Pool.QueryRow(ctx, query, id, content).Scan(tweetDest(tweet)...); err != nil {
		return nil, notFound(err, "tweet")
	}
	return tweet, nil
}

func (r *tweetRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tweet %s: %w", id, ErrNotFound)
	}
	return nil
}
