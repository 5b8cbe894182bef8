package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
	"github.com/prperemyshlev/vidverse/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Video        VideoRepository
	Comment      CommentRepository
	Tweet        TweetRepository
	Like         LikeRepository
	Subscription SubscriptionRepository
	Playlist     PlaylistRepository
	Dashboard    DashboardRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Video:        NewVideoRepository(db),
		Comment:      NewCommentRepository(db),
		Tweet:        NewTweetRepository(db),
		Like:         NewLikeRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Playlist:     NewPlaylistRepository(db),
		Dashboard:    NewDashboardRepository(db),
	}
}

// notFound maps pgx.ErrNoRows to ErrNotFound and wraps anything else.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s not found: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// fetchPage runs the count and data statements of a built query and scans each row with scan.
func fetchPage[T any](
	ctx context.Context,
	db *database.Postgres,
	q *pipeline.Query,
	p pipeline.Pagination,
	labels domain.Labels,
	scan func(pgx.Row) (T, error),
) (domain.Page[T], error) {
	page := domain.Page[T]{Page: p.Page, Limit: p.Limit, Labels: labels}

	data, count := q.Paginate(p).Build()

	if err := db.Pool.QueryRow(ctx, count.SQL, count.Args...).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("failed to count %s: %w", labels.Items, err)
	}

	rows, err := db.Pool.Query(ctx, data.SQL, data.Args...)
	if err != nil {
		return page, fmt.Errorf("failed to query %s: %w", labels.Items, err)
	}
	defer rows.Close()

	items := make([]T, 0, p.Limit)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return page, fmt.Errorf("failed to scan %s: %w", labels.Items, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("failed to iterate %s: %w", labels.Items, err)
	}

	page.Items = items
	return page, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
