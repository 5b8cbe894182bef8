package repository

import (
	"context"
	"fmt"

	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/pkg/database"
)

// dashboardRepository implements DashboardRepository interface
type dashboardRepository struct {
	db *database.Postgres
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *database.Postgres) DashboardRepository {
	return &dashboardRepository{db: db}
}

const channelStatsQuery = `
	SELECT
		(SELECT COUNT(*) FROM videos WHERE owner_id = $1),
		(SELECT COALESCE(SUM(views), 0)::BIGINT FROM videos WHERE owner_id = $1),
		(SELECT COUNT(*) FROM comments c JOIN videos v ON v.id = c.video_id WHERE v.owner_id = $1),
		(SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1),
		(SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1),
		(SELECT COUNT(*) FROM tweets WHERE owner_id = $1),
		(SELECT COUNT(*) FROM likes l JOIN videos v ON v.id = l.video_id WHERE v.owner_id = $1),
		(SELECT COUNT(*) FROM likes l JOIN tweets t ON t.id = l.tweet_id WHERE t.owner_id = $1),
		(SELECT COUNT(*) FROM likes l JOIN comments c ON c.id = l.comment_id WHERE c.owner_id = $1)
`

// Stats computes the channel totals of userID in a single round trip
func (r *dashboardRepository) Stats(ctx context.Context, userID string) (*domain.ChannelStats, error) {
	stats := &domain.ChannelStats{}
	likes := &stats.TotalLikes

	err := r.db.Pool.QueryRow(ctx, channelStatsQuery, userID).Scan(
		&stats.TotalVideos,
		&stats.TotalViews,
		&stats.TotalComments,
		&stats.Subscribers,
		&stats.SubscribedTo,
		&stats.TotalTweets,
		&likes.VideoLikes,
		&likes.TweetLikes,
		&likes.CommentLikes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute channel stats: %w", err)
	}
	likes.Total = likes.VideoLikes + likes.TweetLikes + likes.CommentLikes
	return stats, nil
}
