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

// subscriptionRepository implements SubscriptionRepository interface
type subscriptionRepository struct {
	db *database.Postgres
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *database.Postgres) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Toggle deletes the subscriber -> channel edge if it exists, otherwise creates it.
// It reports whether the edge exists afterwards.
func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`,
		subscriberID, channelID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO subscriptions (id, subscriber_id, channel_id) VALUES ($1, $2, $3)`,
		uuid.New().String(), subscriberID, channelID,
	)
	switch {
	case err == nil, database.IsUniqueViolation(err):
		return true, nil
	case database.IsForeignKeyViolation(err):
		return false, fmt.Errorf("channel %s: %w", channelID, ErrNotFound)
	default:
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}
}

// Subscribers pages through the users subscribed to channelID
func (r *subscriptionRepository) Subscribers(ctx context.Context, channelID string, page pipeline.Pagination) (domain.Page[domain.Subscriber], error) {
	return r.edges(ctx, "s.subscriber_id", pipeline.Eq("s.channel_id", channelID), page, domain.SubscriberLabels)
}

// SubscribedChannels pages through the channels subscriberID follows
func (r *subscriptionRepository) SubscribedChannels(ctx context.Context, subscriberID string, page pipeline.Pagination) (domain.Page[domain.Subscriber], error) {
	return r.edges(ctx, "s.channel_id", pipeline.Eq("s.subscriber_id", subscriberID), page, domain.ChannelLabels)
}

func (r *subscriptionRepository) edges(
	ctx context.Context,
	userFK string,
	filter pipeline.Filter,
	page pipeline.Pagination,
	labels domain.Labels,
) (domain.Page[domain.Subscriber], error) {
	q := pipeline.From("subscriptions s").
		Select("u.id", "u.username", "u.full_name", "u.avatar", "s.created_at").
		Join("JOIN users u ON u.id = " + userFK).
		Where(filter).
		OrderBy(pipeline.Sort{Column: "s.created_at", Desc: true}).
		TieBreak("s.id")

	return fetchPage(ctx, r.db, q, page, labels, func(row pgx.Row) (domain.Subscriber, error) {
		var s domain.Subscriber
		err := row.Scan(&s.ID, &s.Username, &s.FullName, &s.Avatar, &s.SubscribedAt)
		return s, err
	})
}
