package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock pgxmock.PgxPoolIface)
		wantLiked bool
		wantErr   error
	}{
		{
			name: "existing like is removed",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM likes WHERE liked_by = \$1 AND video_id = \$2`).
					WithArgs(userID, videoID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			wantLiked: false,
		},
		{
			name: "missing like is added",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM likes`).
					WithArgs(userID, videoID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`INSERT INTO likes \(id, liked_by, video_id\) VALUES \(\$1, \$2, \$3\)`).
					WithArgs(pgxmock.AnyArg(), userID, videoID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantLiked: true,
		},
		{
			name: "concurrent insert counts as liked",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM likes`).
					WithArgs(userID, videoID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`INSERT INTO likes`).
					WithArgs(pgxmock.AnyArg(), userID, videoID).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantLiked: true,
		},
		{
			name: "unknown target",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM likes`).
					WithArgs(userID, videoID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`INSERT INTO likes`).
					WithArgs(pgxmock.AnyArg(), userID, videoID).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newDB(t)
			defer mock.Close()
			tt.setup(mock)

			liked, err := NewLikeRepository(db).Toggle(context.Background(), userID, domain.LikeTargetVideo, videoID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLiked, liked)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLikeRepository_Toggle_TargetColumn(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLikeRepository(db)

	mock.ExpectExec(`DELETE FROM likes WHERE liked_by = \$1 AND tweet_id = \$2`).
		WithArgs(userID, "tweet-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	_, err := r.Toggle(context.Background(), userID, domain.LikeTargetTweet, "tweet-1")
	require.NoError(t, err)

	_, err = r.Toggle(context.Background(), userID, domain.LikeTarget("playlist"), "p-1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_LikedVideos(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLikeRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM likes l JOIN videos v ON v.id = l.video_id LEFT JOIN users o ON o.id = v.owner_id WHERE l.liked_by = \$1 AND v.is_published`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(countCols).AddRow(int64(1)))

	cols := append(append([]string{}, videoCols...), ownerCols...)
	mock.ExpectQuery(`ORDER BY l.created_at DESC, v.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(userID, 10, 0).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(append(videoValues(videoID, otherID, 1), nil, nil, nil, nil)...))

	page, err := r.LikedVideos(context.Background(), userID, pipeline.NewPagination(1, 10, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.Items[0].Owner, "an unmatched owner join collapses to nil")
	assert.Equal(t, domain.LikedVideoLabels, page.Labels)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Toggle(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubscriptionRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM subscriptions WHERE subscriber_id = \$1 AND channel_id = \$2`).
		WithArgs(userID, otherID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`INSERT INTO subscriptions \(id, subscriber_id, channel_id\)`).
		WithArgs(pgxmock.AnyArg(), userID, otherID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	subscribed, err := r.Toggle(ctx, userID, otherID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	mock.ExpectExec(`DELETE FROM subscriptions`).
		WithArgs(userID, otherID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	subscribed, err = r.Toggle(ctx, userID, otherID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Subscribers(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubscriptionRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM subscriptions s JOIN users u ON u.id = s.subscriber_id WHERE s.channel_id = \$1`).
		WithArgs(otherID).
		WillReturnRows(pgxmock.NewRows(countCols).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT u.id, u.username, u.full_name, u.avatar, s.created_at FROM subscriptions s`).
		WithArgs(otherID, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "full_name", "avatar", "created_at"}).
			AddRow(userID, "alice", "Alice", "a.png", time.Now()))

	page, err := r.Subscribers(context.Background(), otherID, pipeline.NewPagination(1, 10, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
	assert.Equal(t, domain.SubscriberLabels, page.Labels)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_SubscribedChannels_JoinsChannel(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubscriptionRepository(db)

	mock.ExpectQuery(`JOIN users u ON u.id = s.channel_id WHERE s.subscriber_id = \$1`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(countCols).AddRow(int64(0)))
	mock.ExpectQuery(`JOIN users u ON u.id = s.channel_id WHERE s.subscriber_id = \$1`).
		WithArgs(userID, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "full_name", "avatar", "created_at"}))

	page, err := r.SubscribedChannels(context.Background(), userID, pipeline.NewPagination(1, 10, 10))
	require.NoError(t, err)
	assert.True(t, page.Empty())
	assert.Equal(t, domain.ChannelLabels, page.Labels)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CreateOnMissingVideo(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCommentRepository(db)

	mock.ExpectExec(`INSERT INTO comments`).
		WithArgs(pgxmock.AnyArg(), "nice", videoID, userID, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := r.Create(context.Background(), &domain.Comment{Content: "nice", VideoID: videoID, OwnerID: userID})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCommentRepository_ListByVideo(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCommentRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM comments c LEFT JOIN users o ON o.id = c.owner_id WHERE c.video_id = \$1`).
		WithArgs(videoID).
		WillReturnRows(pgxmock.NewRows(countCols).AddRow(int64(2)))
	mock.ExpectQuery(`ORDER BY c.created_at ASC, c.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(videoID, 10, 0).
		WillReturnRows(pgxmock.NewRows(append([]string{"id", "content", "video_id", "owner_id", "created_at", "updated_at"}, ownerCols...)).
			AddRow(append([]any{"c1", "first", videoID, userID, now, now}, ownerValues(userID, "alice")...)...).
			AddRow(append([]any{"c2", "second", videoID, otherID, now, now}, ownerValues(otherID, "bob")...)...))

	page, err := r.ListByVideo(context.Background(), videoID, pipeline.NewPagination(1, 10, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "first", page.Items[0].Content)
	assert.Equal(t, "bob", page.Items[1].Owner.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTweetRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTweetRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`UPDATE tweets t SET content = \$2`).
		WithArgs("t1", "edited").
		WillReturnRows(pgxmock.NewRows([]string{"id", "content", "owner_id", "created_at", "updated_at"}).
			AddRow("t1", "edited", userID, now, now))

	tweet, err := r.UpdateContent(ctx, "t1", "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", tweet.Content)

	mock.ExpectExec(`DELETE FROM tweets WHERE id = \$1`).
		WithArgs("t1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, "t1"), ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
