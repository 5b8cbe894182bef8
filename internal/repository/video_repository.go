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

var videoColumns = []string{
	"v.id", "v.video_file", "v.thumbnail", "v.title", "v.description", "v.duration",
	"v.views", "v.is_published", "v.owner_id", "v.created_at", "v.updated_at",
}

var videoSortFields = pipeline.SortFields{
	Allowed: map[string]string{
		"createdAt": "v.created_at",
		"updatedAt": "v.updated_at",
		"views":     "v.views",
		"duration":  "v.duration",
		"title":     "v.title",
	},
	Default: "createdAt",
}

// videoRepository implements VideoRepository interface
type videoRepository struct {
	db *database.Postgres
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *database.Postgres) VideoRepository {
	return &videoRepository{db: db}
}

func videoDest(v *domain.Video) []any {
	return []any{
		&v.ID, &v.VideoFile, &v.Thumbnail, &v.Title, &v.Description, &v.Duration,
		&v.Views, &v.IsPublished, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt,
	}
}

func scanVideo(row pgx.Row) (domain.Video, error) {
	var v domain.Video
	err := row.Scan(videoDest(&v)...)
	return v, err
}

func scanVideoWithOwner(row pgx.Row, owner pipeline.OwnerProjection) (domain.Video, error) {
	var v domain.Video
	o := owner.Scan()
	if err := row.Scan(append(videoDest(&v), o.Dest()...)...); err != nil {
		return v, err
	}
	v.Owner = o.Owner()
	return v, nil
}

// Create inserts a newly published video
func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO videos (id, owner_id, video_file, thumbnail, title, description, duration,
			views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, query,
		video.ID,
		video.OwnerID,
		video.VideoFile,
		video.Thumbnail,
		video.Title,
		video.Description,
		video.Duration,
		video.Views,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a video without joins
func (r *videoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	data, _ := pipeline.From("videos v").
		Select(videoColumns...).
		Where(pipeline.Eq("v.id", id)).
		Build()

	video, err := scanVideo(r.db.Pool.QueryRow(ctx, data.SQL, data.Args...))
	if err != nil {
		return nil, notFound(err, "video")
	}
	return &video, nil
}

// GetDetail retrieves a video with its owner, like count and the viewer's like state
func (r *videoRepository) GetDetail(ctx context.Context, id, viewerID string) (*domain.VideoDetail, error) {
	owner := pipeline.OwnerProjection{Alias: "o", WithEmail: true}

	data, _ := pipeline.From("videos v").
		Select(videoColumns...).
		Select(owner.Columns()...).
		Select(pipeline.CountOf("likes", "video_id", "v.id")).
		SelectArg("EXISTS (SELECT 1 FROM likes l WHERE l.video_id = v.id AND l.liked_by = %s)", viewerID).
		Join(owner.Join("v.owner_id")).
		Where(pipeline.Eq("v.id", id)).
		Build()

	detail := &domain.VideoDetail{}
	o := owner.Scan()
	dest := append(videoDest(&detail.Video), o.Dest()...)
	dest = append(dest, &detail.LikesCount, &detail.IsLiked)

	if err := r.db.Pool.QueryRow(ctx, data.SQL, data.Args...).Scan(dest...); err != nil {
		return nil, notFound(err, "video")
	}
	detail.Owner = o.Owner()
	return detail, nil
}

// List returns one page of videos matching filter
func (r *videoRepository) List(ctx context.Context, filter VideoFilter) (domain.Page[domain.Video], error) {
	owner := pipeline.OwnerProjection{Alias: "o"}
	byOwner := filter.OwnerID != ""

	q := pipeline.From("videos v").
		Select(videoColumns...).
		Select(owner.Columns()...).
		Join(owner.Join("v.owner_id")).
		Where(
			pipeline.When(byOwner, pipeline.Eq("v.owner_id", filter.OwnerID)),
			pipeline.When(byOwner, pipeline.Raw("v.is_published")),
			pipeline.Search(filter.Query, "v.title", "v.description"),
		).
		OrderBy(videoSortFields.Resolve(filter.SortBy, filter.SortType)).
		TieBreak("v.id")

	return fetchPage(ctx, r.db, q, filter.Page, domain.VideoLabels, func(row pgx.Row) (domain.Video, error) {
		return scanVideoWithOwner(row, owner)
	})
}

// ListByOwner returns every video of a channel, published or not, newest first
func (r *videoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Video, error) {
	data, _ := pipeline.From("videos v").
		Select(videoColumns...).
		Where(pipeline.Eq("v.owner_id", ownerID)).
		OrderBy(pipeline.Sort{Column: "v.created_at", Desc: true}).
		TieBreak("v.id").
		Build()

	rows, err := r.db.Pool.Query(ctx, data.SQL, data.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel videos: %w", err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel video: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channel videos: %w", err)
	}
	return videos, nil
}

// RecordView adds the video to the user's watch history and bumps the view
// counter only when the entry is new. Both writes share one transaction.
func (r *videoRepository) RecordView(ctx context.Context, userID, videoID string) (bool, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin view transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2) ON CONFLICT (user_id, video_id) DO NOTHING`,
		userID, videoID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record watch history: %w", err)
	}

	firstView := tag.RowsAffected() == 1
	if firstView {
		if _, err := tx.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, videoID); err != nil {
			return false, fmt.Errorf("failed to increment views: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit view transaction: %w", err)
	}
	return firstView, nil
}

// Update changes title, description and thumbnail
func (r *videoRepository) Update(ctx context.Context, id, title, description, thumbnail string) (*domain.Video, error) {
	query := `
		UPDATE videos v SET title = $2, description = $3, thumbnail = $4, updated_at = NOW()
		WHERE v.id = $1
		RETURNING ` + joinColumns(videoColumns)

	video, err := scanVideo(r.db.Pool.QueryRow(ctx, query, id, title, description, thumbnail))
	if err != nil {
		return nil, notFound(err, "video")
	}
	return &video, nil
}

// SetPublished sets the publish flag
func (r *videoRepository) SetPublished(ctx context.Context, id string, published bool) (*domain.Video, error) {
	query := `
		UPDATE videos v SET is_published = $2, updated_at = NOW()
		WHERE v.id = $1
		RETURNING ` + joinColumns(videoColumns)

	video, err := scanVideo(r.db.Pool.QueryRow(ctx, query, id, published))
	if err != nil {
		return nil, notFound(err, "video")
	}
	return &video, nil
}

// Delete removes a video; dependent rows cascade
func (r *videoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", id, ErrNotFound)
	}
	return nil
}
