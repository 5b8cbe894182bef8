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

var playlistColumns = []string{"p.id", "p.name", "p.description", "p.owner_id", "p.created_at", "p.updated_at"}

var playlistVideoColumns = []string{
	"pv.playlist_id", "v.id", "v.title", "v.description", "v.thumbnail", "v.video_file", "v.duration", "v.views",
}

// playlistRepository implements PlaylistRepository interface
type playlistRepository struct {
	db *database.Postgres
}

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *database.Postgres) PlaylistRepository {
	return &playlistRepository{db: db}
}

func playlistDest(p *domain.Playlist) []any {
	return []any{&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt}
}

func scanPlaylist(row pgx.Row) (domain.Playlist, error) {
	var p domain.Playlist
	err := row.Scan(playlistDest(&p)...)
	return p, err
}

// Create inserts an empty playlist
func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if playlist.ID == "" {
		playlist.ID = uuid.New().String()
	}
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, query,
		playlist.ID,
		playlist.Name,
		playlist.Description,
		playlist.OwnerID,
		playlist.CreatedAt,
		playlist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

// GetByID retrieves a playlist without its videos
func (r *playlistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	data, _ := pipeline.From("playlists p").
		Select(playlistColumns...).
		Where(pipeline.Eq("p.id", id)).
		Build()

	playlist, err := scanPlaylist(r.db.Pool.QueryRow(ctx, data.SQL, data.Args...))
	if err != nil {
		return nil, notFound(err, "playlist")
	}
	return &playlist, nil
}

// GetDetail retrieves a playlist with its owner and its videos in insertion order
func (r *playlistRepository) GetDetail(ctx context.Context, id string) (*domain.PlaylistDetail, error) {
	owner := pipeline.OwnerProjection{Alias: "o"}

	data, _ := pipeline.From("playlists p").
		Select(playlistColumns...).
		Select(owner.Columns()...).
		Join(owner.Join("p.owner_id")).
		Where(pipeline.Eq("p.id", id)).
		Build()

	detail := &domain.PlaylistDetail{}
	o := owner.Scan()
	dest := append(playlistDest(&detail.Playlist), o.Dest()...)
	if err := r.db.Pool.QueryRow(ctx, data.SQL, data.Args...).Scan(dest...); err != nil {
		return nil, notFound(err, "playlist")
	}
	detail.Owner = o.Owner()

	videos, err := r.videosOf(ctx, []string{detail.ID})
	if err != nil {
		return nil, err
	}
	detail.Videos = videos[detail.ID]
	if detail.Videos == nil {
		detail.Videos = []domain.PlaylistVideo{}
	}
	detail.TotalVideos = len(detail.Videos)
	return detail, nil
}

// ListByOwner returns every playlist of a user with its videos
func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.PlaylistDetail, error) {
	data, _ := pipeline.From("playlists p").
		Select(playlistColumns...).
		Where(pipeline.Eq("p.owner_id", ownerID)).
		OrderBy(pipeline.Sort{Column: "p.created_at"}).
		TieBreak("p.id").
		Build()

	rows, err := r.db.Pool.Query(ctx, data.SQL, data.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.PlaylistDetail{}
	ids := []string{}
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, domain.PlaylistDetail{Playlist: p})
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlists: %w", err)
	}
	if len(ids) == 0 {
		return playlists, nil
	}

	videos, err := r.videosOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		v := videos[playlists[i].ID]
		if v == nil {
			v = []domain.PlaylistVideo{}
		}
		playlists[i].Videos = v
		playlists[i].TotalVideos = len(v)
	}
	return playlists, nil
}

// videosOf loads the videos of the given playlists, grouped by playlist id
func (r *playlistRepository) videosOf(ctx context.Context, playlistIDs []string) (map[string][]domain.PlaylistVideo, error) {
	owner := pipeline.OwnerProjection{Alias: "vo"}

	data, _ := pipeline.From("playlist_videos pv").
		Select(playlistVideoColumns...).
		Select(owner.Columns()...).
		Join("JOIN videos v ON v.id = pv.video_id").
		Join(owner.Join("v.owner_id")).
		Where(pipeline.AnyOf("pv.playlist_id", playlistIDs)).
		OrderBy(pipeline.Sort{Column: "pv.position"}).
		Build()

	rows, err := r.db.Pool.Query(ctx, data.SQL, data.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist videos: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.PlaylistVideo, len(playlistIDs))
	for rows.Next() {
		var (
			playlistID string
			v          domain.PlaylistVideo
		)
		o := owner.Scan()
		dest := append([]any{
			&playlistID, &v.ID, &v.Title, &v.Description, &v.Thumbnail, &v.VideoFile, &v.Duration, &v.Views,
		}, o.Dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan playlist video: %w", err)
		}
		v.VideoOwner = o.Owner()
		grouped[playlistID] = append(grouped[playlistID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlist videos: %w", err)
	}
	return grouped, nil
}

// Update changes name and/or description; nil leaves a field untouched
func (r *playlistRepository) Update(ctx context.Context, id string, name, description *string) (*domain.Playlist, error) {
	query := `
		UPDATE playlists p SET
			name = COALESCE($2, p.name),
			description = COALESCE($3, p.description),
			updated_at = NOW()
		WHERE p.id = $1
		RETURNING ` + joinColumns(playlistColumns)

	playlist, err := scanPlaylist(r.db.Pool.QueryRow(ctx, query, id, name, description))
	if err != nil {
		return nil, notFound(err, "playlist")
	}
	return &playlist, nil
}

// Delete removes a playlist; its video references cascade
func (r *playlistRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddVideo appends a video; ErrDuplicate when it is already in the playlist
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2)`,
		playlistID, videoID,
	)
	switch {
	case err == nil:
	case database.IsUniqueViolation(err):
		return fmt.Errorf("video %s in playlist %s: %w", videoID, playlistID, ErrDuplicate)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("playlist %s or video %s: %w", playlistID, videoID, ErrNotFound)
	default:
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, `UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID); err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}
	return nil
}

// RemoveVideo drops a video; ErrNotFound when it is not in the playlist
func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`,
		playlistID, videoID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s in playlist %s: %w", videoID, playlistID, ErrNotFound)
	}

	if _, err := r.db.Pool.Exec(ctx, `UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID); err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}
	return nil
}
