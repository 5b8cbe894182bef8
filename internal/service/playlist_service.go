package service

import (
	"context"
	"errors"
	"strings"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/utils"
)

// playlistService implements PlaylistService
type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo, videoRepo: videoRepo, userRepo: userRepo}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// trimmed returns nil for an absent field and a trimmed copy otherwise
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func (s *playlistService) Create(ctx context.Context, actorID string, req *dto.PlaylistRequest) (*domain.Playlist, error) {
	if utils.AnyBlank(deref(req.Name), deref(req.Description)) {
		return nil, apierror.BadRequest("Name and description are required")
	}

	playlist := &domain.Playlist{
		Name:        strings.TrimSpace(*req.Name),
		Description: strings.TrimSpace(*req.Description),
		OwnerID:     actorID,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, apierror.Internal("Failed to create playlist", err)
	}
	return playlist, nil
}

// ListByUser returns every playlist of userID with its videos
func (s *playlistService) ListByUser(ctx context.Context, userID string) ([]domain.PlaylistDetail, error) {
	if err := validID(userID, "Invalid userId"); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetProfileByID(ctx, userID); err != nil {
		return nil, lookupError(err, "User not found")
	}

	playlists, err := s.playlistRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apierror.Internal("Failed to fetch playlists", err)
	}
	return playlists, nil
}

func (s *playlistService) Get(ctx context.Context, playlistID string) (*domain.PlaylistDetail, error) {
	if err := validID(playlistID, "Invalid playlistId"); err != nil {
		return nil, err
	}
	playlist, err := s.playlistRepo.GetDetail(ctx, playlistID)
	if err != nil {
		return nil, lookupError(err, "Playlist not found")
	}
	return playlist, nil
}

func (s *playlistService) owned(ctx context.Context, actorID, playlistID, message string) error {
	if err := validID(playlistID, "Invalid playlistId"); err != nil {
		return err
	}
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return lookupError(err, "Playlist not found")
	}
	return authorizeOwner(actorID, playlist.OwnerID, message)
}

// Update changes the fields present in req; at least one non-blank field is required
func (s *playlistService) Update(ctx context.Context, actorID, playlistID string, req *dto.PlaylistRequest) (*domain.Playlist, error) {
	name, description := trimmed(req.Name), trimmed(req.Description)
	if name == nil && description == nil {
		return nil, apierror.BadRequest("Name or description is required")
	}
	if (name != nil && *name == "") || (description != nil && *description == "") {
		return nil, apierror.BadRequest("Name and description must not be blank")
	}

	if err := s.owned(ctx, actorID, playlistID, "You are not allowed to update this playlist"); err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.Update(ctx, playlistID, name, description)
	if err != nil {
		return nil, apierror.Internal("Failed to update playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) Delete(ctx context.Context, actorID, playlistID string) error {
	if err := s.owned(ctx, actorID, playlistID, "You are not allowed to delete this playlist"); err != nil {
		return err
	}
	if err := s.playlistRepo.Delete(ctx, playlistID); err != nil {
		return apierror.Internal("Failed to delete playlist", err)
	}
	return nil
}

// playlistVideo validates both ids, checks playlist ownership and that the video exists
func (s *playlistService) playlistVideo(ctx context.Context, actorID, videoID, playlistID string) error {
	if err := validID(videoID, "Invalid videoId"); err != nil {
		return err
	}
	if err := s.owned(ctx, actorID, playlistID, "You are not allowed to modify this playlist"); err != nil {
		return err
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return lookupError(err, "Video not found")
	}
	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, actorID, videoID, playlistID string) (*domain.PlaylistDetail, error) {
	if err := s.playlistVideo(ctx, actorID, videoID, playlistID); err != nil {
		return nil, err
	}

	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apierror.BadRequest("Video already in playlist")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apierror.NotFound("Video not found")
		}
		return nil, apierror.Internal("Failed to add video to playlist", err)
	}
	return s.Get(ctx, playlistID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, actorID, videoID, playlistID string) (*domain.PlaylistDetail, error) {
	if err := s.playlistVideo(ctx, actorID, videoID, playlistID); err != nil {
		return nil, err
	}

	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.BadRequest("Video not in playlist")
		}
		return nil, apierror.Internal("Failed to remove video from playlist", err)
	}
	return s.Get(ctx, playlistID)
}
