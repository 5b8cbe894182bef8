package service

import (
	"context"
	"strings"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/storage"
	"github.com/prperemyshlev/vidverse/internal/utils"
	"github.com/prperemyshlev/vidverse/pkg/observability"
	"go.uber.org/zap"
)

// videoService implements VideoService
type videoService struct {
	videoRepo repository.VideoRepository
	media     media
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewVideoService creates a new video service
func NewVideoService(
	videoRepo repository.VideoRepository,
	store storage.Storage,
	metrics *observability.Metrics,
	logger *zap.Logger,
) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		media:     media{store: store, metrics: metrics, logger: logger},
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *videoService) List(ctx context.Context, q dto.VideoListQuery) (domain.Page[domain.Video], error) {
	if q.UserID != "" {
		if err := validID(q.UserID, "Invalid userId"); err != nil {
			return domain.Page[domain.Video]{}, err
		}
	}

	page, err := s.videoRepo.List(ctx, repository.VideoFilter{
		OwnerID:  q.UserID,
		Query:    q.Query,
		SortBy:   q.SortBy,
		SortType: q.SortType,
		Page:     pageOf(q.PageQuery, videoPageSize),
	})
	if err != nil {
		return page, apierror.Internal("Failed to fetch videos", err)
	}
	return page, nil
}

// Publish uploads the video and its thumbnail and stores the new, published video
func (s *videoService) Publish(
	ctx context.Context,
	ownerID string,
	req *dto.PublishVideoRequest,
	videoFile, thumbnail *storage.Object,
) (*domain.Video, error) {
	if utils.AnyBlank(req.Title, req.Description) {
		return nil, apierror.BadRequest("All fields are required")
	}
	if videoFile == nil {
		return nil, apierror.BadRequest("Video file is required")
	}
	if thumbnail == nil {
		return nil, apierror.BadRequest("Thumbnail is required")
	}

	locations, err := s.media.uploadAll(ctx,
		[]string{storage.FolderVideos, storage.FolderThumbnails},
		[]storage.Object{*videoFile, *thumbnail},
	)
	if err != nil {
		return nil, apierror.Internal("Error while uploading video", err)
	}

	video := &domain.Video{
		OwnerID:     ownerID,
		VideoFile:   locations[0],
		Thumbnail:   locations[1],
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
		IsPublished: true,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		for _, location := range locations {
			s.media.remove(ctx, location)
		}
		return nil, apierror.Internal("Failed to publish video", err)
	}

	s.logger.Info("Video published", zap.String("video_id", video.ID), zap.String("owner_id", ownerID))
	return video, nil
}

// Get returns a video for viewerID and counts the view on the first visit
func (s *videoService) Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error) {
	if err := validID(videoID, "Invalid videoId"); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, lookupError(err, "Video not found")
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, apierror.NotFound("Video not found")
	}

	firstView, err := s.videoRepo.RecordView(ctx, viewerID, videoID)
	if err != nil {
		return nil, apierror.Internal("Failed to record view", err)
	}
	if firstView {
		s.metrics.VideoView(ctx)
	}

	detail, err := s.videoRepo.GetDetail(ctx, videoID, viewerID)
	if err != nil {
		return nil, lookupError(err, "Video not found")
	}
	return detail, nil
}

// owned loads a video and checks that actorID owns it
func (s *videoService) owned(ctx context.Context, actorID, videoID, message string) (*domain.Video, error) {
	if err := validID(videoID, "Invalid videoId"); err != nil {
		return nil, err
	}
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, lookupError(err, "Video not found")
	}
	if err := authorizeOwner(actorID, video.OwnerID, message); err != nil {
		return nil, err
	}
	return video, nil
}

// Update changes title and description and, when thumbnail is given, replaces the thumbnail
func (s *videoService) Update(
	ctx context.Context,
	actorID, videoID string,
	req *dto.UpdateVideoRequest,
	thumbnail *storage.Object,
) (*domain.Video, error) {
	if utils.AnyBlank(req.Title, req.Description) {
		return nil, apierror.BadRequest("Title and description are required")
	}

	video, err := s.owned(ctx, actorID, videoID, "You are not allowed to update this video")
	if err != nil {
		return nil, err
	}

	location := video.Thumbnail
	if thumbnail != nil {
		if location, err = s.media.upload(ctx, storage.FolderThumbnails, *thumbnail); err != nil {
			return nil, apierror.BadRequest("Error while uploading thumbnail")
		}
	}

	updated, err := s.videoRepo.Update(ctx, videoID,
		strings.TrimSpace(req.Title), strings.TrimSpace(req.Description), location)
	if err != nil {
		if thumbnail != nil {
			s.media.remove(ctx, location)
		}
		return nil, apierror.Internal("Failed to update video", err)
	}

	if thumbnail != nil {
		s.media.remove(ctx, video.Thumbnail)
	}
	return updated, nil
}

// Delete removes the video row and then its stored files
func (s *videoService) Delete(ctx context.Context, actorID, videoID string) error {
	video, err := s.owned(ctx, actorID, videoID, "You are not allowed to delete this video")
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return apierror.Internal("Failed to delete video", err)
	}

	s.media.remove(ctx, video.VideoFile)
	s.media.remove(ctx, video.Thumbnail)
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, actorID, videoID string) (*domain.Video, error) {
	video, err := s.owned(ctx, actorID, videoID, "You are not allowed to change this video")
	if err != nil {
		return nil, err
	}

	updated, err := s.videoRepo.SetPublished(ctx, videoID, !video.IsPublished)
	if err != nil {
		return nil, apierror.Internal("Failed to toggle publish status", err)
	}
	return updated, nil
}
