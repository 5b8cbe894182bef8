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

// commentService implements CommentService
type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository) CommentService {
	return &commentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

func (s *commentService) List(ctx context.Context, videoID string, q dto.PageQuery) (domain.Page[domain.Comment], error) {
	var empty domain.Page[domain.Comment]
	if err := validID(videoID, "Invalid videoId"); err != nil {
		return empty, err
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return empty, lookupError(err, "Video not found")
	}

	page, err := s.commentRepo.ListByVideo(ctx, videoID, pageOf(q, defaultPageSize))
	if err != nil {
		return page, apierror.Internal("Failed to fetch comments", err)
	}
	return page, nil
}

func (s *commentService) Create(ctx context.Context, actorID, videoID, content string) (*domain.Comment, error) {
	if utils.IsBlank(content) {
		return nil, apierror.BadRequest("Content is required")
	}
	if err := validID(videoID, "Invalid videoId"); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Content: strings.TrimSpace(content),
		VideoID: videoID,
		OwnerID: actorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFound("Video not found")
		}
		return nil, apierror.Internal("Failed to add comment", err)
	}
	return comment, nil
}

func (s *commentService) owned(ctx context.Context, actorID, commentID, message string) error {
	if err := validID(commentID, "Invalid commentId"); err != nil {
		return err
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return lookupError(err, "Comment not found")
	}
	return authorizeOwner(actorID, comment.OwnerID, message)
}

func (s *commentService) Update(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error) {
	if utils.IsBlank(content) {
		return nil, apierror.BadRequest("Content is required")
	}
	if err := s.owned(ctx, actorID, commentID, "You are not allowed to update this comment"); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.UpdateContent(ctx, commentID, strings.TrimSpace(content))
	if err != nil {
		return nil, apierror.Internal("Failed to update comment", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, actorID, commentID string) error {
	if err := s.owned(ctx, actorID, commentID, "You are not allowed to delete this comment"); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return apierror.Internal("Failed to delete comment", err)
	}
	return nil
}
