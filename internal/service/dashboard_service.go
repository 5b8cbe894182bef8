package service

import (
	"context"

	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/repository"
)

// dashboardService implements DashboardService
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	videoRepo     repository.VideoRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, videoRepo repository.VideoRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo, videoRepo: videoRepo}
}

func (s *dashboardService) Stats(ctx context.Context, userID string) (*domain.ChannelStats, error) {
	stats, err := s.dashboardRepo.Stats(ctx, userID)
	if err != nil {
		return nil, apierror.Internal("Failed to fetch channel stats", err)
	}
	return stats, nil
}

// Videos lists every video of the channel, published or not
func (s *dashboardService) Videos(ctx context.Context, userID string) ([]domain.Video, error) {
	videos, err := s.videoRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apierror.Internal("Failed to fetch channel videos", err)
	}
	return videos, nil
}
