package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// VideoHandler handles video requests
type VideoHandler struct {
	videoService service.VideoService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List returns a page of published videos
// @Summary List videos
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param query query string false "Search text"
// @Param sortBy query string false "Sort field"
// @Param sortType query string false "asc or desc"
// @Param userId query string false "Owner ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	var q dto.VideoListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindError(err))
		return
	}

	page, err := h.videoService.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, page, pageMessage(page, "Videos fetched successfully", "No videos found"))
}

// Publish accepts a multipart form with videoFile, thumbnail, title, description and duration
// @Summary Publish a video
// @Tags videos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param duration formData number false "Duration in seconds"
// @Param videoFile formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	videoFile, closeVideo, err := formFile(c, "videoFile")
	if err != nil {
		fail(c, err)
		return
	}
	defer closeVideo()

	thumbnail, closeThumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		fail(c, err)
		return
	}
	defer closeThumbnail()

	video, err := h.videoService.Publish(c.Request.Context(), currentUserID(c), &req, videoFile, thumbnail)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, video, "Video published successfully")
}

// Get returns a video and records the view
// @Summary Get a video
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /videos/{videoId} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videoService.Get(c.Request.Context(), c.Param("videoId"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video fetched successfully")
}

// Update changes title and description; a thumbnail file is optional
// @Summary Update a video
// @Tags videos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /videos/{videoId} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	thumbnail, closeThumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		fail(c, err)
		return
	}
	defer closeThumbnail()

	video, err := h.videoService.Update(c.Request.Context(), currentUserID(c), c.Param("videoId"), &req, thumbnail)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video updated successfully")
}

// Delete removes an owned video and its files
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoService.Delete(c.Request.Context(), currentUserID(c), c.Param("videoId")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the published flag of an owned video
// @Summary Toggle publish status
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoService.TogglePublish(c.Request.Context(), currentUserID(c), c.Param("videoId"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.PublishResponse{IsPublished: video.IsPublished}, "Publish status toggled successfully")
}
