package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// PlaylistHandler handles playlist requests
type PlaylistHandler struct {
	playlistService service.PlaylistService
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(playlistService service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

func bindPlaylist(c *gin.Context) (*dto.PlaylistRequest, bool) {
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return nil, false
	}
	return &req, true
}

// Create adds a playlist owned by the caller
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PlaylistRequest true "Playlist"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	req, ok := bindPlaylist(c)
	if !ok {
		return
	}

	playlist, err := h.playlistService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// ListByUser returns every playlist a user owns
// @Summary List user playlists
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist/user/{userId} [get]
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.playlistService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	message := "User playlists fetched successfully"
	if len(playlists) == 0 {
		message = "No playlists found"
	}
	respond(c, http.StatusOK, playlists, message)
}

// Get returns a playlist with its videos
// @Summary Get a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist/{playlistId} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistService.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// Update renames or redescribes an owned playlist
// @Summary Update a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "Playlist ID"
// @Param request body dto.PlaylistRequest true "Playlist"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	req, ok := bindPlaylist(c)
	if !ok {
		return
	}

	playlist, err := h.playlistService.Update(c.Request.Context(), currentUserID(c), c.Param("playlistId"), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// Delete removes an owned playlist
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistService.Delete(c.Request.Context(), currentUserID(c), c.Param("playlistId")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideo appends a video to an owned playlist
// @Summary Add a video to a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistService.AddVideo(c.Request.Context(), currentUserID(c), c.Param("videoId"), c.Param("playlistId"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Video added to playlist successfully")
}

// RemoveVideo takes a video out of an owned playlist
// @Summary Remove a video from a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /playlist/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := h.playlistService.RemoveVideo(c.Request.Context(), currentUserID(c), c.Param("videoId"), c.Param("playlistId"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Video removed from playlist successfully")
}
