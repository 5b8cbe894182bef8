package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// TweetHandler handles tweet requests
type TweetHandler struct {
	tweetService service.TweetService
}

// NewTweetHandler creates a new tweet handler
func NewTweetHandler(tweetService service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create posts a tweet for the caller
// @Summary Create a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ContentRequest true "Tweet"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tweet [post]
func (h *TweetHandler) Create(c *gin.Context) {
	content, ok := bindContent(c)
	if !ok {
		return
	}

	tweet, err := h.tweetService.Create(c.Request.Context(), currentUserID(c), content)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// ListByUser returns a page of a user's tweets
// @Summary List user tweets
// @Tags tweets
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tweet/user/{userId} [get]
func (h *TweetHandler) ListByUser(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindError(err))
		return
	}

	page, err := h.tweetService.ListByUser(c.Request.Context(), c.Param("userId"), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, page, pageMessage(page, "Tweets fetched successfully", "No tweets found"))
}

// Update edits an owned tweet
// @Summary Update a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tweetId path string true "Tweet ID"
// @Param request body dto.ContentRequest true "Tweet"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tweet/{tweetId} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	content, ok := bindContent(c)
	if !ok {
		return
	}

	tweet, err := h.tweetService.Update(c.Request.Context(), currentUserID(c), c.Param("tweetId"), content)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// Delete removes an owned tweet
// @Summary Delete a tweet
// @Tags tweets
// @Produce json
// @Security BearerAuth
// @Param tweetId path string true "Tweet ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tweet/{tweetId} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.tweetService.Delete(c.Request.Context(), currentUserID(c), c.Param("tweetId")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Tweet deleted successfully")
}
