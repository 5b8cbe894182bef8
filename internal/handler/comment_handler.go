package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// bindContent accepts an empty body; blank content is rejected by the services
func bindContent(c *gin.Context) (string, bool) {
	var req dto.ContentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return "", false
		}
	}
	return req.Content, true
}

// List returns a page of comments on a video
// @Summary List video comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /comment/{videoId} [get]
func (h *CommentHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindError(err))
		return
	}

	page, err := h.commentService.List(c.Request.Context(), c.Param("videoId"), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, page, pageMessage(page, "Comments fetched successfully", "No comments found"))
}

// Create adds a comment to a video
// @Summary Add a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Param request body dto.ContentRequest true "Comment"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /comment/{videoId} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	content, ok := bindContent(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), currentUserID(c), c.Param("videoId"), content)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, comment, "Comment added successfully")
}

// Update edits a comment owned by the caller
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Param request body dto.ContentRequest true "Comment"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /comment/c/{commentId} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	content, ok := bindContent(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), currentUserID(c), c.Param("commentId"), content)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

// Delete removes a comment owned by the caller
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /comment/c/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), currentUserID(c), c.Param("commentId")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Comment deleted successfully")
}
