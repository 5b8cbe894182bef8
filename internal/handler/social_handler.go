package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// LikeHandler handles like requests
type LikeHandler struct {
	likeService service.LikeService
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Toggle returns a handler toggling a like on target, identified by the param route parameter
// @Summary Toggle a like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /like/toggle/v/{videoId} [post]
// @Router /like/toggle/c/{commentId} [post]
// @Router /like/toggle/t/{tweetId} [post]
func (h *LikeHandler) Toggle(target domain.LikeTarget, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		liked, err := h.likeService.Toggle(c.Request.Context(), currentUserID(c), target, c.Param(param))
		if err != nil {
			fail(c, err)
			return
		}

		message := "Like removed successfully"
		if liked {
			message = "Liked successfully"
		}
		respond(c, http.StatusOK, dto.LikeResponse{IsLiked: liked}, message)
	}
}

// LikedVideos returns the published videos the caller liked
// @Summary List liked videos
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /like/videos [get]
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindError(err))
		return
	}

	page, err := h.likeService.LikedVideos(c.Request.Context(), currentUserID(c), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, page, pageMessage(page, "Liked videos fetched successfully", "No liked videos found"))
}

// SubscriptionHandler handles subscription requests
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle subscribes the caller to a channel or cancels the subscription
// @Summary Toggle a subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "Channel ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /subscription/{channelId} [patch]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	subscribed, err := h.subscriptionService.Toggle(c.Request.Context(), currentUserID(c), c.Param("channelId"))
	if err != nil {
		fail(c, err)
		return
	}

	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}
	respond(c, http.StatusOK, dto.SubscriptionResponse{IsSubscribed: subscribed}, message)
}

// Subscribers returns a page of a channel's subscribers
// @Summary List channel subscribers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "Channel ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /subscription/{channelId} [get]
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindError(err))
		return
	}

	page, err := h.subscriptionService.Subscribers(c.Request.Context(), c.Param("channelId"), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, page, pageMessage(page, "Subscribers fetched successfully", "No subscribers found"))
}

// SubscribedChannels returns a page of channels a user follows
// @Summary List subscribed channels
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param subscriberId path string true "Subscriber ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /subscription/u/{subscriberId} [get]
func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindError(err))
		return
	}

	page, err := h.subscriptionService.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"), q)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, page, pageMessage(page, "Subscribed channels fetched successfully", "No subscribed channels found"))
}
