package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/domain"
)

// Handlers groups every resource handler
type Handlers struct {
	User         *UserHandler
	Video        *VideoHandler
	Comment      *CommentHandler
	Tweet        *TweetHandler
	Like         *LikeHandler
	Subscription *SubscriptionHandler
	Playlist     *PlaylistHandler
	Dashboard    *DashboardHandler
}

// RegisterRoutes mounts the API under api. auth authenticates the caller and
// limit guards the unauthenticated credential endpoints.
func RegisterRoutes(api *gin.RouterGroup, h *Handlers, auth, limit gin.HandlerFunc) {
	users := api.Group("/users")
	{
		users.POST("/register", limit, h.User.Register)
		users.POST("/verify", limit, h.User.Verify)
		users.POST("/login", limit, h.User.Login)
		users.POST("/refresh-token", limit, h.User.RefreshToken)

		secured := users.Group("", auth)
		secured.POST("/logout", h.User.Logout)
		secured.POST("/change-password", h.User.ChangePassword)
		secured.GET("/current-user", h.User.CurrentUser)
		secured.PATCH("/update-account", h.User.UpdateAccount)
		secured.PATCH("/avatar", h.User.UpdateAvatar)
		secured.PATCH("/cover-image", h.User.UpdateCoverImage)
		secured.GET("/c/:username", h.User.Channel)
		secured.GET("/history", h.User.WatchHistory)
	}

	videos := api.Group("/videos", auth)
	{
		videos.GET("", h.Video.List)
		videos.POST("", h.Video.Publish)
		videos.GET("/:videoId", h.Video.Get)
		videos.PATCH("/:videoId", h.Video.Update)
		videos.DELETE("/:videoId", h.Video.Delete)
		videos.PATCH("/toggle/publish/:videoId", h.Video.TogglePublish)
	}

	comments := api.Group("/comment", auth)
	{
		comments.GET("/:videoId", h.Comment.List)
		comments.POST("/:videoId", h.Comment.Create)
		comments.PATCH("/c/:commentId", h.Comment.Update)
		comments.DELETE("/c/:commentId", h.Comment.Delete)
	}

	tweets := api.Group("/tweet", auth)
	{
		tweets.POST("", h.Tweet.Create)
		tweets.GET("/user/:userId", h.Tweet.ListByUser)
		tweets.PATCH("/:tweetId", h.Tweet.Update)
		tweets.DELETE("/:tweetId", h.Tweet.Delete)
	}

	likes := api.Group("/like", auth)
	{
		likes.POST("/toggle/v/:videoId", h.Like.Toggle(domain.LikeTargetVideo, "videoId"))
		likes.POST("/toggle/c/:commentId", h.Like.Toggle(domain.LikeTargetComment, "commentId"))
		likes.POST("/toggle/t/:tweetId", h.Like.Toggle(domain.LikeTargetTweet, "tweetId"))
		likes.GET("/videos", h.Like.LikedVideos)
	}

	subscriptions := api.Group("/subscription", auth)
	{
		subscriptions.PATCH("/:channelId", h.Subscription.Toggle)
		subscriptions.GET("/:channelId", h.Subscription.Subscribers)
		subscriptions.GET("/u/:subscriberId", h.Subscription.SubscribedChannels)
	}

	playlists := api.Group("/playlist", auth)
	{
		playlists.POST("", h.Playlist.Create)
		playlists.GET("/user/:userId", h.Playlist.ListByUser)
		playlists.GET("/:playlistId", h.Playlist.Get)
		playlists.PATCH("/:playlistId", h.Playlist.Update)
		playlists.DELETE("/:playlistId", h.Playlist.Delete)
		playlists.PATCH("/add/:videoId/:playlistId", h.Playlist.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo)
	}

	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
		dashboard.GET("/videos", h.Dashboard.Videos)
	}
}
