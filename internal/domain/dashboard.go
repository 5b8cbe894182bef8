package domain

type LikeTotals struct {
	VideoLikes   int64 `json:"videoLikes"`
	TweetLikes   int64 `json:"tweetLikes"`
	CommentLikes int64 `json:"commentLikes"`
	Total        int64 `json:"total"`
}

// ChannelStats are the aggregate totals shown on a channel's dashboard.
type ChannelStats struct {
	TotalVideos   int64      `json:"totalVideos"`
	TotalViews    int64      `json:"totalViews"`
	TotalComments int64      `json:"totalComments"`
	Subscribers   int64      `json:"subscribers"`
	SubscribedTo  int64      `json:"subscribedTo"`
	TotalTweets   int64      `json:"totalTweets"`
	TotalLikes    LikeTotals `json:"totalLikes"`
}
