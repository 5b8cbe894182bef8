package domain

import "encoding/json"

// Labels name the items and total keys of a serialized page, e.g. "videos" and "totalVideos".
type Labels struct {
	Items string
	Total string
}

var (
	VideoLabels      = Labels{Items: "videos", Total: "totalVideos"}
	CommentLabels    = Labels{Items: "comments", Total: "totalComments"}
	TweetLabels      = Labels{Items: "tweets", Total: "totalTweets"}
	LikedVideoLabels = Labels{Items: "likedVideos", Total: "totalLikedVideos"}
	SubscriberLabels = Labels{Items: "subscribers", Total: "totalSubscribers"}
	ChannelLabels    = Labels{Items: "channels", Total: "totalChannels"}
)

// Page is one page of a paginated read model.
type Page[T any] struct {
	Items  []T
	Total  int64
	Page   int
	Limit  int
	Labels Labels
}

func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 || p.Total == 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

// Empty reports whether the whole result set, not just this page, is empty.
func (p Page[T]) Empty() bool {
	return p.Total == 0
}

// MarshalJSON renders the page with its resource specific labels.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []T{}
	}

	labels := p.Labels
	if labels.Items == "" {
		labels = Labels{Items: "docs", Total: "totalDocs"}
	}

	out := map[string]any{
		labels.Items: items,
		labels.Total: p.Total,
		"page":        p.Page,
		"limit":       p.Limit,
		"totalPages":  p.TotalPages(),
		"hasPrevPage": p.HasPrev(),
		"hasNextPage": p.HasNext(),
	}
	return json.Marshal(out)
}
