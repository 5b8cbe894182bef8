package domain

import "time"

type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	VideoID   string    `json:"videoId"`
	OwnerID   string    `json:"ownerId"`
	Owner     *Owner    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tweet struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"ownerId"`
	Owner     *Owner    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LikeTarget names the kind of resource a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Column returns the likes table column referencing the target kind.
func (t LikeTarget) Column() string {
	switch t {
	case LikeTargetVideo:
		return "video_id"
	case LikeTargetComment:
		return "comment_id"
	case LikeTargetTweet:
		return "tweet_id"
	}
	return ""
}

// Subscription is a directed subscriber -> channel edge.
type Subscription struct {
	ID           string    `json:"_id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Subscriber is one entry of a channel's subscriber list, or of a user's subscribed channels.
type Subscriber struct {
	Owner
	SubscribedAt time.Time `json:"subscribedAt"`
}
