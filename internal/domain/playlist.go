package domain

import "time"

type Playlist struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistVideo is a video as listed inside a playlist.
type PlaylistVideo struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	VideoFile   string  `json:"videoFile"`
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	VideoOwner  *Owner  `json:"videoOwner,omitempty"`
}

// PlaylistDetail is a playlist joined with its videos and, when requested, its owner.
type PlaylistDetail struct {
	Playlist
	Videos      []PlaylistVideo `json:"videos"`
	TotalVideos int             `json:"totalVideos"`
	Owner       *Owner          `json:"owner,omitempty"`
}
