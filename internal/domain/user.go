package domain

import "time"

const (
	DefaultAvatarURL     = "https://res.cloudinary.com/vidverse/image/upload/v1/defaults/avatar.png"
	DefaultCoverImageURL = "https://res.cloudinary.com/vidverse/image/upload/v1/defaults/cover.png"
)

// User represents a registered account. Credential columns never leave the service layer.
type User struct {
	ID               string    `json:"_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	Avatar           string    `json:"avatar"`
	CoverImage       string    `json:"coverImage"`
	IsVerified       bool      `json:"isVerified"`
	PasswordHash     string    `json:"-"`
	VerifyCode       string    `json:"-"`
	VerifyCodeExpiry time.Time `json:"-"`
	RefreshTokenHash *string   `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// VerificationExpired reports whether the pending verification code is past its expiry.
func (u *User) VerificationExpired(now time.Time) bool {
	return now.After(u.VerifyCodeExpiry)
}

// Owner is the minimal public projection of a user joined onto other resources.
type Owner struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email,omitempty"`
}

// Channel is a user's public profile as seen by another user.
type Channel struct {
	ID                        string `json:"_id"`
	Username                  string `json:"username"`
	FullName                  string `json:"fullName"`
	Email                     string `json:"email"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}
