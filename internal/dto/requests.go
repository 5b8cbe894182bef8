package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank"`
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// VerifyRequest confirms a pending registration
type VerifyRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	OTP      string `json:"otp" binding:"required,notblank"`
}

// LoginRequest represents a login request; either username or email identifies the account
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest carries the refresh token when no cookie is sent
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,notblank"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank"`
}

// PageQuery is the common page window of list endpoints
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// VideoListQuery filters the public video listing
type VideoListQuery struct {
	PageQuery
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

// PublishVideoRequest holds the text fields of a multipart publish request
type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required,notblank"`
	Description string  `form:"description" binding:"required,notblank"`
	Duration    float64 `form:"duration" binding:"gte=0"`
}

// UpdateVideoRequest holds the text fields of a multipart video update
type UpdateVideoRequest struct {
	Title       string `form:"title" binding:"required,notblank"`
	Description string `form:"description" binding:"required,notblank"`
}

// ContentRequest is the body of comment and tweet writes. Blank content is
// rejected by the services so the caller gets the resource specific message.
type ContentRequest struct {
	Content string `json:"content"`
}

// PlaylistRequest creates or updates a playlist; omitted fields stay unchanged on update
type PlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
