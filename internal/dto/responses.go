package dto

import "net/http"

// Response is the success envelope returned by every endpoint
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewResponse builds an envelope; success mirrors the status code
func NewResponse(status int, data any, message string) Response {
	if data == nil {
		data = struct{}{}
	}
	return Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	}
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func NewErrorResponse(status int, message string, details []string) ErrorResponse {
	if details == nil {
		details = []string{}
	}
	return ErrorResponse{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     details,
	}
}

// LoginResponse is returned by login
type LoginResponse struct {
	User         any    `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse is returned by refresh-token
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LikeResponse struct {
	IsLiked bool `json:"isLiked"`
}

type SubscriptionResponse struct {
	IsSubscribed bool `json:"isSubscribed"`
}

type PublishResponse struct {
	IsPublished bool `json:"isPublished"`
}
