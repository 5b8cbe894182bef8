package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewResponse(status, data, message))
}

// pageMessage picks the message for a page; an empty result set is still a 200
func pageMessage[T any](page domain.Page[T], found, empty string) string {
	if page.Empty() {
		return empty
	}
	return found
}
