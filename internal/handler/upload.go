package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/storage"
)

// formFile opens the multipart file under field. It returns a nil object
// when the field is absent; the returned closer is always safe to call.
func formFile(c *gin.Context, field string) (*storage.Object, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, noop, apierror.New(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit))
		}
		return nil, noop, apierror.BadRequest("Invalid multipart form").WithErrors(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, apierror.BadRequest("Failed to read uploaded file").WithErrors(err.Error())
	}

	obj := &storage.Object{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return obj, func() { closeQuietly(file) }, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

// BodyLimitMiddleware caps request bodies at maxBytes
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
