// Package storage uploads user media (videos, thumbnails, avatars, cover
// images) to an object store and hands back the public URL.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Folders used as key prefixes
const (
	FolderVideos      = "videos"
	FolderThumbnails  = "thumbnails"
	FolderAvatars     = "avatars"
	FolderCoverImages = "cover-images"
)

var ErrEmptyObject = errors.New("storage: empty object")

// Object is one uploaded file
type Object struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Storage persists media and returns the location clients should use
type Storage interface {
	Upload(ctx context.Context, folder string, obj Object) (string, error)
	Delete(ctx context.Context, location string) error
}

// ObjectKey builds a collision-free key under folder that keeps the original extension
func ObjectKey(folder, name string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(name, `\`, "/")))
	return path.Join(strings.Trim(folder, "/"), uuid.New().String()+ext)
}
