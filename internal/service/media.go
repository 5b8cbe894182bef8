package service

import (
	"context"

	"github.com/prperemyshlev/vidverse/internal/storage"
	"github.com/prperemyshlev/vidverse/pkg/observability"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// media uploads and removes user supplied files
type media struct {
	store   storage.Storage
	metrics *observability.Metrics
	logger  *zap.Logger
}

func (m media) upload(ctx context.Context, folder string, obj storage.Object) (string, error) {
	location, err := m.store.Upload(ctx, folder, obj)
	m.metrics.Upload(ctx, folder, err)
	if err != nil {
		m.logger.Error("Failed to upload file",
			zap.String("folder", folder),
			zap.String("name", obj.Name),
			zap.Error(err),
		)
		return "", err
	}
	return location, nil
}

// uploadAll uploads every object concurrently and waits for all of them.
// On any failure the uploads that did succeed are removed and the first
// error is returned.
func (m media) uploadAll(ctx context.Context, folders []string, objects []storage.Object) ([]string, error) {
	locations := make([]string, len(objects))

	var g errgroup.Group
	for i := range objects {
		g.Go(func() error {
			location, err := m.upload(ctx, folders[i], objects[i])
			if err != nil {
				return err
			}
			locations[i] = location
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, location := range locations {
			m.remove(ctx, location)
		}
		return nil, err
	}
	return locations, nil
}

// remove deletes a stored file; failures are logged and otherwise ignored
func (m media) remove(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := m.store.Delete(ctx, location); err != nil {
		m.logger.Warn("Failed to delete stored file", zap.String("location", location), zap.Error(err))
	}
}
