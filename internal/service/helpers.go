package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/repository/pipeline"
)

// Default page sizes per resource
const (
	videoPageSize   = 5
	defaultPageSize = 10
)

// validID rejects anything that is not a canonical UUID with BadRequest(message)
func validID(id, message string) error {
	if err := uuid.Validate(id); err != nil {
		return apierror.BadRequest(message)
	}
	return nil
}

// authorizeOwner applies the ownership rule shared by every mutation
func authorizeOwner(actorID, ownerID, message string) error {
	if actorID == "" {
		return apierror.NotFound("User not found")
	}
	if actorID != ownerID {
		return apierror.Forbidden(message)
	}
	return nil
}

// lookupError maps a repository read failure to NotFound(message) or a 500
func lookupError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apierror.NotFound(message)
	}
	return apierror.Internal("Internal server error", err)
}

func pageOf(q dto.PageQuery, defaultLimit int) pipeline.Pagination {
	return pipeline.NewPagination(q.Page, q.Limit, defaultLimit)
}
