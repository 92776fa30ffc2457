package services

import (
	"context"
	"errors"

	"github.com/joshua-takyi/orange/internal/models"
)

// AccessGuard decides whether an identity may touch a collaboration request
// and its message thread. Every read/write on a request goes through it.
type AccessGuard struct {
	profiles models.ProfileRepo
}

func NewAccessGuard(profiles models.ProfileRepo) *AccessGuard {
	return &AccessGuard{profiles: profiles}
}

// CanAccessRequest is true iff the actor is the business that sent the
// request, or owns the creator profile the request references.
func (g *AccessGuard) CanAccessRequest(ctx context.Context, actor *models.User, req *models.CollaborationRequest) (bool, error) {
	if actor.ID == req.BusinessID {
		return true, nil
	}

	creator, err := g.profiles.GetCreatorByID(ctx, req.CreatorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return creator.UserID == actor.ID, nil
}
