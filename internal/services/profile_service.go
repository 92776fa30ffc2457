package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/orange/internal/models"
)

const (
	defaultCreatorPageSize = 50
	maxCreatorPageSize     = 100
)

type ProfileService struct {
	profiles models.ProfileRepo
	users    models.UserRepo
}

func NewProfileService(profiles models.ProfileRepo, users models.UserRepo) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
	}
}

// UpsertCreatorProfile creates or fully overwrites the actor's creator
// profile and marks the account onboarded.
func (ps *ProfileService) UpsertCreatorProfile(ctx context.Context, actor *models.User, in *models.CreatorProfileInput) (*models.CreatorProfile, error) {
	if !actor.IsCreator() {
		return nil, fmt.Errorf("only creators can create creator profiles: %w", models.ErrForbidden)
	}
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	profile, err := ps.profiles.UpsertCreatorProfile(ctx, actor.ID, in)
	if err != nil {
		return nil, err
	}

	if err := ps.users.MarkOnboarded(ctx, actor.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (ps *ProfileService) UpsertBusinessProfile(ctx context.Context, actor *models.User, in *models.BusinessProfileInput) (*models.BusinessProfile, error) {
	if !actor.IsBusiness() {
		return nil, fmt.Errorf("only businesses can create business profiles: %w", models.ErrForbidden)
	}
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	profile, err := ps.profiles.UpsertBusinessProfile(ctx, actor.ID, in)
	if err != nil {
		return nil, err
	}

	if err := ps.users.MarkOnboarded(ctx, actor.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (ps *ProfileService) GetMyCreatorProfile(ctx context.Context, actor *models.User) (*models.CreatorProfile, error) {
	return ps.profiles.GetCreatorByUserID(ctx, actor.ID)
}

func (ps *ProfileService) GetMyBusinessProfile(ctx context.Context, actor *models.User) (*models.BusinessProfile, error) {
	return ps.profiles.GetBusinessByUserID(ctx, actor.ID)
}

func (ps *ProfileService) GetCreatorByID(ctx context.Context, id string) (*models.CreatorProfile, error) {
	return ps.profiles.GetCreatorByID(ctx, id)
}

func (ps *ProfileService) GetBusinessByID(ctx context.Context, id string) (*models.BusinessProfile, error) {
	return ps.profiles.GetBusinessByID(ctx, id)
}

// ListCreators is the public marketplace browse; the page size is capped.
func (ps *ProfileService) ListCreators(ctx context.Context, filter models.CreatorFilter) ([]*models.CreatorProfile, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultCreatorPageSize
	}
	if filter.Limit > maxCreatorPageSize {
		filter.Limit = maxCreatorPageSize
	}
	return ps.profiles.ListCreators(ctx, filter)
}
