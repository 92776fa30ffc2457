package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/orange/internal/models"
)

// Listing is bounded; requests are point-looked-up otherwise.
const maxRequestList = 100

type RequestService struct {
	requests models.RequestRepo
	profiles models.ProfileRepo
	guard    *AccessGuard
}

func NewRequestService(requests models.RequestRepo, profiles models.ProfileRepo, guard *AccessGuard) *RequestService {
	return &RequestService{
		requests: requests,
		profiles: profiles,
		guard:    guard,
	}
}

// Create opens a new collaboration request in the pending state. Only a
// business actor that has completed its business profile may send one, and
// the target creator profile must exist.
func (rs *RequestService) Create(ctx context.Context, actor *models.User, in *models.CollaborationRequestInput) (*models.RequestView, error) {
	if !actor.IsBusiness() {
		return nil, fmt.Errorf("only businesses can send collaboration requests: %w", models.ErrForbidden)
	}
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	creator, err := rs.profiles.GetCreatorByID(ctx, in.CreatorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("creator not found: %w", models.ErrNotFound)
		}
		return nil, err
	}

	business, err := rs.profiles.GetBusinessByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("complete your business profile first: %w", models.ErrNotFound)
		}
		return nil, err
	}

	offer := 0.0
	if in.OfferAmount != nil {
		offer = *in.OfferAmount
	}

	now := time.Now().UTC()
	req := &models.CollaborationRequest{
		ID:           uuid.New().String(),
		CreatorID:    in.CreatorID,
		BusinessID:   actor.ID,
		Title:        in.Title,
		Brief:        in.Brief,
		OfferAmount:  offer,
		Deliverables: in.Deliverables,
		Status:       models.RequestPending,
		Timeline:     in.Timeline,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := rs.requests.InsertRequest(ctx, req); err != nil {
		return nil, err
	}

	return &models.RequestView{
		CollaborationRequest: *req,
		CreatorName:          creator.Name,
		CreatorPhoto:         creator.ProfilePhotoURL,
		BusinessName:         business.BrandName,
		BusinessPhoto:        business.ProfilePhotoURL,
	}, nil
}

// Get returns a single request, enriched, for either party.
func (rs *RequestService) Get(ctx context.Context, actor *models.User, requestID string) (*models.RequestView, error) {
	req, err := rs.requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	allowed, err := rs.guard.CanAccessRequest(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, models.ErrForbidden
	}

	return rs.enrich(ctx, req)
}

// ListSent returns the requests the business actor has sent.
func (rs *RequestService) ListSent(ctx context.Context, actor *models.User) ([]*models.RequestView, error) {
	if !actor.IsBusiness() {
		return nil, models.ErrForbidden
	}

	requests, err := rs.requests.ListRequestsByBusiness(ctx, actor.ID, maxRequestList)
	if err != nil {
		return nil, err
	}
	return rs.enrichAll(ctx, requests)
}

// ListReceived resolves the actor's creator profile and returns the requests
// addressed to it.
func (rs *RequestService) ListReceived(ctx context.Context, actor *models.User) ([]*models.RequestView, error) {
	if !actor.IsCreator() {
		return nil, models.ErrForbidden
	}

	profile, err := rs.profiles.GetCreatorByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("creator profile not found: %w", models.ErrNotFound)
		}
		return nil, err
	}

	requests, err := rs.requests.ListRequestsByCreator(ctx, profile.ID, maxRequestList)
	if err != nil {
		return nil, err
	}
	return rs.enrichAll(ctx, requests)
}

// Transition moves a pending request to accepted or declined. Both target
// states are terminal: any transition attempt on a non-pending request fails
// with ErrInvalidTransition, a re-accept included. The update is conditional
// on the stored status so concurrent transitions cannot both win.
func (rs *RequestService) Transition(ctx context.Context, actor *models.User, requestID string, status models.RequestStatus) error {
	if status != models.RequestAccepted && status != models.RequestDeclined {
		return fmt.Errorf("status must be 'accepted' or 'declined': %w", models.ErrInvalidInput)
	}

	req, err := rs.requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	creator, err := rs.profiles.GetCreatorByID(ctx, req.CreatorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("only the creator can update request status: %w", models.ErrForbidden)
		}
		return err
	}
	if creator.UserID != actor.ID {
		return fmt.Errorf("only the creator can update request status: %w", models.ErrForbidden)
	}

	updated, err := rs.requests.UpdateRequestStatusIfPending(ctx, requestID, status)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("request is no longer pending: %w", models.ErrInvalidTransition)
	}
	return nil
}

// enrich joins display fields from the profile stores at read time. Display
// data is never cached on the request document, so renames are always
// reflected.
func (rs *RequestService) enrich(ctx context.Context, req *models.CollaborationRequest) (*models.RequestView, error) {
	view := &models.RequestView{CollaborationRequest: *req}

	creator, err := rs.profiles.GetCreatorByID(ctx, req.CreatorID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if creator != nil {
		view.CreatorName = creator.Name
		view.CreatorPhoto = creator.ProfilePhotoURL
	}

	business, err := rs.profiles.GetBusinessByUserID(ctx, req.BusinessID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if business != nil {
		view.BusinessName = business.BrandName
		view.BusinessPhoto = business.ProfilePhotoURL
	}

	return view, nil
}

func (rs *RequestService) enrichAll(ctx context.Context, requests []*models.CollaborationRequest) ([]*models.RequestView, error) {
	views := make([]*models.RequestView, 0, len(requests))
	for _, req := range requests {
		view, err := rs.enrich(ctx, req)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
