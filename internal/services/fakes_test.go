package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/orange/internal/models"
)

// fakeStore is an in-memory stand-in for the Mongo repos, matching their
// error contracts so services can be exercised without a database.
type fakeStore struct {
	users      map[string]*models.User
	creators   map[string]*models.CreatorProfile
	businesses map[string]*models.BusinessProfile
	requests   map[string]*models.CollaborationRequest
	messages   []*models.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[string]*models.User),
		creators:   make(map[string]*models.CreatorProfile),
		businesses: make(map[string]*models.BusinessProfile),
		requests:   make(map[string]*models.CollaborationRequest),
	}
}

// --- UserRepo ---

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, models.ErrEmailTaken
		}
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) MarkOnboarded(ctx context.Context, userID string) error {
	if u, ok := f.users[userID]; ok {
		u.HasCompletedOnboarding = true
	}
	return nil
}

// --- ProfileRepo ---

func (f *fakeStore) UpsertCreatorProfile(ctx context.Context, userID string, in *models.CreatorProfileInput) (*models.CreatorProfile, error) {
	now := time.Now().UTC()
	profile, exists := f.creators[userID]
	if !exists {
		profile = &models.CreatorProfile{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: now,
		}
		f.creators[userID] = profile
	}

	profile.Name = in.Name
	profile.Bio = in.Bio
	profile.Location = in.Location
	profile.ProfilePhotoURL = in.ProfilePhotoURL
	profile.InstagramHandle = in.InstagramHandle
	profile.InstagramURL = in.InstagramURL
	profile.FollowersCount = in.FollowersCount
	profile.IsOpenToBarter = in.IsOpenToBarter
	profile.UpdatedAt = now

	profile.Niches = in.Niches
	if profile.Niches == nil {
		profile.Niches = []string{}
	}
	profile.Rates = models.RateInfo{}
	if in.Rates != nil {
		profile.Rates = *in.Rates
	}
	profile.MediaGallery = in.MediaGallery
	if profile.MediaGallery == nil {
		profile.MediaGallery = []models.MediaItem{}
	}
	return profile, nil
}

func (f *fakeStore) UpsertBusinessProfile(ctx context.Context, userID string, in *models.BusinessProfileInput) (*models.BusinessProfile, error) {
	now := time.Now().UTC()
	profile, exists := f.businesses[userID]
	if !exists {
		profile = &models.BusinessProfile{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: now,
		}
		f.businesses[userID] = profile
	}

	profile.BrandName = in.BrandName
	profile.Category = in.Category
	profile.Bio = in.Bio
	profile.Location = in.Location
	profile.WebsiteURL = in.WebsiteURL
	profile.InstagramHandle = in.InstagramHandle
	profile.InstagramURL = in.InstagramURL
	profile.ProfilePhotoURL = in.ProfilePhotoURL
	profile.UpdatedAt = now

	profile.MediaGallery = in.MediaGallery
	if profile.MediaGallery == nil {
		profile.MediaGallery = []models.MediaItem{}
	}
	return profile, nil
}

func (f *fakeStore) GetCreatorByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	if p, ok := f.creators[userID]; ok {
		return p, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetCreatorByID(ctx context.Context, id string) (*models.CreatorProfile, error) {
	for _, p := range f.creators {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetBusinessByUserID(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	if p, ok := f.businesses[userID]; ok {
		return p, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetBusinessByID(ctx context.Context, id string) (*models.BusinessProfile, error) {
	for _, p := range f.businesses {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) ListCreators(ctx context.Context, filter models.CreatorFilter) ([]*models.CreatorProfile, error) {
	var matched []*models.CreatorProfile
	for _, p := range f.creators {
		if filter.Niche != "" && !contains(p.Niches, filter.Niche) {
			continue
		}
		if filter.MinFollowers != nil && p.FollowersCount < *filter.MinFollowers {
			continue
		}
		if filter.MaxFollowers != nil && p.FollowersCount > *filter.MaxFollowers {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.OpenToBarter != nil && p.IsOpenToBarter != *filter.OpenToBarter {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if filter.Skip >= len(matched) {
		return []*models.CreatorProfile{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

// --- RequestRepo ---

func (f *fakeStore) InsertRequest(ctx context.Context, req *models.CollaborationRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeStore) GetRequestByID(ctx context.Context, id string) (*models.CollaborationRequest, error) {
	if r, ok := f.requests[id]; ok {
		return r, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) ListRequestsByBusiness(ctx context.Context, businessID string, limit int) ([]*models.CollaborationRequest, error) {
	return f.listRequests(func(r *models.CollaborationRequest) bool { return r.BusinessID == businessID }, limit), nil
}

func (f *fakeStore) ListRequestsByCreator(ctx context.Context, creatorID string, limit int) ([]*models.CollaborationRequest, error) {
	return f.listRequests(func(r *models.CollaborationRequest) bool { return r.CreatorID == creatorID }, limit), nil
}

func (f *fakeStore) listRequests(match func(*models.CollaborationRequest) bool, limit int) []*models.CollaborationRequest {
	out := []*models.CollaborationRequest{}
	for _, r := range f.requests {
		if match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeStore) UpdateRequestStatusIfPending(ctx context.Context, id string, status models.RequestStatus) (bool, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != models.RequestPending {
		return false, nil
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	return true, nil
}

// --- MessageRepo ---

func (f *fakeStore) InsertMessage(ctx context.Context, msg *models.Message) error {
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeStore) ListMessagesByRequest(ctx context.Context, requestID string, limit int) ([]*models.Message, error) {
	out := []*models.Message{}
	for _, m := range f.messages {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- SeedRepo ---

func (f *fakeStore) WipeAll(ctx context.Context) error {
	f.users = make(map[string]*models.User)
	f.creators = make(map[string]*models.CreatorProfile)
	f.businesses = make(map[string]*models.BusinessProfile)
	f.requests = make(map[string]*models.CollaborationRequest)
	f.messages = nil
	return nil
}

// --- fixtures ---

func (f *fakeStore) addUser(role string) *models.User {
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeStore) addCreatorProfile(userID, name string) *models.CreatorProfile {
	profile := &models.CreatorProfile{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		Niches:       []string{},
		MediaGallery: []models.MediaItem{},
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	f.creators[userID] = profile
	return profile
}

func (f *fakeStore) addBusinessProfile(userID, brandName string) *models.BusinessProfile {
	profile := &models.BusinessProfile{
		ID:           uuid.New().String(),
		UserID:       userID,
		BrandName:    brandName,
		MediaGallery: []models.MediaItem{},
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	f.businesses[userID] = profile
	return profile
}
