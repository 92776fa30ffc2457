package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/orange/internal/helpers"
	"github.com/joshua-takyi/orange/internal/models"
)

// SeedService wipes the store and repopulates it with demo accounts and a
// sample pending request. Development convenience only.
type SeedService struct {
	seed     models.SeedRepo
	users    models.UserRepo
	profiles models.ProfileRepo
	requests models.RequestRepo
}

func NewSeedService(seed models.SeedRepo, users models.UserRepo, profiles models.ProfileRepo, requests models.RequestRepo) *SeedService {
	return &SeedService{
		seed:     seed,
		users:    users,
		profiles: profiles,
		requests: requests,
	}
}

type SeedResult struct {
	Creators   int `json:"creators"`
	Businesses int `json:"businesses"`
}

func (ss *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	if err := ss.seed.WipeAll(ctx); err != nil {
		return nil, err
	}

	creators := []models.CreatorProfileInput{
		{
			Name:            "Priya Sharma",
			Bio:             "Fashion & lifestyle creator making everyday looks pop.",
			Location:        "Mumbai, India",
			InstagramHandle: "@priyasharma",
			InstagramURL:    "https://instagram.com/priyasharma",
			FollowersCount:  520000,
			Niches:          []string{"Fashion", "Lifestyle"},
			IsOpenToBarter:  true,
			Rates:           &models.RateInfo{ReelPrice: 15000, StoryPrice: 5000, PostPrice: 10000, BundlePrice: 25000},
			ProfilePhotoURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
		},
		{
			Name:            "Arjun Kapoor",
			Bio:             "Fitness enthusiast & sports content creator.",
			Location:        "Delhi, India",
			InstagramHandle: "@arjunfitness",
			InstagramURL:    "https://instagram.com/arjunfitness",
			FollowersCount:  280000,
			Niches:          []string{"Fitness", "Sports"},
			Rates:           &models.RateInfo{ReelPrice: 12000, StoryPrice: 4000, PostPrice: 8000, BundlePrice: 20000},
			ProfilePhotoURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		},
		{
			Name:            "Meera Patel",
			Bio:             "Beauty guru & skincare addict. Honest reviews and glam tutorials.",
			Location:        "Bangalore, India",
			InstagramHandle: "@meerabellebeauty",
			InstagramURL:    "https://instagram.com/meerabellebeauty",
			FollowersCount:  150000,
			Niches:          []string{"Beauty", "Skincare"},
			IsOpenToBarter:  true,
			Rates:           &models.RateInfo{ReelPrice: 8000, StoryPrice: 3000, PostPrice: 6000, BundlePrice: 15000},
			ProfilePhotoURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
		},
		{
			Name:            "Rohan Desai",
			Bio:             "Tech reviewer & gadget geek. Unboxing the future, one device at a time.",
			Location:        "Pune, India",
			InstagramHandle: "@rohantech",
			InstagramURL:    "https://instagram.com/rohantech",
			FollowersCount:  95000,
			Niches:          []string{"Tech", "Gaming"},
			Rates:           &models.RateInfo{ReelPrice: 10000, StoryPrice: 3500, PostPrice: 7000, BundlePrice: 18000},
			ProfilePhotoURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
		},
		{
			Name:            "Ananya Iyer",
			Bio:             "Food blogger & culinary explorer. From street food to fine dining.",
			Location:        "Chennai, India",
			InstagramHandle: "@ananyaeats",
			InstagramURL:    "https://instagram.com/ananyaeats",
			FollowersCount:  320000,
			Niches:          []string{"Food", "Travel"},
			IsOpenToBarter:  true,
			Rates:           &models.RateInfo{ReelPrice: 14000, StoryPrice: 4500, PostPrice: 9000, BundlePrice: 22000},
			ProfilePhotoURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400",
		},
	}

	businesses := []models.BusinessProfileInput{
		{
			BrandName:       "Glow Cosmetics",
			Category:        "Beauty",
			Bio:             "Clean beauty for the modern generation.",
			Location:        "Mumbai, India",
			WebsiteURL:      "https://glowcosmetics.com",
			InstagramHandle: "@glowcosmetics",
			InstagramURL:    "https://instagram.com/glowcosmetics",
			ProfilePhotoURL: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400",
		},
		{
			BrandName:       "FitLife Nutrition",
			Category:        "Health & Fitness",
			Bio:             "Fueling your fitness journey with premium supplements.",
			Location:        "Delhi, India",
			WebsiteURL:      "https://fitlifenutrition.com",
			InstagramHandle: "@fitlifenutrition",
			InstagramURL:    "https://instagram.com/fitlifenutrition",
			ProfilePhotoURL: "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400",
		},
	}

	var firstCreatorProfileID, firstBusinessUserID string

	for i, in := range creators {
		user, err := ss.seedUser(ctx, fmt.Sprintf("creator%d@orange.com", i+1), models.RoleCreator)
		if err != nil {
			return nil, err
		}
		profile, err := ss.profiles.UpsertCreatorProfile(ctx, user.ID, &in)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			firstCreatorProfileID = profile.ID
		}
	}

	for i, in := range businesses {
		user, err := ss.seedUser(ctx, fmt.Sprintf("business%d@orange.com", i+1), models.RoleBusiness)
		if err != nil {
			return nil, err
		}
		if _, err := ss.profiles.UpsertBusinessProfile(ctx, user.ID, &in); err != nil {
			return nil, err
		}
		if i == 0 {
			firstBusinessUserID = user.ID
		}
	}

	now := time.Now().UTC()
	sample := &models.CollaborationRequest{
		ID:           uuid.New().String(),
		CreatorID:    firstCreatorProfileID,
		BusinessID:   firstBusinessUserID,
		Title:        "Summer Collection Campaign",
		Brief:        "We'd love to collaborate with you on our new summer collection! Looking for 3 reels and 5 stories showcasing our products.",
		OfferAmount:  30000,
		Deliverables: "3 Reels, 5 Stories",
		Status:       models.RequestPending,
		Timeline:     "2 weeks",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := ss.requests.InsertRequest(ctx, sample); err != nil {
		return nil, err
	}

	return &SeedResult{Creators: len(creators), Businesses: len(businesses)}, nil
}

func (ss *SeedService) seedUser(ctx context.Context, email, role string) (*models.User, error) {
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:                     uuid.New().String(),
		Email:                  email,
		PasswordHash:           hash,
		Role:                   role,
		HasCompletedOnboarding: true,
		CreatedAt:              time.Now().UTC(),
	}
	return ss.users.CreateUser(ctx, user)
}
