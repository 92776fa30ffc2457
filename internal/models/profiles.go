package models

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type MediaItem struct {
	ID           string    `bson:"id" json:"id"`
	Type         string    `bson:"type" json:"type" validate:"omitempty,oneof=image video"`
	URL          string    `bson:"url" json:"url"`
	ThumbnailURL string    `bson:"thumbnailUrl" json:"thumbnailUrl"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type RateInfo struct {
	ReelPrice   float64 `bson:"reelPrice" json:"reelPrice"`
	StoryPrice  float64 `bson:"storyPrice" json:"storyPrice"`
	PostPrice   float64 `bson:"postPrice" json:"postPrice"`
	BundlePrice float64 `bson:"bundlePrice" json:"bundlePrice"`
}

type CreatorProfile struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"userId" json:"userId"`
	Name            string      `bson:"name" json:"name"`
	Bio             string      `bson:"bio" json:"bio"`
	Location        string      `bson:"location" json:"location"`
	ProfilePhotoURL string      `bson:"profilePhotoUrl" json:"profilePhotoUrl"`
	InstagramHandle string      `bson:"instagramHandle" json:"instagramHandle"`
	InstagramURL    string      `bson:"instagramUrl" json:"instagramUrl"`
	FollowersCount  int         `bson:"followersCount" json:"followersCount"`
	Niches          []string    `bson:"niches" json:"niches"`
	IsOpenToBarter  bool        `bson:"isOpenToBarter" json:"isOpenToBarter"`
	Rates           RateInfo    `bson:"rates" json:"rates"`
	MediaGallery    []MediaItem `bson:"mediaGallery" json:"mediaGallery"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}

type BusinessProfile struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"userId" json:"userId"`
	BrandName       string      `bson:"brandName" json:"brandName"`
	Category        string      `bson:"category" json:"category"`
	Bio             string      `bson:"bio" json:"bio"`
	Location        string      `bson:"location" json:"location"`
	WebsiteURL      string      `bson:"websiteUrl" json:"websiteUrl"`
	InstagramHandle string      `bson:"instagramHandle" json:"instagramHandle"`
	InstagramURL    string      `bson:"instagramUrl" json:"instagramUrl"`
	ProfilePhotoURL string      `bson:"profilePhotoUrl" json:"profilePhotoUrl"`
	MediaGallery    []MediaItem `bson:"mediaGallery" json:"mediaGallery"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// CreatorProfileInput carries the mutable profile fields supplied on upsert.
type CreatorProfileInput struct {
	Name            string      `json:"name" validate:"required"`
	Bio             string      `json:"bio"`
	Location        string      `json:"location"`
	ProfilePhotoURL string      `json:"profilePhotoUrl"`
	InstagramHandle string      `json:"instagramHandle"`
	InstagramURL    string      `json:"instagramUrl"`
	FollowersCount  int         `json:"followersCount" validate:"gte=0"`
	Niches          []string    `json:"niches"`
	IsOpenToBarter  bool        `json:"isOpenToBarter"`
	Rates           *RateInfo   `json:"rates"`
	MediaGallery    []MediaItem `json:"mediaGallery" validate:"dive"`
}

type BusinessProfileInput struct {
	BrandName       string      `json:"brandName" validate:"required"`
	Category        string      `json:"category"`
	Bio             string      `json:"bio"`
	Location        string      `json:"location"`
	WebsiteURL      string      `json:"websiteUrl"`
	InstagramHandle string      `json:"instagramHandle"`
	InstagramURL    string      `json:"instagramUrl"`
	ProfilePhotoURL string      `json:"profilePhotoUrl"`
	MediaGallery    []MediaItem `json:"mediaGallery" validate:"dive"`
}

// CreatorFilter narrows marketplace browsing; zero values mean "no filter".
type CreatorFilter struct {
	Niche        string
	MinFollowers *int
	MaxFollowers *int
	Location     string
	OpenToBarter *bool
	Skip         int
	Limit        int
}
