package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepo interface {
	UpsertCreatorProfile(ctx context.Context, userID string, in *CreatorProfileInput) (*CreatorProfile, error)
	UpsertBusinessProfile(ctx context.Context, userID string, in *BusinessProfileInput) (*BusinessProfile, error)
	GetCreatorByUserID(ctx context.Context, userID string) (*CreatorProfile, error)
	GetCreatorByID(ctx context.Context, id string) (*CreatorProfile, error)
	GetBusinessByUserID(ctx context.Context, userID string) (*BusinessProfile, error)
	GetBusinessByID(ctx context.Context, id string) (*BusinessProfile, error)
	ListCreators(ctx context.Context, filter CreatorFilter) ([]*CreatorProfile, error)
}

// UpsertCreatorProfile overwrites all mutable fields for the user's profile,
// creating it when absent. id and createdAt are only written on insert, so the
// operation is idempotent on userId.
func (mdb *MongodbRepo) UpsertCreatorProfile(ctx context.Context, userID string, in *CreatorProfileInput) (*CreatorProfile, error) {
	col, err := mdb.GetCollection(ctx, CreatorProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	rates := RateInfo{}
	if in.Rates != nil {
		rates = *in.Rates
	}
	gallery := in.MediaGallery
	if gallery == nil {
		gallery = []MediaItem{}
	}
	niches := in.Niches
	if niches == nil {
		niches = []string{}
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"name":            in.Name,
			"bio":             in.Bio,
			"location":        in.Location,
			"profilePhotoUrl": in.ProfilePhotoURL,
			"instagramHandle": in.InstagramHandle,
			"instagramUrl":    in.InstagramURL,
			"followersCount":  in.FollowersCount,
			"niches":          niches,
			"isOpenToBarter":  in.IsOpenToBarter,
			"rates":           rates,
			"mediaGallery":    gallery,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"userId":    userID,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result CreatorProfile
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("error upserting creator profile: %v", err)
	}
	return &result, nil
}

func (mdb *MongodbRepo) UpsertBusinessProfile(ctx context.Context, userID string, in *BusinessProfileInput) (*BusinessProfile, error) {
	col, err := mdb.GetCollection(ctx, BusinessProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	gallery := in.MediaGallery
	if gallery == nil {
		gallery = []MediaItem{}
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"brandName":       in.BrandName,
			"category":        in.Category,
			"bio":             in.Bio,
			"location":        in.Location,
			"websiteUrl":      in.WebsiteURL,
			"instagramHandle": in.InstagramHandle,
			"instagramUrl":    in.InstagramURL,
			"profilePhotoUrl": in.ProfilePhotoURL,
			"mediaGallery":    gallery,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"userId":    userID,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result BusinessProfile
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("error upserting business profile: %v", err)
	}
	return &result, nil
}

func (mdb *MongodbRepo) GetCreatorByUserID(ctx context.Context, userID string) (*CreatorProfile, error) {
	return mdb.findCreator(ctx, bson.M{"userId": userID})
}

func (mdb *MongodbRepo) GetCreatorByID(ctx context.Context, id string) (*CreatorProfile, error) {
	return mdb.findCreator(ctx, bson.M{"id": id})
}

func (mdb *MongodbRepo) findCreator(ctx context.Context, filter bson.M) (*CreatorProfile, error) {
	col, err := mdb.GetCollection(ctx, CreatorProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var profile CreatorProfile
	if err := col.FindOne(ctx, filter).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding creator profile: %v", err)
	}
	return &profile, nil
}

func (mdb *MongodbRepo) GetBusinessByUserID(ctx context.Context, userID string) (*BusinessProfile, error) {
	return mdb.findBusiness(ctx, bson.M{"userId": userID})
}

func (mdb *MongodbRepo) GetBusinessByID(ctx context.Context, id string) (*BusinessProfile, error) {
	return mdb.findBusiness(ctx, bson.M{"id": id})
}

func (mdb *MongodbRepo) findBusiness(ctx context.Context, filter bson.M) (*BusinessProfile, error) {
	col, err := mdb.GetCollection(ctx, BusinessProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var profile BusinessProfile
	if err := col.FindOne(ctx, filter).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding business profile: %v", err)
	}
	return &profile, nil
}

func (mdb *MongodbRepo) ListCreators(ctx context.Context, filter CreatorFilter) ([]*CreatorProfile, error) {
	col, err := mdb.GetCollection(ctx, CreatorProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if filter.Niche != "" {
		query["niches"] = bson.M{"$in": []string{filter.Niche}}
	}
	followers := bson.M{}
	if filter.MinFollowers != nil {
		followers["$gte"] = *filter.MinFollowers
	}
	if filter.MaxFollowers != nil {
		followers["$lte"] = *filter.MaxFollowers
	}
	if len(followers) > 0 {
		query["followersCount"] = followers
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": filter.Location, "$options": "i"}
	}
	if filter.OpenToBarter != nil {
		query["isOpenToBarter"] = *filter.OpenToBarter
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding creators: %v", err)
	}
	defer cursor.Close(ctx)

	var creators []*CreatorProfile
	if err := cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("error decoding creators: %v", err)
	}
	if creators == nil {
		creators = []*CreatorProfile{}
	}
	return creators, nil
}
