package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	MarkOnboarded(ctx context.Context, userID string) error
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, fmt.Errorf("error checking existing email: %v", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	if _, err := col.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}
	return user, nil
}

func (mdb *MongodbRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user by email: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) FindByID(ctx context.Context, id string) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	if err := col.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user by id: %v", err)
	}
	return &user, nil
}

// MarkOnboarded is idempotent; setting the flag twice is a no-op.
func (mdb *MongodbRepo) MarkOnboarded(ctx context.Context, userID string) error {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$set": bson.M{"hasCompletedOnboarding": true},
	})
	if err != nil {
		return fmt.Errorf("error marking user onboarded: %v", err)
	}
	return nil
}
