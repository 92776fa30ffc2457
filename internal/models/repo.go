package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	UsersColName            = "users"
	CreatorProfilesColName  = "creator_profiles"
	BusinessProfilesColName = "business_profiles"
	RequestsColName         = "collaboration_requests"
	MessagesColName         = "messages"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

type SeedRepo interface {
	WipeAll(ctx context.Context) error
}

// WipeAll clears every collection; only the demo-data seeder calls this.
func (mdb *MongodbRepo) WipeAll(ctx context.Context) error {
	for _, name := range []string{
		UsersColName,
		CreatorProfilesColName,
		BusinessProfilesColName,
		RequestsColName,
		MessagesColName,
	} {
		col, err := mdb.GetCollection(ctx, name)
		if err != nil {
			return err
		}
		if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("error wiping %s: %v", name, err)
		}
	}
	return nil
}
