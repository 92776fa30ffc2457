package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RequestRepo interface {
	InsertRequest(ctx context.Context, req *CollaborationRequest) error
	GetRequestByID(ctx context.Context, id string) (*CollaborationRequest, error)
	ListRequestsByBusiness(ctx context.Context, businessID string, limit int) ([]*CollaborationRequest, error)
	ListRequestsByCreator(ctx context.Context, creatorID string, limit int) ([]*CollaborationRequest, error)
	UpdateRequestStatusIfPending(ctx context.Context, id string, status RequestStatus) (bool, error)
}

func (mdb *MongodbRepo) InsertRequest(ctx context.Context, req *CollaborationRequest) error {
	col, err := mdb.GetCollection(ctx, RequestsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("error inserting collaboration request: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetRequestByID(ctx context.Context, id string) (*CollaborationRequest, error) {
	col, err := mdb.GetCollection(ctx, RequestsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var req CollaborationRequest
	if err := col.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding collaboration request: %v", err)
	}
	return &req, nil
}

func (mdb *MongodbRepo) ListRequestsByBusiness(ctx context.Context, businessID string, limit int) ([]*CollaborationRequest, error) {
	return mdb.listRequests(ctx, bson.M{"businessId": businessID}, limit)
}

func (mdb *MongodbRepo) ListRequestsByCreator(ctx context.Context, creatorID string, limit int) ([]*CollaborationRequest, error) {
	return mdb.listRequests(ctx, bson.M{"creatorId": creatorID}, limit)
}

func (mdb *MongodbRepo) listRequests(ctx context.Context, filter bson.M, limit int) ([]*CollaborationRequest, error) {
	col, err := mdb.GetCollection(ctx, RequestsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetLimit(int64(limit))
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding collaboration requests: %v", err)
	}
	defer cursor.Close(ctx)

	var requests []*CollaborationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding collaboration requests: %v", err)
	}
	if requests == nil {
		requests = []*CollaborationRequest{}
	}
	return requests, nil
}

// UpdateRequestStatusIfPending performs a conditional update: the status is
// written only when the stored status is still pending. The returned bool
// reports whether the document was updated, so at most one of two racing
// transitions ever succeeds.
func (mdb *MongodbRepo) UpdateRequestStatusIfPending(ctx context.Context, id string, status RequestStatus) (bool, error) {
	col, err := mdb.GetCollection(ctx, RequestsColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"id": id, "status": RequestPending},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, fmt.Errorf("error updating request status: %v", err)
	}
	return res.ModifiedCount > 0, nil
}
