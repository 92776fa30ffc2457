package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepo interface {
	InsertMessage(ctx context.Context, msg *Message) error
	ListMessagesByRequest(ctx context.Context, requestID string, limit int) ([]*Message, error)
}

func (mdb *MongodbRepo) InsertMessage(ctx context.Context, msg *Message) error {
	col, err := mdb.GetCollection(ctx, MessagesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error inserting message: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListMessagesByRequest(ctx context.Context, requestID string, limit int) ([]*Message, error) {
	col, err := mdb.GetCollection(ctx, MessagesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{"requestId": requestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding messages: %v", err)
	}
	defer cursor.Close(ctx)

	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %v", err)
	}
	if messages == nil {
		messages = []*Message{}
	}
	return messages, nil
}
