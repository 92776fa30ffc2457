package models

import "time"

// Message is append-only; documents are never updated or deleted.
// senderName is a snapshot taken at send time, not a live join.
type Message struct {
	ID           string    `bson:"id" json:"id"`
	RequestID    string    `bson:"requestId" json:"requestId"`
	SenderUserID string    `bson:"senderUserId" json:"senderUserId"`
	SenderName   string    `bson:"senderName" json:"senderName"`
	Text         string    `bson:"text" json:"text"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type MessageInput struct {
	Text string `json:"text" validate:"required"`
}
