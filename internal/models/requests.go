package models

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// Terminal reports whether no further transition is valid from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestDeclined
}

type CollaborationRequest struct {
	ID           string        `bson:"id" json:"id"`
	CreatorID    string        `bson:"creatorId" json:"creatorId"`
	BusinessID   string        `bson:"businessId" json:"businessId"`
	Title        string        `bson:"title" json:"title"`
	Brief        string        `bson:"brief" json:"brief"`
	OfferAmount  float64       `bson:"offerAmount" json:"offerAmount"`
	Deliverables string        `bson:"deliverables" json:"deliverables"`
	Status       RequestStatus `bson:"status" json:"status"`
	Timeline     string        `bson:"timeline" json:"timeline"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// RequestView is a CollaborationRequest enriched with display fields joined
// from the profile stores at read time. The joined fields are never persisted
// on the request document.
type RequestView struct {
	CollaborationRequest
	CreatorName   string `json:"creatorName"`
	BusinessName  string `json:"businessName"`
	CreatorPhoto  string `json:"creatorPhoto"`
	BusinessPhoto string `json:"businessPhoto"`
}

type CollaborationRequestInput struct {
	CreatorID    string   `json:"creatorId" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Brief        string   `json:"brief" validate:"required"`
	OfferAmount  *float64 `json:"offerAmount" validate:"omitempty,gte=0"`
	Deliverables string   `json:"deliverables"`
	Timeline     string   `json:"timeline"`
}
