package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/orange/internal/models"
)

const maxMessageList = 500

type MessageService struct {
	messages models.MessageRepo
	requests models.RequestRepo
	profiles models.ProfileRepo
	guard    *AccessGuard
}

func NewMessageService(messages models.MessageRepo, requests models.RequestRepo, profiles models.ProfileRepo, guard *AccessGuard) *MessageService {
	return &MessageService{
		messages: messages,
		requests: requests,
		profiles: profiles,
		guard:    guard,
	}
}

// List returns the thread for a request in send order. Messaging is not
// gated on the request's lifecycle state; declined threads stay readable.
func (ms *MessageService) List(ctx context.Context, actor *models.User, requestID string) ([]*models.Message, error) {
	if err := ms.authorize(ctx, actor, requestID); err != nil {
		return nil, err
	}
	return ms.messages.ListMessagesByRequest(ctx, requestID, maxMessageList)
}

// Send appends a message to the thread. The sender's display name is
// snapshotted into the message; later profile renames never rewrite history.
func (ms *MessageService) Send(ctx context.Context, actor *models.User, requestID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text is required: %w", models.ErrInvalidInput)
	}

	if err := ms.authorize(ctx, actor, requestID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:           uuid.New().String(),
		RequestID:    requestID,
		SenderUserID: actor.ID,
		SenderName:   ms.resolveSenderName(ctx, actor),
		Text:         text,
		CreatedAt:    time.Now().UTC(),
	}

	if err := ms.messages.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (ms *MessageService) authorize(ctx context.Context, actor *models.User, requestID string) error {
	req, err := ms.requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	allowed, err := ms.guard.CanAccessRequest(ctx, actor, req)
	if err != nil {
		return err
	}
	if !allowed {
		return models.ErrForbidden
	}
	return nil
}

// resolveSenderName prefers the actor's profile display name and falls back
// to the account email when no profile exists yet.
func (ms *MessageService) resolveSenderName(ctx context.Context, actor *models.User) string {
	switch actor.Role {
	case models.RoleCreator:
		creator, err := ms.profiles.GetCreatorByUserID(ctx, actor.ID)
		if err == nil && creator.Name != "" {
			return creator.Name
		}
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return actor.Email
		}
	case models.RoleBusiness:
		business, err := ms.profiles.GetBusinessByUserID(ctx, actor.ID)
		if err == nil && business.BrandName != "" {
			return business.BrandName
		}
	}
	return actor.Email
}
