package services_test

import (
	"context"
	"testing"

	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := services.NewSeedService(store, store, store, store)

	// Pre-existing data is wiped before seeding.
	leftover := store.addUser(models.RoleCreator)
	store.addCreatorProfile(leftover.ID, "Leftover")

	res, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Creators)
	assert.Equal(t, 2, res.Businesses)

	assert.Len(t, store.creators, 5)
	assert.Len(t, store.businesses, 2)
	assert.Len(t, store.users, 7)
	assert.Len(t, store.requests, 1)
	assert.NotContains(t, store.users, leftover.ID)

	for _, r := range store.requests {
		assert.Equal(t, models.RequestPending, r.Status)
		assert.Greater(t, r.OfferAmount, 0.0)
	}

	// Demo accounts are onboarded and can log in with the demo password.
	auth := services.NewAuthService(store, testJWTSecret)
	login, err := auth.Login(ctx, "creator1@orange.com", "password123")
	require.NoError(t, err)
	assert.True(t, login.User.HasCompletedOnboarding)

	_, err = auth.Login(ctx, "business1@orange.com", "password123")
	require.NoError(t, err)

	// Re-seeding replaces rather than duplicates.
	res, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Creators)
	assert.Len(t, store.users, 7)
	assert.Len(t, store.requests, 1)
}
