package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func newFriendFixture() (FriendService, *fakeFriendRepo, *fakeUserRepo) {
	friendRepo := &fakeFriendRepo{}
	userRepo := newFakeUserRepo()
	userRepo.users["US0001"] = &db_models.User{ID: "US0001", Username: "alice"}
	userRepo.users["US0002"] = &db_models.User{ID: "US0002", Username: "bob"}
	return NewFriendService(friendRepo, userRepo), friendRepo, userRepo
}

func TestFriendCreate(t *testing.T) {
	svc, friendRepo, _ := newFriendFixture()

	friend, err := svc.Create(context.Background(), request_models.FriendCreateRequest{
		UserID: "US0001", FriendID: "US0002",
	})
	require.NoError(t, err)
	assert.False(t, friend.Accepted)
	assert.Len(t, friendRepo.edges, 1)
}

func TestFriendCreateRejections(t *testing.T) {
	svc, friendRepo, _ := newFriendFixture()
	friendRepo.edges = append(friendRepo.edges, &db_models.Friend{UserID: "US0001", FriendID: "US0002"})

	tests := []struct {
		name    string
		req     request_models.FriendCreateRequest
		wantErr error
	}{
		{"self friendship", request_models.FriendCreateRequest{UserID: "US0001", FriendID: "US0001"}, utils.ErrSelfFriendship},
		{"duplicate edge", request_models.FriendCreateRequest{UserID: "US0001", FriendID: "US0002"}, utils.ErrFriendshipExists},
		{"reversed duplicate", request_models.FriendCreateRequest{UserID: "US0002", FriendID: "US0001"}, utils.ErrFriendshipExists},
		{"unknown user", request_models.FriendCreateRequest{UserID: "US0001", FriendID: "US9999"}, utils.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFriendAccept(t *testing.T) {
	svc, friendRepo, _ := newFriendFixture()
	friendRepo.edges = append(friendRepo.edges, &db_models.Friend{UserID: "US0001", FriendID: "US0002"})

	friend, err := svc.Update(context.Background(), request_models.FriendUpdateRequest{
		UserID: "US0001", FriendID: "US0002", Accepted: true,
	})
	require.NoError(t, err)
	assert.True(t, friend.Accepted)

	accepted, err := svc.AcceptedOf(context.Background(), "US0002")
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
}

func TestFriendAcceptMissingEdge(t *testing.T) {
	svc, _, _ := newFriendFixture()

	_, err := svc.Update(context.Background(), request_models.FriendUpdateRequest{
		UserID: "US0001", FriendID: "US0002", Accepted: true,
	})
	assert.ErrorIs(t, err, utils.ErrFriendshipNotFound)
}

func TestFriendAcceptedOfEmpty(t *testing.T) {
	svc, _, _ := newFriendFixture()

	_, err := svc.AcceptedOf(context.Background(), "US0001")
	assert.ErrorIs(t, err, utils.ErrFriendshipNotFound)
}

func TestFriendDelete(t *testing.T) {
	svc, friendRepo, _ := newFriendFixture()
	friendRepo.edges = append(friendRepo.edges, &db_models.Friend{UserID: "US0001", FriendID: "US0002"})

	// Either direction removes the edge.
	require.NoError(t, svc.Delete(context.Background(), "US0002", "US0001"))
	assert.Empty(t, friendRepo.edges)

	assert.ErrorIs(t, svc.Delete(context.Background(), "US0001", "US0002"), utils.ErrFriendshipNotFound)
}
