package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
)

var genReq = request_models.TripGenerateRequest{
	Departure:   "Hanoi",
	Destination: "Hoi An",
	People:      2,
	Days:        3,
	Money:       "400 USD",
}

func TestGenerateTripRemote(t *testing.T) {
	recRepo := newFakeRecRepo()
	remote := &fakeGenerator{output: "remote plan"}
	svc := NewRecommendationService(recRepo, remote, "test-model")

	resp, err := svc.GenerateTrip(context.Background(), "US0001", genReq)
	require.NoError(t, err)
	assert.Equal(t, "remote plan", resp.Recommendation)
	assert.Equal(t, "AI", resp.RecommendationID[:2])
	assert.Equal(t, 1, remote.calls)

	// Persisted with the request summary.
	rec := recRepo.recs[resp.RecommendationID]
	require.NotNil(t, rec)
	assert.Equal(t, "US0001", rec.UserID)
	assert.Contains(t, rec.Input, "Hoi An")
	assert.Equal(t, "remote plan", rec.Output)
}

func TestGenerateTripFallsBackOnError(t *testing.T) {
	recRepo := newFakeRecRepo()
	remote := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewRecommendationService(recRepo, remote, "test-model")

	resp, err := svc.GenerateTrip(context.Background(), "US0001", genReq)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Recommendation)
	assert.Contains(t, resp.Recommendation, "HOI AN")
}

func TestGenerateTripFallsBackOnEmptyOutput(t *testing.T) {
	recRepo := newFakeRecRepo()
	remote := &fakeGenerator{output: ""}
	svc := NewRecommendationService(recRepo, remote, "test-model")

	resp, err := svc.GenerateTrip(context.Background(), "US0001", genReq)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Recommendation)
}

func TestGenerateTripWithoutRemote(t *testing.T) {
	recRepo := newFakeRecRepo()
	svc := NewRecommendationService(recRepo, nil, "")

	resp, err := svc.GenerateTrip(context.Background(), "US0001", genReq)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Recommendation)
	assert.Len(t, recRepo.recs, 1)
}

func TestGeneratorHealth(t *testing.T) {
	recRepo := newFakeRecRepo()

	withRemote := NewRecommendationService(recRepo, &fakeGenerator{}, "test-model")
	health := withRemote.Health(context.Background())
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "fake", health.AIService)

	localOnly := NewRecommendationService(recRepo, nil, "")
	health = localOnly.Health(context.Background())
	assert.Equal(t, "local", health.AIService)
}

func TestRecommendationByUser(t *testing.T) {
	recRepo := newFakeRecRepo()
	svc := NewRecommendationService(recRepo, nil, "")

	_, err := svc.Create(context.Background(), "US0001", request_models.RecommendationCreateRequest{
		Input: "in", Output: "out",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "US0002", request_models.RecommendationCreateRequest{
		Input: "in2", Output: "out2",
	})
	require.NoError(t, err)

	mine, err := svc.ByUser(context.Background(), "US0001")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "out", mine[0].Output)
}
