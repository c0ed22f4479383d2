package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

const remoteGenerateTimeout = 30 * time.Second

type RecommendationService interface {
	GenerateTrip(ctx context.Context, userID string, req request_models.TripGenerateRequest) (*response_models.TripGenerateResponse, error)
	Health(ctx context.Context) *response_models.GeneratorHealthResponse

	List(ctx context.Context, skip, limit int) ([]*db_models.Recommendation, error)
	GetByID(ctx context.Context, id string) (*db_models.Recommendation, error)
	ByUser(ctx context.Context, userID string) ([]*db_models.Recommendation, error)
	Create(ctx context.Context, userID string, req request_models.RecommendationCreateRequest) (*db_models.Recommendation, error)
	Delete(ctx context.Context, id string) error
}

type recommendationService struct {
	recRepo  repositories.RecommendationRepository
	remote   utils.Generator
	fallback *utils.LocalGenerator
	model    string
}

// NewRecommendationService wires the configured remote generator. A nil
// remote means every request is served by the local template.
func NewRecommendationService(
	recRepo repositories.RecommendationRepository,
	remote utils.Generator,
	model string,
) RecommendationService {
	return &recommendationService{
		recRepo:  recRepo,
		remote:   remote,
		fallback: utils.NewLocalGenerator(),
		model:    model,
	}
}

// GenerateTrip asks the remote generator first; any failure or empty output
// drops to the local template, so the operation itself cannot fail on the
// generation side.
func (s *recommendationService) GenerateTrip(ctx context.Context, userID string, req request_models.TripGenerateRequest) (*response_models.TripGenerateResponse, error) {
	output := s.generate(ctx, req)

	id, err := s.recRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("recommendation id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	rec := &db_models.Recommendation{
		ID:     id,
		UserID: userID,
		Input:  summarizeTripRequest(req),
		Output: output,
	}
	if err := s.recRepo.Insert(ctx, rec); err != nil {
		logger.Log.Errorw("recommendation persist failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripGenerateResponse{
		RecommendationID: id,
		Recommendation:   output,
	}, nil
}

func (s *recommendationService) generate(ctx context.Context, req request_models.TripGenerateRequest) string {
	if s.remote != nil {
		rctx, cancel := context.WithTimeout(ctx, remoteGenerateTimeout)
		defer cancel()

		output, err := s.remote.GenerateTravelRecommendation(rctx, req)
		if err == nil && output != "" {
			return output
		}
		logger.Log.Warnw("remote generation failed, using local template",
			"provider", s.remote.Name(), "err", err)
	}

	output, _ := s.fallback.GenerateTravelRecommendation(ctx, req)
	return output
}

func summarizeTripRequest(req request_models.TripGenerateRequest) string {
	return fmt.Sprintf(
		"departure=%s destination=%s people=%d days=%d time=%s money=%s transportation=%s travelStyle=%s interests=%s accommodation=%s",
		req.Departure, req.Destination, req.People, req.Days, req.Time,
		req.Money, req.Transportation, req.TravelStyle,
		strings.Join(req.Interests, ","), req.Accommodation,
	)
}

func (s *recommendationService) Health(ctx context.Context) *response_models.GeneratorHealthResponse {
	resp := &response_models.GeneratorHealthResponse{
		Status: "ok",
		Model:  s.model,
	}
	if s.remote != nil {
		resp.AIService = s.remote.Name()
		resp.Message = "remote generator configured, local fallback armed"
	} else {
		resp.AIService = s.fallback.Name()
		resp.Message = "no remote generator configured, serving local templates"
	}
	return resp
}

func (s *recommendationService) List(ctx context.Context, skip, limit int) ([]*db_models.Recommendation, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	recs, err := s.recRepo.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("recommendation listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return recs, nil
}

func (s *recommendationService) GetByID(ctx context.Context, id string) (*db_models.Recommendation, error) {
	rec, err := s.recRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("recommendation lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrRecommendationNotFound
	}
	return rec, nil
}

func (s *recommendationService) ByUser(ctx context.Context, userID string) ([]*db_models.Recommendation, error) {
	recs, err := s.recRepo.ByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("recommendation lookup failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}
	return recs, nil
}

func (s *recommendationService) Create(ctx context.Context, userID string, req request_models.RecommendationCreateRequest) (*db_models.Recommendation, error) {
	id, err := s.recRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("recommendation id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	rec := &db_models.Recommendation{
		ID:     id,
		UserID: userID,
		Input:  req.Input,
		Output: req.Output,
	}
	if err := s.recRepo.Insert(ctx, rec); err != nil {
		logger.Log.Errorw("recommendation create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *recommendationService) Delete(ctx context.Context, id string) error {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.recRepo.Delete(ctx, rec); err != nil {
		logger.Log.Errorw("recommendation delete failed", "err", err, "recommendation_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}
