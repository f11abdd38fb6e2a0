package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/repository/memory"
	"mock-interview-be/internal/repository/specification"
	"mock-interview-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAnalysisService interface {
	// AnalyzeVideo queues a video for (re)analysis.
	AnalyzeVideo(ctx context.Context, req *dto.AnalyzeVideoRequest) error
	// GetResult accepts either a session id or an interview id.
	GetResult(ctx context.Context, id string) (*dto.InterviewResultResponse, error)
	LatestResult(ctx context.Context) (*dto.InterviewResultResponse, error)
}

type analysisService struct {
	uowFactory       unitofwork.RepositoryFactory
	results          *memory.ResultRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewAnalysisService(
	uowFactory unitofwork.RepositoryFactory,
	results *memory.ResultRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		uowFactory:       uowFactory,
		results:          results,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *analysisService) AnalyzeVideo(ctx context.Context, req *dto.AnalyzeVideoRequest) error {
	msg := dto.AnalyzeVideoMessage{
		InterviewId: req.InterviewId,
		SessionId:   req.SessionId,
		VideoPath:   req.VideoFile,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return err
	}

	s.logger.Info("AnalysisService", "Analysis job queued", map[string]interface{}{
		"interview_id": req.InterviewId,
		"video_file":   req.VideoFile,
	})
	return nil
}

func (s *analysisService) GetResult(ctx context.Context, id string) (*dto.InterviewResultResponse, error) {
	if cached, found := s.results.Get(id); found {
		return cached, nil
	}

	// Cache miss: only interview ids can be resolved from the database
	interviewId, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrResultNotFound
	}
	return s.loadFromDatabase(ctx, interviewId)
}

func (s *analysisService) LatestResult(ctx context.Context) (*dto.InterviewResultResponse, error) {
	if cached, found := s.results.Latest(); found {
		return cached, nil
	}
	return nil, ErrResultNotFound
}

func (s *analysisService) loadFromDatabase(ctx context.Context, interviewId uuid.UUID) (*dto.InterviewResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	metrics := uow.MetricRepository()
	byInterview := specification.ByInterviewID{InterviewID: interviewId}

	emotion, err := metrics.FindEmotion(ctx, byInterview)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	posture, err := metrics.FindPosture(ctx, byInterview)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	gaze, err := metrics.FindGaze(ctx, byInterview)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	if emotion == nil && posture == nil && gaze == nil {
		return nil, ErrResultNotFound
	}

	res := &dto.InterviewResultResponse{InterviewId: interviewId.String()}
	if emotion != nil {
		res.Emotion = &dto.EmotionResultResponse{Averages: emotion.Averages, Score: emotion.Score}
		res.AnalyzedAt = emotion.CreatedAt
	}
	if posture != nil {
		res.Posture = &dto.PostureResultResponse{
			GoodPosePct:    posture.GoodPosePct,
			BadNeckPct:     posture.BadNeckPct,
			BadShoulderPct: posture.BadShoulderPct,
			BadPosePct:     posture.BadPosePct,
			Score:          posture.Score,
		}
	}
	if gaze != nil {
		res.Gaze = &dto.GazeResultResponse{
			AvgMovement: gaze.AvgMovement,
			MinMovement: gaze.MinMovement,
			MaxMovement: gaze.MaxMovement,
		}
	}
	return res, nil
}
