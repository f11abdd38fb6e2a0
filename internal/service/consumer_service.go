package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/repository/memory"
	"mock-interview-be/internal/repository/unitofwork"
	"mock-interview-be/pkg/analysis"
	"mock-interview-be/pkg/events"
	"mock-interview-be/pkg/media"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	pipeline       *analysis.Pipeline
	uowFactory     unitofwork.RepositoryFactory
	results        *memory.ResultRepository
	eventPublisher IEventPublisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pipeline *analysis.Pipeline,
	uowFactory unitofwork.RepositoryFactory,
	results *memory.ResultRepository,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		pipeline:       pipeline,
		uowFactory:     uowFactory,
		results:        results,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// permanentAnalysisError reports failures retrying can never fix: the file
// is gone, undecodable or empty.
func permanentAnalysisError(err error) bool {
	return errors.Is(err, media.ErrFileNotFound) ||
		errors.Is(err, media.ErrUnreadableVideo) ||
		errors.Is(err, analysis.ErrNoFrames)
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AnalyzeVideoMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal analyze message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages retry forever otherwise
		return
	}

	interviewId, err := uuid.Parse(payload.InterviewId)
	if err != nil {
		cs.logger.Error("ConsumerService", "Invalid interview id in analyze message", map[string]interface{}{"interview_id": payload.InterviewId})
		msg.Ack()
		return
	}

	cs.logger.Info("ConsumerService", "Analyzing interview video", map[string]interface{}{
		"interview_id": payload.InterviewId,
		"video_path":   payload.VideoPath,
	})

	report, err := cs.pipeline.Analyze(ctx, payload.VideoPath)
	if err != nil {
		cs.logger.Error("ConsumerService", "Video analysis failed", map[string]interface{}{
			"interview_id": payload.InterviewId,
			"error":        err.Error(),
		})
		if permanentAnalysisError(err) {
			msg.Ack()
		} else {
			msg.Nack()
		}
		return
	}

	if err := cs.persistReport(ctx, interviewId, report); err != nil {
		cs.logger.Error("ConsumerService", "Failed to persist metrics", map[string]interface{}{
			"interview_id": payload.InterviewId,
			"error":        err.Error(),
		})
		msg.Nack()
		return
	}

	cs.results.Save(resultFromReport(payload, report))

	if cs.eventPublisher != nil {
		evt := events.NewAnalysisCompleted(payload.SessionId, report.Emotion.Score, report.Posture.Score)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to publish analysis event", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}

// persistReport writes all three metric rows in one transaction so a partial
// result can never be observed.
func (cs *consumerService) persistReport(ctx context.Context, interviewId uuid.UUID, report *analysis.Report) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	metrics := uow.MetricRepository()

	emotion := &entity.EmotionMetric{
		InterviewId: interviewId,
		Averages:    report.Emotion.Averages,
		Score:       report.Emotion.Score,
	}
	if err := metrics.CreateEmotion(ctx, emotion); err != nil {
		_ = uow.Rollback()
		return err
	}

	posture := &entity.PostureMetric{
		InterviewId:    interviewId,
		GoodPosePct:    report.Posture.GoodPosePct,
		BadNeckPct:     report.Posture.BadNeckPct,
		BadShoulderPct: report.Posture.BadShoulderPct,
		BadPosePct:     report.Posture.BadPosePct,
		Score:          report.Posture.Score,
	}
	if err := metrics.CreatePosture(ctx, posture); err != nil {
		_ = uow.Rollback()
		return err
	}

	gaze := &entity.GazeMetric{
		InterviewId: interviewId,
		AvgMovement: report.Gaze.AvgMovement,
		MinMovement: report.Gaze.MinMovement,
		MaxMovement: report.Gaze.MaxMovement,
	}
	if err := metrics.CreateGaze(ctx, gaze); err != nil {
		_ = uow.Rollback()
		return err
	}

	return uow.Commit()
}

func resultFromReport(payload dto.AnalyzeVideoMessage, report *analysis.Report) *dto.InterviewResultResponse {
	return &dto.InterviewResultResponse{
		InterviewId: payload.InterviewId,
		SessionId:   payload.SessionId,
		Emotion: &dto.EmotionResultResponse{
			Averages: report.Emotion.Averages,
			Score:    report.Emotion.Score,
		},
		Posture: &dto.PostureResultResponse{
			GoodPosePct:    report.Posture.GoodPosePct,
			BadNeckPct:     report.Posture.BadNeckPct,
			BadShoulderPct: report.Posture.BadShoulderPct,
			BadPosePct:     report.Posture.BadPosePct,
			Score:          report.Posture.Score,
		},
		Gaze: &dto.GazeResultResponse{
			AvgMovement: report.Gaze.AvgMovement,
			MinMovement: report.Gaze.MinMovement,
			MaxMovement: report.Gaze.MaxMovement,
		},
		AnalyzedAt: time.Now(),
	}
}
