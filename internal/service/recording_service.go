package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"mock-interview-be/internal/config"
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/repository/specification"
	"mock-interview-be/internal/repository/unitofwork"
	"mock-interview-be/pkg/capture"
	"mock-interview-be/pkg/countdown"
	"mock-interview-be/pkg/events"
	"mock-interview-be/pkg/media"

	"github.com/google/uuid"
)

// IEventPublisher is the outbound event bus. Implementations may be absent
// in development, so every publish failure is tolerated.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IStatusBroadcaster pushes live countdown updates to session watchers.
type IStatusBroadcaster interface {
	BroadcastStatus(status dto.SessionStatusResponse)
}

type IRecordingService interface {
	Start(ctx context.Context, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	Stop(ctx context.Context) (*dto.StopInterviewResponse, error)
	Status(ctx context.Context) (*dto.SessionStatusResponse, error)
	ListArtifacts(ctx context.Context, interviewId uuid.UUID) (*dto.ListArtifactsResponse, error)
	ListVideos(ctx context.Context) ([]dto.ArtifactResponse, error)
}

// session bundles everything owned by one active recording.
type session struct {
	id          string
	interviewId uuid.UUID
	videoFile   string
	audioFile   string
	videoPath   string
	wavPath     string
	mp3Path     string

	machine *countdown.Machine
	channel *capture.Channel

	stopFlag   atomic.Bool
	wg         sync.WaitGroup
	cancel     context.CancelFunc
	finishOnce sync.Once
}

type recordingService struct {
	mu     sync.Mutex
	active *session

	cfg              *config.Config
	devices          capture.DeviceProvider
	mediaFactory     media.Factory
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   IEventPublisher
	broadcaster      IStatusBroadcaster
	logger           logger.ILogger
}

func NewRecordingService(
	cfg *config.Config,
	devices capture.DeviceProvider,
	mediaFactory media.Factory,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher IEventPublisher,
	broadcaster IStatusBroadcaster,
	log logger.ILogger,
) IRecordingService {
	return &recordingService{
		cfg:              cfg,
		devices:          devices,
		mediaFactory:     mediaFactory,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		broadcaster:      broadcaster,
		logger:           log,
	}
}

// Start sets up a full recording session: one interview row, both capture
// devices, both writers and the countdown driver. The lock is held through
// the whole setup so two concurrent starts cannot interleave.
func (s *recordingService) Start(ctx context.Context, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, ErrAlreadyActive
	}

	questions, err := s.resolveQuestions(ctx, req)
	if err != nil {
		return nil, err
	}

	sessionId := uuid.NewString()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	interview := &entity.Interview{
		SubjectId:    req.SubjectId,
		SubmissionId: req.SubmissionId,
		RoundNumber:  req.RoundNumber,
	}
	if err := uow.InterviewRepository().Create(ctx, interview); err != nil {
		s.logger.Error("RecordingService", "Failed to insert interview row", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	channel, err := capture.Open(s.devices,
		capture.CameraConfig{
			Device:    s.cfg.Capture.CameraDevice,
			Width:     s.cfg.Capture.FrameWidth,
			Height:    s.cfg.Capture.FrameHeight,
			FrameRate: s.cfg.Capture.FrameRate,
		},
		capture.MicrophoneConfig{
			Device:      s.cfg.Capture.AudioDevice,
			SampleRate:  s.cfg.Capture.SampleRate,
			Channels:    s.cfg.Capture.Channels,
			ChunkFrames: s.cfg.Capture.ChunkFrames,
		},
	)
	if err != nil {
		// The interview row must not outlive a session that never recorded
		if derr := uow.InterviewRepository().Delete(ctx, interview.Id); derr != nil {
			s.logger.Warn("RecordingService", "Failed to remove orphan interview row", map[string]interface{}{"interview_id": interview.Id.String()})
		}
		return nil, err
	}

	base := fmt.Sprintf("%s_%s_%d_%s", req.SubjectId, req.SubmissionId, req.RoundNumber, sessionId)
	sess := &session{
		id:          sessionId,
		interviewId: interview.Id,
		videoFile:   base + ".mp4",
		audioFile:   base + ".mp3",
		videoPath:   filepath.Join(s.cfg.Media.BaseDir, "video", base+".mp4"),
		wavPath:     filepath.Join(s.cfg.Media.BaseDir, "audio", base+".wav"),
		mp3Path:     filepath.Join(s.cfg.Media.BaseDir, "audio", base+".mp3"),
		channel:     channel,
	}

	videoWriter, err := s.mediaFactory.NewVideoWriter(sess.videoPath, s.cfg.Capture.FrameWidth, s.cfg.Capture.FrameHeight, s.cfg.Capture.FrameRate)
	if err != nil {
		channel.Close()
		return nil, err
	}
	audioWriter, err := s.mediaFactory.NewAudioWriter(sess.wavPath, s.cfg.Capture.SampleRate, s.cfg.Capture.Channels)
	if err != nil {
		videoWriter.Close()
		channel.Close()
		return nil, err
	}

	sess.machine = countdown.NewMachine(questions, countdown.Durations{
		InitialSeconds:  s.cfg.Interview.InitialSeconds,
		QuestionSeconds: s.cfg.Interview.QuestionSeconds,
		AnswerSeconds:   s.cfg.Interview.AnswerSeconds,
	}, func(snap countdown.Snapshot) {
		if s.broadcaster != nil {
			s.broadcaster.BroadcastStatus(statusFromSnapshot(sess, snap))
		}
	})
	if err := sess.machine.Start(); err != nil {
		audioWriter.Close()
		videoWriter.Close()
		channel.Close()
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Interview.MaxSessionSeconds)*time.Second)
	sess.cancel = cancel

	sess.wg.Add(2)
	go s.videoLoop(sess, videoWriter)
	go s.audioLoop(sess, audioWriter)
	go sess.machine.Run(runCtx)
	go func() {
		<-sess.machine.Done()
		s.finish(sess)
	}()

	s.active = sess

	if s.eventPublisher != nil {
		evt := events.NewInterviewStarted(sessionId, req.SubjectId, req.SubmissionId, req.RoundNumber)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RecordingService", "Failed to publish start event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("RecordingService", "Recording session started", map[string]interface{}{
		"session_id":   sessionId,
		"interview_id": interview.Id.String(),
		"questions":    len(questions),
	})

	return &dto.StartInterviewResponse{
		SessionId:   sessionId,
		InterviewId: interview.Id,
		VideoFile:   sess.videoFile,
		AudioFile:   sess.audioFile,
		Questions:   questions,
	}, nil
}

func (s *recordingService) resolveQuestions(ctx context.Context, req *dto.StartInterviewRequest) ([]string, error) {
	if len(req.Questions) > 0 {
		return req.Questions, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.QuestionRepository().FindAll(ctx,
		specification.BySubmissionID{SubmissionID: req.SubmissionId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if len(stored) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]string, len(stored))
	for i, q := range stored {
		questions[i] = q.Content
	}
	return questions, nil
}

// videoLoop mirrors and writes frames until the stop flag is raised or the
// source dries up.
func (s *recordingService) videoLoop(sess *session, writer media.FrameSink) {
	defer sess.wg.Done()
	defer func() {
		if err := writer.Close(); err != nil {
			s.logger.Warn("RecordingService", "Video writer close failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	for !sess.stopFlag.Load() {
		frame, err := sess.channel.Video.ReadFrame()
		if err != nil {
			return
		}
		frame.Mirror()
		if err := writer.WriteFrame(frame); err != nil {
			s.logger.Error("RecordingService", "Video write failed", map[string]interface{}{"error": err.Error()})
			return
		}
	}
}

// audioLoop streams PCM into the wav file, then transcodes it to mp3 once
// the loop ends. A hard ceiling protects against a missed stop signal.
func (s *recordingService) audioLoop(sess *session, writer media.SampleSink) {
	defer sess.wg.Done()

	deadline := time.Now().Add(time.Duration(s.cfg.Interview.AudioCeilingSeconds) * time.Second)
	for !sess.stopFlag.Load() && time.Now().Before(deadline) {
		chunk, err := sess.channel.Audio.ReadChunk()
		if err != nil {
			break
		}
		if err := writer.WriteChunk(chunk); err != nil {
			s.logger.Error("RecordingService", "Audio write failed", map[string]interface{}{"error": err.Error()})
			break
		}
	}

	if err := writer.Close(); err != nil {
		s.logger.Warn("RecordingService", "Audio writer close failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.mediaFactory.TranscodeToMP3(sess.wavPath, sess.mp3Path); err != nil {
		s.logger.Error("RecordingService", "Audio transcode failed", map[string]interface{}{"error": err.Error()})
	}
}

// finish tears a session down exactly once: raise the stop flag, force the
// countdown to FINISHED, unblock device reads, join the writers, persist the
// artifacts and queue the analysis job.
func (s *recordingService) finish(sess *session) {
	sess.finishOnce.Do(func() {
		sess.stopFlag.Store(true)
		sess.machine.Stop()
		sess.channel.Close()

		joined := make(chan struct{})
		go func() {
			sess.wg.Wait()
			close(joined)
		}()
		select {
		case <-joined:
		case <-time.After(time.Duration(s.cfg.Interview.StopJoinSeconds) * time.Second):
			s.logger.Warn("RecordingService", "Writer goroutines did not join in time", map[string]interface{}{"session_id": sess.id})
		}
		if sess.cancel != nil {
			sess.cancel()
		}

		ctx := context.Background()
		s.persistArtifacts(ctx, sess)
		s.queueAnalysis(ctx, sess)

		if s.eventPublisher != nil {
			evt := events.NewInterviewFinished(sess.id, sess.videoFile, sess.audioFile)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.logger.Warn("RecordingService", "Failed to publish finish event", map[string]interface{}{"error": err.Error()})
			}
		}
		if s.broadcaster != nil {
			s.broadcaster.BroadcastStatus(statusFromSnapshot(sess, sess.machine.Snapshot()))
		}

		s.mu.Lock()
		if s.active == sess {
			s.active = nil
		}
		s.mu.Unlock()

		s.logger.Info("RecordingService", "Recording session finished", map[string]interface{}{"session_id": sess.id})
	})
}

func (s *recordingService) persistArtifacts(ctx context.Context, sess *session) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	video := &entity.MediaArtifact{
		InterviewId: sess.interviewId,
		Kind:        entity.ArtifactVideo,
		FileName:    sess.videoFile,
		Width:       s.cfg.Capture.FrameWidth,
		Height:      s.cfg.Capture.FrameHeight,
		FrameRate:   s.cfg.Capture.FrameRate,
	}
	audio := &entity.MediaArtifact{
		InterviewId: sess.interviewId,
		Kind:        entity.ArtifactAudio,
		FileName:    sess.audioFile,
		SampleRate:  s.cfg.Capture.SampleRate,
		Channels:    s.cfg.Capture.Channels,
	}

	if err := uow.MediaArtifactRepository().Create(ctx, video); err != nil {
		s.logger.Error("RecordingService", "Failed to persist video artifact", map[string]interface{}{"error": err.Error()})
	}
	if err := uow.MediaArtifactRepository().Create(ctx, audio); err != nil {
		s.logger.Error("RecordingService", "Failed to persist audio artifact", map[string]interface{}{"error": err.Error()})
	}
}

func (s *recordingService) queueAnalysis(ctx context.Context, sess *session) {
	msg := dto.AnalyzeVideoMessage{
		InterviewId: sess.interviewId.String(),
		SessionId:   sess.id,
		VideoPath:   sess.videoPath,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("RecordingService", "Failed to marshal analyze message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error("RecordingService", "Failed to queue analysis job", map[string]interface{}{"error": err.Error()})
	}
}

// Stop ends the active session. A second Stop reports that nothing is
// running.
func (s *recordingService) Stop(ctx context.Context) (*dto.StopInterviewResponse, error) {
	s.mu.Lock()
	sess := s.active
	s.mu.Unlock()

	if sess == nil {
		return nil, ErrNoActiveSession
	}

	s.finish(sess)

	return &dto.StopInterviewResponse{
		SessionId: sess.id,
		VideoFile: sess.videoFile,
		AudioFile: sess.audioFile,
	}, nil
}

// Status reads the countdown snapshot without blocking the recording path.
func (s *recordingService) Status(ctx context.Context) (*dto.SessionStatusResponse, error) {
	s.mu.Lock()
	sess := s.active
	s.mu.Unlock()

	if sess == nil {
		return nil, ErrNoActiveSession
	}

	status := statusFromSnapshot(sess, sess.machine.Snapshot())
	return &status, nil
}

func (s *recordingService) ListArtifacts(ctx context.Context, interviewId uuid.UUID) (*dto.ListArtifactsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	artifacts, err := uow.MediaArtifactRepository().FindAll(ctx,
		specification.ByInterviewID{InterviewID: interviewId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	res := &dto.ListArtifactsResponse{InterviewId: interviewId}
	for _, a := range artifacts {
		res.Artifacts = append(res.Artifacts, artifactToDto(a))
	}
	return res, nil
}

func (s *recordingService) ListVideos(ctx context.Context) ([]dto.ArtifactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	artifacts, err := uow.MediaArtifactRepository().FindAll(ctx,
		specification.ByKind{Kind: string(entity.ArtifactVideo)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	res := make([]dto.ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		res = append(res, artifactToDto(a))
	}
	return res, nil
}

func artifactToDto(a *entity.MediaArtifact) dto.ArtifactResponse {
	return dto.ArtifactResponse{
		Id:        a.Id,
		Kind:      string(a.Kind),
		FileName:  a.FileName,
		CreatedAt: a.CreatedAt,
	}
}

func statusFromSnapshot(sess *session, snap countdown.Snapshot) dto.SessionStatusResponse {
	status := dto.SessionStatusResponse{
		SessionId:        sess.id,
		Stage:            string(snap.Stage),
		RemainingSeconds: snap.RemainingSeconds,
		QuestionIndex:    snap.QuestionIndex,
		CurrentQuestion:  snap.CurrentQuestion,
		Finished:         snap.Finished,
	}
	if snap.Finished {
		status.VideoFile = sess.videoFile
		status.AudioFile = sess.audioFile
	}
	return status
}
