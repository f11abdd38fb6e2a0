package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"mock-interview-be/internal/config"
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/repository/contract"
	"mock-interview-be/internal/repository/specification"
	"mock-interview-be/internal/repository/unitofwork"
	"mock-interview-be/pkg/capture"
	"mock-interview-be/pkg/media"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// In-memory unit of work shared across the fake factory so assertions see
// everything the service wrote.

type fakeUow struct {
	mu         sync.Mutex
	interviews []*entity.Interview
	deleted    []uuid.UUID
	artifacts  []*entity.MediaArtifact
	questions  []*entity.Question
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) InterviewRepository() contract.InterviewRepository         { return &fakeInterviewRepo{u} }
func (u *fakeUow) QuestionRepository() contract.QuestionRepository           { return &fakeQuestionRepo{u} }
func (u *fakeUow) MediaArtifactRepository() contract.MediaArtifactRepository { return &fakeArtifactRepo{u} }
func (u *fakeUow) MetricRepository() contract.MetricRepository               { return nil }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeInterviewRepo struct{ u *fakeUow }

func (r *fakeInterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	interview.Id = uuid.New()
	interview.CreatedAt = time.Now()
	r.u.interviews = append(r.u.interviews, interview)
	return nil
}

func (r *fakeInterviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	r.u.deleted = append(r.u.deleted, id)
	return nil
}

func (r *fakeInterviewRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeQuestionRepo struct{ u *fakeUow }

func (r *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error { return nil }

func (r *fakeQuestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return r.u.questions, nil
}

func (r *fakeQuestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.u.questions)), nil
}

type fakeArtifactRepo struct{ u *fakeUow }

func (r *fakeArtifactRepo) Create(ctx context.Context, artifact *entity.MediaArtifact) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	artifact.Id = uuid.New()
	r.u.artifacts = append(r.u.artifacts, artifact)
	return nil
}

func (r *fakeArtifactRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaArtifact, error) {
	return nil, nil
}

func (r *fakeArtifactRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaArtifact, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return r.u.artifacts, nil
}

// Media factory that writes nowhere.

type nullSink struct{}

func (nullSink) WriteFrame(frame *capture.Frame) error { return nil }
func (nullSink) WriteChunk(chunk []byte) error         { return nil }
func (nullSink) Close() error                          { return nil }

type fakeMediaFactory struct {
	mu         sync.Mutex
	videoPaths []string
	audioPaths []string
	transcoded []string
}

func (f *fakeMediaFactory) NewVideoWriter(path string, width, height, frameRate int) (media.FrameSink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videoPaths = append(f.videoPaths, path)
	return nullSink{}, nil
}

func (f *fakeMediaFactory) NewAudioWriter(path string, sampleRate, channels int) (media.SampleSink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audioPaths = append(f.audioPaths, path)
	return nullSink{}, nil
}

func (f *fakeMediaFactory) TranscodeToMP3(wavPath, mp3Path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcoded = append(f.transcoded, mp3Path)
	return nil
}

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturingPublisher) published() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.payloads...)
}

func testConfig() *config.Config {
	return &config.Config{
		Media: config.MediaConfig{BaseDir: "media"},
		Interview: config.InterviewConfig{
			InitialSeconds:      3,
			QuestionSeconds:     20,
			AnswerSeconds:       40,
			MaxSessionSeconds:   600,
			AudioCeilingSeconds: 600,
			StopJoinSeconds:     2,
		},
		Capture: config.CaptureConfig{
			CameraDevice: "synthetic",
			FrameWidth:   8,
			FrameHeight:  6,
			FrameRate:    10,
			AudioDevice:  "synthetic",
			SampleRate:   44100,
			Channels:     1,
			ChunkFrames:  64,
		},
	}
}

func newTestService(t *testing.T, provider capture.DeviceProvider) (IRecordingService, *fakeUow, *fakeMediaFactory, *capturingPublisher) {
	t.Helper()
	uow := &fakeUow{}
	factory := &fakeMediaFactory{}
	publisher := &capturingPublisher{}
	svc := NewRecordingService(testConfig(), provider, factory, &fakeUowFactory{uow: uow}, publisher, nil, nil, nopLogger{})
	return svc, uow, factory, publisher
}

func TestStartProducesDeterministicFileNames(t *testing.T) {
	svc, uow, factory, _ := newTestService(t, capture.NewSyntheticProvider())

	res, err := svc.Start(context.Background(), &dto.StartInterviewRequest{
		SubjectId:    "subj-1",
		SubmissionId: "sub-9",
		RoundNumber:  2,
		Questions:    []string{"q1", "q2"},
	})
	require.NoError(t, err)
	defer svc.Stop(context.Background())

	expectedBase := fmt.Sprintf("subj-1_sub-9_2_%s", res.SessionId)
	assert.Equal(t, expectedBase+".mp4", res.VideoFile)
	assert.Equal(t, expectedBase+".mp3", res.AudioFile)

	require.Len(t, uow.interviews, 1)
	assert.Equal(t, "subj-1", uow.interviews[0].SubjectId)
	assert.Equal(t, res.InterviewId, uow.interviews[0].Id)

	require.Len(t, factory.videoPaths, 1)
	assert.Contains(t, factory.videoPaths[0], expectedBase+".mp4")
	require.Len(t, factory.audioPaths, 1)
	assert.Contains(t, factory.audioPaths[0], expectedBase+".wav")
}

func TestStartWhileActiveFails(t *testing.T) {
	svc, _, _, _ := newTestService(t, capture.NewSyntheticProvider())

	req := &dto.StartInterviewRequest{
		SubjectId:    "s",
		SubmissionId: "sub",
		RoundNumber:  1,
		Questions:    []string{"q"},
	}
	_, err := svc.Start(context.Background(), req)
	require.NoError(t, err)
	defer svc.Stop(context.Background())

	_, err = svc.Start(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyActive)
}

func TestStartDeviceUnavailableLeavesNoSession(t *testing.T) {
	provider := &capture.SyntheticProvider{FailCamera: true}
	svc, uow, _, _ := newTestService(t, provider)

	_, err := svc.Start(context.Background(), &dto.StartInterviewRequest{
		SubjectId:    "s",
		SubmissionId: "sub",
		RoundNumber:  1,
		Questions:    []string{"q"},
	})
	require.ErrorIs(t, err, capture.ErrDeviceUnavailable)

	// The pre-created interview row is removed again
	require.Len(t, uow.interviews, 1)
	require.Len(t, uow.deleted, 1)
	assert.Equal(t, uow.interviews[0].Id, uow.deleted[0])

	_, err = svc.Status(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStartWithoutQuestionsFails(t *testing.T) {
	svc, _, _, _ := newTestService(t, capture.NewSyntheticProvider())

	_, err := svc.Start(context.Background(), &dto.StartInterviewRequest{
		SubjectId:    "s",
		SubmissionId: "sub-without-questions",
		RoundNumber:  1,
	})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestStartFallsBackToStoredQuestions(t *testing.T) {
	uow := &fakeUow{questions: []*entity.Question{
		{Content: "stored q1", Position: 1},
		{Content: "stored q2", Position: 2},
	}}
	factory := &fakeMediaFactory{}
	svc := NewRecordingService(testConfig(), capture.NewSyntheticProvider(), factory, &fakeUowFactory{uow: uow}, &capturingPublisher{}, nil, nil, nopLogger{})

	res, err := svc.Start(context.Background(), &dto.StartInterviewRequest{
		SubjectId:    "s",
		SubmissionId: "sub",
		RoundNumber:  1,
	})
	require.NoError(t, err)
	defer svc.Stop(context.Background())

	assert.Equal(t, []string{"stored q1", "stored q2"}, res.Questions)
}

func TestStopFinalizesSession(t *testing.T) {
	svc, uow, factory, publisher := newTestService(t, capture.NewSyntheticProvider())

	started, err := svc.Start(context.Background(), &dto.StartInterviewRequest{
		SubjectId:    "s",
		SubmissionId: "sub",
		RoundNumber:  1,
		Questions:    []string{"q"},
	})
	require.NoError(t, err)

	stopped, err := svc.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, started.SessionId, stopped.SessionId)
	assert.Equal(t, started.VideoFile, stopped.VideoFile)

	// Both artifacts recorded
	uow.mu.Lock()
	kinds := map[entity.ArtifactKind]bool{}
	for _, a := range uow.artifacts {
		kinds[a.Kind] = true
	}
	uow.mu.Unlock()
	assert.True(t, kinds[entity.ArtifactVideo])
	assert.True(t, kinds[entity.ArtifactAudio])

	// The wav was transcoded and the analysis job queued
	factory.mu.Lock()
	transcodes := len(factory.transcoded)
	factory.mu.Unlock()
	assert.Equal(t, 1, transcodes)

	payloads := publisher.published()
	require.Len(t, payloads, 1)
	var msg dto.AnalyzeVideoMessage
	require.NoError(t, json.Unmarshal(payloads[0], &msg))
	assert.Equal(t, started.SessionId, msg.SessionId)
	assert.Equal(t, started.InterviewId.String(), msg.InterviewId)

	// Second stop: nothing is running anymore
	_, err = svc.Stop(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStatusReflectsCountdown(t *testing.T) {
	svc, _, _, _ := newTestService(t, capture.NewSyntheticProvider())

	_, err := svc.Start(context.Background(), &dto.StartInterviewRequest{
		SubjectId:    "s",
		SubmissionId: "sub",
		RoundNumber:  1,
		Questions:    []string{"q"},
	})
	require.NoError(t, err)
	defer svc.Stop(context.Background())

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INITIAL_COUNTDOWN", status.Stage)
	assert.False(t, status.Finished)
	assert.LessOrEqual(t, status.RemainingSeconds, 3)
}

func TestStatusWithoutSession(t *testing.T) {
	svc, _, _, _ := newTestService(t, capture.NewSyntheticProvider())
	_, err := svc.Status(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
