package bootstrap

import (
	"context"
	"log"
	"time"

	"mock-interview-be/internal/config"
	"mock-interview-be/internal/controller"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/repository/memory"
	"mock-interview-be/internal/repository/unitofwork"
	"mock-interview-be/internal/service"
	"mock-interview-be/internal/websocket"
	"mock-interview-be/pkg/analysis"
	"mock-interview-be/pkg/capture"
	"mock-interview-be/pkg/inference"
	"mock-interview-be/pkg/media"

	pktNats "mock-interview-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InterviewController controller.IInterviewController
	AnalysisController  controller.IAnalysisController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

// videoReaderFactory opens recorded videos through the ffmpeg decoder so the
// analysis pipeline stays decoupled from process management.
type videoReaderFactory struct {
	ffmpegBin  string
	ffprobeBin string
}

func (f *videoReaderFactory) OpenVideo(path string) (analysis.FrameReader, error) {
	reader, err := media.NewVideoReader(f.ffmpegBin, f.ffprobeBin, path)
	if err != nil {
		return nil, err
	}
	return reader, nil
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS: optional, the service degrades to local-only events without it.
	var eventPublisher service.IEventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/session.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Media & Inference
	devices := capture.NewFFmpegProvider(cfg.Media.FFmpegBin)
	mediaFactory := media.NewFFmpegFactory(cfg.Media.FFmpegBin)
	readers := &videoReaderFactory{
		ffmpegBin:  cfg.Media.FFmpegBin,
		ffprobeBin: cfg.Media.FFprobeBin,
	}

	inferenceClient := inference.NewClient(
		cfg.Inference.BaseURL,
		time.Duration(cfg.Inference.TimeoutSeconds)*time.Second,
	)
	pipeline := analysis.NewPipeline(readers, inferenceClient, inferenceClient, inferenceClient)

	resultRepo := memory.NewResultRepository()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.AnalyzeTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AnalyzeTopic,
		pipeline,
		uowFactory,
		resultRepo,
		eventPublisher,
		sysLogger,
	)

	recordingService := service.NewRecordingService(
		cfg,
		devices,
		mediaFactory,
		uowFactory,
		publisherService,
		eventPublisher,
		wsHub,
		sysLogger,
	)
	analysisService := service.NewAnalysisService(uowFactory, resultRepo, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		InterviewController: controller.NewInterviewController(recordingService, wsHub),
		AnalysisController:  controller.NewAnalysisController(analysisService),
		ConsumerService:     consumerService,
		WebSocketHub:        wsHub,
	}
}
