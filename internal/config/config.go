package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Media     MediaConfig
	Interview InterviewConfig
	Capture   CaptureConfig
	Inference InferenceConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	AnalyzeTopic       string
}

type DatabaseConfig struct {
	Connection string
}

type MediaConfig struct {
	BaseDir    string // video files land in <BaseDir>/video, audio in <BaseDir>/audio
	FFmpegBin  string
	FFprobeBin string
}

type InterviewConfig struct {
	InitialSeconds      int
	QuestionSeconds     int
	AnswerSeconds       int
	MaxSessionSeconds   int // wall-clock ceiling for a whole session
	AudioCeilingSeconds int // hard cap for the audio writer if the stop signal is missed
	StopJoinSeconds     int // bounded wait when joining writer goroutines
}

type CaptureConfig struct {
	CameraDevice string
	FrameWidth   int
	FrameHeight  int
	FrameRate    int
	AudioDevice  string
	SampleRate   int
	Channels     int
	ChunkFrames  int
}

type InferenceConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			AnalyzeTopic:       getEnv("ANALYZE_VIDEO_TOPIC_NAME", "ANALYZE_INTERVIEW_VIDEO"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Media: MediaConfig{
			BaseDir:    getEnv("MEDIA_BASE_DIR", "media"),
			FFmpegBin:  getEnv("FFMPEG_BIN", "ffmpeg"),
			FFprobeBin: getEnv("FFPROBE_BIN", "ffprobe"),
		},
		Interview: InterviewConfig{
			InitialSeconds:      getEnvAsInt("INTERVIEW_INITIAL_SECONDS", 3),
			QuestionSeconds:     getEnvAsInt("INTERVIEW_QUESTION_SECONDS", 20),
			AnswerSeconds:       getEnvAsInt("INTERVIEW_ANSWER_SECONDS", 40),
			MaxSessionSeconds:   getEnvAsInt("INTERVIEW_MAX_SESSION_SECONDS", 600),
			AudioCeilingSeconds: getEnvAsInt("INTERVIEW_AUDIO_CEILING_SECONDS", 600),
			StopJoinSeconds:     getEnvAsInt("INTERVIEW_STOP_JOIN_SECONDS", 5),
		},
		Capture: CaptureConfig{
			CameraDevice: getEnv("CAPTURE_CAMERA_DEVICE", "/dev/video0"),
			FrameWidth:   getEnvAsInt("CAPTURE_FRAME_WIDTH", 640),
			FrameHeight:  getEnvAsInt("CAPTURE_FRAME_HEIGHT", 480),
			FrameRate:    getEnvAsInt("CAPTURE_FRAME_RATE", 20),
			AudioDevice:  getEnv("CAPTURE_AUDIO_DEVICE", "default"),
			SampleRate:   getEnvAsInt("CAPTURE_SAMPLE_RATE", 44100),
			Channels:     getEnvAsInt("CAPTURE_CHANNELS", 1),
			ChunkFrames:  getEnvAsInt("CAPTURE_CHUNK_FRAMES", 1024),
		},
		Inference: InferenceConfig{
			BaseURL:        getEnv("INFERENCE_BASE_URL", "http://localhost:8500"),
			TimeoutSeconds: getEnvAsInt("INFERENCE_TIMEOUT_SECONDS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
