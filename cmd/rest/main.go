package main

import (
	"context"
	"log"

	"mock-interview-be/internal/bootstrap"
	"mock-interview-be/internal/config"
	"mock-interview-be/internal/server"
	"mock-interview-be/internal/tracer"
	"mock-interview-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	log.Println("Background: Starting Consumer Service...")
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start consumer service: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
