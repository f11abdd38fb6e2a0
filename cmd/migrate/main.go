package main

import (
	"log"
	"os"

	"mock-interview-be/internal/model"
	"mock-interview-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (gen_random_uuid needs pgcrypto)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate for 6 Tables...")

	models := []interface{}{
		&model.Interview{},
		&model.MediaArtifact{},
		&model.EmotionMetric{},
		&model.PostureMetric{},
		&model.GazeMetric{},
		&model.Question{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Seed common warm-up questions once. Submission-specific questions
	// arrive through the API, common ones apply to every interview round.
	log.Println("Step 3: Seeding common questions...")

	var commonCount int64
	if err := db.Model(&model.Question{}).Where("is_common = ?", true).Count(&commonCount).Error; err != nil {
		log.Printf("Warn: Failed to count common questions: %v", err)
	}

	if commonCount == 0 {
		commonQuestions := []model.Question{
			{SubmissionId: "common", Position: 1, Content: "Please introduce yourself.", IsCommon: true},
			{SubmissionId: "common", Position: 2, Content: "Why are you interested in this position?", IsCommon: true},
			{SubmissionId: "common", Position: 3, Content: "Describe a challenge you faced and how you handled it.", IsCommon: true},
		}
		if err := db.Create(&commonQuestions).Error; err != nil {
			log.Printf("Warn: Failed to seed common questions: %v", err)
		} else {
			log.Printf("Seeded %d common questions", len(commonQuestions))
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
