// @title SkillPath API
// @version 1.0
// @description Learning roadmaps, assessments and progress tracking.
// @BasePath /api

package main

import (
	"flag"
	"log"

	"skillpath_backend/internal/app"
	"skillpath_backend/internal/config"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
