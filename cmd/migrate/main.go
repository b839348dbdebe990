package main

import (
	"flag"
	"log"

	"forceskill/internal/config"
	"forceskill/internal/database"
	"forceskill/internal/logger"
)

func main() {
	sourcePath := flag.String("path", "file://migrations", "migration source path")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations(*sourcePath, cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied")
}
