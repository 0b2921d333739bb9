package main

import (
	"context"
	"os"

	"character-chat-be/internal/config"
	"character-chat-be/internal/repository/unitofwork"
	"character-chat-be/internal/seeder"
	"character-chat-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.LogSQL)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding system characters...")
	result, err := seeder.SeedSystemCharacters(context.Background(), unitofwork.NewRepositoryFactory(db), seeder.DefaultSystemCharacters)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	for _, slug := range result.Created {
		color.Green("  + %s", slug)
	}
	for _, slug := range result.Skipped {
		color.Yellow("  = %s (already present)", slug)
	}
	color.Green("Done: %d created, %d skipped", len(result.Created), len(result.Skipped))
}
