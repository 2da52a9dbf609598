package main

import (
	"context"
	"log"
	"os"

	"eventbot/internal/adapters/discord"
	"eventbot/internal/config"
	"eventbot/internal/infrastructure/database"
	"eventbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Failed to apply migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	eventRepo := database.NewEventRepository(pool)
	interestRepo := database.NewInterestRepository(pool)
	translator := i18n.NewTranslator(cfg.Locale)

	bot, err := discord.NewBot(cfg, eventRepo, interestRepo, translator)
	if err != nil {
		log.Printf("❌ Failed to create the bot: %v", err)
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
