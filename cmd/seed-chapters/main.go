package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neetabhyas/content-pipeline/internal/config"
	"github.com/neetabhyas/content-pipeline/internal/database"
	"github.com/neetabhyas/content-pipeline/internal/logger"
	"github.com/neetabhyas/content-pipeline/internal/repository"
	"github.com/neetabhyas/content-pipeline/internal/service"
)

func main() {
	var contentDir string
	flag.StringVar(&contentDir, "dir", "", "Directory of chapter payload YAML files (default: CONTENT_DIR)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if contentDir == "" {
		contentDir = cfg.ContentDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Redis is optional for seeding: without it the serving cache just
	// expires on its own instead of being dropped eagerly.
	var cache service.CacheInvalidator
	if rdb, err := database.NewRedisClient(ctx, cfg, log); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, skipping cache invalidation")
	} else {
		defer rdb.Close()
		cache = database.NewRedisInvalidator(rdb)
	}

	chapterRepo := repository.NewChapterRepository(pool)
	chapterService := service.NewChapterService(chapterRepo, cache, log)

	fmt.Printf("=== Seeding chapters from %s ===\n", contentDir)

	result, err := chapterService.SeedFromDir(ctx, contentDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Chapter seeding failed")
	}

	for _, c := range result.Chapters {
		fmt.Printf("Seeded %s\n", c)
	}
	fmt.Printf("\nSeed completed! Upserted %d chapters.\n", result.Seeded)
}
