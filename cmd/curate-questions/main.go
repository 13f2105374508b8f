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
	var subjectsFlag string
	var seed int64
	flag.StringVar(&subjectsFlag, "subjects", "", "Comma-separated subjects to curate (default: all)")
	flag.Int64Var(&seed, "seed", 0, "Difficulty RNG seed (default: CURATION_SEED)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if seed == 0 {
		seed = cfg.CurationSeed
	}
	subjects := config.ParseSubjects(subjectsFlag)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Redis is optional for curation: without it the serving cache just
	// expires on its own instead of being dropped eagerly.
	var cache service.CacheInvalidator
	if rdb, err := database.NewRedisClient(ctx, cfg, log); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, skipping cache invalidation")
	} else {
		defer rdb.Close()
		cache = database.NewRedisInvalidator(rdb)
	}

	topicRepo := repository.NewTopicRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	curationService := service.NewCurationService(topicRepo, questionRepo, cache, cfg.RepeatFactor, seed, log)

	fmt.Println("=== Curating placeholder questions ===")

	report, err := curationService.Run(ctx, subjects)
	if err != nil {
		log.Fatal().Err(err).
			Int("updated_before_failure", report.TotalUpdated).
			Msg("Curation run failed")
	}

	for _, t := range report.PerTopic {
		fmt.Printf("%s [%s]: %d questions updated", t.TopicName, t.Bucket, t.Updated)
		if t.Remaining > 0 {
			fmt.Printf(" (%d placeholders left for next bucket refresh)", t.Remaining)
		}
		fmt.Println()
	}

	fmt.Printf("\nSummary (run %s):\n", report.RunID)
	fmt.Printf("  Topics curated: %d\n", report.TopicsProcessed)
	fmt.Printf("  Topics skipped: %d\n", report.TopicsSkipped)
	fmt.Printf("  Total questions updated: %d\n", report.TotalUpdated)
}
