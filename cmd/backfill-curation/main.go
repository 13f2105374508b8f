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

// One-time backfill of questions.curation_status: rows whose text still
// matches the legacy generator phrasings are flagged placeholder,
// everything else curated. Run once after the column migration; ongoing
// runs of curate-questions rely on the flag alone.
func main() {
	var subjectsFlag string
	flag.StringVar(&subjectsFlag, "subjects", "", "Comma-separated subjects to backfill (default: all)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	subjects := config.ParseSubjects(subjectsFlag)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	topicRepo := repository.NewTopicRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	// No cache wiring: the backfill only flips the curation flag, which
	// the serving payloads do not include.
	curationService := service.NewCurationService(topicRepo, questionRepo, nil, cfg.RepeatFactor, cfg.CurationSeed, log)

	fmt.Println("=== Backfilling question curation status ===")

	report, err := curationService.Backfill(ctx, subjects)
	if err != nil {
		log.Fatal().Err(err).Msg("Backfill failed")
	}

	fmt.Printf("\nBackfill completed (run %s):\n", report.RunID)
	fmt.Printf("  Questions examined: %d\n", report.Examined)
	fmt.Printf("  Flagged placeholder: %d\n", report.Placeholders)
	fmt.Printf("  Flagged curated: %d\n", report.Curated)
}
