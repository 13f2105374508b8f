package service

import (
	"context"
	"fmt"

	"github.com/neetabhyas/content-pipeline/internal/config"
	"github.com/neetabhyas/content-pipeline/internal/content"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/rs/zerolog"
)

// ChapterStore is the chapter persistence capability the service needs.
type ChapterStore interface {
	Upsert(ctx context.Context, c *model.ChapterContent) error
}

// CacheInvalidator drops stale cache entries after writes. A nil
// invalidator disables invalidation (e.g. local runs without Redis).
type CacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// SeedResult summarizes one chapter seeding run.
type SeedResult struct {
	Seeded   int
	Chapters []string
}

// ChapterService normalizes and upserts chapter content payloads.
type ChapterService struct {
	chapters ChapterStore
	cache    CacheInvalidator
	log      zerolog.Logger
}

// NewChapterService creates a new ChapterService. cache may be nil.
func NewChapterService(chapters ChapterStore, cache CacheInvalidator, log zerolog.Logger) *ChapterService {
	return &ChapterService{
		chapters: chapters,
		cache:    cache,
		log:      log.With().Str("component", "chapter_service").Logger(),
	}
}

// Seed normalizes and upserts each payload in order. A validation or
// store error aborts the run; chapters already written stay written,
// which is safe because every upsert is idempotent.
func (s *ChapterService) Seed(ctx context.Context, payloads []content.ChapterPayload) (*SeedResult, error) {
	result := &SeedResult{}

	for _, p := range payloads {
		rec, err := content.Normalize(p)
		if err != nil {
			return result, err
		}

		if err := s.chapters.Upsert(ctx, &rec); err != nil {
			return result, fmt.Errorf("upsert chapter %s/%s #%d: %w",
				rec.Subject, rec.ClassLevel, rec.ChapterNumber, err)
		}

		s.invalidate(ctx, rec)

		result.Seeded++
		result.Chapters = append(result.Chapters,
			fmt.Sprintf("%s class %s ch.%d: %s", rec.Subject, rec.ClassLevel, rec.ChapterNumber, rec.ChapterTitle))

		s.log.Info().
			Str("subject", rec.Subject).
			Str("class_level", rec.ClassLevel).
			Int("chapter_number", rec.ChapterNumber).
			Int("id", rec.ID).
			Msg("Chapter upserted")
	}

	return result, nil
}

// SeedFromDir loads every chapter payload file in dir and seeds them.
func (s *ChapterService) SeedFromDir(ctx context.Context, dir string) (*SeedResult, error) {
	payloads, err := content.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return s.Seed(ctx, payloads)
}

// invalidate drops the serving cache for a chapter. Failures are logged
// and swallowed: stale cache entries expire on their own and must not
// fail an otherwise committed seed run.
func (s *ChapterService) invalidate(ctx context.Context, rec model.ChapterContent) {
	if s.cache == nil {
		return
	}
	keys := []string{
		config.CacheKey.ChapterContentKey(rec.Subject, rec.ClassLevel, rec.ChapterNumber),
		config.CacheKey.SubjectChapterListKey(rec.Subject, rec.ClassLevel),
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn().Err(err).
			Strs("keys", keys).
			Msg("Cache invalidation failed, entries will expire naturally")
	}
}
