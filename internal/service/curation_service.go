package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/neetabhyas/content-pipeline/internal/config"
	"github.com/neetabhyas/content-pipeline/internal/curation"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/rs/zerolog"
)

// TopicStore lists syllabus topics.
type TopicStore interface {
	List(ctx context.Context, subjects []string) ([]model.ContentTopic, error)
}

// QuestionStore is the question persistence capability the curator needs.
type QuestionStore interface {
	ListByTopic(ctx context.Context, topicID int) ([]model.Question, error)
	ListPlaceholders(ctx context.Context, topicID int) ([]model.Question, error)
	UpdateContent(ctx context.Context, q *model.Question) error
	SetCurationStatus(ctx context.Context, questionID int, status model.CurationStatus) error
}

// TopicResult is the per-topic outcome of a curation run.
type TopicResult struct {
	TopicID   int
	TopicName string
	Bucket    string
	Updated   int
	Remaining int
}

// Report summarizes one curation run.
type Report struct {
	RunID           uuid.UUID
	TopicsProcessed int
	TopicsSkipped   int
	TotalUpdated    int
	PerTopic        []TopicResult
}

// BackfillReport summarizes one curation-status backfill run.
type BackfillReport struct {
	RunID        uuid.UUID
	Examined     int
	Placeholders int
	Curated      int
}

// CurationService replaces placeholder questions with curated templates,
// topic by topic. Each row update is independent and idempotent; a
// mid-run store error aborts the run without rolling back earlier rows.
type CurationService struct {
	topics       TopicStore
	questions    QuestionStore
	cache        CacheInvalidator
	repeatFactor int
	rng          *rand.Rand
	selectBucket func(subject, topicName string) curation.Bucket
	log          zerolog.Logger
}

// NewCurationService creates a new CurationService. cache may be nil.
// repeatFactor caps template reuse per topic; seed fixes the difficulty
// generator (zero falls back to the clock, giving non-reproducible
// difficulties).
func NewCurationService(topics TopicStore, questions QuestionStore, cache CacheInvalidator, repeatFactor int, seed int64, log zerolog.Logger) *CurationService {
	if repeatFactor < 1 {
		repeatFactor = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &CurationService{
		topics:       topics,
		questions:    questions,
		cache:        cache,
		repeatFactor: repeatFactor,
		rng:          rand.New(rand.NewSource(seed)),
		selectBucket: curation.SelectBucket,
		log:          log.With().Str("component", "curation_service").Logger(),
	}
}

// Run curates every topic of the given subjects (nil means all).
// Within one topic, the i-th placeholder receives templates[i mod T],
// and at most T*repeatFactor placeholders are updated so no template is
// over-duplicated. Topics without placeholders are skipped, not errors.
func (s *CurationService) Run(ctx context.Context, subjects []string) (*Report, error) {
	report := &Report{RunID: uuid.New()}
	log := s.log.With().Str("run_id", report.RunID.String()).Logger()

	topics, err := s.topics.List(ctx, subjects)
	if err != nil {
		return report, fmt.Errorf("list topics: %w", err)
	}
	if len(subjects) > 0 && len(topics) == 0 {
		log.Warn().Strs("subjects", subjects).Msg("No topics matched requested subjects, nothing to curate")
		return report, nil
	}
	log.Info().Int("topics", len(topics)).Strs("subjects", subjects).Msg("Curation run started")

	for _, topic := range topics {
		placeholders, err := s.questions.ListPlaceholders(ctx, topic.ID)
		if err != nil {
			return report, fmt.Errorf("list placeholders for topic %d: %w", topic.ID, err)
		}
		if len(placeholders) == 0 {
			report.TopicsSkipped++
			continue
		}

		bucket := s.selectBucket(topic.Subject, topic.TopicName)
		updateCount := min(len(placeholders), len(bucket.Templates)*s.repeatFactor)

		for i := 0; i < updateCount; i++ {
			tmpl := bucket.Templates[i%len(bucket.Templates)]
			q := placeholders[i]

			applyTemplate(&q, tmpl)
			q.DifficultyLevel = s.rng.Intn(3) + 1

			if err := s.questions.UpdateContent(ctx, &q); err != nil {
				return report, fmt.Errorf("update question %d: %w", q.ID, err)
			}
			report.TotalUpdated++
		}

		s.invalidate(ctx, log, topic.ID)

		report.TopicsProcessed++
		report.PerTopic = append(report.PerTopic, TopicResult{
			TopicID:   topic.ID,
			TopicName: topic.TopicName,
			Bucket:    bucket.Name,
			Updated:   updateCount,
			Remaining: len(placeholders) - updateCount,
		})

		log.Info().
			Str("topic", topic.TopicName).
			Str("bucket", bucket.Name).
			Int("updated", updateCount).
			Int("remaining", len(placeholders)-updateCount).
			Msg("Topic curated")
	}

	return report, nil
}

// Backfill classifies every question of the given subjects by the legacy
// text heuristics and writes the curation_status flag accordingly. It is
// a one-time migration aid for rows created before the flag existed.
func (s *CurationService) Backfill(ctx context.Context, subjects []string) (*BackfillReport, error) {
	report := &BackfillReport{RunID: uuid.New()}

	topics, err := s.topics.List(ctx, subjects)
	if err != nil {
		return report, fmt.Errorf("list topics: %w", err)
	}
	if len(subjects) > 0 && len(topics) == 0 {
		s.log.Warn().Strs("subjects", subjects).Msg("No topics matched requested subjects, nothing to backfill")
		return report, nil
	}

	for _, topic := range topics {
		questions, err := s.questions.ListByTopic(ctx, topic.ID)
		if err != nil {
			return report, fmt.Errorf("list questions for topic %d: %w", topic.ID, err)
		}

		for _, q := range questions {
			report.Examined++
			status := model.CurationCurated
			if curation.IsPlaceholderText(q.QuestionText) {
				status = model.CurationPlaceholder
			}
			if status == q.CurationStatus {
				continue
			}
			if err := s.questions.SetCurationStatus(ctx, q.ID, status); err != nil {
				return report, fmt.Errorf("set curation status for question %d: %w", q.ID, err)
			}
			if status == model.CurationPlaceholder {
				report.Placeholders++
			} else {
				report.Curated++
			}
		}
	}

	return report, nil
}

// invalidate drops the serving cache for a topic's question set after
// its rows change. Failures are logged and swallowed: stale entries
// expire on their own and must not fail committed updates.
func (s *CurationService) invalidate(ctx context.Context, log zerolog.Logger, topicID int) {
	if s.cache == nil {
		return
	}
	key := config.CacheKey.TopicQuestionsKey(topicID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		log.Warn().Err(err).
			Str("key", key).
			Msg("Cache invalidation failed, entry will expire naturally")
	}
}

// applyTemplate maps template fields onto an existing question row,
// preserving its id and topic linkage. Options become lettered entries
// in template order.
func applyTemplate(q *model.Question, tmpl curation.Template) {
	options := make([]model.Option, len(tmpl.Options))
	for idx, text := range tmpl.Options {
		options[idx] = model.Option{
			ID:   string(rune('A' + idx)),
			Text: text,
		}
	}

	steps := tmpl.Steps
	if len(steps) == 0 {
		steps = []string{tmpl.Explanation}
	}

	q.QuestionText = tmpl.Text
	q.Options = options
	q.CorrectAnswer = tmpl.CorrectAnswer
	q.SolutionDetail = tmpl.Explanation
	q.SolutionSteps = steps
	q.CurationStatus = model.CurationCurated
}
