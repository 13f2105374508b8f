//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/neetabhyas/content-pipeline/internal/pipeline"
	"github.com/neetabhyas/content-pipeline/internal/repository"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("neet"),
		tcpostgres.WithUsername("neet"),
		tcpostgres.WithPassword("neet_secret"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	applyMigrations(t, pool)
	return pool
}

func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	entries, err := os.ReadDir("../../migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var ups []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	for _, name := range ups {
		sql, err := os.ReadFile(filepath.Join("../../migrations", name))
		if err != nil {
			t.Fatalf("read migration %s: %v", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			t.Fatalf("apply migration %s: %v", name, err)
		}
	}
}

func sampleChapter(title string) model.ChapterContent {
	return model.ChapterContent{
		Subject:               "Physics",
		ClassLevel:            "12",
		ChapterNumber:         7,
		ChapterTitle:          title,
		Introduction:          "AC circuits and resonance.",
		DetailedNotes:         "## AC\nRMS values and phasors.",
		KeyConcepts:           []model.KeyConcept{{Title: "RMS Value", Description: "Effective AC value", Formula: "V = V0/sqrt(2)"}},
		Formulas:              []string{"Z = sqrt(R^2 + (XL - XC)^2)"},
		LearningObjectives:    []string{"Analyze LCR circuits"},
		Prerequisites:         []string{"Electromagnetic induction"},
		ImportantTopics:       []string{"Resonance"},
		PhetSimulations:       []model.PhetSimulation{},
		ImportantFormulas:     []model.NamedFormula{},
		Mnemonics:             []model.Mnemonic{},
		VideoLinks:            []model.VideoLink{},
		RelatedChapters:       []model.RelatedChapter{},
		NCERTChapterRef:       "NCERT Class 12 Physics Chapter 7",
		DifficultyLevel:       4,
		EstimatedStudyMinutes: 360,
		Status:                model.ChapterStatusPublished,
		Visualizations:        []model.Visualization{},
	}
}

func TestChapterUpsert_InsertThenOverwrite(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewChapterRepository(pool)
	ctx := context.Background()

	first := sampleChapter("Alternating Current")
	if err := repo.Upsert(ctx, &first); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	if first.ID == 0 {
		t.Fatal("first Upsert() did not return a surrogate id")
	}

	second := sampleChapter("AC Circuits")
	if err := repo.Upsert(ctx, &second); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("surrogate id changed: %d -> %d", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", first.CreatedAt, second.CreatedAt)
	}

	stored, err := repo.GetByNaturalKey(ctx, "Physics", "12", 7)
	if err != nil {
		t.Fatalf("GetByNaturalKey() error = %v", err)
	}
	if stored.ChapterTitle != "AC Circuits" {
		t.Errorf("ChapterTitle = %q, want second call's value", stored.ChapterTitle)
	}

	n, err := repo.CountByNaturalKey(ctx, "Physics", "12", 7)
	if err != nil {
		t.Fatalf("CountByNaturalKey() error = %v", err)
	}
	if n != 1 {
		t.Errorf("rows for natural key = %d, want 1", n)
	}
}

func TestChapterGet_MissingKeyReturnsNotFound(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewChapterRepository(pool)

	_, err := repo.GetByNaturalKey(context.Background(), "Physics", "12", 99)
	if !errors.Is(err, pipeline.ErrNotFound) {
		t.Errorf("GetByNaturalKey() error = %v, want pipeline.ErrNotFound", err)
	}
}

func TestChapterUpsert_IdenticalPayloadIsIdempotent(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewChapterRepository(pool)
	ctx := context.Background()

	c := sampleChapter("Alternating Current")
	if err := repo.Upsert(ctx, &c); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	firstUpdated := c.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	again := sampleChapter("Alternating Current")
	if err := repo.Upsert(ctx, &again); err != nil {
		t.Fatalf("repeat Upsert() error = %v", err)
	}

	stored, err := repo.GetByNaturalKey(ctx, "Physics", "12", 7)
	if err != nil {
		t.Fatalf("GetByNaturalKey() error = %v", err)
	}
	if stored.ChapterTitle != "Alternating Current" || len(stored.Formulas) != 1 {
		t.Errorf("stored content drifted on identical re-upsert: %+v", stored)
	}
	if !stored.UpdatedAt.After(firstUpdated) {
		t.Errorf("updated_at not bumped: %v vs %v", stored.UpdatedAt, firstUpdated)
	}
}

func TestChapterUpsert_ConcurrentSameKeyOneRow(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewChapterRepository(pool)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := sampleChapter("Alternating Current")
			errs <- repo.Upsert(ctx, &c)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Upsert() error = %v", err)
		}
	}

	n, err := repo.CountByNaturalKey(ctx, "Physics", "12", 7)
	if err != nil {
		t.Fatalf("CountByNaturalKey() error = %v", err)
	}
	if n != 1 {
		t.Errorf("rows for natural key = %d, want 1 (atomic upsert)", n)
	}
}

func TestQuestionUpdateContent_PreservesIdentity(t *testing.T) {
	pool := setupPool(t)
	questions := repository.NewQuestionRepository(pool)
	ctx := context.Background()

	var topicID int
	err := pool.QueryRow(ctx,
		`INSERT INTO content_topics (subject, class_level, topic_name) VALUES ($1, $2, $3) RETURNING id`,
		"Botany", "11", "Plant Kingdom",
	).Scan(&topicID)
	if err != nil {
		t.Fatalf("insert topic: %v", err)
	}

	var questionID int
	err = pool.QueryRow(ctx,
		`INSERT INTO questions (topic_id, question_text, options, correct_answer, difficulty_level)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		topicID,
		"Which of the following statements is correct about algae?",
		`[{"id":"A","text":"one"},{"id":"B","text":"two"}]`,
		"A", 1,
	).Scan(&questionID)
	if err != nil {
		t.Fatalf("insert question: %v", err)
	}

	updated := model.Question{
		ID:              questionID,
		TopicID:         topicID,
		QuestionText:    "Photosynthesis occurs in which organelle?",
		Options:         []model.Option{{ID: "A", Text: "Mitochondria"}, {ID: "B", Text: "Chloroplast"}},
		CorrectAnswer:   "B",
		SolutionDetail:  "Chloroplasts are the site of photosynthesis.",
		SolutionSteps:   []string{"Chloroplasts are the site of photosynthesis."},
		DifficultyLevel: 2,
		CurationStatus:  model.CurationCurated,
	}
	if err := questions.UpdateContent(ctx, &updated); err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}

	rows, err := questions.ListByTopic(ctx, topicID)
	if err != nil {
		t.Fatalf("ListByTopic() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("questions for topic = %d, want 1", len(rows))
	}
	got := rows[0]
	if got.ID != questionID || got.TopicID != topicID {
		t.Errorf("identity changed: id=%d topic=%d", got.ID, got.TopicID)
	}
	if got.QuestionText != updated.QuestionText || got.CorrectAnswer != "B" {
		t.Errorf("content not updated: %+v", got)
	}

	remaining, err := questions.ListPlaceholders(ctx, topicID)
	if err != nil {
		t.Fatalf("ListPlaceholders() error = %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("placeholders after curation = %d, want 0", len(remaining))
	}

	missing := updated
	missing.ID = questionID + 1000
	if err := questions.UpdateContent(ctx, &missing); !errors.Is(err, pipeline.ErrNotFound) {
		t.Errorf("UpdateContent(missing row) error = %v, want pipeline.ErrNotFound", err)
	}
}
