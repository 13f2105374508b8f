package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/neetabhyas/content-pipeline/internal/pipeline"
)

// ChapterRepository handles chapter content data access.
type ChapterRepository struct {
	pool *pgxpool.Pool
}

// NewChapterRepository creates a new ChapterRepository.
func NewChapterRepository(pool *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{pool: pool}
}

// Upsert writes a chapter keyed by its natural key in a single atomic
// statement. A fresh key inserts; an existing key overwrites every
// content field and bumps updated_at, leaving id and created_at alone.
// The unique index on (subject, class_level, chapter_number) makes two
// concurrent upserts of the same key converge on one row.
func (r *ChapterRepository) Upsert(ctx context.Context, c *model.ChapterContent) error {
	keyConcepts, err := json.Marshal(c.KeyConcepts)
	if err != nil {
		return fmt.Errorf("marshal key concepts: %w", err)
	}
	formulas, err := json.Marshal(c.Formulas)
	if err != nil {
		return fmt.Errorf("marshal formulas: %w", err)
	}
	objectives, err := json.Marshal(c.LearningObjectives)
	if err != nil {
		return fmt.Errorf("marshal learning objectives: %w", err)
	}
	prerequisites, err := json.Marshal(c.Prerequisites)
	if err != nil {
		return fmt.Errorf("marshal prerequisites: %w", err)
	}
	importantTopics, err := json.Marshal(c.ImportantTopics)
	if err != nil {
		return fmt.Errorf("marshal important topics: %w", err)
	}
	phet, err := json.Marshal(c.PhetSimulations)
	if err != nil {
		return fmt.Errorf("marshal phet simulations: %w", err)
	}
	importantFormulas, err := json.Marshal(c.ImportantFormulas)
	if err != nil {
		return fmt.Errorf("marshal important formulas: %w", err)
	}
	mnemonics, err := json.Marshal(c.Mnemonics)
	if err != nil {
		return fmt.Errorf("marshal mnemonics: %w", err)
	}
	videoLinks, err := json.Marshal(c.VideoLinks)
	if err != nil {
		return fmt.Errorf("marshal video links: %w", err)
	}
	relatedChapters, err := json.Marshal(c.RelatedChapters)
	if err != nil {
		return fmt.Errorf("marshal related chapters: %w", err)
	}
	visualizations, err := json.Marshal(c.Visualizations)
	if err != nil {
		return fmt.Errorf("marshal visualizations: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO chapter_content (
			subject, class_level, chapter_number, chapter_title, introduction,
			detailed_notes, key_concepts, formulas, learning_objectives,
			prerequisites, important_topics, phet_simulations, important_formulas,
			mnemonics, video_links, related_chapters, ncert_chapter_ref,
			difficulty_level, estimated_study_minutes, status, visualizations_data
		 ) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21
		 )
		 ON CONFLICT (subject, class_level, chapter_number) DO UPDATE SET
			chapter_title = EXCLUDED.chapter_title,
			introduction = EXCLUDED.introduction,
			detailed_notes = EXCLUDED.detailed_notes,
			key_concepts = EXCLUDED.key_concepts,
			formulas = EXCLUDED.formulas,
			learning_objectives = EXCLUDED.learning_objectives,
			prerequisites = EXCLUDED.prerequisites,
			important_topics = EXCLUDED.important_topics,
			phet_simulations = EXCLUDED.phet_simulations,
			important_formulas = EXCLUDED.important_formulas,
			mnemonics = EXCLUDED.mnemonics,
			video_links = EXCLUDED.video_links,
			related_chapters = EXCLUDED.related_chapters,
			ncert_chapter_ref = EXCLUDED.ncert_chapter_ref,
			difficulty_level = EXCLUDED.difficulty_level,
			estimated_study_minutes = EXCLUDED.estimated_study_minutes,
			status = EXCLUDED.status,
			visualizations_data = EXCLUDED.visualizations_data,
			updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		c.Subject, c.ClassLevel, c.ChapterNumber, c.ChapterTitle, c.Introduction,
		c.DetailedNotes, keyConcepts, formulas, objectives,
		prerequisites, importantTopics, phet, importantFormulas,
		mnemonics, videoLinks, relatedChapters, c.NCERTChapterRef,
		c.DifficultyLevel, c.EstimatedStudyMinutes, c.Status, visualizations,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByNaturalKey retrieves a chapter by (subject, classLevel, chapterNumber).
func (r *ChapterRepository) GetByNaturalKey(ctx context.Context, subject, classLevel string, chapterNumber int) (*model.ChapterContent, error) {
	var c model.ChapterContent
	var keyConcepts, formulas, objectives, prerequisites, importantTopics []byte
	var phet, importantFormulas, mnemonics, videoLinks, relatedChapters, visualizations []byte

	err := r.pool.QueryRow(ctx,
		`SELECT id, subject, class_level, chapter_number, chapter_title, introduction,
			detailed_notes, key_concepts, formulas, learning_objectives,
			prerequisites, important_topics, phet_simulations, important_formulas,
			mnemonics, video_links, related_chapters, ncert_chapter_ref,
			difficulty_level, estimated_study_minutes, status, visualizations_data,
			created_at, updated_at
		 FROM chapter_content
		 WHERE subject = $1 AND class_level = $2 AND chapter_number = $3`,
		subject, classLevel, chapterNumber,
	).Scan(
		&c.ID, &c.Subject, &c.ClassLevel, &c.ChapterNumber, &c.ChapterTitle, &c.Introduction,
		&c.DetailedNotes, &keyConcepts, &formulas, &objectives,
		&prerequisites, &importantTopics, &phet, &importantFormulas,
		&mnemonics, &videoLinks, &relatedChapters, &c.NCERTChapterRef,
		&c.DifficultyLevel, &c.EstimatedStudyMinutes, &c.Status, &visualizations,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("chapter %s/%s #%d: %w", subject, classLevel, chapterNumber, pipeline.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		raw []byte
		dst any
	}{
		{keyConcepts, &c.KeyConcepts},
		{formulas, &c.Formulas},
		{objectives, &c.LearningObjectives},
		{prerequisites, &c.Prerequisites},
		{importantTopics, &c.ImportantTopics},
		{phet, &c.PhetSimulations},
		{importantFormulas, &c.ImportantFormulas},
		{mnemonics, &c.Mnemonics},
		{videoLinks, &c.VideoLinks},
		{relatedChapters, &c.RelatedChapters},
		{visualizations, &c.Visualizations},
	} {
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return nil, fmt.Errorf("unmarshal chapter field: %w", err)
		}
	}

	return &c, nil
}

// CountByNaturalKey returns how many rows exist for a natural key.
// Anything other than 0 or 1 means the uniqueness constraint is broken.
func (r *ChapterRepository) CountByNaturalKey(ctx context.Context, subject, classLevel string, chapterNumber int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chapter_content
		 WHERE subject = $1 AND class_level = $2 AND chapter_number = $3`,
		subject, classLevel, chapterNumber,
	).Scan(&n)
	return n, err
}
