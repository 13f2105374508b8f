package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neetabhyas/content-pipeline/internal/model"
	"github.com/neetabhyas/content-pipeline/internal/pipeline"
)

// QuestionRepository handles question data access. The pipeline only
// mutates existing rows; question creation belongs to the generator,
// which is a separate system.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListByTopic retrieves all questions for a topic in insertion order.
func (r *QuestionRepository) ListByTopic(ctx context.Context, topicID int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, topic_id, question_text, options, correct_answer,
			solution_detail, solution_steps, difficulty_level, curation_status
		 FROM questions WHERE topic_id = $1
		 ORDER BY id`, topicID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListPlaceholders retrieves a topic's questions still awaiting curation,
// in insertion order.
func (r *QuestionRepository) ListPlaceholders(ctx context.Context, topicID int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, topic_id, question_text, options, correct_answer,
			solution_detail, solution_steps, difficulty_level, curation_status
		 FROM questions WHERE topic_id = $1 AND curation_status = $2
		 ORDER BY id`, topicID, model.CurationPlaceholder,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// UpdateContent overwrites a question's content fields in place,
// preserving id and topic_id.
func (r *QuestionRepository) UpdateContent(ctx context.Context, q *model.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	steps, err := json.Marshal(q.SolutionSteps)
	if err != nil {
		return fmt.Errorf("marshal solution steps: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE questions
		 SET question_text = $1, options = $2, correct_answer = $3,
			solution_detail = $4, solution_steps = $5, difficulty_level = $6,
			curation_status = $7
		 WHERE id = $8`,
		q.QuestionText, options, q.CorrectAnswer,
		q.SolutionDetail, steps, q.DifficultyLevel,
		q.CurationStatus, q.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %d: %w", q.ID, pipeline.ErrNotFound)
	}
	return nil
}

// SetCurationStatus updates only the curation flag on a question.
func (r *QuestionRepository) SetCurationStatus(ctx context.Context, questionID int, status model.CurationStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions SET curation_status = $1 WHERE id = $2`,
		status, questionID,
	)
	return err
}

func scanQuestions(rows pgx.Rows) ([]model.Question, error) {
	var questions []model.Question
	for rows.Next() {
		var q model.Question
		var options, steps []byte
		if err := rows.Scan(&q.ID, &q.TopicID, &q.QuestionText, &options, &q.CorrectAnswer,
			&q.SolutionDetail, &steps, &q.DifficultyLevel, &q.CurationStatus); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options for question %d: %w", q.ID, err)
		}
		if steps != nil {
			if err := json.Unmarshal(steps, &q.SolutionSteps); err != nil {
				return nil, fmt.Errorf("unmarshal steps for question %d: %w", q.ID, err)
			}
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
