package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neetabhyas/content-pipeline/internal/model"
)

// TopicRepository handles syllabus topic lookups. Topics are read-only
// to the pipeline.
type TopicRepository struct {
	pool *pgxpool.Pool
}

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

// List retrieves topics in id order. A nil or empty subjects slice
// returns every topic; otherwise only the named subjects.
func (r *TopicRepository) List(ctx context.Context, subjects []string) ([]model.ContentTopic, error) {
	query := `SELECT id, subject, class_level, topic_name, COALESCE(ncert_chapter, '')
		 FROM content_topics ORDER BY id`
	args := []any{}
	if len(subjects) > 0 {
		query = `SELECT id, subject, class_level, topic_name, COALESCE(ncert_chapter, '')
		 FROM content_topics WHERE subject = ANY($1) ORDER BY id`
		args = append(args, subjects)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.ContentTopic
	for rows.Next() {
		var t model.ContentTopic
		if err := rows.Scan(&t.ID, &t.Subject, &t.ClassLevel, &t.TopicName, &t.NCERTChapter); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}
