package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
)

type topicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new TopicRepository implementation
func NewTopicRepository(db *sql.DB) repository.TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) ListTopics(ctx context.Context) ([]models.TopicRef, error) {
	log := logger.FromContext(ctx).WithPrefix("topic_repo")
	log.Debug("listing topics")

	query := sqlBuilder.Select(
		"t.id", "t.chapter_id", "t.name", "t.importance", "t.difficulty", "t.estimated_hours", "t.pyq_weight",
		"c.name", "c.subject_id", "s.name",
	).
		From("topics t").
		Join("chapters c ON c.id = t.chapter_id").
		Join("subjects s ON s.id = c.subject_id").
		OrderBy("s.name", "c.name", "t.name")

	return selectAll(ctx, r.db, log, "topics", query, func(rows *sql.Rows) (models.TopicRef, error) {
		var t models.TopicRef
		err := rows.Scan(&t.ID, &t.ChapterID, &t.Name, &t.Importance, &t.Difficulty, &t.EstimatedHours, &t.PYQWeight,
			&t.ChapterName, &t.SubjectID, &t.SubjectName)
		return t, err
	})
}

func (r *topicRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	log := logger.FromContext(ctx).WithPrefix("topic_repo")
	log.Debug("listing subjects")

	query := sqlBuilder.Select("id", "name").From("subjects").OrderBy("name")
	return selectAll(ctx, r.db, log, "subjects", query, func(rows *sql.Rows) (models.Subject, error) {
		var s models.Subject
		err := rows.Scan(&s.ID, &s.Name)
		return s, err
	})
}

type scopeRepository struct {
	db *sql.DB
}

// NewScopeRepository creates a ScopeProvider backed by user_subject_scope.
func NewScopeRepository(db *sql.DB) repository.ScopeProvider {
	return &scopeRepository{db: db}
}

func (r *scopeRepository) SubjectScope(ctx context.Context, userID string) (map[string]bool, error) {
	log := logger.FromContext(ctx).WithPrefix("scope_repo")
	log.Debug("loading subject scope: user_id=%s", userID)

	query := sqlBuilder.Select("subject_id").From("user_subject_scope").Where(squirrel.Eq{"user_id": userID})
	ids, err := selectAll(ctx, r.db, log, "scoped subjects", query, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	scope := make(map[string]bool, len(ids))
	for _, id := range ids {
		scope[id] = true
	}
	return scope, nil
}
