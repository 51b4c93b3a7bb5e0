package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListForUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: user_id=%s", userID)

	query := sqlBuilder.Select(
		"user_id", "topic_id", "status", "revision_count", "confidence_score", "confidence_status", "last_touched",
	).From("user_progress").Where(squirrel.Eq{"user_id": userID}).OrderBy("topic_id")

	return selectAll(ctx, r.db, log, "progress", query, func(rows *sql.Rows) (models.ProgressRecord, error) {
		var p models.ProgressRecord
		var touched sql.NullTime
		if err := rows.Scan(&p.UserID, &p.TopicID, &p.Status, &p.RevisionCount, &p.ConfidenceScore, &p.ConfidenceStatus, &touched); err != nil {
			return p, err
		}
		if touched.Valid {
			t := touched.Time
			p.LastTouched = &t
		}
		return p, nil
	})
}

func (r *progressRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing users with progress")

	query := sqlBuilder.Select("user_id").Distinct().From("user_progress").OrderBy("user_id")
	return selectAll(ctx, r.db, log, "users", query, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
}

func (r *progressRepository) ConfidenceDistribution(ctx context.Context, userID string) (map[string]int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("counting confidence statuses: user_id=%s", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT confidence_status, COUNT(*)
FROM user_progress
WHERE user_id = ? AND status != 'untouched'
GROUP BY confidence_status
`, userID)
	if err != nil {
		log.Error("failed to count confidence statuses: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			log.Error("failed to scan confidence row: %v", err)
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *progressRepository) SubjectTouches(ctx context.Context, userID, onOrBefore string) ([]models.SubjectTouch, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("loading progress touches: user_id=%s, on_or_before=%s", userID, onOrBefore)

	query := sqlBuilder.Select("c.subject_id", "MAX(date(p.last_touched))").
		From("user_progress p").
		Join("topics t ON t.id = p.topic_id").
		Join("chapters c ON c.id = t.chapter_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		Where("p.last_touched IS NOT NULL").
		Where("date(p.last_touched) <= ?", onOrBefore).
		GroupBy("c.subject_id").
		OrderBy("c.subject_id")

	return selectAll(ctx, r.db, log, "progress touches", query, scanSubjectTouch)
}

func scanSubjectTouch(rows *sql.Rows) (models.SubjectTouch, error) {
	var t models.SubjectTouch
	err := rows.Scan(&t.SubjectID, &t.LastTouched)
	return t, err
}

type mockAccuracyRepository struct {
	db *sql.DB
}

// NewMockAccuracyRepository creates a new MockAccuracyRepository implementation
func NewMockAccuracyRepository(db *sql.DB) repository.MockAccuracyRepository {
	return &mockAccuracyRepository{db: db}
}

func (r *mockAccuracyRepository) ListForUser(ctx context.Context, userID string) ([]models.MockAccuracy, error) {
	log := logger.FromContext(ctx).WithPrefix("mock_accuracy_repo")
	log.Debug("listing mock accuracy: user_id=%s", userID)

	query := sqlBuilder.Select("user_id", "topic_id", "accuracy", "total_questions_attempted").
		From("mock_topic_accuracy").
		Where(squirrel.Eq{"user_id": userID})

	return selectAll(ctx, r.db, log, "mock accuracy", query, func(rows *sql.Rows) (models.MockAccuracy, error) {
		var m models.MockAccuracy
		err := rows.Scan(&m.UserID, &m.TopicID, &m.Accuracy, &m.TotalQuestionsAttempted)
		return m, err
	})
}
