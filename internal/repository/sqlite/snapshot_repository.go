package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/google/uuid"
)

type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository implementation
func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) UpsertBatch(ctx context.Context, snapshots []models.HealthSnapshot) error {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("upserting %d snapshots", len(snapshots))

	if len(snapshots) == 0 {
		return nil
	}

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO health_snapshots (
    id, user_id, topic_id, snapshot_date, health_score, category,
    completion_score, revision_score, accuracy_score, recency_score
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, topic_id, snapshot_date) DO UPDATE SET
    health_score = excluded.health_score,
    category = excluded.category,
    completion_score = excluded.completion_score,
    revision_score = excluded.revision_score,
    accuracy_score = excluded.accuracy_score,
    recency_score = excluded.recency_score,
    created_at = CURRENT_TIMESTAMP
`)
		if err != nil {
			log.Error("failed to prepare snapshot upsert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, s := range snapshots {
			id := s.ID
			if id == "" {
				id = uuid.NewString()
			}
			c := s.Components
			if _, err := stmt.ExecContext(ctx, id, s.UserID, s.TopicID, s.SnapshotDate, s.HealthScore, s.Category,
				c.Completion, c.Revision, c.Accuracy, c.Recency); err != nil {
				log.Error("failed to upsert snapshot topic_id=%s: %v", s.TopicID, err)
				return err
			}
		}
		return nil
	})
}

var snapshotColumns = []string{
	"h.id", "h.user_id", "h.topic_id", "h.snapshot_date", "h.health_score", "h.category",
	"h.completion_score", "h.revision_score", "h.accuracy_score", "h.recency_score", "h.created_at",
}

func snapshotDest(s *models.HealthSnapshot) []any {
	return []any{
		&s.ID, &s.UserID, &s.TopicID, &s.SnapshotDate, &s.HealthScore, &s.Category,
		&s.Components.Completion, &s.Components.Revision, &s.Components.Accuracy, &s.Components.Recency, &s.CreatedAt,
	}
}

func (r *snapshotRepository) LatestPerTopic(ctx context.Context, userID, onOrBefore string) ([]models.SnapshotWithTopic, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("loading latest snapshots: user_id=%s, on_or_before=%s", userID, onOrBefore)

	columns := append(append([]string{}, snapshotColumns...),
		"t.chapter_id", "t.name", "t.importance", "t.difficulty", "t.estimated_hours", "t.pyq_weight",
		"c.name", "c.subject_id", "s.name",
	)
	query := sqlBuilder.Select(columns...).
		From("health_snapshots h").
		Join("topics t ON t.id = h.topic_id").
		Join("chapters c ON c.id = t.chapter_id").
		Join("subjects s ON s.id = c.subject_id").
		Where(squirrel.Eq{"h.user_id": userID}).
		Where(squirrel.LtOrEq{"h.snapshot_date": onOrBefore}).
		OrderBy("h.snapshot_date DESC", "h.topic_id")

	all, err := selectAll(ctx, r.db, log, "snapshots", query, func(rows *sql.Rows) (models.SnapshotWithTopic, error) {
		var s models.SnapshotWithTopic
		t := &s.Topic
		dest := append(snapshotDest(&s.HealthSnapshot),
			&t.ChapterID, &t.Name, &t.Importance, &t.Difficulty, &t.EstimatedHours, &t.PYQWeight,
			&t.ChapterName, &t.SubjectID, &t.SubjectName,
		)
		err := rows.Scan(dest...)
		t.ID = s.TopicID
		return s, err
	})
	if err != nil {
		return nil, err
	}

	// Rows arrive newest first, so the first row seen per topic is its latest.
	seen := make(map[string]bool, len(all))
	latest := make([]models.SnapshotWithTopic, 0, len(all))
	for _, s := range all {
		if seen[s.TopicID] {
			continue
		}
		seen[s.TopicID] = true
		latest = append(latest, s)
	}
	log.Debug("deduplicated %d snapshots to %d topics", len(all), len(latest))
	return latest, nil
}

func (r *snapshotRepository) LatestForTopic(ctx context.Context, userID, topicID, onOrBefore string) (*models.HealthSnapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("loading latest snapshot: user_id=%s, topic_id=%s, on_or_before=%s", userID, topicID, onOrBefore)

	stmt, args, err := sqlBuilder.Select(snapshotColumns...).
		From("health_snapshots h").
		Where(squirrel.Eq{"h.user_id": userID, "h.topic_id": topicID}).
		Where(squirrel.LtOrEq{"h.snapshot_date": onOrBefore}).
		OrderBy("h.snapshot_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var s models.HealthSnapshot
	err = r.db.QueryRowContext(ctx, stmt, args...).Scan(snapshotDest(&s)...)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no snapshot for topic_id=%s", topicID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get snapshot: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *snapshotRepository) Trend(ctx context.Context, userID, topicID, from, to string) ([]models.TrendPoint, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("loading trend: user_id=%s, topic_id=%s, from=%s, to=%s", userID, topicID, from, to)

	query := inRange(
		sqlBuilder.Select("snapshot_date", "health_score").
			From("health_snapshots").
			Where(squirrel.Eq{"user_id": userID, "topic_id": topicID}),
		"snapshot_date", from, to,
	).OrderBy("snapshot_date ASC")

	return selectAll(ctx, r.db, log, "trend points", query, func(rows *sql.Rows) (models.TrendPoint, error) {
		var p models.TrendPoint
		err := rows.Scan(&p.Date, &p.Score)
		return p, err
	})
}

func (r *snapshotRepository) ZoneCounts(ctx context.Context, userID, date string) (models.ZoneCounts, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("counting zones: user_id=%s, date=%s", userID, date)

	var counts models.ZoneCounts
	rows, err := r.db.QueryContext(ctx, `
SELECT h.category, COUNT(*)
FROM health_snapshots h
WHERE h.user_id = ?
  AND h.snapshot_date = (
    SELECT MAX(x.snapshot_date)
    FROM health_snapshots x
    WHERE x.user_id = h.user_id AND x.topic_id = h.topic_id AND x.snapshot_date <= ?
  )
GROUP BY h.category
`, userID, date)
	if err != nil {
		log.Error("failed to count zones: %v", err)
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			log.Error("failed to scan zone row: %v", err)
			return counts, err
		}
		switch scoring.ParseCategory(category) {
		case scoring.CategoryCritical:
			counts.Critical += n
		case scoring.CategoryWeak:
			counts.Weak += n
		case scoring.CategoryModerate:
			counts.Moderate += n
		case scoring.CategoryGood:
			counts.Good += n
		case scoring.CategoryExcellent:
			counts.Excellent += n
		}
	}
	return counts, rows.Err()
}
