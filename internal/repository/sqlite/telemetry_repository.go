package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
)

type telemetryRepository struct {
	db *sql.DB
}

// NewTelemetryRepository creates a new TelemetryRepository implementation
func NewTelemetryRepository(db *sql.DB) repository.TelemetryRepository {
	return &telemetryRepository{db: db}
}

func (r *telemetryRepository) repoLog(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx).WithPrefix("telemetry_repo")
}

// forUser selects columns from a per-user table.
func forUser(table, userID string, columns ...string) squirrel.SelectBuilder {
	return sqlBuilder.Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID})
}

func (r *telemetryRepository) DailyLogs(ctx context.Context, userID, from, to string) ([]models.DailyLog, error) {
	log := r.repoLog(ctx)
	log.Debug("listing daily logs: user_id=%s, from=%s, to=%s", userID, from, to)

	q := forUser("daily_logs", userID, "log_date", "hours_studied", "topics_completed", "gravity_completed")
	q = inRange(q, "log_date", from, to).OrderBy("log_date ASC")
	return selectAll(ctx, r.db, log, "daily logs", q, func(rows *sql.Rows) (models.DailyLog, error) {
		var l models.DailyLog
		err := rows.Scan(&l.LogDate, &l.HoursStudied, &l.TopicsCompleted, &l.GravityCompleted)
		return l, err
	})
}

func (r *telemetryRepository) VelocitySnapshots(ctx context.Context, userID, from, to string) ([]models.VelocitySnapshot, error) {
	log := r.repoLog(ctx)
	log.Debug("listing velocity snapshots: user_id=%s, from=%s, to=%s", userID, from, to)

	q := forUser("velocity_snapshots", userID, "snapshot_date", "velocity_ratio", "completion_pct")
	q = inRange(q, "snapshot_date", from, to).OrderBy("snapshot_date ASC")
	return selectAll(ctx, r.db, log, "velocity snapshots", q, func(rows *sql.Rows) (models.VelocitySnapshot, error) {
		var v models.VelocitySnapshot
		err := rows.Scan(&v.SnapshotDate, &v.VelocityRatio, &v.CompletionPct)
		return v, err
	})
}

func (r *telemetryRepository) BurnoutSnapshots(ctx context.Context, userID, from, to string) ([]models.BurnoutSnapshot, error) {
	log := r.repoLog(ctx)
	log.Debug("listing burnout snapshots: user_id=%s, from=%s, to=%s", userID, from, to)

	q := forUser("burnout_snapshots", userID, "snapshot_date", "bri")
	q = inRange(q, "snapshot_date", from, to).OrderBy("snapshot_date ASC")
	return selectAll(ctx, r.db, log, "burnout snapshots", q, func(rows *sql.Rows) (models.BurnoutSnapshot, error) {
		var b models.BurnoutSnapshot
		err := rows.Scan(&b.SnapshotDate, &b.BRI)
		return b, err
	})
}

func (r *telemetryRepository) PlanItems(ctx context.Context, userID, from, to string) ([]models.PlanItem, error) {
	log := r.repoLog(ctx)
	log.Debug("listing plan items: user_id=%s, from=%s, to=%s", userID, from, to)

	q := sqlBuilder.Select("p.id", "p.plan_date", "p.topic_id", "p.item_type", "p.status", "c.subject_id").
		From("plan_items p").
		Join("topics t ON t.id = p.topic_id").
		Join("chapters c ON c.id = t.chapter_id").
		Where(squirrel.Eq{"p.user_id": userID})
	q = inRange(q, "p.plan_date", from, to).OrderBy("p.plan_date ASC", "p.id")
	return selectAll(ctx, r.db, log, "plan items", q, func(rows *sql.Rows) (models.PlanItem, error) {
		var p models.PlanItem
		err := rows.Scan(&p.ID, &p.PlanDate, &p.TopicID, &p.ItemType, &p.Status, &p.SubjectID)
		return p, err
	})
}

func (r *telemetryRepository) BufferEntries(ctx context.Context, userID, from, to string) ([]models.BufferEntry, error) {
	log := r.repoLog(ctx)
	log.Debug("listing buffer entries: user_id=%s, from=%s, to=%s", userID, from, to)

	q := forUser("buffer_ledger", userID, "entry_date", "delta_days", "reason")
	q = inRange(q, "entry_date", from, to).OrderBy("entry_date ASC", "id")
	return selectAll(ctx, r.db, log, "buffer entries", q, func(rows *sql.Rows) (models.BufferEntry, error) {
		var b models.BufferEntry
		err := rows.Scan(&b.EntryDate, &b.DeltaDays, &b.Reason)
		return b, err
	})
}

func (r *telemetryRepository) Streaks(ctx context.Context, userID string) ([]models.StreakCounter, error) {
	log := r.repoLog(ctx)
	log.Debug("listing streaks: user_id=%s", userID)

	q := forUser("streaks", userID, "streak_type", "current_count", "best_count", "last_active_day").OrderBy("streak_type")
	return selectAll(ctx, r.db, log, "streaks", q, func(rows *sql.Rows) (models.StreakCounter, error) {
		var s models.StreakCounter
		err := rows.Scan(&s.StreakType, &s.CurrentCount, &s.BestCount, &s.LastActiveDay)
		return s, err
	})
}

func (r *telemetryRepository) XPLedger(ctx context.Context, userID, from, to string) ([]models.XPEntry, int, error) {
	log := r.repoLog(ctx)
	log.Debug("loading xp ledger: user_id=%s, from=%s, to=%s", userID, from, to)

	q := forUser("xp_ledger", userID, "amount", "source", "earned_at")
	q = inRange(q, "date(earned_at)", from, to).OrderBy("earned_at ASC", "id")
	entries, err := selectAll(ctx, r.db, log, "xp entries", q, func(rows *sql.Rows) (models.XPEntry, error) {
		var e models.XPEntry
		err := rows.Scan(&e.Amount, &e.Source, &e.EarnedAt)
		return e, err
	})
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(amount), 0)
FROM xp_ledger
WHERE user_id = ? AND date(earned_at) <= ?
`, userID, to).Scan(&total)
	if err != nil {
		log.Error("failed to sum xp: %v", err)
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *telemetryRepository) BadgeUnlocks(ctx context.Context, userID, from, to string) ([]models.BadgeUnlock, error) {
	log := r.repoLog(ctx)
	log.Debug("listing badge unlocks: user_id=%s, from=%s, to=%s", userID, from, to)

	q := sqlBuilder.Select("ub.badge_slug", "b.name", "ub.unlocked_at").
		From("user_badges ub").
		Join("badges b ON b.slug = ub.badge_slug").
		Where(squirrel.Eq{"ub.user_id": userID})
	q = inRange(q, "date(ub.unlocked_at)", from, to).OrderBy("ub.unlocked_at ASC")
	return selectAll(ctx, r.db, log, "badge unlocks", q, func(rows *sql.Rows) (models.BadgeUnlock, error) {
		var b models.BadgeUnlock
		err := rows.Scan(&b.BadgeSlug, &b.BadgeName, &b.UnlockedAt)
		return b, err
	})
}

func (r *telemetryRepository) Targets(ctx context.Context, userID string) (*models.UserTargets, error) {
	log := r.repoLog(ctx)
	log.Debug("getting targets: user_id=%s", userID)

	var t models.UserTargets
	err := r.db.QueryRowContext(ctx, `
SELECT daily_hours, daily_topics, strategy_mode
FROM user_targets
WHERE user_id = ?
`, userID).Scan(&t.DailyHours, &t.DailyTopics, &t.StrategyMode)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no targets configured for user_id=%s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get targets: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *telemetryRepository) SubjectConfidence(ctx context.Context, userID string) ([]models.SubjectConfidence, error) {
	log := r.repoLog(ctx)
	log.Debug("listing subject confidence: user_id=%s", userID)

	q := forUser("subject_confidence_cache", userID, "subject_id", "avg_confidence", "topic_count").OrderBy("subject_id")
	return selectAll(ctx, r.db, log, "subject confidence", q, func(rows *sql.Rows) (models.SubjectConfidence, error) {
		var c models.SubjectConfidence
		err := rows.Scan(&c.SubjectID, &c.AvgConfidence, &c.TopicCount)
		return c, err
	})
}

func (r *telemetryRepository) PlanSubjectTouches(ctx context.Context, userID, onOrBefore string) ([]models.SubjectTouch, error) {
	log := r.repoLog(ctx)
	log.Debug("loading plan touches: user_id=%s, on_or_before=%s", userID, onOrBefore)

	q := sqlBuilder.Select("c.subject_id", "MAX(p.plan_date)").
		From("plan_items p").
		Join("topics t ON t.id = p.topic_id").
		Join("chapters c ON c.id = t.chapter_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		Where(squirrel.LtOrEq{"p.plan_date": onOrBefore}).
		GroupBy("c.subject_id").
		OrderBy("c.subject_id")
	return selectAll(ctx, r.db, log, "plan touches", q, scanSubjectTouch)
}

func (r *telemetryRepository) BenchmarkOn(ctx context.Context, userID, date string) (*models.BenchmarkSnapshot, error) {
	log := r.repoLog(ctx)
	log.Debug("getting benchmark: user_id=%s, date=%s", userID, date)

	var b models.BenchmarkSnapshot
	err := r.db.QueryRowContext(ctx, `
SELECT snapshot_date, score, status
FROM benchmark_snapshots
WHERE user_id = ? AND snapshot_date <= ?
ORDER BY snapshot_date DESC
LIMIT 1
`, userID, date).Scan(&b.SnapshotDate, &b.Score, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get benchmark: %v", err)
		return nil, err
	}
	return &b, nil
}
