package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
	"github.com/google/uuid"
)

type weeklyReviewRepository struct {
	db *sql.DB
}

// NewWeeklyReviewRepository creates a new WeeklyReviewRepository implementation
func NewWeeklyReviewRepository(db *sql.DB) repository.WeeklyReviewRepository {
	return &weeklyReviewRepository{db: db}
}

func (r *weeklyReviewRepository) Get(ctx context.Context, userID, weekEnd string) (*models.WeeklyReview, error) {
	log := logger.FromContext(ctx).WithPrefix("weekly_review_repo")
	log.Debug("getting weekly review: user_id=%s, week_end=%s", userID, weekEnd)

	var (
		rv                                 models.WeeklyReview
		metrics, wins, areas, recs, lights string
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, week_start, week_end, metrics, wins, areas_to_improve, recommendations, highlights, generated_at
FROM weekly_reviews
WHERE user_id = ? AND week_end = ?
`, userID, weekEnd).Scan(&rv.ID, &rv.UserID, &rv.WeekStart, &rv.WeekEnd, &metrics, &wins, &areas, &recs, &lights, &rv.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no cached review for week_end=%s", weekEnd)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get weekly review: %v", err)
		return nil, err
	}

	for _, f := range []struct {
		raw  string
		dest any
	}{
		{metrics, &rv.Metrics},
		{wins, &rv.Wins},
		{areas, &rv.AreasToImprove},
		{recs, &rv.Recommendations},
		{lights, &rv.Highlights},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dest); err != nil {
			log.Error("failed to decode weekly review id=%s: %v", rv.ID, err)
			return nil, fmt.Errorf("decode weekly review %s: %w", rv.ID, err)
		}
	}
	return &rv, nil
}

func (r *weeklyReviewRepository) Upsert(ctx context.Context, rv models.WeeklyReview) error {
	log := logger.FromContext(ctx).WithPrefix("weekly_review_repo")
	log.Debug("upserting weekly review: user_id=%s, week_end=%s", rv.UserID, rv.WeekEnd)

	encoded := make([]string, 0, 5)
	for _, v := range []any{rv.Metrics, nonNil(rv.Wins), nonNil(rv.AreasToImprove), nonNil(rv.Recommendations), nonNil(rv.Highlights)} {
		b, err := json.Marshal(v)
		if err != nil {
			log.Error("failed to encode weekly review: %v", err)
			return err
		}
		encoded = append(encoded, string(b))
	}

	id := rv.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO weekly_reviews (
    id, user_id, week_start, week_end, metrics, wins, areas_to_improve, recommendations, highlights, generated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, week_end) DO UPDATE SET
    week_start = excluded.week_start,
    metrics = excluded.metrics,
    wins = excluded.wins,
    areas_to_improve = excluded.areas_to_improve,
    recommendations = excluded.recommendations,
    highlights = excluded.highlights,
    generated_at = excluded.generated_at
`, id, rv.UserID, rv.WeekStart, rv.WeekEnd, encoded[0], encoded[1], encoded[2], encoded[3], encoded[4], rv.GeneratedAt.UTC())
	if err != nil {
		log.Error("failed to upsert weekly review: %v", err)
	}
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
