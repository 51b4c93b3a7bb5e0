package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository/sqlite"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type WeeklyReviewRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.WeeklyReviewRepository
}

func (s *WeeklyReviewRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewWeeklyReviewRepository(s.db)
}

func (s *WeeklyReviewRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *WeeklyReviewRepositorySuite) TestGet_Missing() {
	rv, err := s.repo.Get(context.Background(), "u1", "2025-03-16")
	s.Require().NoError(err)
	s.Assert().Nil(rv)
}

func (s *WeeklyReviewRepositorySuite) TestUpsert_RoundTripAndNoDuplicates() {
	ctx := context.Background()
	generated := time.Date(2025, 3, 17, 6, 0, 0, 0, time.UTC)
	review := models.WeeklyReview{
		UserID:    "u1",
		WeekStart: "2025-03-10",
		WeekEnd:   "2025-03-16",
		Metrics: models.WeeklyMetrics{
			TotalHours:       12.5,
			TopicsCompleted:  6,
			VelocityTrend:    "improving",
			ConfidenceStatus: map[string]int{"fresh": 4},
			LowConfidence:    []models.SubjectLabel{{SubjectID: "eco", SubjectName: "Economy", Value: 31}},
			BadgesUnlocked:   []string{"First Week"},
		},
		Wins:        []string{"Completed 6 topics this week"},
		Highlights:  []string{"6 topics completed"},
		GeneratedAt: generated,
	}
	s.Require().NoError(s.repo.Upsert(ctx, review))

	review.Metrics.TotalHours = 14
	review.Wins = []string{"Completed 7 topics this week"}
	s.Require().NoError(s.repo.Upsert(ctx, review))

	var n int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM weekly_reviews`).Scan(&n))
	s.Assert().Equal(1, n)

	got, err := s.repo.Get(ctx, "u1", "2025-03-16")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().NotEmpty(got.ID)
	s.Assert().Equal("2025-03-10", got.WeekStart)
	s.Assert().Equal(14.0, got.Metrics.TotalHours)
	s.Assert().Equal(review.Metrics.LowConfidence, got.Metrics.LowConfidence)
	s.Assert().Equal(map[string]int{"fresh": 4}, got.Metrics.ConfidenceStatus)
	s.Assert().Equal([]string{"Completed 7 topics this week"}, got.Wins)
	s.Assert().Equal([]string{}, got.AreasToImprove, "nil lists are stored as empty arrays")
	s.Assert().True(generated.Equal(got.GeneratedAt))
}

func TestWeeklyReviewRepositorySuite(t *testing.T) {
	suite.Run(t, new(WeeklyReviewRepositorySuite))
}
