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

type SyllabusRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	topics   repository.TopicRepository
	progress repository.ProgressRepository
	mocks    repository.MockAccuracyRepository
	scope    repository.ScopeProvider
}

func (s *SyllabusRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	testutil.SeedSyllabus(s.T(), s.db)
	s.topics = sqlite.NewTopicRepository(s.db)
	s.progress = sqlite.NewProgressRepository(s.db)
	s.mocks = sqlite.NewMockAccuracyRepository(s.db)
	s.scope = sqlite.NewScopeRepository(s.db)
}

func (s *SyllabusRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SyllabusRepositorySuite) TestListTopics_JoinsChapterAndSubject() {
	topics, err := s.topics.ListTopics(context.Background())
	s.Require().NoError(err)
	s.Require().Len(topics, 3)

	byID := map[string]models.TopicRef{}
	for _, t := range topics {
		byID[t.ID] = t
	}
	revolt := byID[testutil.TopicRevolt]
	s.Assert().Equal("Modern India", revolt.ChapterName)
	s.Assert().Equal(testutil.SubjectHistory, revolt.SubjectID)
	s.Assert().Equal("History", revolt.SubjectName)
	s.Assert().Equal(5, revolt.Importance)
	s.Assert().Equal(2.0, revolt.PYQWeight)
}

func (s *SyllabusRepositorySuite) TestListSubjects() {
	subjects, err := s.topics.ListSubjects(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal([]models.Subject{
		{ID: testutil.SubjectGeography, Name: "Geography"},
		{ID: testutil.SubjectHistory, Name: "History"},
	}, subjects)
}

func (s *SyllabusRepositorySuite) TestProgress_ListAndTouches() {
	ctx := context.Background()
	touched := time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC)
	testutil.InsertProgress(s.T(), s.db, models.ProgressRecord{
		UserID: "u1", TopicID: testutil.TopicRevolt, Status: models.StatusRevised, RevisionCount: 2,
		ConfidenceScore: 72.5, ConfidenceStatus: "fading", LastTouched: &touched,
	})
	testutil.InsertProgress(s.T(), s.db, models.ProgressRecord{
		UserID: "u1", TopicID: testutil.TopicMonsoon, Status: models.StatusUntouched,
	})
	testutil.InsertProgress(s.T(), s.db, models.ProgressRecord{
		UserID: "u2", TopicID: testutil.TopicMonsoon, Status: models.StatusFirstPass,
	})

	records, err := s.progress.ListForUser(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Assert().Equal(testutil.TopicMonsoon, records[0].TopicID)
	s.Assert().Nil(records[0].LastTouched)
	s.Assert().Equal(models.StatusRevised, records[1].Status)
	s.Assert().Equal("fading", records[1].ConfidenceStatus)
	s.Require().NotNil(records[1].LastTouched)
	s.Assert().True(touched.Equal(*records[1].LastTouched))

	users, err := s.progress.ListUserIDs(ctx)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"u1", "u2"}, users)

	dist, err := s.progress.ConfidenceDistribution(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Equal(map[string]int{"fading": 1}, dist, "untouched topics are not counted")

	touches, err := s.progress.SubjectTouches(ctx, "u1", "2025-03-16")
	s.Require().NoError(err)
	s.Assert().Equal([]models.SubjectTouch{{SubjectID: testutil.SubjectHistory, LastTouched: "2025-03-12"}}, touches)

	touches, err = s.progress.SubjectTouches(ctx, "u1", "2025-03-11")
	s.Require().NoError(err)
	s.Assert().Empty(touches)
}

func (s *SyllabusRepositorySuite) TestMockAccuracy() {
	testutil.Exec(s.T(), s.db, `INSERT INTO mock_topic_accuracy (user_id, topic_id, accuracy, total_questions_attempted) VALUES (?, ?, ?, ?)`,
		"u1", testutil.TopicRevolt, 0.64, 25)

	rows, err := s.mocks.ListForUser(context.Background(), "u1")
	s.Require().NoError(err)
	s.Assert().Equal([]models.MockAccuracy{{UserID: "u1", TopicID: testutil.TopicRevolt, Accuracy: 0.64, TotalQuestionsAttempted: 25}}, rows)
}

func (s *SyllabusRepositorySuite) TestSubjectScope() {
	ctx := context.Background()

	scope, err := s.scope.SubjectScope(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Nil(scope, "no rows means no restriction")

	testutil.Exec(s.T(), s.db, `INSERT INTO user_subject_scope (user_id, subject_id) VALUES (?, ?)`, "u1", testutil.SubjectHistory)
	scope, err = s.scope.SubjectScope(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Equal(map[string]bool{testutil.SubjectHistory: true}, scope)
}

func TestSyllabusRepositorySuite(t *testing.T) {
	suite.Run(t, new(SyllabusRepositorySuite))
}
