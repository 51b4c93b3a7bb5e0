package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/stretchr/testify/require"
)

// Syllabus fixture ids.
const (
	SubjectHistory   = "sub-history"
	SubjectGeography = "sub-geography"
	ChapterModern    = "ch-modern"
	ChapterClimate   = "ch-climate"
	TopicRevolt      = "top-revolt"
	TopicCongress    = "top-congress"
	TopicMonsoon     = "top-monsoon"
)

// SeedSyllabus inserts two subjects, one chapter each and three topics.
func SeedSyllabus(t *testing.T, db *sql.DB) {
	t.Helper()
	Exec(t, db, `INSERT INTO subjects (id, name) VALUES (?, ?), (?, ?)`,
		SubjectHistory, "History", SubjectGeography, "Geography")
	Exec(t, db, `INSERT INTO chapters (id, subject_id, name) VALUES (?, ?, ?), (?, ?, ?)`,
		ChapterModern, SubjectHistory, "Modern India", ChapterClimate, SubjectGeography, "Climate")
	InsertTopic(t, db, models.Topic{ID: TopicRevolt, ChapterID: ChapterModern, Name: "Revolt of 1857", Importance: 5, Difficulty: 3, EstimatedHours: 4, PYQWeight: 2})
	InsertTopic(t, db, models.Topic{ID: TopicCongress, ChapterID: ChapterModern, Name: "Congress Sessions", Importance: 2, Difficulty: 2, EstimatedHours: 2, PYQWeight: 1})
	InsertTopic(t, db, models.Topic{ID: TopicMonsoon, ChapterID: ChapterClimate, Name: "Monsoon", Importance: 4, Difficulty: 4, EstimatedHours: 3, PYQWeight: 1.5})
}

func InsertTopic(t *testing.T, db *sql.DB, topic models.Topic) {
	t.Helper()
	Exec(t, db, `
INSERT INTO topics (id, chapter_id, name, importance, difficulty, estimated_hours, pyq_weight)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, topic.ID, topic.ChapterID, topic.Name, topic.Importance, topic.Difficulty, topic.EstimatedHours, topic.PYQWeight)
}

func InsertProgress(t *testing.T, db *sql.DB, p models.ProgressRecord) {
	t.Helper()
	var touched any
	if p.LastTouched != nil {
		touched = p.LastTouched.UTC()
	}
	status := p.ConfidenceStatus
	if status == "" {
		status = "fresh"
	}
	Exec(t, db, `
INSERT INTO user_progress (user_id, topic_id, status, revision_count, confidence_score, confidence_status, last_touched)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, p.UserID, p.TopicID, p.Status, p.RevisionCount, p.ConfidenceScore, status, touched)
}

// Day parses a calendar date and fails the test on error.
func Day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	require.NoError(t, err)
	return d
}

// Exec runs a statement and fails the test on error.
func Exec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}
