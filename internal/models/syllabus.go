package models

import "time"

// DateFormat is the layout used for every calendar-date column.
const DateFormat = "2006-01-02"

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Chapter struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	Name      string `json:"name"`
}

type Topic struct {
	ID             string  `json:"id"`
	ChapterID      string  `json:"chapter_id"`
	Name           string  `json:"name"`
	Importance     int     `json:"importance"`
	Difficulty     int     `json:"difficulty"`
	EstimatedHours float64 `json:"estimated_hours"`
	PYQWeight      float64 `json:"pyq_weight"`
}

// TopicRef is a topic joined with its chapter and subject labels.
type TopicRef struct {
	Topic
	ChapterName string `json:"chapter_name"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
}

// Stakes is the ranking key used by the insight detectors.
func (t TopicRef) Stakes() float64 {
	return float64(t.Importance) * t.PYQWeight
}

type ProgressStatus string

const (
	StatusUntouched     ProgressStatus = "untouched"
	StatusInProgress    ProgressStatus = "in_progress"
	StatusFirstPass     ProgressStatus = "first_pass"
	StatusRevised       ProgressStatus = "revised"
	StatusExamReady     ProgressStatus = "exam_ready"
	StatusDeferredScope ProgressStatus = "deferred_scope"
)

// Valid reports whether s is one of the known progress statuses.
func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusUntouched, StatusInProgress, StatusFirstPass, StatusRevised, StatusExamReady, StatusDeferredScope:
		return true
	}
	return false
}

type ProgressRecord struct {
	UserID           string         `json:"user_id"`
	TopicID          string         `json:"topic_id"`
	Status           ProgressStatus `json:"status"`
	RevisionCount    int            `json:"revision_count"`
	ConfidenceScore  float64        `json:"confidence_score"`
	ConfidenceStatus string         `json:"confidence_status"`
	LastTouched      *time.Time     `json:"last_touched"`
}

// UntouchedProgress is the neutral record used when a topic has no progress row.
func UntouchedProgress(userID, topicID string) ProgressRecord {
	return ProgressRecord{UserID: userID, TopicID: topicID, Status: StatusUntouched}
}

type MockAccuracy struct {
	UserID                  string  `json:"user_id"`
	TopicID                 string  `json:"topic_id"`
	Accuracy                float64 `json:"accuracy"`
	TotalQuestionsAttempted int     `json:"total_questions_attempted"`
}
