package models

import "time"

// Components holds the four normalized sub-scores behind a health score.
type Components struct {
	Completion int `json:"completion"`
	Revision   int `json:"revision"`
	Accuracy   int `json:"accuracy"`
	Recency    int `json:"recency"`
}

type HealthSnapshot struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	TopicID      string     `json:"topic_id"`
	SnapshotDate string     `json:"snapshot_date"`
	HealthScore  int        `json:"health_score"`
	Category     string     `json:"category"`
	Components   Components `json:"components"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SnapshotWithTopic is a snapshot joined with the topic labels it belongs to.
type SnapshotWithTopic struct {
	HealthSnapshot
	Topic TopicRef `json:"topic"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type ZoneCount struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type WeakTopic struct {
	TopicID        string `json:"topic_id"`
	TopicName      string `json:"topic_name"`
	ChapterName    string `json:"chapter_name"`
	SubjectName    string `json:"subject_name"`
	HealthScore    int    `json:"health_score"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

type SubjectHealth struct {
	SubjectID     string      `json:"subject_id"`
	SubjectName   string      `json:"subject_name"`
	AverageHealth float64     `json:"average_health"`
	Category      string      `json:"category"`
	ZoneLabel     string      `json:"zone_label"`
	TopicCount    int         `json:"topic_count"`
	WeakCount     int         `json:"weak_count"`
	CriticalCount int         `json:"critical_count"`
	Topics        []WeakTopic `json:"topics"`
}

type HealthOverview struct {
	UserID        string          `json:"user_id"`
	TopicCount    int             `json:"topic_count"`
	AverageHealth float64         `json:"average_health"`
	Distribution  []ZoneCount     `json:"distribution"`
	WeakestTopics []WeakTopic     `json:"weakest_topics"`
	Subjects      []SubjectHealth `json:"subjects"`
}

type TopicHealthDetail struct {
	TopicID        string       `json:"topic_id"`
	HealthScore    int          `json:"health_score"`
	Category       string       `json:"category"`
	ZoneLabel      string       `json:"zone_label"`
	Components     Components   `json:"components"`
	SnapshotDate   string       `json:"snapshot_date,omitempty"`
	Recommendation string       `json:"recommendation"`
	Trend          []TrendPoint `json:"trend"`
}

// TopicHealth is the live result of scoring one topic.
type TopicHealth struct {
	Topic          TopicRef       `json:"topic"`
	Status         ProgressStatus `json:"status"`
	RevisionCount  int            `json:"revision_count"`
	HealthScore    int            `json:"health_score"`
	Category       string         `json:"category"`
	ZoneLabel      string         `json:"zone_label"`
	Components     Components     `json:"components"`
	Recommendation string         `json:"recommendation"`
}
