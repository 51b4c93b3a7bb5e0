package models

type InsightKind string

const (
	InsightFalseSecurity InsightKind = "false_security"
	InsightBlindSpot     InsightKind = "blind_spot"
	InsightOverRevised   InsightKind = "over_revised"
)

type InsightItem struct {
	TopicID       string         `json:"topic_id"`
	TopicName     string         `json:"topic_name"`
	ChapterName   string         `json:"chapter_name"`
	SubjectName   string         `json:"subject_name"`
	HealthScore   int            `json:"health_score"`
	Status        ProgressStatus `json:"status"`
	RevisionCount int            `json:"revision_count"`
	Kind          InsightKind    `json:"kind"`
}

type InsightReport struct {
	FalseSecurity []InsightItem `json:"false_security"`
	BlindSpots    []InsightItem `json:"blind_spots"`
	OverRevised   []InsightItem `json:"over_revised"`
}
