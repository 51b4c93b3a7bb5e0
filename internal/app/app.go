package app

import (
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/config"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/db"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository/sqlite"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/services"
)

// App bundles the services built over one database handle.
type App struct {
	DB      *db.DB
	Tuning  scoring.Tuning
	Health  services.HealthService
	Reviews services.WeeklyReviewService
}

// New opens the database at cfg.DBPath, loads tuning and wires repositories
// into services. now defaults to time.Now.
func New(cfg config.Config, now func() time.Time) (*App, error) {
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return Wire(database, tuning, cfg.RecomputeConcurrency, now), nil
}

// Wire builds the services over an already open database.
func Wire(database *db.DB, tuning scoring.Tuning, concurrency int, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}

	topicRepo := sqlite.NewTopicRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	snapshotRepo := sqlite.NewSnapshotRepository(database.DB)

	return &App{
		DB:     database,
		Tuning: tuning,
		Health: services.NewHealthService(
			topicRepo,
			progressRepo,
			sqlite.NewMockAccuracyRepository(database.DB),
			snapshotRepo,
			sqlite.NewScopeRepository(database.DB),
			tuning,
			concurrency,
			now,
		),
		Reviews: services.NewWeeklyReviewService(
			topicRepo,
			progressRepo,
			snapshotRepo,
			sqlite.NewWeeklyReviewRepository(database.DB),
			sqlite.NewTelemetryRepository(database.DB),
			tuning,
			now,
		),
	}
}

func (a *App) Close() error {
	return a.DB.Close()
}
