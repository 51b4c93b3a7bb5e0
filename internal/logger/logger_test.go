package logger_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown 1")
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).
		WithPrefix("health").
		WithFields(map[string]any{"user_id": "u1", "date": "2025-03-16", "attempt": 2})

	log.Info("recomputed")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "[health]")
	assert.True(t, strings.HasSuffix(line, "recomputed attempt=2 date=2025-03-16 user_id=u1"), line)
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	_ = parent.WithField("job", "weekly")

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "job=")
}

func TestContextRoundTrip(t *testing.T) {
	log := logger.New(logger.WithPrefix("req"))
	ctx := logger.NewContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("warning"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel("ERROR"))
	assert.Equal(t, logger.INFO, logger.ParseLevel("nonsense"))
}

func TestLogger_ClockAndQuotedFields(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC)
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithColors(false),
		logger.WithCaller(false),
		logger.WithClock(func() time.Time { return at }),
	).WithField("subject", "Modern India")

	log.Error("stale subject")

	assert.Equal(t, "2025-03-16 09:30:00.000 ERROR stale subject subject=\"Modern India\"\n", buf.String())
}

func TestLogger_DerivedLoggersShareOutput(t *testing.T) {
	var buf bytes.Buffer
	root := logger.New(logger.WithOutput(&buf), logger.WithColors(false), logger.WithCaller(false))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			child := root.WithPrefix("worker-pool").WithField("worker_id", id)
			for j := 0; j < 50; j++ {
				child.Info("tick")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 400)
	for _, line := range lines {
		assert.Contains(t, line, "[worker-pool] tick worker_id=")
	}
}

func TestLogger_Enabled(t *testing.T) {
	log := logger.New(logger.WithLevel(logger.WARN))
	assert.False(t, log.Enabled(logger.INFO))
	assert.True(t, log.Enabled(logger.ERROR))
}
