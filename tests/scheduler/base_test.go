package scheduler_test

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"tracker/src/scheduler"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestScheduledTask(t *testing.T) {
	t.Run("invalid spec is rejected", func(t *testing.T) {
		_, err := scheduler.NewScheduledTask("not a cron spec", discardLogger(), func() {})
		assert.Error(t, err)
	})

	// cron's @every floors at one second, so two runs need a little over two
	// seconds of wall clock.
	t.Run("runs on schedule until cancelled", func(t *testing.T) {
		var runs int64
		task, err := scheduler.NewScheduledTask("@every 1s", discardLogger(), func() {
			atomic.AddInt64(&runs, 1)
		})
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			return atomic.LoadInt64(&runs) >= 2
		}, 4*time.Second, 50*time.Millisecond)

		task.Cancel()
		// Let any in-flight run drain before sampling.
		time.Sleep(200 * time.Millisecond)
		after := atomic.LoadInt64(&runs)
		time.Sleep(1500 * time.Millisecond)
		assert.Equal(t, after, atomic.LoadInt64(&runs))
	})

	t.Run("a panicking run does not kill the schedule", func(t *testing.T) {
		var runs int64
		task, err := scheduler.NewScheduledTask("@every 1s", discardLogger(), func() {
			atomic.AddInt64(&runs, 1)
			panic("boom")
		})
		require.NoError(t, err)
		defer task.Cancel()

		assert.Eventually(t, func() bool {
			return atomic.LoadInt64(&runs) >= 2
		}, 4*time.Second, 50*time.Millisecond)
	})
}
