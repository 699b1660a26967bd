package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler()
	err := s.Register("bad", "bukan cron", time.Second, RefresherFunc(func(context.Context) error { return nil }))
	assert.Error(t, err)
}

func TestScheduler_RunsJob(t *testing.T) {
	var runs int32
	s := NewScheduler()
	require.NoError(t, s.Register("count", "@every 1s", time.Second, RefresherFunc(func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) > 0 }, 3*time.Second, 50*time.Millisecond)
}
