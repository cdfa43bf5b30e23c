package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduleWeeklyRollover_RegistersJob(t *testing.T) {
	s := New(time.UTC)

	id, err := s.ScheduleWeeklyRollover(nil, false)

	require.NoError(t, err)
	require.NotZero(t, id)
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(time.UTC)
	_, err := s.ScheduleWeeklyRollover(nil, false)
	require.NoError(t, err)

	s.Start()
	s.Stop()
}
