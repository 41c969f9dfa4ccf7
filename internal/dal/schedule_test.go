package dal_test

import (
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
	"github.com/Roma7-7-7/poweron-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestSchedule_GetAbsent() {
	entry, ok, err := s.store.GetSchedule("2026-01-15", "3.2")
	s.Require().NoError(err)
	if s.False(ok) {
		s.Empty(entry)
	}
}

func (s *BoltDBTestSuite) TestSchedule_PutAndGet() {
	now := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	s.clockMock.Set(now)

	series := testutil.NewSeries()
	s.Require().NoError(s.store.PutSchedule("2026-01-15", "3.2", series))

	entry, ok, err := s.store.GetSchedule("2026-01-15", "3.2")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("2026-01-15", entry.Date)
	s.Equal("3.2", entry.Group)
	s.Equal(series, entry.Times)
	s.Equal(now, entry.UpdatedAt)

	// other group for the same date is a separate entry
	_, ok, err = s.store.GetSchedule("2026-01-15", "3.3")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestSchedule_PutOverwrites() {
	first := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	s.clockMock.Set(first)
	s.Require().NoError(s.store.PutSchedule("2026-01-15", "3.2", dal.StatusSeries{"00:00": dal.StatusOn}))

	second := first.Add(10 * time.Minute)
	s.clockMock.Set(second)
	updated := dal.StatusSeries{"00:00": dal.StatusOff, "06:00": dal.StatusOn}
	s.Require().NoError(s.store.PutSchedule("2026-01-15", "3.2", updated))

	entry, ok, err := s.store.GetSchedule("2026-01-15", "3.2")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(updated, entry.Times)
	s.Equal(second, entry.UpdatedAt)

	// no duplicate rows for the same (date, group)
	count, err := s.store.CountSchedules()
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *BoltDBTestSuite) TestSchedule_ExpiredRowStillRetrievable() {
	old := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Second)
	s.clockMock.Set(old)
	s.Require().NoError(s.store.PutSchedule("2026-01-15", "3.2", testutil.NewSeries()))

	// storage layer has no freshness policy; the row must come back as-is
	entry, ok, err := s.store.GetSchedule("2026-01-15", "3.2")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(old, entry.UpdatedAt)
}

func (s *BoltDBTestSuite) TestSchedule_Cleanup() {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	s.clockMock.Set(now.Add(-48 * time.Hour))
	s.Require().NoError(s.store.PutSchedule("2026-01-13", "3.2", testutil.NewSeries()))
	s.clockMock.Set(now)
	s.Require().NoError(s.store.PutSchedule("2026-01-15", "3.2", testutil.NewSeries()))

	s.Require().NoError(s.store.CleanupSchedules(24 * time.Hour))

	_, ok, err := s.store.GetSchedule("2026-01-13", "3.2")
	s.Require().NoError(err)
	s.False(ok)
	_, ok, err = s.store.GetSchedule("2026-01-15", "3.2")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *BoltDBTestSuite) TestMonitorState() {
	_, ok, err := s.store.GetMonitorState()
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.store.PutMonitorState(dal.MonitorState{LastID: 42}))

	state, ok, err := s.store.GetMonitorState()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(int64(42), state.LastID)

	s.Require().NoError(s.store.PutMonitorState(dal.MonitorState{LastID: 43}))

	state, ok, err = s.store.GetMonitorState()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(int64(43), state.LastID)
}
