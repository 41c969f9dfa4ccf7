package dal_test

import (
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

func (s *BoltDBTestSuite) TestBans_PutGetDelete() {
	until := time.Date(2026, time.January, 15, 9, 5, 0, 0, time.UTC)

	_, ok, err := s.store.GetBan(123)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.store.PutBan(dal.Ban{ChatID: 123, Until: until}))

	ban, ok, err := s.store.GetBan(123)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(until, ban.Until)
	s.False(ban.Expired(until.Add(-time.Minute)))
	s.True(ban.Expired(until))

	s.Require().NoError(s.store.DeleteBan(123))
	_, ok, err = s.store.GetBan(123)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBans_Cleanup() {
	now := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	s.clockMock.Set(now)

	s.Require().NoError(s.store.PutBan(dal.Ban{ChatID: 1, Until: now.Add(-time.Minute)}))
	s.Require().NoError(s.store.PutBan(dal.Ban{ChatID: 2, Until: now.Add(5 * time.Minute)}))

	s.Require().NoError(s.store.CleanupBans())

	_, ok, err := s.store.GetBan(1)
	s.Require().NoError(err)
	s.False(ok)
	_, ok, err = s.store.GetBan(2)
	s.Require().NoError(err)
	s.True(ok)
}
