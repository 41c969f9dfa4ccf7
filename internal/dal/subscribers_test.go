package dal_test

import (
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestSubscribers_PutAndGet() {
	now := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	s.clockMock.Set(now)

	exists, err := s.store.ExistsSubscriber(123)
	s.Require().NoError(err)
	s.False(exists)

	sub := testutil.NewSubscriber(123).WithGroup("3.3").Build()
	s.Require().NoError(s.store.PutSubscriber(sub))

	exists, err = s.store.ExistsSubscriber(123)
	s.Require().NoError(err)
	s.True(exists)

	got, ok, err := s.store.GetSubscriber(123)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(int64(123), got.ChatID)
	s.Equal("3.3", got.Group)
	s.Equal(now, got.CreatedAt)
}

func (s *BoltDBTestSuite) TestSubscribers_PutKeepsCreatedAt() {
	created := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	s.clockMock.Set(created)
	s.Require().NoError(s.store.PutSubscriber(testutil.NewSubscriber(123).Build()))

	s.clockMock.Set(created.Add(72 * time.Hour))
	s.Require().NoError(s.store.PutSubscriber(testutil.NewSubscriber(123).WithGroup("4.1").Build()))

	got, ok, err := s.store.GetSubscriber(123)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("4.1", got.Group)
	s.Equal(created, got.CreatedAt)
}

func (s *BoltDBTestSuite) TestSubscribers_GetAllAndCount() {
	s.clockMock.Set(time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC))

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Empty(subs)

	s.Require().NoError(s.store.PutSubscriber(testutil.NewSubscriber(1).Build()))
	s.Require().NoError(s.store.PutSubscriber(testutil.NewSubscriber(2).WithGroup("3.3").Build()))
	s.Require().NoError(s.store.PutSubscriber(testutil.NewSubscriber(3).Build()))

	subs, err = s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Len(subs, 3)

	count, err := s.store.CountSubscribers()
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *BoltDBTestSuite) TestSubscribers_Purge() {
	s.clockMock.Set(time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC))

	s.Require().NoError(s.store.PutSubscriber(testutil.NewSubscriber(123).Build()))
	s.Require().NoError(s.store.PurgeSubscriber(123))

	exists, err := s.store.ExistsSubscriber(123)
	s.Require().NoError(err)
	s.False(exists)

	// purge of a missing subscriber is a no-op
	s.Require().NoError(s.store.PurgeSubscriber(456))
}
