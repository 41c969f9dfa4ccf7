package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
	"github.com/Roma7-7-7/poweron-notifier/internal/service"
	"github.com/Roma7-7-7/poweron-notifier/internal/service/mocks"
	"github.com/Roma7-7-7/poweron-notifier/pkg/clock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedules_Refresh(t *testing.T) {
	seriesA := dal.StatusSeries{"00:00": "0", "08:00": "1"}
	seriesB := dal.StatusSeries{"00:00": "1", "10:00": "0"}

	t.Run("populates_every_group_of_every_event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockScheduleStore(ctrl)
		provider := mocks.NewMockScheduleProvider(ctrl)

		events := []dal.ScheduleEvent{
			{ID: 1287, Date: "2026-01-16", Groups: map[string]dal.StatusSeries{"3.2": seriesA, "3.3": seriesB}},
			{ID: 1286, Date: "2026-01-15", Groups: map[string]dal.StatusSeries{"3.2": seriesB, "3.3": seriesA}},
		}
		provider.EXPECT().Events(gomock.Any()).Return(events, nil)
		store.EXPECT().PutSchedule("2026-01-16", "3.2", seriesA).Return(nil)
		store.EXPECT().PutSchedule("2026-01-16", "3.3", seriesB).Return(nil)
		store.EXPECT().PutSchedule("2026-01-15", "3.2", seriesB).Return(nil)
		store.EXPECT().PutSchedule("2026-01-15", "3.3", seriesA).Return(nil)

		s := service.NewSchedules(store, provider, clock.NewUTC(), 0, testLogger())

		got, err := s.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("provider_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockScheduleStore(ctrl)
		provider := mocks.NewMockScheduleProvider(ctrl)

		provider.EXPECT().Events(gomock.Any()).Return(nil, errors.New("upstream is down"))

		s := service.NewSchedules(store, provider, clock.NewUTC(), 0, testLogger())

		got, err := s.Refresh(context.Background())
		require.ErrorContains(t, err, "get schedule events")
		assert.Nil(t, got)
	})

	t.Run("empty_response_is_not_an_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockScheduleStore(ctrl)
		provider := mocks.NewMockScheduleProvider(ctrl)

		provider.EXPECT().Events(gomock.Any()).Return(nil, nil)

		s := service.NewSchedules(store, provider, clock.NewUTC(), 0, testLogger())

		got, err := s.Refresh(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("failed_pair_does_not_lose_the_rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockScheduleStore(ctrl)
		provider := mocks.NewMockScheduleProvider(ctrl)

		events := []dal.ScheduleEvent{
			{ID: 1287, Date: "2026-01-16", Groups: map[string]dal.StatusSeries{"3.2": seriesA}},
			{ID: 1286, Date: "2026-01-15", Groups: map[string]dal.StatusSeries{"3.2": seriesB}},
		}
		provider.EXPECT().Events(gomock.Any()).Return(events, nil)
		store.EXPECT().PutSchedule("2026-01-16", "3.2", seriesA).Return(errors.New("disk full"))
		store.EXPECT().PutSchedule("2026-01-15", "3.2", seriesB).Return(nil)

		s := service.NewSchedules(store, provider, clock.NewUTC(), 0, testLogger())

		got, err := s.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})
}

func TestSchedules_CachedSchedule(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	series := dal.StatusSeries{"00:00": "0", "08:00": "1"}

	tests := []struct {
		name      string
		updatedAt time.Time
		storedOK  bool
		storeErr  error
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "fresh_entry",
			updatedAt: now.Add(-10 * time.Minute),
			storedOK:  true,
			wantFound: true,
		},
		{
			name:      "entry_just_under_threshold",
			updatedAt: now.Add(-30*time.Minute + time.Second),
			storedOK:  true,
			wantFound: true,
		},
		{
			name:      "entry_at_threshold_is_absent",
			updatedAt: now.Add(-30 * time.Minute),
			storedOK:  true,
			wantFound: false,
		},
		{
			name:      "stale_entry_is_absent",
			updatedAt: now.Add(-2 * time.Hour),
			storedOK:  true,
			wantFound: false,
		},
		{
			name:      "missing_entry",
			storedOK:  false,
			wantFound: false,
		},
		{
			name:     "store_error",
			storeErr: errors.New("boom"),
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockScheduleStore(ctrl)
			provider := mocks.NewMockScheduleProvider(ctrl)

			entry := dal.ScheduleEntry{Date: "2026-01-15", Group: "3.2", Times: series, UpdatedAt: tt.updatedAt}
			store.EXPECT().GetSchedule("2026-01-15", "3.2").Return(entry, tt.storedOK, tt.storeErr)

			s := service.NewSchedules(store, provider, clock.NewMock(now), 0, testLogger())

			got, updatedAt, found, err := s.CachedSchedule("2026-01-15", "3.2")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, series, got)
				assert.Equal(t, tt.updatedAt, updatedAt)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
