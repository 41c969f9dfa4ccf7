package telegram

import (
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
	"github.com/Roma7-7-7/poweron-notifier/internal/telegram/mocks"
	"github.com/Roma7-7-7/poweron-notifier/pkg/clock"
)

const chatID = int64(123)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandler_scheduleMessage(t *testing.T) {
	now := time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)
	series := dal.StatusSeries{"00:00": "0", "08:00": "1"}

	type fields struct {
		subscribers func(*gomock.Controller) Subscribers
		schedules   func(*gomock.Controller) Schedules
	}
	tests := []struct {
		name       string
		fields     fields
		offsetDays int
		want       string
		wantErr    bool
	}{
		{
			name: "today_with_subscriber_group",
			fields: fields{
				subscribers: func(ctrl *gomock.Controller) Subscribers {
					res := mocks.NewMockSubscribers(ctrl)
					res.EXPECT().GetSubscriber(chatID).Return(dal.Subscriber{ChatID: chatID, Group: "3.3"}, true, nil)
					return res
				},
				schedules: func(ctrl *gomock.Controller) Schedules {
					res := mocks.NewMockSchedules(ctrl)
					res.EXPECT().CachedSchedule("2026-01-15", "3.3").Return(series, now, true, nil)
					return res
				},
			},
			offsetDays: 0,
			want:       service.BuildScheduleMessage(series, now, "3.3", now),
		},
		{
			name: "unknown_subscriber_falls_back_to_default_group",
			fields: fields{
				subscribers: func(ctrl *gomock.Controller) Subscribers {
					res := mocks.NewMockSubscribers(ctrl)
					res.EXPECT().GetSubscriber(chatID).Return(dal.Subscriber{}, false, nil)
					return res
				},
				schedules: func(ctrl *gomock.Controller) Schedules {
					res := mocks.NewMockSchedules(ctrl)
					res.EXPECT().CachedSchedule("2026-01-15", "3.2").Return(series, now, true, nil)
					return res
				},
			},
			offsetDays: 0,
			want:       service.BuildScheduleMessage(series, now, "3.2", now),
		},
		{
			name: "tomorrow_not_published",
			fields: fields{
				subscribers: func(ctrl *gomock.Controller) Subscribers {
					res := mocks.NewMockSubscribers(ctrl)
					res.EXPECT().GetSubscriber(chatID).Return(dal.Subscriber{ChatID: chatID, Group: "3.2"}, true, nil)
					return res
				},
				schedules: func(ctrl *gomock.Controller) Schedules {
					res := mocks.NewMockSchedules(ctrl)
					res.EXPECT().CachedSchedule("2026-01-16", "3.2").Return(nil, time.Time{}, false, nil)
					return res
				},
			},
			offsetDays: 1,
			want:       service.BuildNotPublishedMessage(now.AddDate(0, 0, 1)),
		},
		{
			name: "subscribers_error",
			fields: fields{
				subscribers: func(ctrl *gomock.Controller) Subscribers {
					res := mocks.NewMockSubscribers(ctrl)
					res.EXPECT().GetSubscriber(chatID).Return(dal.Subscriber{}, false, errors.New("boom"))
					return res
				},
				schedules: func(ctrl *gomock.Controller) Schedules {
					return mocks.NewMockSchedules(ctrl)
				},
			},
			offsetDays: 0,
			wantErr:    true,
		},
		{
			name: "schedules_error",
			fields: fields{
				subscribers: func(ctrl *gomock.Controller) Subscribers {
					res := mocks.NewMockSubscribers(ctrl)
					res.EXPECT().GetSubscriber(chatID).Return(dal.Subscriber{ChatID: chatID, Group: "3.2"}, true, nil)
					return res
				},
				schedules: func(ctrl *gomock.Controller) Schedules {
					res := mocks.NewMockSchedules(ctrl)
					res.EXPECT().CachedSchedule("2026-01-15", "3.2").Return(nil, time.Time{}, false, errors.New("boom"))
					return res
				},
			},
			offsetDays: 0,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			h := NewHandler(tt.fields.subscribers(ctrl), tt.fields.schedules(ctrl), clock.NewMock(now), "3.2", testLogger())

			got, err := h.scheduleMessage(chatID, tt.offsetDays)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAlias(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: btnTodayText, want: "today"},
		{text: "сьогодні", want: "today"},
		{text: "Сьогодні", want: "today"},
		{text: btnTomorrowText, want: "tomorrow"},
		{text: " завтра ", want: "tomorrow"},
		{text: "help", want: "help"},
		{text: "допомога", want: "help"},
		{text: "щось інше", want: ""},
		{text: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAlias(tt.text))
		})
	}
}

func TestNewMarkups(t *testing.T) {
	m := newMarkups()

	require.NotNil(t, m.main)
	assert.True(t, m.main.ResizeKeyboard)
	require.Len(t, m.main.ReplyKeyboard, 1)
	require.Len(t, m.main.ReplyKeyboard[0], 2)
	assert.Equal(t, btnTodayText, m.main.ReplyKeyboard[0][0].Text)
	assert.Equal(t, btnTomorrowText, m.main.ReplyKeyboard[0][1].Text)
}
