package providers

import (
	"context"
	_ "embed"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
	"github.com/Roma7-7-7/poweron-notifier/pkg/clock"
)

//go:embed testdata/poweron_two_days.json
var powerOnTwoDays []byte

func TestPowerOnProvider_Events(t *testing.T) {
	tests := []struct {
		name     string
		loadBody func(context.Context, string) ([]byte, error)
		want     []dal.ScheduleEvent
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name: "success_two_days",
			loadBody: func(_ context.Context, _ string) ([]byte, error) {
				return powerOnTwoDays, nil
			},
			want: []dal.ScheduleEvent{
				{
					ID:   1287,
					Date: "2026-01-16",
					Groups: map[string]dal.StatusSeries{
						"3.2": {"00:00": "0", "08:00": "1", "12:00": "10", "12:30": "0"},
						"3.3": {"00:00": "1", "06:00": "0", "18:00": "1"},
					},
				},
				{
					ID:   1286,
					Date: "2026-01-15",
					Groups: map[string]dal.StatusSeries{
						"3.2": {"00:00": "1", "04:00": "0", "20:00": "1"},
						"3.3": {"00:00": "0", "10:00": "1"},
					},
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "success_empty_members",
			loadBody: func(_ context.Context, _ string) ([]byte, error) {
				return []byte(`{"hydra:member": []}`), nil
			},
			want:    []dal.ScheduleEvent{},
			wantErr: assert.NoError,
		},
		{
			name: "error_not_json",
			loadBody: func(_ context.Context, _ string) ([]byte, error) {
				return []byte("<html>maintenance</html>"), nil
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Error(t, err, i...) && assert.ErrorIs(t, err, ErrMalformedResponse, i...)
			},
		},
		{
			name: "error_empty_date_graph",
			loadBody: func(_ context.Context, _ string) ([]byte, error) {
				return []byte(`{"hydra:member": [{"id": 1, "dateGraph": "", "dataJson": {}}]}`), nil
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Error(t, err, i...) && assert.ErrorIs(t, err, ErrMalformedResponse, i...)
			},
		},
		{
			name: "error_load",
			loadBody: func(_ context.Context, _ string) ([]byte, error) {
				return nil, assert.AnError
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Error(t, err, i...) && assert.ErrorIs(t, err, assert.AnError, i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPowerOnProvider("https://api.example.com/api/a_gpv_g", 21005, clock.NewMock(time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)))
			p.loadBody = tt.loadBody

			got, err := p.Events(context.Background())
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPowerOnProvider_Events_RequestWindow(t *testing.T) {
	var requestedURL string
	p := NewPowerOnProvider("https://api.example.com/api/a_gpv_g", 21005, clock.NewMock(time.Date(2026, time.January, 15, 9, 30, 45, 0, time.UTC)))
	p.loadBody = func(_ context.Context, u string) ([]byte, error) {
		requestedURL = u
		return []byte(`{"hydra:member": []}`), nil
	}

	_, err := p.Events(context.Background())
	require.NoError(t, err)

	parsed, err := url.Parse(requestedURL)
	require.NoError(t, err)
	params := parsed.Query()

	// yesterday 12:00 UTC .. tomorrow 00:00 UTC
	assert.Equal(t, "2026-01-14T12:00:00+00:00", params.Get("after"))
	assert.Equal(t, "2026-01-16T00:00:00+00:00", params.Get("before"))
	assert.Equal(t, "21005", params.Get("time"))
}

func TestPowerOnProvider_DebugKey(t *testing.T) {
	p := NewPowerOnProvider("https://api.example.com/api/a_gpv_g", 21005, clock.NewUTC())
	// base64("21005")
	assert.Equal(t, "MjEwMDU=", p.debugKey)
}
