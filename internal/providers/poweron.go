package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

const (
	// The API refuses requests that do not look like the web client.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:147.0) Gecko/20100101 Firefox/147.0"
	referer   = "https://poweron.toe.com.ua/"

	windowTimeFormat = "2006-01-02T15:04:05+00:00"

	maxDiagnosticBody = 200
)

type Clock interface {
	Now() time.Time
}

// PowerOnProvider fetches outage schedule revisions from the PowerOn API
// for a rolling two-day window around "now".
type PowerOnProvider struct {
	apiURL   string
	cityID   int
	debugKey string
	clock    Clock

	loadBody func(context.Context, string) ([]byte, error)
}

func NewPowerOnProvider(apiURL string, cityID int, clock Clock) *PowerOnProvider {
	p := &PowerOnProvider{
		apiURL:   apiURL,
		cityID:   cityID,
		debugKey: base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(cityID))),
		clock:    clock,
	}
	p.loadBody = p.fetch
	return p
}

// Events fetches schedule events from 12:00 UTC of the previous day to
// 00:00 UTC of the next day, so that both yesterday's evening revision and
// tomorrow's midnight boundary are covered. The upstream order (newest
// first) is preserved; an empty response yields an empty slice, not an
// error.
func (p *PowerOnProvider) Events(ctx context.Context) ([]dal.ScheduleEvent, error) {
	now := p.clock.Now().UTC()
	after := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	before := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	params := url.Values{}
	params.Set("before", before.Format(windowTimeFormat))
	params.Set("after", after.Format(windowTimeFormat))
	params.Set("time", strconv.Itoa(p.cityID))

	body, err := p.loadBody(ctx, p.apiURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	events, err := parseScheduleResponse(body)
	if err != nil {
		return nil, fmt.Errorf("parse schedule response: %w", err)
	}

	return events, nil
}

func (p *PowerOnProvider) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for url=%s: %w", requestURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)
	req.Header.Set("X-debug-key", p.debugKey)
	req.Header.Set("Accept", "application/ld+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get schedule from url=%s: %w", requestURL, err)
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err = body.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read schedule from url=%s: %w", requestURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		diag := body.String()
		if len(diag) > maxDiagnosticBody {
			diag = diag[:maxDiagnosticBody]
		}
		return nil, fmt.Errorf("%w: status=%s body=%s", ErrUnexpectedStatus, resp.Status, diag)
	}

	return body.Bytes(), nil
}

type (
	scheduleResponse struct {
		Events []scheduleMember `json:"hydra:member"`
	}

	scheduleMember struct {
		ID        int64                `json:"id"`
		DateGraph string               `json:"dateGraph"`
		DataJSON  map[string]groupData `json:"dataJson"`
	}

	groupData struct {
		Times map[string]string `json:"times"`
	}
)

func parseScheduleResponse(body []byte) ([]dal.ScheduleEvent, error) {
	var res scheduleResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	events := make([]dal.ScheduleEvent, 0, len(res.Events))
	for i, m := range res.Events {
		date, _, _ := strings.Cut(m.DateGraph, "T")
		if date == "" {
			return nil, fmt.Errorf("%w: event %d has empty dateGraph", ErrMalformedResponse, i)
		}

		groups := make(map[string]dal.StatusSeries, len(m.DataJSON))
		for group, data := range m.DataJSON {
			series := make(dal.StatusSeries, len(data.Times))
			for timeOfDay, status := range data.Times {
				series[timeOfDay] = status
			}
			groups[group] = series
		}

		events = append(events, dal.ScheduleEvent{
			ID:     m.ID,
			Date:   date,
			Groups: groups,
		})
	}

	return events, nil
}
