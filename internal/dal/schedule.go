package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const monitorStateKey = "state"

// Upstream status codes as they appear in the API response.
const (
	StatusOn        = "0"
	StatusOff       = "1"
	StatusSwitching = "10"
)

type (
	// StatusSeries maps a zero-padded "HH:MM" time-of-day to a status code.
	// Each status holds from its key until the next key in sorted order;
	// the last one holds until 24:00.
	StatusSeries map[string]string

	// ScheduleEvent is a single schedule revision from the upstream API.
	// It lives only for the duration of one fetch.
	ScheduleEvent struct {
		ID     int64
		Date   string
		Groups map[string]StatusSeries
	}

	// ScheduleEntry is a cached schedule for one (date, group) pair.
	ScheduleEntry struct {
		Date      string       `json:"date"`
		Group     string       `json:"group"`
		Times     StatusSeries `json:"times"`
		UpdatedAt time.Time    `json:"updated_at"`
	}

	// MonitorState holds the last schedule revision id observed by the
	// update monitor. Singleton record.
	MonitorState struct {
		LastID int64 `json:"last_id"`
	}
)

func scheduleKey(date, group string) []byte {
	return []byte(fmt.Sprintf("%s_%s", date, group))
}

// GetSchedule returns the raw cache entry for (date, group). Freshness is a
// policy of the service layer; expired rows are still returned here.
func (s *BoltDB) GetSchedule(date, group string) (ScheduleEntry, bool, error) {
	var res ScheduleEntry
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(scheduleBucket)).Get(scheduleKey(date, group))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// PutSchedule upserts the cache entry for (date, group) and stamps it with
// the current UTC time. Last write wins.
func (s *BoltDB) PutSchedule(date, group string, times StatusSeries) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		entry := ScheduleEntry{
			Date:      date,
			Group:     group,
			Times:     times,
			UpdatedAt: s.clock.Now().UTC(),
		}
		data, err := json.Marshal(&entry)
		if err != nil {
			return fmt.Errorf("marshal schedule entry for date=%s group=%s: %w", date, group, err)
		}
		if err := tx.Bucket([]byte(scheduleBucket)).Put(scheduleKey(date, group), data); err != nil {
			return fmt.Errorf("put schedule entry for date=%s group=%s: %w", date, group, err)
		}
		return nil
	})
}

// CountSchedules returns the total number of cached (date, group) entries.
func (s *BoltDB) CountSchedules() (int, error) {
	res := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(scheduleBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

// CleanupSchedules removes cache entries last updated before the retention
// window. Retention is an operational concern, not the freshness policy.
func (s *BoltDB) CleanupSchedules(olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(scheduleBucket))
		return b.ForEach(func(k, v []byte) error {
			var entry ScheduleEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("unmarshal schedule entry for key=%s: %w", k, err)
			}
			if entry.UpdatedAt.After(s.clock.Now().UTC().Add(-olderThan)) {
				return nil
			}
			return b.Delete(k)
		})
	})
}

func (s *BoltDB) GetMonitorState() (MonitorState, bool, error) {
	var res MonitorState
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(monitorBucket)).Get([]byte(monitorStateKey))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) PutMonitorState(state MonitorState) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(&state)
		if err != nil {
			return fmt.Errorf("marshal monitor state: %w", err)
		}
		return tx.Bucket([]byte(monitorBucket)).Put([]byte(monitorStateKey), data)
	})
}
