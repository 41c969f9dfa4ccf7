package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Ban is a temporary anti-flood ban. Persisted so restarts do not lift
// active bans.
type Ban struct {
	ChatID int64     `json:"chat_id"`
	Until  time.Time `json:"until"`
}

func (b Ban) Expired(now time.Time) bool {
	return !now.Before(b.Until)
}

func (s *BoltDB) GetBan(chatID int64) (Ban, bool, error) {
	var res Ban
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bansBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) PutBan(ban Ban) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(&ban)
		if err != nil {
			return fmt.Errorf("marshal ban for chatID=%d: %w", ban.ChatID, err)
		}
		if err := tx.Bucket([]byte(bansBucket)).Put(i64tob(ban.ChatID), data); err != nil {
			return fmt.Errorf("put ban for chatID=%d: %w", ban.ChatID, err)
		}
		return nil
	})
}

func (s *BoltDB) DeleteBan(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(bansBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete ban for chatID=%d: %w", chatID, err)
		}
		return nil
	})
}

// CleanupBans removes bans that already expired.
func (s *BoltDB) CleanupBans() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bansBucket))
		now := s.clock.Now().UTC()
		return b.ForEach(func(k, v []byte) error {
			var ban Ban
			if err := json.Unmarshal(v, &ban); err != nil {
				return fmt.Errorf("unmarshal ban for key=%s: %w", k, err)
			}
			if !ban.Expired(now) {
				return nil
			}
			return b.Delete(k)
		})
	})
}
