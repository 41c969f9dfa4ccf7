package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Subscriber is a chat registered for schedule updates. Group falls back to
// the configured default at read sites when empty.
type Subscriber struct {
	ChatID    int64     `json:"chat_id"`
	Group     string    `json:"group"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *BoltDB) CountSubscribers() (int, error) {
	res := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(subscribersBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) ExistsSubscriber(chatID int64) (bool, error) {
	res := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(subscribersBucket)).Get(i64tob(chatID)) != nil {
			res = true
		}
		return nil
	})

	return res, err
}

func (s *BoltDB) GetSubscriber(chatID int64) (Subscriber, bool, error) {
	var res Subscriber
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(subscribersBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllSubscribers() ([]Subscriber, error) {
	var res []Subscriber

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(subscribersBucket)).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var sub Subscriber
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscriber: %w", err)
			}
			res = append(res, sub)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutSubscriber(sub Subscriber) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		if data := b.Get(i64tob(sub.ChatID)); data != nil {
			var existing Subscriber
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("unmarshal existing subscriber for chatID=%d: %w", sub.ChatID, err)
			}
			// make sure we do not override created at
			sub.CreatedAt = existing.CreatedAt
		} else {
			sub.CreatedAt = s.clock.Now().UTC()
		}

		data, err := json.Marshal(&sub)
		if err != nil {
			return fmt.Errorf("marshal subscriber for chatID=%d: %w", sub.ChatID, err)
		}
		if err := b.Put(i64tob(sub.ChatID), data); err != nil {
			return fmt.Errorf("put subscriber for chatID=%d: %w", sub.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) PurgeSubscriber(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(subscribersBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete subscriber with chatID=%d: %w", chatID, err)
		}
		return nil
	})
}
