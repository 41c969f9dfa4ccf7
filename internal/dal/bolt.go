package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	scheduleBucket    = "schedule"
	monitorBucket     = "monitor"
	subscribersBucket = "subscribers"
	bansBucket        = "bans"
)

type Clock interface {
	Now() time.Time
}

type BoltDB struct {
	db    *bbolt.DB
	clock Clock
}

// NewBoltDB wraps an opened bbolt database. Buckets are expected to exist
// already (created by migrations).
func NewBoltDB(db *bbolt.DB, clock Clock) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{scheduleBucket, monitorBucket, subscribersBucket, bansBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %q not found; run migrations first", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BoltDB{db: db, clock: clock}, nil
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
