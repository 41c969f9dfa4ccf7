package v1

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV1 creates the initial bucket layout: schedule cache, monitor
// state, subscriber registry and anti-flood bans.
type MigrationV1 struct{}

// Version returns the migration version
func (m *MigrationV1) Version() int {
	return 1
}

// Description returns a human-readable description of the migration
func (m *MigrationV1) Description() string {
	return "Create initial buckets: schedule, monitor, subscribers, bans"
}

// Up performs the migration
func (m *MigrationV1) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{"schedule", "monitor", "subscribers", "bans"} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
}

// New creates a new instance of MigrationV1
func New() *MigrationV1 {
	return &MigrationV1{}
}
