//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates the mutable tables and zeroes the seating counters.
// The slot rows themselves are seeded at boot and stay in place.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE rsvps, idempotency_keys, notification_jobs RESTART IDENTITY CASCADE"); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "UPDATE seating_slots SET booked = 0"); err != nil {
		return err
	}
	return nil
}

// SlotBooked reads the committed booked counter for one slot.
func SlotBooked(t *testing.T, db DBLike, key string) int {
	t.Helper()

	var booked int
	err := db.QueryRow(context.Background(), "SELECT booked FROM seating_slots WHERE key = $1", key).Scan(&booked)
	require.NoError(t, err)
	return booked
}

// SetSlotBooked forces a slot's counter to a known value for capacity tests.
func SetSlotBooked(t *testing.T, db DBLike, key string, booked int) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE seating_slots SET booked = $2 WHERE key = $1", key, booked)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "slot %s not seeded", key)
}

// CountRsvps counts stored submissions, optionally per category.
func CountRsvps(t *testing.T, db DBLike, category string) int {
	t.Helper()

	var count int
	var err error
	if category == "" {
		err = db.QueryRow(context.Background(), "SELECT COUNT(*) FROM rsvps").Scan(&count)
	} else {
		err = db.QueryRow(context.Background(), "SELECT COUNT(*) FROM rsvps WHERE category = $1", category).Scan(&count)
	}
	require.NoError(t, err)
	return count
}

// WaitForNotificationStatus polls until the job tied to an rsvp reaches the
// wanted status or the deadline passes.
func WaitForNotificationStatus(t *testing.T, db DBLike, status string, timeout time.Duration) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		var count int
		err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM notification_jobs WHERE status = $1", status).Scan(&count)
		require.NoError(t, err)
		if count > 0 {
			return true
		}
		time.Sleep(25 * time.Millisecond)
	}
	return false
}
