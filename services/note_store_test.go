package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStore_UpsertAndGet(t *testing.T) {
	store := NewNoteStore()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	store.Upsert(date, "trim the window display")
	note, ok := store.Get(date)
	require.True(t, ok)
	assert.Equal(t, "trim the window display", note)

	store.Upsert(date, "updated")
	note, _ = store.Get(date)
	assert.Equal(t, "updated", note)
}

func TestNoteStore_Delete(t *testing.T) {
	store := NewNoteStore()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	store.Upsert(date, "gone soon")
	store.Delete(date)
	_, ok := store.Get(date)
	assert.False(t, ok)

	// Deleting again is a no-op.
	store.Delete(date)
}

func TestNoteStore_MonthIsSorted(t *testing.T) {
	store := NewNoteStore()
	store.Upsert(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "mid")
	store.Upsert(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "first")
	store.Upsert(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "other month")

	notes := store.Month(2025, time.June)
	require.Len(t, notes, 2)
	assert.Equal(t, "2025-06-01", notes[0].Date)
	assert.Equal(t, "2025-06-15", notes[1].Date)
}

func TestNoteStore_Upcoming(t *testing.T) {
	store := NewNoteStore()
	now := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)

	store.Upsert(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "yesterday")
	store.Upsert(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "today")
	store.Upsert(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "within window")
	store.Upsert(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), "outside window")

	notes := store.Upcoming(now, 14)
	require.Len(t, notes, 2)
	assert.Equal(t, "today", notes[0].Note)
	assert.Equal(t, "within window", notes[1].Note)
}

func TestNoteStore_ConcurrentAccess(t *testing.T) {
	store := NewNoteStore()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			date := base.AddDate(0, 0, i%10)
			store.Upsert(date, fmt.Sprintf("note %d", i))
			store.Get(date)
			store.Month(2025, time.June)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Month(2025, time.June), 10)
}
