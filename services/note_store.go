// services/note_store.go
package services

import (
	"sort"
	"sync"
	"time"

	"bookacut-backend/utils"
)

const noteDateLayout = "2006-01-02"

type DayNote struct {
	Date string `json:"date"` // yyyy-mm-dd
	Note string `json:"note"`
}

// NoteStore holds one free-form note per calendar day, in memory only.
// Safe for concurrent use; contents live for the process lifetime.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[string]string
}

func NewNoteStore() *NoteStore {
	return &NoteStore{notes: make(map[string]string)}
}

func (s *NoteStore) Upsert(date time.Time, note string) {
	key := date.Format(noteDateLayout)
	s.mu.Lock()
	s.notes[key] = note
	s.mu.Unlock()
}

func (s *NoteStore) Delete(date time.Time) {
	key := date.Format(noteDateLayout)
	s.mu.Lock()
	delete(s.notes, key)
	s.mu.Unlock()
}

func (s *NoteStore) Get(date time.Time) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[date.Format(noteDateLayout)]
	return note, ok
}

// Month returns the notes for the given month ordered by date.
func (s *NoteStore) Month(year int, month time.Month) []DayNote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []DayNote
	for key, note := range s.notes {
		d, err := time.Parse(noteDateLayout, key)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, DayNote{Date: key, Note: note})
		}
	}
	sortNotes(out)
	return out
}

// Upcoming returns the notes for today and the following days-1 days,
// ordered by date.
func (s *NoteStore) Upcoming(now time.Time, days int) []DayNote {
	// yyyy-mm-dd keys order lexicographically
	todayKey := utils.BeginningOfDay(now).Format(noteDateLayout)
	endKey := utils.BeginningOfDay(now).AddDate(0, 0, days).Format(noteDateLayout)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []DayNote
	for key, note := range s.notes {
		if key >= todayKey && key < endKey {
			out = append(out, DayNote{Date: key, Note: note})
		}
	}
	sortNotes(out)
	return out
}

func sortNotes(notes []DayNote) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Date < notes[j].Date
	})
}
