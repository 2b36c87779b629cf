package content

import (
	"math/rand"
	"sync"
	"time"
)

// Store holds the reminder and announcement pools. Pools are read-only
// after load; only the random source needs guarding because command
// handlers and both scheduler loops draw concurrently.
type Store struct {
	reminders     Pool
	announcements Pool

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStore builds a store over the two loaded pools. Pass a seeded rng for
// deterministic draws in tests; nil gets a time-seeded source.
func NewStore(reminders, announcements Pool, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		reminders:     reminders,
		announcements: announcements,
		rng:           rng,
	}
}

// Reminder draws one reminder, from the named category when it exists,
// otherwise from all categories combined.
func (s *Store) Reminder(category string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.Pick(s.rng, category)
}

// Announcement draws one announcement the same way Reminder does.
func (s *Store) Announcement(category string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.announcements.Pick(s.rng, category)
}

// ReminderCategories lists the reminder category names for help text.
func (s *Store) ReminderCategories() []string {
	return s.reminders.Categories()
}

// AnnouncementCategories lists the announcement category names.
func (s *Store) AnnouncementCategories() []string {
	return s.announcements.Categories()
}
