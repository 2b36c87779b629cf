// Package reminders keeps user-registered custom reminders. The store is
// registration-only: nothing reads it back to deliver anything, which
// mirrors the bot's current behavior. Records live in memory for the
// process lifetime.
package reminders

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/types"
	"github.com/pkg/errors"
)

// timePattern accepts 24-hour HH:MM, with an optional leading zero on the
// hour ("9:30" and "09:30" both pass, "9:5" does not).
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ErrInvalidTime means the requested time did not match HH:MM.
var ErrInvalidTime = errors.New("time must be in HH:MM format")

// frequencyLabels maps the frequency vocabulary to the character's words.
// Anything outside the vocabulary reads as daily.
var frequencyLabels = map[string]string{
	"daily":    "毎日",
	"weekdays": "平日",
	"weekends": "週末",
	"once":     "一回のみ",
}

// Request is one registration attempt from a user.
type Request struct {
	Time         string
	Message      string
	Where        string
	Personalized string
	Frequency    string
	ChannelID    string
	UserID       string
}

// Store is an append-only map of reminder ID to record. A single mutex
// serializes inserts so simultaneous registrations cannot lose entries.
type Store struct {
	mu      sync.Mutex
	entries map[string]types.CustomReminder
	rng     *rand.Rand
	now     func() time.Time
}

// NewStore returns an empty store. A nil rng gets a time-seeded source.
func NewStore(rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		entries: make(map[string]types.CustomReminder),
		rng:     rng,
		now:     time.Now,
	}
}

// Register validates the request, stores a record, and returns it. A time
// that does not match HH:MM returns ErrInvalidTime and stores nothing.
func (s *Store) Register(req Request) (types.CustomReminder, error) {
	if !timePattern.MatchString(req.Time) {
		return types.CustomReminder{}, ErrInvalidTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := s.newID(now)
	rec := types.CustomReminder{
		ID:                  id,
		Time:                req.Time,
		Message:             req.Message,
		Where:               req.Where,
		PersonalizedMessage: req.Personalized,
		Frequency:           req.Frequency,
		ChannelID:           req.ChannelID,
		UserID:              req.UserID,
		CreatedAt:           now,
	}
	s.entries[id] = rec
	return rec, nil
}

// newID builds "<unix>_<4 digits>". Rapid registrations share the unix
// second, so redraw the suffix until the ID is unused. Caller holds mu.
func (s *Store) newID(now time.Time) string {
	for {
		id := fmt.Sprintf("%d_%04d", now.Unix(), 1000+s.rng.Intn(9000))
		if _, taken := s.entries[id]; !taken {
			return id
		}
	}
}

// Len reports how many reminders have been registered.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Snapshot copies the current records, for status output and tests.
func (s *Store) Snapshot() map[string]types.CustomReminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]types.CustomReminder, len(s.entries))
	for id, rec := range s.entries {
		out[id] = rec
	}
	return out
}

// Confirmation renders the registration acknowledgement in the
// character's voice, echoing frequency, time, task, and location.
func Confirmation(rec types.CustomReminder) string {
	freq, ok := frequencyLabels[rec.Frequency]
	if !ok {
		freq = frequencyLabels["daily"]
	}
	where := ""
	if rec.Where != "" {
		where = fmt.Sprintf("（%s）", rec.Where)
	}
	return fmt.Sprintf("よし、設定完了だ！%sの%sに「%s」%sのリマインドを送るからな", freq, rec.Time, rec.Message, where)
}

// RejectInvalidTime is the user-facing correction for a bad time string.
const RejectInvalidTime = "おい、時間の形式が間違ってるぞ。「14:30」みたいに入力してくれ"
