package schedule

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Defaults match the long-standing bot behavior: reminders at 09:00,
// 14:00, and 18:00, announcements on Monday/Wednesday/Friday at 12:00.
var (
	DefaultReminderHours    = []int{9, 14, 18}
	DefaultAnnouncementDays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
)

// DefaultAnnouncementHour is the hour announcements go out on trigger days.
const DefaultAnnouncementHour = 12

// Evaluator decides whether a scheduled send is due at a given instant.
// It is a pure predicate over the supplied timestamp: it keeps no record
// of what was already sent, so callers polling faster than once per hour
// need their own de-duplication.
type Evaluator struct {
	reminderHours    map[int]bool
	announcementDays map[time.Weekday]bool
	announcementHour int
}

// NewEvaluator builds an evaluator from configured trigger rules. Empty
// slices fall back to the defaults; a nil hour keeps the default hour.
func NewEvaluator(reminderHours []int, announcementDays []time.Weekday, announcementHour *int) Evaluator {
	if len(reminderHours) == 0 {
		reminderHours = DefaultReminderHours
	}
	if len(announcementDays) == 0 {
		announcementDays = DefaultAnnouncementDays
	}
	hour := DefaultAnnouncementHour
	if announcementHour != nil {
		hour = *announcementHour
	}

	e := Evaluator{
		reminderHours:    make(map[int]bool, len(reminderHours)),
		announcementDays: make(map[time.Weekday]bool, len(announcementDays)),
		announcementHour: hour,
	}
	for _, h := range reminderHours {
		e.reminderHours[h] = true
	}
	for _, d := range announcementDays {
		e.announcementDays[d] = true
	}
	return e
}

// ReminderDue reports whether now falls in a reminder trigger hour.
func (e Evaluator) ReminderDue(now time.Time) bool {
	return e.reminderHours[now.Hour()]
}

// AnnouncementDue reports whether now is a trigger day at the trigger hour.
func (e Evaluator) AnnouncementDue(now time.Time) bool {
	return e.announcementDays[now.Weekday()] && now.Hour() == e.announcementHour
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekdays converts config day names like "monday" into weekdays.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errors.Errorf("unknown weekday %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}
