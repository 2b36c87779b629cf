package schedule

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/content"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	reminders     []string
	announcements []string
	err           error
}

func (f *fakeSender) SendReminder(ctx context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.reminders = append(f.reminders, message)
	return nil
}

func (f *fakeSender) SendAnnouncement(ctx context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.announcements = append(f.announcements, message)
	return nil
}

func testStore(t *testing.T) *content.Store {
	t.Helper()
	reminders := content.NewPool(content.ReminderFallback)
	require.NoError(t, json.Unmarshal([]byte(`{"daily_reminders": ["朝だぞ"]}`), &reminders))
	announcements := content.NewPool(content.AnnouncementFallback)
	require.NoError(t, json.Unmarshal([]byte(`{"motivational": ["頑張ろうぜ"]}`), &announcements))
	return content.NewStore(reminders, announcements, rand.New(rand.NewSource(1)))
}

func TestReminderTickSendsWhenDue(t *testing.T) {
	sender := &fakeSender{}
	s := NewScheduler(NewEvaluator(nil, nil, nil), testStore(t), sender, nil, true, true)
	s.now = func() time.Time { return mondayAt(9) }

	s.reminderTick(context.Background())

	require.Len(t, sender.reminders, 1)
	assert.Equal(t, "朝だぞ", sender.reminders[0])
}

func TestReminderTickSkipsOffHours(t *testing.T) {
	sender := &fakeSender{}
	s := NewScheduler(NewEvaluator(nil, nil, nil), testStore(t), sender, nil, true, true)
	s.now = func() time.Time { return mondayAt(10) }

	s.reminderTick(context.Background())

	assert.Empty(t, sender.reminders)
}

func TestAnnouncementTickSendsWhenDue(t *testing.T) {
	sender := &fakeSender{}
	s := NewScheduler(NewEvaluator(nil, nil, nil), testStore(t), sender, nil, true, true)
	s.now = func() time.Time { return mondayAt(12) }

	s.announcementTick(context.Background())

	require.Len(t, sender.announcements, 1)
	assert.Equal(t, "頑張ろうぜ", sender.announcements[0])
}

func TestTickDropsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("channel not found")}
	s := NewScheduler(NewEvaluator(nil, nil, nil), testStore(t), sender, nil, true, true)
	s.now = func() time.Time { return mondayAt(9) }

	// A failed send is logged and dropped; the tick must not panic or
	// retry.
	s.reminderTick(context.Background())
	assert.Empty(t, sender.reminders)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	sender := &fakeSender{}
	s := NewScheduler(NewEvaluator(nil, nil, nil), testStore(t), sender, nil, true, true)
	s.interval = 10 * time.Millisecond
	s.now = func() time.Time { return mondayAt(10) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
