package schedule

import (
	"context"
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/content"
	"github.com/KASHINO-SHINO/SYOUYA/logging"
	"github.com/KASHINO-SHINO/SYOUYA/metrics"
	"golang.org/x/sync/errgroup"
)

// Sender posts a rendered scheduled message to the default channel.
type Sender interface {
	SendReminder(ctx context.Context, message string) error
	SendAnnouncement(ctx context.Context, message string) error
}

// Scheduler runs the reminder and announcement loops. The loops are
// independent: a slow or failing send in one never stalls the other.
// Ticks poll the evaluator once per hour, so a due window fires at most
// once and a window missed during downtime is skipped, not caught up.
type Scheduler struct {
	eval     Evaluator
	store    *content.Store
	sender   Sender
	logger   *logging.Logger
	interval time.Duration

	remindersEnabled     bool
	announcementsEnabled bool

	// now is swappable for tests.
	now func() time.Time
}

// NewScheduler wires the evaluator, content store, and outbound sender.
func NewScheduler(eval Evaluator, store *content.Store, sender Sender, logger *logging.Logger, remindersEnabled, announcementsEnabled bool) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{
		eval:                 eval,
		store:                store,
		sender:               sender,
		logger:               logger,
		interval:             time.Hour,
		remindersEnabled:     remindersEnabled,
		announcementsEnabled: announcementsEnabled,
		now:                  time.Now,
	}
}

// Run starts the enabled loops and blocks until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	var eg errgroup.Group
	if s.remindersEnabled {
		eg.Go(func() error {
			return s.loop(ctx, "reminder", s.reminderTick)
		})
	}
	if s.announcementsEnabled {
		eg.Go(func() error {
			return s.loop(ctx, "announcement", s.announcementTick)
		})
	}
	return eg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, name string, tick func(ctx context.Context)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler loop started", "loop", name, "interval", s.interval.String())

	// Evaluate once at startup so a launch inside a trigger window
	// still posts.
	tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler loop shutting down", "loop", name)
			return ctx.Err()
		case <-ticker.C:
			tick(ctx)
		}
	}
}

// reminderTick posts one random reminder when the current hour is a
// trigger hour. Send failures are logged and dropped for this tick.
func (s *Scheduler) reminderTick(ctx context.Context) {
	now := s.now()
	if !s.eval.ReminderDue(now) {
		return
	}

	message := s.store.Reminder("")
	if err := s.sender.SendReminder(ctx, message); err != nil {
		s.logger.Error("failed to send scheduled reminder", "error", err.Error(), "hour", now.Hour())
		metrics.ScheduledSendTotal.WithLabelValues("reminder", "false").Inc()
		return
	}
	s.logger.Info("sent scheduled reminder", "hour", now.Hour())
	metrics.ScheduledSendTotal.WithLabelValues("reminder", "true").Inc()
	metrics.ReminderSentCount.Add(1)
}

// announcementTick posts one random announcement on trigger days at the
// trigger hour.
func (s *Scheduler) announcementTick(ctx context.Context) {
	now := s.now()
	if !s.eval.AnnouncementDue(now) {
		return
	}

	message := s.store.Announcement("")
	if err := s.sender.SendAnnouncement(ctx, message); err != nil {
		s.logger.Error("failed to send scheduled announcement", "error", err.Error(), "weekday", now.Weekday().String())
		metrics.ScheduledSendTotal.WithLabelValues("announcement", "false").Inc()
		return
	}
	s.logger.Info("sent scheduled announcement", "weekday", now.Weekday().String())
	metrics.ScheduledSendTotal.WithLabelValues("announcement", "true").Inc()
	metrics.AnnouncementSentCount.Add(1)
}
