package notifications

import (
	"context"
	"fmt"
	"time"

	"studio/pkg/config"
	"studio/pkg/model"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

type BookingFinder interface {
	FindByEventDate(ctx context.Context, eventDate string) ([]*model.Booking, error)
}

// ReminderJob messages every customer whose event is tomorrow in the studio
// timezone.
type ReminderJob struct {
	bookings BookingFinder
	notifier *Notifier
	cfg      *config.Config
	now      func() time.Time
}

func NewReminderJob(bookings BookingFinder, notifier *Notifier, cfg *config.Config) *ReminderJob {
	return &ReminderJob{bookings: bookings, notifier: notifier, cfg: cfg, now: time.Now}
}

func (j *ReminderJob) tomorrow() string {
	today := now.With(j.now().In(j.cfg.Location)).BeginningOfDay()
	return today.AddDate(0, 0, 1).Format(model.EventDateLayout)
}

// Run sends the reminders and returns how many were sent. One failed
// message does not stop the rest.
func (j *ReminderJob) Run(ctx context.Context) (int, error) {
	date := j.tomorrow()

	bookings, err := j.bookings.FindByEventDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("find bookings for %s: %w", date, err)
	}

	sent := 0
	for _, b := range bookings {
		if b.Status == model.StatusCancelled {
			continue
		}
		body := reminderMessage(j.notifier.studio, b.CustomerName, b.PackageName, b.EventDate)
		delivered, err := j.notifier.send(ctx, b.ID, b.CustomerPhone, body)
		if err != nil {
			j.cfg.Log.Error("Failed to send reminder", "booking_id", b.ID, "error", err)
			continue
		}
		if delivered {
			sent++
		}
	}

	j.cfg.Log.Info("Reminders processed", "event_date", date, "bookings", len(bookings), "sent", sent)
	return sent, nil
}

// Start schedules Run on the configured cron spec in the studio timezone.
// Stop the returned cron to end it.
func (j *ReminderJob) Start(ctx context.Context) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(j.cfg.Location))
	_, err := c.AddFunc(j.cfg.ReminderCron, func() {
		if _, err := j.Run(ctx); err != nil {
			j.cfg.Log.Error("Reminder run failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", j.cfg.ReminderCron, err)
	}

	c.Start()
	j.cfg.Log.Info("Reminder scheduler started", "schedule", j.cfg.ReminderCron, "timezone", j.cfg.Location.String())
	return c, nil
}
