package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/usecase"
)

// ReminderScheduler periodically sweeps due follow-ups into the reminder
// queue. The sweep itself is idempotent from the queue's point of view: a
// follow-up stays due until the user completes or snoozes it, so repeated
// sweeps re-publish rather than lose reminders.
type ReminderScheduler struct {
	cronEngine *cron.Cron
	dispatch   *usecase.ReminderDispatchUseCase
	cronSpec   string
}

func NewReminderScheduler(dispatch *usecase.ReminderDispatchUseCase, cronSpec string) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		dispatch:   dispatch,
		cronSpec:   cronSpec,
	}
}

func (s *ReminderScheduler) Start() {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		count, err := s.dispatch.DispatchDue(ctx)
		if err != nil {
			logrus.WithError(err).Error("reminder sweep failed")
			return
		}
		logrus.WithField("dispatched", count).Debug("reminder sweep finished")
	})
	if err != nil {
		logrus.Fatalf("could not add reminder sweep cron job: %v", err)
	}

	s.cronEngine.Start()
	logrus.WithField("spec", s.cronSpec).Info("reminder scheduler started")
}

func (s *ReminderScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	logrus.Info("reminder scheduler stopped")
}
