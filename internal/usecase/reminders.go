package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/infra/queue"
)

// ReminderDispatchUseCase sweeps for due follow-ups and hands them to the
// reminder queue. It runs from the cron scheduler, not from a user request,
// so it is not auth-scoped. Publishing is best-effort: a failed publish is
// logged and the sweep moves on; the follow-up stays due and is picked up
// again on the next run.
type ReminderDispatchUseCase struct {
	FollowUpRepo entity.FollowUpRepositoryInterface
	Queue        QueueProducerInterface
	Now          func() time.Time
}

func NewReminderDispatchUseCase(followUpRepo entity.FollowUpRepositoryInterface, producer QueueProducerInterface) *ReminderDispatchUseCase {
	return &ReminderDispatchUseCase{
		FollowUpRepo: followUpRepo,
		Queue:        producer,
		Now:          time.Now,
	}
}

// DispatchDue publishes a reminder for every due follow-up and returns how
// many were published. Each follow-up is notified once per due period: a
// successful publish records last_notified, which keeps the record out of
// later sweeps until its due date moves forward again.
func (uc *ReminderDispatchUseCase) DispatchDue(ctx context.Context) (int, error) {
	now := uc.Now()
	due, err := uc.FollowUpRepo.ListDue(ctx, now)
	if err != nil {
		return 0, &StoreError{Op: "list due follow-ups", Err: err}
	}

	published := 0
	for _, d := range due {
		if d.LastNotified != nil && !d.LastNotified.Before(d.NextDueDate) {
			continue
		}
		payload := queue.ReminderPayload{
			FollowUpID:  d.ID,
			ContactID:   d.ContactID,
			ContactName: d.ContactName,
			UserID:      d.UserID,
			OwnerEmail:  d.OwnerEmail,
			Frequency:   string(d.Frequency),
			Notes:       d.Notes,
			DueDate:     d.NextDueDate,
		}
		if err := uc.Queue.PublishReminder(ctx, payload); err != nil {
			logrus.WithError(err).WithField("follow_up_id", d.ID).Error("failed to publish reminder")
			continue
		}
		if err := uc.FollowUpRepo.MarkNotified(ctx, d.ID, now); err != nil {
			logrus.WithError(err).WithField("follow_up_id", d.ID).Error("failed to record reminder dispatch")
		}
		published++
	}

	if published > 0 {
		logrus.WithField("count", published).Info("follow-up reminders dispatched")
	}
	return published, nil
}
