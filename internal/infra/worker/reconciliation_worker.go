package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/infra/http/middleware"
)

// ReconciliationWorker scans for the inconsistency the two-step completion
// flow can leave behind: a contact written to Call Completed whose
// follow-up insert never landed. Mismatches are logged and counted; the
// stage itself is left alone so the user can re-run the prompt.
type ReconciliationWorker struct {
	contactRepo  entity.ContactRepositoryInterface
	tickInterval time.Duration
}

func NewReconciliationWorker(contactRepo entity.ContactRepositoryInterface, tickInterval time.Duration) *ReconciliationWorker {
	return &ReconciliationWorker{
		contactRepo:  contactRepo,
		tickInterval: tickInterval,
	}
}

func (w *ReconciliationWorker) Start(ctx context.Context) {
	logrus.WithField("interval", w.tickInterval).Info("pipeline reconciliation worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.reconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("pipeline reconciliation worker stopped")
			return
		case <-ticker.C:
			w.reconcile(ctx)
		}
	}
}

func (w *ReconciliationWorker) reconcile(ctx context.Context) {
	contacts, err := w.contactRepo.ListCompletedWithoutFollowUp(ctx)
	if err != nil {
		logrus.WithError(err).Error("reconciliation scan failed")
		return
	}

	for _, c := range contacts {
		middleware.RecordReconciliationMismatch()
		logrus.WithFields(logrus.Fields{
			"contact_id": c.ID,
			"user_id":    c.UserID,
		}).Warn("contact in Call Completed with no follow-up record")
	}

	if len(contacts) > 0 {
		logrus.WithField("count", len(contacts)).Warn("pipeline reconciliation found mismatches")
	}
}
