package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrFollowUpNotFound = errors.New("follow-up not found")

// Frequency selects the recurrence interval for a follow-up.
type Frequency string

const (
	FrequencyWeekly     Frequency = "weekly"
	FrequencyBiweekly   Frequency = "biweekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

// frequencyDays is the fixed frequency-to-interval mapping. These constants
// are a deliberate approximation (a "month" is always 30 days) and are part
// of the stored contract; do not make them calendar-aware.
var frequencyDays = map[Frequency]int{
	FrequencyWeekly:     7,
	FrequencyBiweekly:   14,
	FrequencyMonthly:    30,
	FrequencyQuarterly:  90,
	FrequencySemiannual: 180,
	FrequencyAnnual:     365,
}

// frequencyStages maps each frequency to its cadence column on the grow
// track. Completing the funnel moves contacts onto this track by writing
// the cadence stage into the same stage field.
var frequencyStages = map[Frequency]string{
	FrequencyWeekly:     StageWeekly,
	FrequencyBiweekly:   StageBiweekly,
	FrequencyMonthly:    StageMonthly,
	FrequencyQuarterly:  StageQuarterly,
	FrequencySemiannual: StageSemiannual,
	FrequencyAnnual:     StageAnnual,
}

func (f Frequency) Valid() bool {
	_, ok := frequencyDays[f]
	return ok
}

// Days returns the fixed day count added to "now" when computing due dates.
func (f Frequency) Days() int {
	return frequencyDays[f]
}

// Stage returns the grow-track stage identifier for this frequency.
func (f Frequency) Stage() string {
	return frequencyStages[f]
}

// NextDueFrom computes the due date the scheduler writes: always forward
// from the reference instant, never from the previous due date.
func (f Frequency) NextDueFrom(now time.Time) time.Time {
	return now.AddDate(0, 0, f.Days())
}

// Follow-up statuses.
const (
	FollowUpPending   = "pending"
	FollowUpCompleted = "completed"
	FollowUpSnoozed   = "snoozed"
)

// FollowUp is a recurring reminder attached to exactly one contact. A
// contact has at most one active follow-up; rescheduling updates in place.
type FollowUp struct {
	ID            string     `json:"id"`
	ContactID     string     `json:"contact_id"`
	UserID        string     `json:"user_id"`
	Frequency     Frequency  `json:"frequency"`
	NextDueDate   time.Time  `json:"next_due_date"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
	LastNotified  *time.Time `json:"last_notified,omitempty"`
	Status        string     `json:"status"`
	SnoozeUntil   *time.Time `json:"snooze_until,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewFollowUp creates a pending follow-up due one interval from now.
func NewFollowUp(contactID, userID string, frequency Frequency, notes string, now time.Time) *FollowUp {
	return &FollowUp{
		ID:          uuid.New().String(),
		ContactID:   contactID,
		UserID:      userID,
		Frequency:   frequency,
		NextDueDate: frequency.NextDueFrom(now),
		Status:      FollowUpPending,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DueFollowUp is the read model for the reminder sweep: the follow-up plus
// the joined contact name and owner address the mail needs.
type DueFollowUp struct {
	FollowUp
	ContactName string `json:"contact_name"`
	OwnerEmail  string `json:"owner_email"`
}

// FollowUpRepositoryInterface defines persistence for follow-ups, scoped to
// the owning user like the contact repository.
type FollowUpRepositoryInterface interface {
	Insert(ctx context.Context, f *FollowUp) error
	FindByID(ctx context.Context, id, userID string) (*FollowUp, error)
	FindByContact(ctx context.Context, contactID, userID string) (*FollowUp, error)
	Update(ctx context.Context, f *FollowUp) error
	Delete(ctx context.Context, id, userID string) error
	// ListDue returns pending follow-ups whose due date has arrived, whose
	// snooze window (if any) has elapsed, and that have not yet been
	// notified for the current due period.
	ListDue(ctx context.Context, now time.Time) ([]*DueFollowUp, error)
	// MarkNotified records that a reminder went out for the current due
	// period, so repeated sweeps do not re-send it.
	MarkNotified(ctx context.Context, id string, at time.Time) error
}
