package usecase

import (
	"context"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/infra/queue"
)

// AuthContext resolves the authenticated user for a request. Implementations
// read the identity the auth middleware placed on the context and must
// return a *NotAuthenticatedError when there is none.
type AuthContext interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
}

// QueueProducerInterface publishes follow-up reminder payloads for the
// mail worker.
type QueueProducerInterface interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}
