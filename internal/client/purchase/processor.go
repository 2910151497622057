package purchase

import (
	"context"
	"time"

	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/google/uuid"
)

// DefaultConfirmDelay is how long SimulatedProcessor takes to accept an
// order.
const DefaultConfirmDelay = 2 * time.Second

// Order is what the buyer confirms in the last step.
type Order struct {
	SessionID     uuid.UUID
	Course        models.Course
	Method        PaymentMethod
	TransactionID string
	Evidence      *models.Attachment
}

// Processor completes a confirmed order.
type Processor interface {
	Process(ctx context.Context, o Order) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, o Order) error

func (f ProcessorFunc) Process(ctx context.Context, o Order) error { return f(ctx, o) }

// SimulatedProcessor accepts every order after Delay. The backend has no
// purchase endpoint yet.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p SimulatedProcessor) Process(ctx context.Context, _ Order) error {
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
