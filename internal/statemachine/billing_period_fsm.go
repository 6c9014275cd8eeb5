package statemachine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/looplab/fsm"
	"github.com/sjperalta/statutory-api/internal/models"
)

// ErrTransitionNotAllowed is returned when an event is not valid from the
// current state
var ErrTransitionNotAllowed = errors.New("transition not allowed")

// BillingPeriodFSM wraps a billing period with its state machine.
// draft → finalized is the only transition; finalized is terminal.
type BillingPeriodFSM struct {
	period *models.BillingPeriod
	fsm    *fsm.FSM
	now    func() time.Time
}

// NewBillingPeriodFSM creates a new billing period state machine
func NewBillingPeriodFSM(period *models.BillingPeriod) *BillingPeriodFSM {
	bpfsm := &BillingPeriodFSM{
		period: period,
		now:    time.Now,
	}

	bpfsm.fsm = fsm.NewFSM(
		period.Status,
		fsm.Events{
			// draft → finalized
			{Name: "finalize", Src: []string{models.BillingPeriodStatusDraft}, Dst: models.BillingPeriodStatusFinalized},
		},
		fsm.Callbacks{
			"enter_" + models.BillingPeriodStatusFinalized: func(_ context.Context, _ *fsm.Event) {
				at := bpfsm.now()
				bpfsm.period.FinalizedAt = &at
			},
		},
	)

	return bpfsm
}

// Finalize transitions the period to finalized
func (b *BillingPeriodFSM) Finalize(ctx context.Context) error {
	if !b.period.MayFinalize() {
		return fmt.Errorf("billing period %d cannot be finalized in state %q: %w",
			b.period.ID, b.period.Status, ErrTransitionNotAllowed)
	}

	if err := b.fsm.Event(ctx, "finalize"); err != nil {
		return fmt.Errorf("failed to finalize billing period: %w", err)
	}

	b.period.Status = b.fsm.Current()
	return nil
}

// Current returns the current state
func (b *BillingPeriodFSM) Current() string {
	return b.fsm.Current()
}

// Can returns true if the event can be triggered
func (b *BillingPeriodFSM) Can(event string) bool {
	return b.fsm.Can(event)
}
