package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"
	"github.com/sjperalta/statutory-api/internal/models"
)

// Computation lock states
const (
	LockStateUnlocked = "unlocked"
	LockStateLocked   = "locked"
)

// ComputationLockFSM drives the locked flag of a statutory computation.
// The flag is independent of the billing period status.
type ComputationLockFSM struct {
	computation *models.StatutoryComputation
	fsm         *fsm.FSM
	now         func() time.Time
}

func lockState(c *models.StatutoryComputation) string {
	if c.Locked {
		return LockStateLocked
	}
	return LockStateUnlocked
}

// NewComputationLockFSM creates a new computation lock state machine
func NewComputationLockFSM(computation *models.StatutoryComputation) *ComputationLockFSM {
	clfsm := &ComputationLockFSM{
		computation: computation,
		now:         time.Now,
	}

	clfsm.fsm = fsm.NewFSM(
		lockState(computation),
		fsm.Events{
			{Name: "lock", Src: []string{LockStateUnlocked}, Dst: LockStateLocked},
			{Name: "unlock", Src: []string{LockStateLocked}, Dst: LockStateUnlocked},
		},
		fsm.Callbacks{
			"enter_" + LockStateLocked: func(_ context.Context, _ *fsm.Event) {
				at := clfsm.now()
				clfsm.computation.Locked = true
				clfsm.computation.LockedAt = &at
			},
			"enter_" + LockStateUnlocked: func(_ context.Context, _ *fsm.Event) {
				clfsm.computation.Locked = false
				clfsm.computation.LockedAt = nil
			},
		},
	)

	return clfsm
}

// Lock transitions the computation to locked
func (c *ComputationLockFSM) Lock(ctx context.Context) error {
	if !c.computation.MayLock() {
		return fmt.Errorf("computation %d is already locked: %w", c.computation.ID, ErrTransitionNotAllowed)
	}

	if err := c.fsm.Event(ctx, "lock"); err != nil {
		return fmt.Errorf("failed to lock computation: %w", err)
	}
	return nil
}

// Unlock transitions the computation to unlocked
func (c *ComputationLockFSM) Unlock(ctx context.Context) error {
	if !c.computation.MayUnlock() {
		return fmt.Errorf("computation %d is not locked: %w", c.computation.ID, ErrTransitionNotAllowed)
	}

	if err := c.fsm.Event(ctx, "unlock"); err != nil {
		return fmt.Errorf("failed to unlock computation: %w", err)
	}
	return nil
}

// Current returns the current state
func (c *ComputationLockFSM) Current() string {
	return c.fsm.Current()
}

// Can returns true if the event can be triggered
func (c *ComputationLockFSM) Can(event string) bool {
	return c.fsm.Can(event)
}
