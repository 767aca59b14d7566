// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package period

import "errors"

var (
	ErrAlreadyOpen   = errors.New("voting period already open")
	ErrAlreadyClosed = errors.New("voting period already closed")
	ErrNoCandidates  = errors.New("no candidates registered")
)

// Controller is the Closed/Open state machine gating vote acceptance.
// Initial state is Closed. Transitions happen only via Open and Close;
// Restore exists for loading persisted state and for rollback when a
// transition fails to persist.
type Controller struct {
	candidateCount func() int
	open           bool
}

// New creates a Controller in the Closed state. candidateCount reports
// the current registry size; opening an empty election is refused.
func New(candidateCount func() int) *Controller {
	return &Controller{candidateCount: candidateCount}
}

// Restore sets the state unconditionally.
func (c *Controller) Restore(open bool) {
	c.open = open
}

// IsOpen reports whether ballots are currently accepted.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Open transitions Closed -> Open. There must be at least one candidate.
func (c *Controller) Open() error {
	if c.open {
		return ErrAlreadyOpen
	}
	if c.candidateCount() == 0 {
		return ErrNoCandidates
	}
	c.open = true
	return nil
}

// Close transitions Open -> Closed.
func (c *Controller) Close() error {
	if !c.open {
		return ErrAlreadyClosed
	}
	c.open = false
	return nil
}
