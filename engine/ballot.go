// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nguyennhimbth/EVMSimulator/registry"
)

// CastVote validates and applies a single ballot: exactly one candidate's
// counter and the cumulative total go up by exactly one, and the vote is
// durable before the call reports success. On persistence failure the
// increments are rolled back and the error surfaced; the caller must
// assume the vote did not happen.
//
// Preventing the same physical voter from calling twice is the UI layer's
// contract, not this one's.
func (e *Engine) CastVote(candidateID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.period.IsOpen() {
		return ErrVotingClosed
	}

	prev := e.snapshot()

	if err := e.reg.IncrementVote(candidateID); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrInvalidCandidate, candidateID)
		}
		return err
	}
	e.totalVotes++

	if err := e.persist(); err != nil {
		e.restore(prev)
		return fmt.Errorf("failed to persist vote: %w", err)
	}

	// No audit record here: the log must not let anyone correlate ballot
	// times with candidates.
	slog.Info("vote cast", "total_votes", e.totalVotes)
	return nil
}
