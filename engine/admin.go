// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"log/slog"

	"github.com/nguyennhimbth/EVMSimulator/audit"
	"github.com/nguyennhimbth/EVMSimulator/auth"
)

// AdminAuthenticate verifies the admin password and issues a session.
func (e *Engine) AdminAuthenticate(password string) (auth.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, err := e.gate.Authenticate(password)
	if err != nil {
		slog.Warn("admin authentication failed")
		return auth.Session{}, err
	}
	slog.Info("admin authenticated", "session_id", sess.ID)
	return sess, nil
}

// AdminOpen transitions the voting period Closed -> Open.
func (e *Engine) AdminOpen(s auth.Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gate.Valid(s) {
		return auth.ErrUnauthenticated
	}
	if err := e.period.Open(); err != nil {
		return err
	}
	if err := e.persist(); err != nil {
		e.period.Restore(false)
		return fmt.Errorf("failed to persist open transition: %w", err)
	}

	e.log.Record(audit.EventVotingOpened, "")
	slog.Info("voting opened", "candidates", e.reg.Len())
	return nil
}

// AdminClose transitions the voting period Open -> Closed.
func (e *Engine) AdminClose(s auth.Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gate.Valid(s) {
		return auth.ErrUnauthenticated
	}
	if err := e.period.Close(); err != nil {
		return err
	}
	if err := e.persist(); err != nil {
		e.period.Restore(true)
		return fmt.Errorf("failed to persist close transition: %w", err)
	}

	e.log.Record(audit.EventVotingClosed, "")
	slog.Info("voting closed", "total_votes", e.totalVotes)
	return nil
}

// AdminAddCandidate registers a new candidate and returns its ID.
func (e *Engine) AdminAddCandidate(s auth.Session, name string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gate.Valid(s) {
		return 0, auth.ErrUnauthenticated
	}

	prev := e.snapshot()
	id, err := e.reg.Add(name)
	if err != nil {
		return 0, err
	}
	if err := e.persist(); err != nil {
		e.restore(prev)
		return 0, fmt.Errorf("failed to persist candidate: %w", err)
	}

	cand, _ := e.reg.Get(id)
	e.log.Record(audit.EventCandidateAdded, cand.Name)
	slog.Info("candidate added", "candidate_id", id, "name", cand.Name)
	return id, nil
}

// AdminRemoveCandidate deletes a candidate. Refused while voting is open.
func (e *Engine) AdminRemoveCandidate(s auth.Session, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gate.Valid(s) {
		return auth.ErrUnauthenticated
	}

	prev := e.snapshot()
	cand, err := e.reg.Get(id)
	if err != nil {
		return err
	}
	if err := e.reg.Remove(id); err != nil {
		return err
	}
	if err := e.persist(); err != nil {
		e.restore(prev)
		return fmt.Errorf("failed to persist removal: %w", err)
	}

	e.log.Record(audit.EventCandidateRemoved, cand.Name)
	slog.Info("candidate removed", "candidate_id", id, "name", cand.Name)
	return nil
}

// AdminRenameCandidate changes a candidate's name, keeping its votes.
// Refused while voting is open.
func (e *Engine) AdminRenameCandidate(s auth.Session, id int, newName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gate.Valid(s) {
		return auth.ErrUnauthenticated
	}

	prev := e.snapshot()
	old, err := e.reg.Get(id)
	if err != nil {
		return err
	}
	if err := e.reg.Rename(id, newName); err != nil {
		return err
	}
	if err := e.persist(); err != nil {
		e.restore(prev)
		return fmt.Errorf("failed to persist rename: %w", err)
	}

	renamed, _ := e.reg.Get(id)
	e.log.Record(audit.EventCandidateRenamed, old.Name+" -> "+renamed.Name)
	slog.Info("candidate renamed", "candidate_id", id, "name", renamed.Name)
	return nil
}

// AdminResetVotes zeroes every counter and the cumulative total. This is
// the one destructive operation: it demands a fresh password check via
// RequireReauth regardless of how recently the session authenticated.
// Fails atomically; a persistence error leaves every counter intact.
func (e *Engine) AdminResetVotes(s auth.Session, reauthPassword string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gate.RequireReauth(s, reauthPassword); err != nil {
		slog.Warn("vote reset refused", "error", err)
		return err
	}

	prev := e.snapshot()
	e.reg.ResetVotes()
	e.totalVotes = 0

	if err := e.persist(); err != nil {
		e.restore(prev)
		return fmt.Errorf("failed to persist reset: %w", err)
	}

	e.log.Record(audit.EventVotesReset, fmt.Sprintf("%d votes cleared", prev.TotalVotes))
	slog.Info("all votes reset", "cleared", prev.TotalVotes)
	return nil
}

// AdminChangePassword replaces the admin credential. The gate persists
// the new credential before adopting it, so a failed save changes nothing.
func (e *Engine) AdminChangePassword(s auth.Session, newPassword string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gate.ChangePassword(s, newPassword); err != nil {
		return err
	}

	e.log.Record(audit.EventPasswordChanged, "")
	slog.Info("admin password changed")
	return nil
}
