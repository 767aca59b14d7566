// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/nguyennhimbth/EVMSimulator/audit"
	"github.com/nguyennhimbth/EVMSimulator/auth"
	"github.com/nguyennhimbth/EVMSimulator/models"
	"github.com/nguyennhimbth/EVMSimulator/period"
	"github.com/nguyennhimbth/EVMSimulator/registry"
	"github.com/nguyennhimbth/EVMSimulator/store"
)

var (
	ErrVotingClosed     = errors.New("voting period is closed")
	ErrInvalidCandidate = errors.New("unknown candidate")
)

// Persister is the slice of the persistence layer the engine drives.
// *store.Store satisfies it; tests substitute failing implementations.
type Persister interface {
	LoadState() (models.PersistedState, error)
	SaveState(models.PersistedState) error
}

// Engine owns the voting state and exposes every operation the UI layer
// consumes. One mutex serializes each mutating operation across its whole
// read-validate-mutate-persist span; interleaving two casts between
// validation and persistence would double-count.
//
// Every mutation follows the same shape: snapshot, mutate in memory,
// persist, and on persistence failure restore the snapshot and report the
// operation as failed. Audit events are recorded only after persistence
// succeeds.
type Engine struct {
	mu sync.Mutex

	store Persister
	gate  *auth.Gate
	log   audit.Log

	reg        *registry.Registry
	period     *period.Controller
	totalVotes int
}

// New loads persisted state and assembles the engine. A missing state
// file starts fresh; a corrupt one is logged and also starts fresh, per
// the recover-the-affected-file-only policy. The credential file is
// handled independently by the auth gate.
func New(p Persister, gate *auth.Gate, log audit.Log) (*Engine, error) {
	e := &Engine{store: p, gate: gate, log: log}
	e.reg = registry.New(func() bool { return e.period.IsOpen() })
	e.period = period.New(e.reg.Len)

	st, err := p.LoadState()
	if err != nil {
		if !errors.Is(err, store.ErrCorruptData) {
			return nil, err
		}
		slog.Warn("state file corrupt, starting with fresh state", "error", err)
		st = models.PersistedState{Candidates: []models.Candidate{}}
	}
	e.restore(st)

	slog.Info("voting engine ready",
		"candidates", e.reg.Len(),
		"voting_open", e.period.IsOpen(),
		"total_votes", e.totalVotes,
	)
	return e, nil
}

// VotingStatus reports whether the voting period is open.
func (e *Engine) VotingStatus() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.period.IsOpen()
}

// ListCandidates returns a snapshot of the registry in registration order.
func (e *Engine) ListCandidates() []models.Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.List()
}

// snapshot captures the current in-memory state in persisted form.
func (e *Engine) snapshot() models.PersistedState {
	return models.PersistedState{
		Candidates: e.reg.List(),
		VotingOpen: e.period.IsOpen(),
		TotalVotes: e.totalVotes,
	}
}

// restore overwrites the in-memory state wholesale. Used at load time and
// to roll back a mutation whose persistence failed.
func (e *Engine) restore(st models.PersistedState) {
	e.reg.Restore(st.Candidates)
	e.period.Restore(st.VotingOpen)
	e.totalVotes = st.TotalVotes
}

// persist makes the current in-memory state durable.
func (e *Engine) persist() error {
	return e.store.SaveState(e.snapshot())
}
