// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"errors"
	"testing"

	"github.com/nguyennhimbth/EVMSimulator/audit"
	"github.com/nguyennhimbth/EVMSimulator/auth"
	"github.com/nguyennhimbth/EVMSimulator/engine"
	"github.com/nguyennhimbth/EVMSimulator/models"
	"github.com/nguyennhimbth/EVMSimulator/store"
)

// ErrSaveFailed is returned by a FailingStore whose FailSaves flag is set.
var ErrSaveFailed = errors.New("injected save failure")

// FailingStore wraps a real Store and fails saves on demand, for
// exercising rollback paths. Loads always pass through.
type FailingStore struct {
	*store.Store
	FailSaves bool
}

func (f *FailingStore) SaveState(st models.PersistedState) error {
	if f.FailSaves {
		return ErrSaveFailed
	}
	return f.Store.SaveState(st)
}

func (f *FailingStore) SaveCredential(cred models.AdminCredential) error {
	if f.FailSaves {
		return ErrSaveFailed
	}
	return f.Store.SaveCredential(cred)
}

// NewTestEngine builds an engine over a fresh temp directory with a nop
// audit sink and the default admin password. The returned FailingStore
// lets tests inject persistence failures mid-scenario.
func NewTestEngine(t *testing.T) (*engine.Engine, *FailingStore) {
	t.Helper()

	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	fs := &FailingStore{Store: st}

	gate, err := auth.NewGate(fs, auth.DefaultPassword)
	if err != nil {
		t.Fatalf("Failed to create auth gate: %v", err)
	}

	eng, err := engine.New(fs, gate, audit.Nop{})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return eng, fs
}

// AdminSession authenticates with the default password.
func AdminSession(t *testing.T, eng *engine.Engine) auth.Session {
	t.Helper()

	sess, err := eng.AdminAuthenticate(auth.DefaultPassword)
	if err != nil {
		t.Fatalf("Failed to authenticate admin: %v", err)
	}
	return sess
}

// SeedCandidates registers the given names and returns their IDs.
func SeedCandidates(t *testing.T, eng *engine.Engine, sess auth.Session, names ...string) []int {
	t.Helper()

	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, err := eng.AdminAddCandidate(sess, name)
		if err != nil {
			t.Fatalf("Failed to add candidate %q: %v", name, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// OpenVoting opens the voting period.
func OpenVoting(t *testing.T, eng *engine.Engine, sess auth.Session) {
	t.Helper()

	if err := eng.AdminOpen(sess); err != nil {
		t.Fatalf("Failed to open voting: %v", err)
	}
}

// VoteCount returns the current counter for a candidate ID.
func VoteCount(t *testing.T, eng *engine.Engine, id int) int {
	t.Helper()

	for _, c := range eng.ListCandidates() {
		if c.ID == id {
			return c.VoteCount
		}
	}
	t.Fatalf("Candidate %d not found", id)
	return 0
}
