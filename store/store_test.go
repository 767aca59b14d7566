// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nguyennhimbth/EVMSimulator/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, dir
}

func TestLoadStateMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	st, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if len(st.Candidates) != 0 || st.VotingOpen || st.TotalVotes != 0 {
		t.Errorf("LoadState() on missing file = %+v, want empty default", st)
	}
	if st.Candidates == nil {
		t.Error("LoadState() returned nil candidate slice")
	}
}

func TestStateRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	want := models.PersistedState{
		Candidates: []models.Candidate{
			{ID: 1, Name: "Alice", VoteCount: 3},
			{ID: 2, Name: "Bob", VoteCount: 1},
			{ID: 7, Name: "Carol", VoteCount: 0},
		},
		VotingOpen: true,
		TotalVotes: 4,
	}
	if err := s.SaveState(want); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadStateCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated json", `{"candidates": [{"id": 1, "na`},
		{"not json", "definitely not json"},
		{"unknown fields", `{"candidates": [], "voting_open": false, "total_votes": 0, "schedule": "9-5"}`},
		{"negative total", `{"candidates": [], "voting_open": false, "total_votes": -1}`},
		{"negative count", `{"candidates": [{"id":1,"name":"A","vote_count":-2}], "voting_open": false, "total_votes": 0}`},
		{"duplicate names", `{"candidates": [{"id":1,"name":"A","vote_count":0},{"id":2,"name":"A","vote_count":0}], "voting_open": false, "total_votes": 0}`},
		{"duplicate ids", `{"candidates": [{"id":1,"name":"A","vote_count":0},{"id":1,"name":"B","vote_count":0}], "voting_open": false, "total_votes": 0}`},
		{"empty name", `{"candidates": [{"id":1,"name":"","vote_count":0}], "voting_open": false, "total_votes": 0}`},
		{"votes exceed total", `{"candidates": [{"id":1,"name":"A","vote_count":5}], "voting_open": false, "total_votes": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dir := newTestStore(t)
			path := filepath.Join(dir, models.DefaultStateFile)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			_, err := s.LoadState()
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("LoadState() error = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestSaveStateAtomic(t *testing.T) {
	s, dir := newTestStore(t)

	old := models.PersistedState{
		Candidates: []models.Candidate{{ID: 1, Name: "Alice", VoteCount: 2}},
		TotalVotes: 2,
	}
	if err := s.SaveState(old); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	// A crash mid-save leaves a stray .tmp file. It must never shadow the
	// real file on the next load.
	tmp := filepath.Join(dir, models.DefaultStateFile+".tmp")
	if err := os.WriteFile(tmp, []byte(`{"candidates": [{"id":`), 0644); err != nil {
		t.Fatalf("Failed to write tmp file: %v", err)
	}

	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if !reflect.DeepEqual(got, old) {
		t.Errorf("LoadState() after simulated crash = %+v, want old state %+v", got, old)
	}

	// A subsequent successful save replaces both the target and the tmp.
	renamed := old
	renamed.TotalVotes = 3
	renamed.Candidates[0].VoteCount = 3
	if err := s.SaveState(renamed); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	got, err = s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if !reflect.DeepEqual(got, renamed) {
		t.Errorf("LoadState() after re-save = %+v, want %+v", got, renamed)
	}
	if _, err := os.Stat(tmp); err == nil {
		// tmp was consumed by rename; a leftover means save skipped the
		// atomic path.
		t.Error("temporary file still present after save")
	}
}

func TestLoadCredentialMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	cred, err := s.LoadCredential()
	if err != nil {
		t.Fatalf("LoadCredential() error = %v", err)
	}
	if cred.PasswordHashHex != "" {
		t.Errorf("LoadCredential() on missing file = %+v, want zero credential", cred)
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	want := models.AdminCredential{
		PasswordHashHex: "8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918",
		Algorithm:       models.HashAlgorithm,
	}
	if err := s.SaveCredential(want); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}

	got, err := s.LoadCredential()
	if err != nil {
		t.Fatalf("LoadCredential() error = %v", err)
	}
	if got != want {
		t.Errorf("credential round trip = %+v, want %+v", got, want)
	}
}

func TestLoadCredentialCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"password_hash": "abc`},
		{"wrong algorithm", `{"password_hash": "abcd", "algorithm": "md5"}`},
		{"missing algorithm", `{"password_hash": "abcd"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dir := newTestStore(t)
			path := filepath.Join(dir, models.DefaultCredentialFile)
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			_, err := s.LoadCredential()
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("LoadCredential() error = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestCorruptStateDoesNotAffectCredential(t *testing.T) {
	s, dir := newTestStore(t)

	cred := models.AdminCredential{PasswordHashHex: "abcd", Algorithm: models.HashAlgorithm}
	if err := s.SaveCredential(cred); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}
	statePath := filepath.Join(dir, models.DefaultStateFile)
	if err := os.WriteFile(statePath, []byte("garbage"), 0644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	if _, err := s.LoadState(); !errors.Is(err, ErrCorruptData) {
		t.Fatalf("LoadState() error = %v, want ErrCorruptData", err)
	}
	got, err := s.LoadCredential()
	if err != nil {
		t.Fatalf("LoadCredential() error = %v", err)
	}
	if got != cred {
		t.Errorf("LoadCredential() = %+v, want %+v", got, cred)
	}
}
