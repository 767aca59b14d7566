// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyennhimbth/EVMSimulator/models"
)

// ErrCorruptData marks a file that exists but cannot be parsed, or whose
// content violates the schema. Callers fall back to defaults for the
// affected file only.
var ErrCorruptData = errors.New("corrupt data file")

// Store reads and writes the two durable files: the voting state and the
// admin credential. Every save rewrites the target wholesale via a
// temporary file and an atomic rename, so a crash mid-write never leaves a
// half-written file readable by the next load.
type Store struct {
	statePath string
	credPath  string
}

// New creates a Store rooted at dataDir, creating the directory if needed.
// File names are the defaults from the models package.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		statePath: filepath.Join(dataDir, models.DefaultStateFile),
		credPath:  filepath.Join(dataDir, models.DefaultCredentialFile),
	}, nil
}

// NewWithPaths creates a Store with explicit file locations.
func NewWithPaths(statePath, credPath string) *Store {
	return &Store{statePath: statePath, credPath: credPath}
}

// LoadState reads the state file. A missing file is not an error: it
// returns the first-run default (no candidates, voting closed, zero
// votes). A present but unreadable or schema-violating file returns
// ErrCorruptData.
func (s *Store) LoadState() (models.PersistedState, error) {
	def := models.PersistedState{Candidates: []models.Candidate{}}

	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, fmt.Errorf("failed to read state file: %w", err)
	}

	var st models.PersistedState
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&st); err != nil {
		return def, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.statePath, err)
	}
	if err := validateState(st); err != nil {
		return def, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.statePath, err)
	}
	if st.Candidates == nil {
		st.Candidates = []models.Candidate{}
	}
	return st, nil
}

// SaveState rewrites the state file wholesale. Callers must not consider a
// mutation committed until this returns nil.
func (s *Store) SaveState(st models.PersistedState) error {
	data, err := json.MarshalIndent(st, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return writeAtomic(s.statePath, data, 0644)
}

// LoadCredential reads the credential file. A missing file returns the
// zero AdminCredential with a nil error; the auth gate treats an empty
// hash as first run and seeds the default credential. A present but
// unreadable file, or one recorded with a different hash algorithm,
// returns ErrCorruptData.
func (s *Store) LoadCredential() (models.AdminCredential, error) {
	data, err := os.ReadFile(s.credPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.AdminCredential{}, nil
		}
		return models.AdminCredential{}, fmt.Errorf("failed to read credential file: %w", err)
	}

	var cred models.AdminCredential
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cred); err != nil {
		return models.AdminCredential{}, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.credPath, err)
	}
	if cred.Algorithm != models.HashAlgorithm {
		return models.AdminCredential{}, fmt.Errorf("%w: %s: unknown algorithm %q", ErrCorruptData, s.credPath, cred.Algorithm)
	}
	return cred, nil
}

// SaveCredential rewrites the credential file wholesale. The file is
// owner-only readable.
func (s *Store) SaveCredential(cred models.AdminCredential) error {
	data, err := json.MarshalIndent(cred, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}
	return writeAtomic(s.credPath, data, 0600)
}

// validateState rejects content that no save path could have produced.
func validateState(st models.PersistedState) error {
	if st.TotalVotes < 0 {
		return fmt.Errorf("negative total_votes %d", st.TotalVotes)
	}
	if len(st.Candidates) > models.MaxCandidates {
		return fmt.Errorf("candidate count %d exceeds %d", len(st.Candidates), models.MaxCandidates)
	}
	sum := 0
	seen := make(map[string]bool, len(st.Candidates))
	ids := make(map[int]bool, len(st.Candidates))
	for _, c := range st.Candidates {
		if c.Name == "" {
			return fmt.Errorf("candidate %d has empty name", c.ID)
		}
		if c.VoteCount < 0 {
			return fmt.Errorf("candidate %q has negative vote_count", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate candidate name %q", c.Name)
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate candidate id %d", c.ID)
		}
		seen[c.Name] = true
		ids[c.ID] = true
		sum += c.VoteCount
	}
	if sum > st.TotalVotes {
		return fmt.Errorf("candidate votes %d exceed total_votes %d", sum, st.TotalVotes)
	}
	return nil
}

// writeAtomic writes data to a temporary file beside path, then renames it
// into place. On rename failure the temporary file is removed.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
