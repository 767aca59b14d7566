// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nguyennhimbth/EVMSimulator/models"
)

var (
	ErrCapacityExceeded = errors.New("candidate capacity exceeded")
	ErrDuplicateName    = errors.New("duplicate candidate name")
	ErrInvalidName      = errors.New("invalid candidate name")
	ErrNotFound         = errors.New("candidate not found")
	ErrVotingOpen       = errors.New("voting period is open")
)

// Registry is the ordered set of candidates, bounded at
// models.MaxCandidates. IDs are stable ordinals: assigned once, never
// reused while the process lives, and preserved across restarts through
// the persisted candidate list.
//
// Removal and rename are structural edits and are refused while the
// voting period is open; the registry consults periodOpen directly so the
// invariant lives in one place instead of in every caller.
type Registry struct {
	periodOpen func() bool
	candidates []models.Candidate
	nextID     int
}

// New creates an empty Registry. periodOpen reports whether the voting
// period is currently open.
func New(periodOpen func() bool) *Registry {
	return &Registry{
		periodOpen: periodOpen,
		candidates: []models.Candidate{},
		nextID:     1,
	}
}

// Restore replaces the registry content with a persisted candidate list.
// The next ID continues after the highest restored ID.
func (r *Registry) Restore(candidates []models.Candidate) {
	r.candidates = make([]models.Candidate, len(candidates))
	copy(r.candidates, candidates)
	r.nextID = 1
	for _, c := range r.candidates {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
}

// Add registers a new candidate and returns its ID. The name must be
// non-blank and unique among current candidates (case-sensitive).
func (r *Registry) Add(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrInvalidName
	}
	if len(r.candidates) >= models.MaxCandidates {
		return 0, fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, models.MaxCandidates)
	}
	if r.indexOfName(name) >= 0 {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	id := r.nextID
	r.nextID++
	r.candidates = append(r.candidates, models.Candidate{ID: id, Name: name})
	return id, nil
}

// Remove deletes a candidate. Permitted only while voting is closed.
func (r *Registry) Remove(id int) error {
	if r.periodOpen() {
		return ErrVotingOpen
	}
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
	return nil
}

// Rename changes a candidate's name, keeping its ID and accumulated
// votes. Permitted only while voting is closed; validation matches Add,
// except a candidate may be renamed to its current name.
func (r *Registry) Rename(id int, newName string) error {
	if r.periodOpen() {
		return ErrVotingOpen
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrInvalidName
	}
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if j := r.indexOfName(newName); j >= 0 && j != i {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}
	r.candidates[i].Name = newName
	return nil
}

// List returns a snapshot copy in registration order. Later registry
// mutations do not affect the returned slice.
func (r *Registry) List() []models.Candidate {
	out := make([]models.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// Len returns the current candidate count.
func (r *Registry) Len() int {
	return len(r.candidates)
}

// Get returns a copy of the candidate with the given ID.
func (r *Registry) Get(id int) (models.Candidate, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Candidate{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return r.candidates[i], nil
}

// IncrementVote adds one to a candidate's counter.
func (r *Registry) IncrementVote(id int) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	r.candidates[i].VoteCount++
	return nil
}

// ResetVotes zeroes every candidate's counter.
func (r *Registry) ResetVotes() {
	for i := range r.candidates {
		r.candidates[i].VoteCount = 0
	}
}

func (r *Registry) indexOf(id int) int {
	for i, c := range r.candidates {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) indexOfName(name string) int {
	for i, c := range r.candidates {
		if c.Name == name {
			return i
		}
	}
	return -1
}
