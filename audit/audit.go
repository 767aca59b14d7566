// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

// Event kinds recorded by the engine. Individual ballots are deliberately
// never audited; the log must not link voters to candidates.
const (
	EventVotingOpened     = "voting opened"
	EventVotingClosed     = "voting closed"
	EventVotesReset       = "votes reset"
	EventPasswordChanged  = "password changed"
	EventCandidateAdded   = "candidate added"
	EventCandidateRemoved = "candidate removed"
	EventCandidateRenamed = "candidate renamed"
)

// Log is an append-only event sink. The engine calls Record exactly once
// per state-changing action, after that action's persistence succeeded,
// so the log reflects only committed changes. Sink failures are the
// sink's problem: Record never blocks the action that already happened.
type Log interface {
	Record(kind, detail string)
}

// Nop discards all events. Used by tests and as a fallback.
type Nop struct{}

func (Nop) Record(string, string) {}
