// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine is the vote-state engine: the one component that owns the
in-memory voting state and drives the registry, period controller, auth
gate, persistence store, and audit log as a unit.

# Operations

Voter-facing:

  - ListCandidates, VotingStatus, CastVote

Admin-facing (session required):

  - AdminAuthenticate, AdminOpen, AdminClose
  - AdminAddCandidate, AdminRemoveCandidate, AdminRenameCandidate
  - AdminViewResults, AdminChangePassword
  - AdminResetVotes (additionally requires re-entering the password)

# Commit discipline

Every mutation runs under one mutex as a single
read-validate-mutate-persist unit. Success is reported only after the
state file save returns; on save failure the in-memory change is rolled
back wholesale from a pre-mutation snapshot, so a failed operation is
observationally a no-op. Audit events are recorded after the save, never
for rolled-back attempts, and never for individual ballots.

The engine is safe under concurrent callers, though the intended usage is
one interactive session at a time.
*/
package engine
