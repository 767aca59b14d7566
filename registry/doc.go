// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the ordered candidate set.

At most 32 candidates may be registered at once. Names are unique
(case-sensitive) and must contain at least one non-whitespace character.
Each candidate gets a stable ordinal ID on registration; IDs survive
restarts via the persisted list and are never reused within a process.

Structural edits (Remove, Rename) are refused with ErrVotingOpen while
the voting period is open. The registry checks this itself through the
periodOpen callback given to New, so callers cannot bypass the invariant.
Rename keeps the candidate's accumulated votes; only a reset clears
counters.

List returns a snapshot copy, so a caller holding a listing is unaffected
by later mutations.
*/
package registry
