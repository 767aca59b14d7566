// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package period holds the Closed/Open voting-period state machine.
// Ballots are accepted only while the period is open, and opening
// requires at least one registered candidate.
package period
