// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by every other package.

# Domain Types

  - Candidate: stable ordinal ID, name, vote counter
  - PersistedState: candidates + voting_open + total_votes, the exact
    schema of the state file
  - AdminCredential: password_hash (hex) + algorithm, the exact schema of
    the credential file
  - CandidateResult / Results: per-candidate counts with percentage of
    total, as returned by the admin results view

# Constants

Capacity and credential:

	MaxCandidates = 32
	HashAlgorithm = "sha256"

Default file names (relative to the data directory):

	DefaultStateFile      = "voting_data.json"
	DefaultCredentialFile = "admin_password.json"
	DefaultAuditFile      = "voting_log.txt"

The state and credential files are deliberately separate so that corruption
of one never takes down the other.
*/
package models
