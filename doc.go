// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the EVM Simulator, a
single-machine electronic voting aid.

One admin controls the voting period, candidates, and results; voters
cast one ballot each through the same terminal session. All state lives
in two human-inspectable JSON files plus an append-only audit log.

# Running

	go run . -data ./election

Or with environment variables (a .env file is honored):

	VOTING_DATA_DIR=./election VOTING_AUDIT_BACKEND=sqlite go run .

# Configuration

Optional settings:

  - VOTING_DATA_DIR (-data): data directory (default ".")
  - VOTING_AUDIT_BACKEND (-audit): "file" or "sqlite" (default "file")
  - VOTING_AUDIT_PATH (-audit-path): audit log location
  - VOTING_DEFAULT_PASSWORD (-default-password): first-run admin password
  - -config: TOML config file with the same keys

# Architecture

The terminal REPL is a thin presentation layer over the core:

  - engine: vote-state engine; the full voter/admin operation surface
  - registry: bounded, ordered candidate set
  - period: open/closed voting-period state machine
  - auth: admin password gate and sessions
  - store: atomic JSON-file persistence
  - audit: append-only event sinks (text file or SQLite)
  - models: shared domain types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
