// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer: two plain JSON files, rewritten
wholesale on every save.

# Files

  - voting_data.json: candidates, voting_open flag, total_votes
  - admin_password.json: password hash (hex) and algorithm identifier

Both files are indented, human-inspectable JSON. They are kept separate so
a corrupt state file never invalidates the credential, and vice versa.

# Atomicity

Saves write to "<path>.tmp" and rename into place. A process crash during
a save leaves either the fully-old or the fully-new file, never a mix; a
stray .tmp file is simply overwritten by the next save and never read.

# Load semantics

A missing file yields the documented default (empty state, or an empty
credential that the auth gate replaces on first run). A file that exists
but cannot be parsed, carries unknown fields, or violates basic tally
invariants returns ErrCorruptData; callers recover by falling back to the
default for that file only.
*/
package store
