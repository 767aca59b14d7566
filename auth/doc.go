// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth is the administrator authentication gate.

# Credential

The admin password is stored only as a SHA-256 hex digest, together with
the algorithm identifier, in its own file. On first run the gate seeds a
default password (configurable, "admin" by default) and persists it; the
admin is expected to change it.

Verification hashes the supplied password and compares digests with
hmac.Equal. The digests are fixed-length, so the comparison leaks nothing
beyond what the hash itself exposes. This is a deliberate, documented
simplification: the threat model is a single interactive machine, not a
network boundary.

# Sessions

Authenticate issues an in-memory session keyed by a random UUID:

	sess, err := gate.Authenticate(password)

Sessions gate viewing and management actions. Destructive actions (vote
reset) additionally require RequireReauth with the password immediately
before executing, independent of the session's age. That extra friction
is the line between "view" and "destroy".
*/
package auth
