// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves runtime configuration.

Precedence, highest first:

 1. CLI flags (-data, -audit, -audit-path, -default-password)
 2. TOML config file, when -config is given
 3. Environment (VOTING_DATA_DIR, VOTING_AUDIT_BACKEND,
    VOTING_AUDIT_PATH, VOTING_DEFAULT_PASSWORD)
 4. Defaults: data dir ".", file-backed audit log under the data dir

Everything is optional; a bare invocation runs out of the current
directory with the file audit backend.
*/
package cliparse
