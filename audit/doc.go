// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package audit provides the append-only event sink consumed by the engine.

Three implementations of the Log interface:

  - FileLog: one timestamped line per event in a plain text file,
    never rewritten or truncated
  - SQLiteLog: one row per event in an embedded SQLite table,
    insert-only
  - Nop: discards everything (tests)

The engine records exactly one event per committed state change, after
persistence has succeeded — a rolled-back action never appears in the
log. Individual ballots are never recorded.
*/
package audit
