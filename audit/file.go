// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

const lineTimeFormat = "2006-01-02 15:04:05"

// FileLog appends one line per event to a plain text file:
//
//	[2026-03-01 14:02:11] voting opened
//	[2026-03-01 16:30:40] candidate added: Alice
//
// The file is opened with O_APPEND for every record and is never
// rewritten or truncated.
type FileLog struct {
	path string
}

// NewFileLog creates a FileLog writing to path. The file is created on
// the first record.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Record appends one event line. Write failures are logged and swallowed;
// the audited action has already committed.
func (l *FileLog) Record(kind, detail string) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		slog.Error("audit log open failed", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s", time.Now().Format(lineTimeFormat), kind)
	if detail != "" {
		line += ": " + detail
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		slog.Error("audit log write failed", "path", l.path, "error", err)
	}
}
