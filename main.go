package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyennhimbth/EVMSimulator/audit"
	"github.com/nguyennhimbth/EVMSimulator/auth"
	"github.com/nguyennhimbth/EVMSimulator/cliparse"
	"github.com/nguyennhimbth/EVMSimulator/engine"
	"github.com/nguyennhimbth/EVMSimulator/store"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}

	gate, err := auth.NewGate(st, cfg.DefaultAdminPassword)
	if err != nil {
		slog.Error("auth gate initialization failed", "error", err)
		os.Exit(1)
	}

	var log audit.Log
	switch cfg.AuditBackend {
	case cliparse.AuditBackendSQLite:
		sl, err := audit.OpenSQLiteLog(cfg.AuditPath)
		if err != nil {
			slog.Error("audit database open failed", "error", err)
			os.Exit(1)
		}
		defer sl.Close()
		log = sl
	default:
		log = audit.NewFileLog(cfg.AuditPath)
	}

	eng, err := engine.New(st, gate, log)
	if err != nil {
		slog.Error("engine initialization failed", "error", err)
		os.Exit(1)
	}

	if err := runREPL(eng, os.Stdin, os.Stdout); err != nil {
		slog.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
