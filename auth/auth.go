// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyennhimbth/EVMSimulator/models"
	"github.com/nguyennhimbth/EVMSimulator/store"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthenticated = errors.New("unauthenticated session")
	ErrWeakPassword    = errors.New("weak password")
)

// DefaultPassword is the first-run administrator password, active until
// the admin changes it. Overridable via configuration.
const DefaultPassword = "admin"

// CredentialStore is the slice of the persistence layer the gate needs.
type CredentialStore interface {
	LoadCredential() (models.AdminCredential, error)
	SaveCredential(models.AdminCredential) error
}

// Session is an authenticated admin session. Sessions are process-local
// and vanish on restart; nothing about them is persisted.
type Session struct {
	ID       string
	IssuedAt time.Time
}

// Gate verifies the administrator password and issues sessions. Viewing
// actions need a valid session; destructive actions additionally require
// RequireReauth immediately beforehand, so a stale open session cannot
// silently wipe data.
type Gate struct {
	store    CredentialStore
	cred     models.AdminCredential
	sessions map[string]Session
}

// HashPassword returns the hex-encoded SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewGate loads the stored credential. On first run (no credential file)
// it seeds and persists the default credential. A corrupt credential file
// is replaced the same way, so an unreadable file locks nobody out.
func NewGate(cs CredentialStore, defaultPassword string) (*Gate, error) {
	if defaultPassword == "" {
		defaultPassword = DefaultPassword
	}

	cred, err := cs.LoadCredential()
	if err != nil {
		if !errors.Is(err, store.ErrCorruptData) {
			return nil, err
		}
		slog.Warn("credential file corrupt, resetting to default password", "error", err)
		cred = models.AdminCredential{}
	}

	if cred.PasswordHashHex == "" {
		cred = models.AdminCredential{
			PasswordHashHex: HashPassword(defaultPassword),
			Algorithm:       models.HashAlgorithm,
		}
		if err := cs.SaveCredential(cred); err != nil {
			return nil, fmt.Errorf("failed to seed admin credential: %w", err)
		}
		slog.Info("admin credential created with default password")
	}

	return &Gate{
		store:    cs,
		cred:     cred,
		sessions: make(map[string]Session),
	}, nil
}

// Authenticate verifies the password and issues a new session.
func (g *Gate) Authenticate(password string) (Session, error) {
	if !g.verify(password) {
		return Session{}, ErrInvalidPassword
	}
	s := Session{ID: uuid.NewString(), IssuedAt: time.Now()}
	g.sessions[s.ID] = s
	return s, nil
}

// Valid reports whether s was issued by this gate and is still live.
func (g *Gate) Valid(s Session) bool {
	_, ok := g.sessions[s.ID]
	return ok
}

// RequireReauth re-checks the password for an existing session. Callers
// performing destructive actions invoke this immediately before acting.
func (g *Gate) RequireReauth(s Session, password string) error {
	if !g.Valid(s) {
		return ErrUnauthenticated
	}
	if !g.verify(password) {
		return ErrInvalidPassword
	}
	return nil
}

// ChangePassword replaces the stored credential. The in-memory credential
// changes only after the new one is durable, so a failed save leaves the
// old password in force.
func (g *Gate) ChangePassword(s Session, newPassword string) error {
	if !g.Valid(s) {
		return ErrUnauthenticated
	}
	if strings.TrimSpace(newPassword) == "" {
		return ErrWeakPassword
	}

	cred := models.AdminCredential{
		PasswordHashHex: HashPassword(newPassword),
		Algorithm:       models.HashAlgorithm,
	}
	if err := g.store.SaveCredential(cred); err != nil {
		return fmt.Errorf("failed to persist new credential: %w", err)
	}
	g.cred = cred
	return nil
}

// verify compares digests, not passwords. hmac.Equal keeps the comparison
// constant-structure; both sides are fixed-length hex digests.
func (g *Gate) verify(password string) bool {
	return hmac.Equal([]byte(HashPassword(password)), []byte(g.cred.PasswordHashHex))
}
