// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"

	"github.com/nguyennhimbth/EVMSimulator/models"
	"github.com/nguyennhimbth/EVMSimulator/store"
)

func newTestGate(t *testing.T) (*Gate, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	gate, err := NewGate(st, "")
	if err != nil {
		t.Fatalf("NewGate() error = %v", err)
	}
	return gate, st
}

func TestHashPassword(t *testing.T) {
	// Digest must be the plain SHA-256 of the input, since the credential
	// file is inspected by humans and outside tools.
	const want = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8" // sha256("password")
	if got := HashPassword("password"); got != want {
		t.Errorf("HashPassword(password) = %s, want %s", got, want)
	}
	if HashPassword("password") == HashPassword("Password") {
		t.Error("HashPassword collides on different inputs")
	}
}

func TestNewGateSeedsDefaultCredential(t *testing.T) {
	_, st := newTestGate(t)

	cred, err := st.LoadCredential()
	if err != nil {
		t.Fatalf("LoadCredential() error = %v", err)
	}
	if cred.PasswordHashHex != HashPassword(DefaultPassword) {
		t.Errorf("seeded hash = %s, want hash of default password", cred.PasswordHashHex)
	}
	if cred.Algorithm != models.HashAlgorithm {
		t.Errorf("seeded algorithm = %s, want %s", cred.Algorithm, models.HashAlgorithm)
	}
}

func TestNewGateCustomDefaultPassword(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	gate, err := NewGate(st, "hunter2")
	if err != nil {
		t.Fatalf("NewGate() error = %v", err)
	}

	if _, err := gate.Authenticate("hunter2"); err != nil {
		t.Errorf("Authenticate(custom default) error = %v", err)
	}
	if _, err := gate.Authenticate(DefaultPassword); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Authenticate(builtin default) error = %v, want ErrInvalidPassword", err)
	}
}

func TestNewGateKeepsExistingCredential(t *testing.T) {
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	existing := models.AdminCredential{
		PasswordHashHex: HashPassword("already-set"),
		Algorithm:       models.HashAlgorithm,
	}
	if err := st.SaveCredential(existing); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}

	gate, err := NewGate(st, "")
	if err != nil {
		t.Fatalf("NewGate() error = %v", err)
	}
	if _, err := gate.Authenticate("already-set"); err != nil {
		t.Errorf("Authenticate(existing password) error = %v", err)
	}
	if _, err := gate.Authenticate(DefaultPassword); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Authenticate(default) error = %v, want ErrInvalidPassword (default must not override)", err)
	}
}

func TestAuthenticate(t *testing.T) {
	gate, _ := newTestGate(t)

	sess, err := gate.Authenticate(DefaultPassword)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if sess.ID == "" {
		t.Error("Authenticate() returned session with empty ID")
	}
	if !gate.Valid(sess) {
		t.Error("Valid() = false for a freshly issued session")
	}

	if _, err := gate.Authenticate("wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Authenticate(wrong) error = %v, want ErrInvalidPassword", err)
	}

	other, err := gate.Authenticate(DefaultPassword)
	if err != nil {
		t.Fatalf("second Authenticate() error = %v", err)
	}
	if other.ID == sess.ID {
		t.Error("two authentications returned the same session ID")
	}
}

func TestValidRejectsForeignSession(t *testing.T) {
	gate, _ := newTestGate(t)

	if gate.Valid(Session{ID: "not-issued-here"}) {
		t.Error("Valid() accepted a session the gate never issued")
	}
	if gate.Valid(Session{}) {
		t.Error("Valid() accepted the zero session")
	}
}

func TestRequireReauth(t *testing.T) {
	gate, _ := newTestGate(t)
	sess, _ := gate.Authenticate(DefaultPassword)

	tests := []struct {
		name     string
		sess     Session
		password string
		wantErr  error
	}{
		{"valid", sess, DefaultPassword, nil},
		{"wrong password", sess, "wrong", ErrInvalidPassword},
		{"foreign session", Session{ID: "bogus"}, DefaultPassword, ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.RequireReauth(tt.sess, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RequireReauth() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	gate, st := newTestGate(t)
	sess, _ := gate.Authenticate(DefaultPassword)

	if err := gate.ChangePassword(sess, "new-secret"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, err := gate.Authenticate(DefaultPassword); !errors.Is(err, ErrInvalidPassword) {
		t.Error("old password still accepted after change")
	}
	if _, err := gate.Authenticate("new-secret"); err != nil {
		t.Errorf("Authenticate(new password) error = %v", err)
	}

	// The change must be durable, surviving a rebuilt gate.
	gate2, err := NewGate(st, "")
	if err != nil {
		t.Fatalf("NewGate() after change error = %v", err)
	}
	if _, err := gate2.Authenticate("new-secret"); err != nil {
		t.Errorf("new password rejected after gate rebuild: %v", err)
	}
}

func TestChangePasswordRejectsWeak(t *testing.T) {
	gate, _ := newTestGate(t)
	sess, _ := gate.Authenticate(DefaultPassword)

	for _, pw := range []string{"", "   ", "\t"} {
		if err := gate.ChangePassword(sess, pw); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("ChangePassword(%q) error = %v, want ErrWeakPassword", pw, err)
		}
	}
	if _, err := gate.Authenticate(DefaultPassword); err != nil {
		t.Errorf("default password rejected after refused change: %v", err)
	}
}

func TestChangePasswordRequiresSession(t *testing.T) {
	gate, _ := newTestGate(t)

	err := gate.ChangePassword(Session{ID: "bogus"}, "new-secret")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("ChangePassword() without session error = %v, want ErrUnauthenticated", err)
	}
}

// failingCredStore fails every save, for exercising the rule that a
// password change not persisted is not adopted.
type failingCredStore struct {
	cred models.AdminCredential
}

func (f *failingCredStore) LoadCredential() (models.AdminCredential, error) {
	return f.cred, nil
}

func (f *failingCredStore) SaveCredential(models.AdminCredential) error {
	return errors.New("disk full")
}

func TestChangePasswordKeepsOldOnSaveFailure(t *testing.T) {
	fs := &failingCredStore{cred: models.AdminCredential{
		PasswordHashHex: HashPassword("original"),
		Algorithm:       models.HashAlgorithm,
	}}
	gate, err := NewGate(fs, "")
	if err != nil {
		t.Fatalf("NewGate() error = %v", err)
	}
	sess, err := gate.Authenticate("original")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}

	if err := gate.ChangePassword(sess, "next"); err == nil {
		t.Fatal("ChangePassword() succeeded despite failing store")
	}
	if _, err := gate.Authenticate("original"); err != nil {
		t.Errorf("original password rejected after failed change: %v", err)
	}
	if _, err := gate.Authenticate("next"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("unpersisted password accepted: %v", err)
	}
}
