package main

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/kampus/internal/db"
	"github.com/erazemk/kampus/internal/model"
	"github.com/erazemk/kampus/internal/store"
)

func TestEnsureAdminRunsOnce(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	password, err := ensureAdmin(ctx, database, "Admin")
	if err != nil {
		t.Fatalf("ensureAdmin: %v", err)
	}
	if len(password) != 16 {
		t.Errorf("expected 16 character password, got %d", len(password))
	}

	user, _ := store.GetUserByUsername(ctx, database, "Admin")
	if user == nil || user.Role != model.RoleAdmin {
		t.Fatalf("expected admin account, got %+v", user)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		t.Error("stored hash does not match printed password")
	}

	again, err := ensureAdmin(ctx, database, "Admin")
	if err != nil || again != "" {
		t.Errorf("second run should do nothing, got %q, %v", again, err)
	}
}

func TestGeneratePassword(t *testing.T) {
	a, _ := generatePassword(24)
	b, _ := generatePassword(24)
	if a == b {
		t.Error("expected distinct passwords")
	}
	if strings.ContainsAny(a, " \t\n") {
		t.Errorf("unexpected whitespace in %q", a)
	}
}
