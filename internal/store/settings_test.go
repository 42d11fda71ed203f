package store

import (
	"context"
	"testing"

	"github.com/erazemk/kampus/internal/db"
)

func TestGetJWTSecret_GeneratesAndPersists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// First call should generate a secret.
	secret1, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(secret1) != 64 { // 32 bytes = 64 hex chars
		t.Fatalf("expected 64 hex chars, got %d", len(secret1))
	}

	// Second call should return the same secret.
	secret2, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if secret1 != secret2 {
		t.Fatalf("expected same secret, got %q and %q", secret1, secret2)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, ok, err := GetSetting(ctx, database, "campus_onboarding_complete")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if ok {
		t.Fatal("expected unset key")
	}

	if err := SetSetting(ctx, database, "campus_onboarding_complete", "false"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := SetSetting(ctx, database, "campus_onboarding_complete", "true"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}

	v, ok, err := GetSetting(ctx, database, "campus_onboarding_complete")
	if err != nil || !ok || v != "true" {
		t.Errorf("expected (true, ok), got (%q, %v, %v)", v, ok, err)
	}
}
