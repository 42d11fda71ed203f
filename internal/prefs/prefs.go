// Package prefs persists small key-value preferences, such as whether the
// onboarding tour has been shown.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/kampus/internal/store"
)

// OnboardingKey is the key recording that onboarding was completed.
const OnboardingKey = "campus_onboarding_complete"

// ErrNotFound is returned by Get for keys that were never set.
var ErrNotFound = errors.New("preference not set")

// Store reads and writes string preferences.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// OnboardingComplete reports whether onboarding has been completed.
func OnboardingComplete(ctx context.Context, s Store) (bool, error) {
	v, err := s.Get(ctx, OnboardingKey)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading onboarding flag: %w", err)
	}
	return v == "true", nil
}

// CompleteOnboarding records that onboarding has been completed.
func CompleteOnboarding(ctx context.Context, s Store) error {
	if err := s.Set(ctx, OnboardingKey, "true"); err != nil {
		return fmt.Errorf("writing onboarding flag: %w", err)
	}
	return nil
}

// SQL stores preferences in the settings table.
type SQL struct {
	DB *sql.DB
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	v, ok, err := store.GetSetting(ctx, s.DB, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	return store.SetSetting(ctx, s.DB, key, value)
}
