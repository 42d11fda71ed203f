package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/kampus/internal/db"
	"github.com/erazemk/kampus/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "jdoe", "John Doe", "john.doe@university.edu", "hash123", model.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.DisplayName != "John Doe" {
		t.Errorf("expected display name 'John Doe', got %q", user.DisplayName)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("expected role 'student', got %q", user.Role)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "john.doe@university.edu" {
		t.Errorf("expected email, got %q", got.Email)
	}
}

func TestCreateUserDefaultsDisplayName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "alice", "", "", "hash", model.RoleStaff)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.DisplayName != "alice" {
		t.Errorf("expected display name to default to username, got %q", user.DisplayName)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "bob", "", "", "hash", "manager"); err == nil {
		t.Error("expected CHECK constraint error for unknown role")
	}
}

func TestGetUserByUsername(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "alice", "", "", "hash", model.RoleAdmin)

	user, err := GetUserByUsername(ctx, database, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}

	missing, err := GetUserByUsername(ctx, database, "bob")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestDeletedUsernameCanBeReused(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := CreateUser(ctx, database, "reuse", "", "", "hash", model.RoleStudent)
	DeleteUser(ctx, database, first.ID)

	if _, err := CreateUser(ctx, database, "reuse", "", "", "hash", model.RoleStudent); err != nil {
		t.Fatalf("expected username of deleted user to be reusable: %v", err)
	}

	got, _ := GetUserByUsername(ctx, database, "reuse")
	if got == nil || got.ID == first.ID {
		t.Errorf("expected the new active user, got %+v", got)
	}
}

func TestListAndDeleteUsers(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	a, _ := CreateUser(ctx, database, "a", "", "", "hash", model.RoleStudent)
	CreateUser(ctx, database, "b", "", "", "hash", model.RoleStaff)

	users, err := ListUsers(ctx, database)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}

	DeleteUser(ctx, database, a.ID)
	users, _ = ListUsers(ctx, database)
	if len(users) != 1 {
		t.Errorf("expected 1 user after delete, got %d", len(users))
	}
}

func TestUpdateUserPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "pwuser", "", "", "oldhash", model.RoleStudent)
	UpdateUserPassword(ctx, database, user.ID, "newhash")

	got, _ := GetUser(ctx, database, user.ID)
	if got.PasswordHash != "newhash" {
		t.Errorf("expected password hash 'newhash', got %q", got.PasswordHash)
	}
}

func TestMissingUserUpdatesReportNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := UpdateUserPassword(ctx, database, 42, "hash"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateUserPassword: expected ErrNotFound, got %v", err)
	}

	user, _ := CreateUser(ctx, database, "gone", "", "", "hash", model.RoleStudent)
	if err := DeleteUser(ctx, database, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := DeleteUser(ctx, database, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteUser: expected ErrNotFound, got %v", err)
	}
}
