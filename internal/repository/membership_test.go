/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"project-api/src/internal/database"
	"project-api/src/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates a temporary SQLite database for testing
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open SQLite database: %v", err)
	}

	// Enable foreign keys for SQLite
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	db := &database.DB{DB: sqlDB}
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestSchema creates the minimal schema required for membership and
// profile tests
func createTestSchema(db *database.DB) error {
	schema := `
		CREATE TABLE users (
			uuid TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE projects (
			uuid TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			created_by TEXT NOT NULL REFERENCES users(uuid),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE profiles (
			uuid TEXT PRIMARY KEY,
			project_uuid TEXT NOT NULL REFERENCES projects(uuid) ON DELETE CASCADE,
			name TEXT NOT NULL,
			is_default BOOLEAN NOT NULL DEFAULT 0,
			can_create_activity BOOLEAN NOT NULL DEFAULT 0,
			can_edit_activity BOOLEAN NOT NULL DEFAULT 0,
			can_delete_activity BOOLEAN NOT NULL DEFAULT 0,
			can_complete_activity BOOLEAN NOT NULL DEFAULT 0,
			can_create_lesson BOOLEAN NOT NULL DEFAULT 0,
			can_edit_lesson BOOLEAN NOT NULL DEFAULT 0,
			can_delete_lesson BOOLEAN NOT NULL DEFAULT 0,
			can_create_change_request BOOLEAN NOT NULL DEFAULT 0,
			can_edit_change_request BOOLEAN NOT NULL DEFAULT 0,
			can_delete_change_request BOOLEAN NOT NULL DEFAULT 0,
			can_manage_members BOOLEAN NOT NULL DEFAULT 0,
			can_manage_profiles BOOLEAN NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (project_uuid, name)
		);

		CREATE TABLE memberships (
			uuid TEXT PRIMARY KEY,
			project_uuid TEXT NOT NULL REFERENCES projects(uuid) ON DELETE CASCADE,
			user_uuid TEXT NOT NULL REFERENCES users(uuid),
			profile_uuid TEXT NOT NULL REFERENCES profiles(uuid),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (project_uuid, user_uuid)
		);
	`
	_, err := db.Exec(schema)
	return err
}

func seedUser(t *testing.T, db *database.DB, userUUID string) {
	t.Helper()

	now := time.Now()
	_, err := db.Exec(`INSERT INTO users (uuid, username, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		userUUID, "user-"+userUUID, userUUID+"@example.com", "hash", now, now)
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
}

func seedProject(t *testing.T, db *database.DB, projectUUID, createdBy string) {
	t.Helper()

	now := time.Now()
	_, err := db.Exec(`INSERT INTO projects (uuid, name, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		projectUUID, "Project "+projectUUID, createdBy, now, now)
	if err != nil {
		t.Fatalf("Failed to insert project: %v", err)
	}
}

func createTestProfile(t *testing.T, db *database.DB, projectUUID, name string, caps model.Capabilities) *model.Profile {
	t.Helper()

	repo := NewProfileRepo(db)
	profile := &model.Profile{
		UUID:         "profile-" + projectUUID + "-" + name,
		ProjectID:    projectUUID,
		Name:         name,
		Capabilities: caps,
	}
	if err := repo.CreateProfile(profile); err != nil {
		t.Fatalf("Failed to create profile %s: %v", name, err)
	}
	return profile
}

func createTestMembership(t *testing.T, db *database.DB, uuid, projectUUID, userUUID, profileUUID string) {
	t.Helper()

	repo := NewMembershipRepo(db)
	err := db.WithTx(func(tx *sql.Tx) error {
		return repo.CreateMembershipTx(tx, &model.Membership{
			UUID:      uuid,
			ProjectID: projectUUID,
			UserID:    userUUID,
			ProfileID: profileUUID,
		})
	})
	if err != nil {
		t.Fatalf("Failed to create membership %s: %v", uuid, err)
	}
}

// TestGetMembershipByUserAndProject tests lookup and the nil result for a
// user with no membership
func TestGetMembershipByUserAndProject(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")
	profile := createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())
	createTestMembership(t, db, "m1", "project-1", "user-1", profile.UUID)

	repo := NewMembershipRepo(db)

	got, err := repo.GetMembershipByUserAndProject("user-1", "project-1")
	if err != nil {
		t.Fatalf("GetMembershipByUserAndProject() error = %v", err)
	}
	if got == nil || got.UUID != "m1" || got.ProfileID != profile.UUID {
		t.Errorf("GetMembershipByUserAndProject() = %+v, want membership m1 bound to %s", got, profile.UUID)
	}

	missing, err := repo.GetMembershipByUserAndProject("user-2", "project-1")
	if err != nil {
		t.Fatalf("GetMembershipByUserAndProject() error = %v", err)
	}
	if missing != nil {
		t.Errorf("GetMembershipByUserAndProject() = %+v, want nil for non-member", missing)
	}
}

// TestMembershipUniquePerUserAndProject tests that the unique index rejects
// a second membership for the same user in the same project
func TestMembershipUniquePerUserAndProject(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")
	profile := createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())
	createTestMembership(t, db, "m1", "project-1", "user-1", profile.UUID)

	repo := NewMembershipRepo(db)
	err := db.WithTx(func(tx *sql.Tx) error {
		return repo.CreateMembershipTx(tx, &model.Membership{
			UUID:      "m2",
			ProjectID: "project-1",
			UserID:    "user-1",
			ProfileID: profile.UUID,
		})
	})
	if err == nil {
		t.Fatal("CreateMembershipTx() expected unique constraint violation, got nil")
	}
}

// TestCountManagingMembershipsTx tests the manager count behind the
// last-manager invariant, including the exclusion parameter
func TestCountManagingMembershipsTx(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedUser(t, db, "user-2")
	seedUser(t, db, "user-3")
	seedProject(t, db, "project-1", "user-1")

	admin := createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())
	member := createTestProfile(t, db, "project-1", "Member", model.Capabilities{CreateActivity: true})

	createTestMembership(t, db, "m1", "project-1", "user-1", admin.UUID)
	createTestMembership(t, db, "m2", "project-1", "user-2", admin.UUID)
	createTestMembership(t, db, "m3", "project-1", "user-3", member.UUID)

	repo := NewMembershipRepo(db)

	tests := []struct {
		name    string
		exclude string
		want    int
	}{
		{name: "all managers counted", exclude: "", want: 2},
		{name: "excluding one manager", exclude: "m1", want: 1},
		{name: "excluding non-manager changes nothing", exclude: "m3", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := db.WithTx(func(tx *sql.Tx) error {
				count, err := repo.CountManagingMembershipsTx(tx, "project-1", tt.exclude)
				if err != nil {
					return err
				}
				if count != tt.want {
					t.Errorf("CountManagingMembershipsTx() = %d, want %d", count, tt.want)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("CountManagingMembershipsTx() error = %v", err)
			}
		})
	}
}

// TestCountMembershipsByProfileIDTx tests the reference count used to block
// deletion of a profile that memberships still point at
func TestCountMembershipsByProfileIDTx(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedUser(t, db, "user-2")
	seedProject(t, db, "project-1", "user-1")

	admin := createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())
	unused := createTestProfile(t, db, "project-1", "Observer", model.Capabilities{})

	createTestMembership(t, db, "m1", "project-1", "user-1", admin.UUID)
	createTestMembership(t, db, "m2", "project-1", "user-2", admin.UUID)

	repo := NewMembershipRepo(db)
	err := db.WithTx(func(tx *sql.Tx) error {
		count, err := repo.CountMembershipsByProfileIDTx(tx, admin.UUID)
		if err != nil {
			return err
		}
		if count != 2 {
			t.Errorf("CountMembershipsByProfileIDTx(admin) = %d, want 2", count)
		}

		count, err = repo.CountMembershipsByProfileIDTx(tx, unused.UUID)
		if err != nil {
			return err
		}
		if count != 0 {
			t.Errorf("CountMembershipsByProfileIDTx(unused) = %d, want 0", count)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("CountMembershipsByProfileIDTx() error = %v", err)
	}
}

// TestUpdateMembershipTx tests rebinding a membership to another profile
func TestUpdateMembershipTx(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")

	admin := createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())
	member := createTestProfile(t, db, "project-1", "Member", model.Capabilities{CreateActivity: true})
	createTestMembership(t, db, "m1", "project-1", "user-1", admin.UUID)

	repo := NewMembershipRepo(db)
	err := db.WithTx(func(tx *sql.Tx) error {
		return repo.UpdateMembershipTx(tx, &model.Membership{UUID: "m1", ProfileID: member.UUID})
	})
	if err != nil {
		t.Fatalf("UpdateMembershipTx() error = %v", err)
	}

	got, err := repo.GetMembershipByUUID("m1")
	if err != nil {
		t.Fatalf("GetMembershipByUUID() error = %v", err)
	}
	if got == nil || got.ProfileID != member.UUID {
		t.Errorf("membership profile = %+v, want %s", got, member.UUID)
	}
}
