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
	"testing"

	"project-api/src/internal/model"
)

// TestProfileCreateAndGet tests persistence of the full capability bitset
func TestProfileCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")

	repo := NewProfileRepo(db)
	caps := model.Capabilities{
		CreateActivity:      true,
		CompleteActivity:    true,
		CreateLesson:        true,
		CreateChangeRequest: true,
		ManageMembers:       true,
		ManageProfiles:      true,
	}
	created := createTestProfile(t, db, "project-1", "Lead", caps)

	got, err := repo.GetProfileByUUID(created.UUID)
	if err != nil {
		t.Fatalf("GetProfileByUUID() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetProfileByUUID() = nil, want profile")
	}
	if got.Name != "Lead" || got.ProjectID != "project-1" {
		t.Errorf("profile = %+v, want Lead in project-1", got)
	}
	if got.Capabilities != caps {
		t.Errorf("capabilities = %+v, want %+v", got.Capabilities, caps)
	}
	if !got.Capabilities.IsManaging() {
		t.Error("IsManaging() = false, want true")
	}

	byName, err := repo.GetProfileByName("project-1", "Lead")
	if err != nil {
		t.Fatalf("GetProfileByName() error = %v", err)
	}
	if byName == nil || byName.UUID != created.UUID {
		t.Errorf("GetProfileByName() = %+v, want %s", byName, created.UUID)
	}

	missing, err := repo.GetProfileByName("project-1", "Nope")
	if err != nil {
		t.Fatalf("GetProfileByName() error = %v", err)
	}
	if missing != nil {
		t.Errorf("GetProfileByName() = %+v, want nil for unknown name", missing)
	}
}

// TestProfileNameUniquePerProject tests that the same name is rejected
// within a project but allowed across projects
func TestProfileNameUniquePerProject(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")
	seedProject(t, db, "project-2", "user-1")

	repo := NewProfileRepo(db)
	createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())

	dup := &model.Profile{
		UUID:      "dup-uuid",
		ProjectID: "project-1",
		Name:      "Administrator",
	}
	if err := repo.CreateProfile(dup); err == nil {
		t.Fatal("CreateProfile() expected unique constraint violation, got nil")
	}

	other := &model.Profile{
		UUID:      "other-uuid",
		ProjectID: "project-2",
		Name:      "Administrator",
	}
	if err := repo.CreateProfile(other); err != nil {
		t.Fatalf("CreateProfile() in other project error = %v", err)
	}
}

// TestUpdateProfileTx tests renaming and flipping capability bits
func TestUpdateProfileTx(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")

	repo := NewProfileRepo(db)
	profile := createTestProfile(t, db, "project-1", "Member", model.Capabilities{CreateActivity: true})

	profile.Name = "Contributor"
	profile.Capabilities.CreateActivity = false
	profile.Capabilities.EditLesson = true
	err := db.WithTx(func(tx *sql.Tx) error {
		return repo.UpdateProfileTx(tx, profile)
	})
	if err != nil {
		t.Fatalf("UpdateProfileTx() error = %v", err)
	}

	got, err := repo.GetProfileByUUID(profile.UUID)
	if err != nil {
		t.Fatalf("GetProfileByUUID() error = %v", err)
	}
	if got.Name != "Contributor" {
		t.Errorf("name = %q, want Contributor", got.Name)
	}
	if got.Capabilities.CreateActivity || !got.Capabilities.EditLesson {
		t.Errorf("capabilities = %+v, want activity.create off and lesson.edit on", got.Capabilities)
	}
}

// TestDeleteProfileTx tests removal and listing order
func TestDeleteProfileTx(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user-1")
	seedProject(t, db, "project-1", "user-1")

	repo := NewProfileRepo(db)
	admin := createTestProfile(t, db, "project-1", "Administrator", model.AllCapabilitiesSet())
	member := createTestProfile(t, db, "project-1", "Member", model.Capabilities{CreateActivity: true})

	err := db.WithTx(func(tx *sql.Tx) error {
		return repo.DeleteProfileTx(tx, member.UUID)
	})
	if err != nil {
		t.Fatalf("DeleteProfileTx() error = %v", err)
	}

	profiles, err := repo.GetProfilesByProjectID("project-1")
	if err != nil {
		t.Fatalf("GetProfilesByProjectID() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].UUID != admin.UUID {
		t.Errorf("GetProfilesByProjectID() = %d profiles, want only %s", len(profiles), admin.UUID)
	}
}
