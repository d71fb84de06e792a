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

package service

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"project-api/src/internal/constants"
	"project-api/src/internal/database"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"
	"project-api/src/internal/utils"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// testEnv wires real repositories against a temporary SQLite database so
// the transactional invariants are exercised end to end.
type testEnv struct {
	db             *database.DB
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	membershipRepo repository.MembershipRepository
	authz          *AuthorizationService
	projects       *ProjectService
	profiles       *ProfileService
	memberships    *MembershipService
	phases         *PhaseService
	scenarios      *ScenarioService
	activities     *ActivityService
	lessons        *LessonLearnedService
	changeRequests *ChangeRequestService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open SQLite database: %v", err)
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	db := &database.DB{DB: sqlDB}
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
		CREATE TABLE phases (
			uuid TEXT PRIMARY KEY,
			project_uuid TEXT NOT NULL REFERENCES projects(uuid) ON DELETE CASCADE,
			name TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE TABLE scenarios (
			uuid TEXT PRIMARY KEY,
			phase_uuid TEXT NOT NULL REFERENCES phases(uuid) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE TABLE activities (
			uuid TEXT PRIMARY KEY,
			scenario_uuid TEXT NOT NULL REFERENCES scenarios(uuid) ON DELETE CASCADE,
			sequence_number INTEGER NOT NULL,
			description TEXT NOT NULL,
			assignee_uuid TEXT REFERENCES users(uuid),
			status TEXT NOT NULL DEFAULT 'pending',
			released_at TIMESTAMP,
			completed_at TIMESTAMP,
			created_by TEXT NOT NULL REFERENCES users(uuid),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE TABLE lessons_learned (
			uuid TEXT PRIMARY KEY,
			project_uuid TEXT NOT NULL REFERENCES projects(uuid) ON DELETE CASCADE,
			phase_uuid TEXT REFERENCES phases(uuid) ON DELETE SET NULL,
			category TEXT,
			type TEXT,
			description TEXT NOT NULL,
			root_cause TEXT,
			impact TEXT,
			action_taken TEXT,
			recommendation TEXT,
			owner TEXT,
			status TEXT NOT NULL DEFAULT 'open',
			applicable_to_future BOOLEAN NOT NULL DEFAULT 1,
			created_by TEXT NOT NULL REFERENCES users(uuid),
			recorded_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE TABLE change_requests (
			uuid TEXT PRIMARY KEY,
			project_uuid TEXT NOT NULL REFERENCES projects(uuid) ON DELETE CASCADE,
			requested_by TEXT,
			requesting_area TEXT,
			description TEXT NOT NULL,
			justification TEXT,
			change_type TEXT,
			schedule_impact TEXT,
			cost_impact TEXT,
			scope_impact TEXT,
			resource_impact TEXT,
			risk_impact TEXT,
			priority TEXT,
			pm_recommendation TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			approver TEXT,
			decision_date TIMESTAMP,
			implementation_date TIMESTAMP,
			notes TEXT,
			created_by TEXT NOT NULL REFERENCES users(uuid),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	membershipRepo := repository.NewMembershipRepo(db)
	phaseRepo := repository.NewPhaseRepo(db)
	scenarioRepo := repository.NewScenarioRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	lessonRepo := repository.NewLessonLearnedRepo(db)
	changeRequestRepo := repository.NewChangeRequestRepo(db)

	seeder := NewProfileSeeder(profileRepo, utils.DefaultProfileDefinitions())
	authz := NewAuthorizationService(membershipRepo, profileRepo)

	return &testEnv{
		db:             db,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		membershipRepo: membershipRepo,
		authz:          authz,
		projects:       NewProjectService(db, projectRepo, membershipRepo, seeder, authz),
		profiles:       NewProfileService(db, profileRepo, membershipRepo, projectRepo, authz),
		memberships:    NewMembershipService(db, membershipRepo, profileRepo, projectRepo, userRepo, authz),
		phases:         NewPhaseService(phaseRepo, projectRepo, authz),
		scenarios:      NewScenarioService(scenarioRepo, phaseRepo, authz),
		activities:     NewActivityService(db, activityRepo, scenarioRepo, phaseRepo, authz),
		lessons:        NewLessonLearnedService(lessonRepo, phaseRepo, projectRepo, authz),
		changeRequests: NewChangeRequestService(changeRequestRepo, projectRepo, authz),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) string {
	t.Helper()

	user := &model.User{
		UUID:         uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := e.userRepo.CreateUser(user); err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user.UUID
}

func (e *testEnv) createProject(t *testing.T, creatorUUID, name string) *dto.Project {
	t.Helper()

	project, err := e.projects.CreateProject(creatorUUID, &dto.CreateProjectRequest{Name: name})
	if err != nil {
		t.Fatalf("Failed to create project %s: %v", name, err)
	}
	return project
}

// profileByName resolves a seeded profile of a project
func (e *testEnv) profileByName(t *testing.T, projectUUID, name string) *model.Profile {
	t.Helper()

	profile, err := e.profileRepo.GetProfileByName(projectUUID, name)
	if err != nil {
		t.Fatalf("Failed to load profile %s: %v", name, err)
	}
	if profile == nil {
		t.Fatalf("Profile %s not found in project %s", name, projectUUID)
	}
	return profile
}

// TestCreateProjectBootstrap tests that project creation seeds the default
// profiles and enrolls the creator under the managing one atomically.
func TestCreateProjectBootstrap(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice")

	project := env.createProject(t, creator, "Rollout")
	if project.CreatedBy != creator {
		t.Errorf("CreatedBy = %q, want %q", project.CreatedBy, creator)
	}

	// Both default profiles exist.
	admin := env.profileByName(t, project.UUID, constants.DefaultAdministratorProfile)
	env.profileByName(t, project.UUID, constants.DefaultMemberProfile)
	if !admin.Capabilities.IsManaging() {
		t.Error("Administrator profile is not managing")
	}
	if !admin.IsDefault {
		t.Error("Administrator profile is not marked default")
	}

	// The creator holds the managing profile.
	membership, err := env.membershipRepo.GetMembershipByUserAndProject(creator, project.UUID)
	if err != nil {
		t.Fatalf("GetMembershipByUserAndProject() error = %v", err)
	}
	if membership == nil || membership.ProfileID != admin.UUID {
		t.Fatalf("creator membership = %+v, want bound to %s", membership, admin.UUID)
	}

	// And can therefore manage members and profiles.
	for _, capability := range []string{constants.CapMemberManage, constants.CapProfileManage} {
		if err := env.authz.RequireCapability(creator, project.UUID, capability); err != nil {
			t.Errorf("RequireCapability(%s) error = %v, want nil", capability, err)
		}
	}
}

// TestProjectAccess tests membership gating on reads and capability gating
// on administrative writes.
func TestProjectAccess(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice")
	outsider := env.createUser(t, "mallory")
	project := env.createProject(t, creator, "Rollout")

	if _, err := env.projects.GetProject(outsider, project.UUID); !errors.Is(err, constants.ErrPermissionDenied) {
		t.Errorf("GetProject(outsider) error = %v, want ErrPermissionDenied", err)
	}
	if _, err := env.projects.GetProject(creator, project.UUID); err != nil {
		t.Errorf("GetProject(creator) error = %v, want nil", err)
	}

	if _, err := env.projects.UpdateProject(outsider, project.UUID, &dto.UpdateProjectRequest{Name: "Hijacked"}); !errors.Is(err, constants.ErrPermissionDenied) {
		t.Errorf("UpdateProject(outsider) error = %v, want ErrPermissionDenied", err)
	}

	updated, err := env.projects.UpdateProject(creator, project.UUID, &dto.UpdateProjectRequest{Name: "Rollout v2"})
	if err != nil {
		t.Fatalf("UpdateProject(creator) error = %v", err)
	}
	if updated.Name != "Rollout v2" {
		t.Errorf("updated name = %q, want %q", updated.Name, "Rollout v2")
	}

	if _, err := env.projects.GetProject(creator, "no-such-project"); !errors.Is(err, constants.ErrProjectNotFound) {
		t.Errorf("GetProject(unknown) error = %v, want ErrProjectNotFound", err)
	}
}
