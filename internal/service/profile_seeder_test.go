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
	"errors"
	"testing"

	"project-api/src/internal/constants"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"
)

// mockSeedingProfileRepository tracks created profiles so seeding
// idempotency can be verified.
type mockSeedingProfileRepository struct {
	repository.ProfileRepository // Embed interface for unimplemented methods

	existing  []*model.Profile
	created   []*model.Profile
	createErr error
	byName    map[string]*model.Profile
}

func (m *mockSeedingProfileRepository) GetProfilesByProjectID(projectUUID string) ([]*model.Profile, error) {
	return m.existing, nil
}

func (m *mockSeedingProfileRepository) CreateProfile(profile *model.Profile) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, profile)
	return nil
}

func (m *mockSeedingProfileRepository) GetProfileByName(projectUUID, name string) (*model.Profile, error) {
	if p, ok := m.byName[name]; ok {
		return p, nil
	}
	for _, p := range append(m.existing, m.created...) {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

// TestSeedForProject tests idempotent creation of the default profile set.
func TestSeedForProject(t *testing.T) {
	definitions := []*model.ProfileDefinition{
		{Name: constants.DefaultAdministratorProfile, Capabilities: model.AllCapabilitiesSet()},
		{Name: constants.DefaultMemberProfile, Capabilities: model.Capabilities{CreateActivity: true}},
	}

	tests := []struct {
		name        string
		existing    []*model.Profile
		definitions []*model.ProfileDefinition
		wantCreated []string
		wantErr     bool
	}{
		{
			name:        "empty project gets full default set",
			existing:    nil,
			definitions: definitions,
			wantCreated: []string{constants.DefaultAdministratorProfile, constants.DefaultMemberProfile},
		},
		{
			name: "existing profiles are never recreated",
			existing: []*model.Profile{
				{UUID: "p1", Name: constants.DefaultAdministratorProfile},
			},
			definitions: definitions,
			wantCreated: []string{constants.DefaultMemberProfile},
		},
		{
			name: "fully seeded project is a no-op",
			existing: []*model.Profile{
				{UUID: "p1", Name: constants.DefaultAdministratorProfile},
				{UUID: "p2", Name: constants.DefaultMemberProfile},
			},
			definitions: definitions,
			wantCreated: nil,
		},
		{
			name:        "no definitions is a no-op",
			definitions: nil,
			wantCreated: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockSeedingProfileRepository{existing: tt.existing}
			seeder := NewProfileSeeder(mock, tt.definitions)

			err := seeder.SeedForProject("project-1")
			if (err != nil) != tt.wantErr {
				t.Errorf("SeedForProject() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if len(mock.created) != len(tt.wantCreated) {
				t.Fatalf("SeedForProject() created %d profiles, want %d", len(mock.created), len(tt.wantCreated))
			}
			for i, name := range tt.wantCreated {
				if mock.created[i].Name != name {
					t.Errorf("created[%d].Name = %q, want %q", i, mock.created[i].Name, name)
				}
				if !mock.created[i].IsDefault {
					t.Errorf("created[%d].IsDefault = false, want true", i)
				}
				if mock.created[i].ProjectID != "project-1" {
					t.Errorf("created[%d].ProjectID = %q, want %q", i, mock.created[i].ProjectID, "project-1")
				}
			}
		})
	}
}

// TestSeedForProjectConcurrentCreate tests tolerance of a concurrent seeder
// winning the insert race: the create fails with a unique violation but the
// profile is found on recheck.
func TestSeedForProjectConcurrentCreate(t *testing.T) {
	mock := &mockSeedingProfileRepository{
		createErr: errors.New("UNIQUE constraint failed: profiles.project_uuid, profiles.name"),
		byName: map[string]*model.Profile{
			constants.DefaultAdministratorProfile: {UUID: "p1", Name: constants.DefaultAdministratorProfile},
		},
	}

	seeder := NewProfileSeeder(mock, []*model.ProfileDefinition{
		{Name: constants.DefaultAdministratorProfile, Capabilities: model.AllCapabilitiesSet()},
	})

	if err := seeder.SeedForProject("project-1"); err != nil {
		t.Errorf("SeedForProject() error = %v, want nil when profile exists after failed create", err)
	}
}

// TestManagingProfile tests selection of the profile the creator binds to.
func TestManagingProfile(t *testing.T) {
	tests := []struct {
		name     string
		profiles []*model.Profile
		wantUUID string
	}{
		{
			name: "first managing profile wins",
			profiles: []*model.Profile{
				{UUID: "p1", Capabilities: model.Capabilities{CreateActivity: true}},
				{UUID: "p2", Capabilities: model.AllCapabilitiesSet()},
				{UUID: "p3", Capabilities: model.AllCapabilitiesSet()},
			},
			wantUUID: "p2",
		},
		{
			name: "single managing bit is not enough",
			profiles: []*model.Profile{
				{UUID: "p1", Capabilities: model.Capabilities{ManageMembers: true}},
				{UUID: "p2", Capabilities: model.Capabilities{ManageProfiles: true}},
			},
			wantUUID: "",
		},
		{
			name:     "empty input",
			profiles: nil,
			wantUUID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ManagingProfile(tt.profiles)
			gotUUID := ""
			if got != nil {
				gotUUID = got.UUID
			}
			if gotUUID != tt.wantUUID {
				t.Errorf("ManagingProfile() = %q, want %q", gotUUID, tt.wantUUID)
			}
		})
	}
}
