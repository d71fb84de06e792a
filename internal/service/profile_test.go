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
	"project-api/src/internal/dto"
)

// TestCreateProfileValidation tests name uniqueness and the closed
// capability set.
func TestCreateProfileValidation(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice")
	project := env.createProject(t, creator, "Rollout")

	created, err := env.profiles.CreateProfile(creator, project.UUID, &dto.CreateProfileRequest{
		Name: "Reviewer",
		Capabilities: map[string]bool{
			constants.CapActivityComplete: true,
			constants.CapLessonCreate:     true,
		},
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if !created.Capabilities[constants.CapActivityComplete] {
		t.Error("created profile is missing activity.complete")
	}
	if created.Capabilities[constants.CapMemberManage] {
		t.Error("created profile unexpectedly holds member.manage")
	}

	// Duplicate name within the project.
	_, err = env.profiles.CreateProfile(creator, project.UUID, &dto.CreateProfileRequest{Name: "Reviewer"})
	if !errors.Is(err, constants.ErrProfileNameExists) {
		t.Errorf("CreateProfile(duplicate name) error = %v, want ErrProfileNameExists", err)
	}

	// Unknown capability name.
	_, err = env.profiles.CreateProfile(creator, project.UUID, &dto.CreateProfileRequest{
		Name:         "Broken",
		Capabilities: map[string]bool{"activity.destroy": true},
	})
	if !errors.Is(err, constants.ErrUnknownCapability) {
		t.Errorf("CreateProfile(unknown capability) error = %v, want ErrUnknownCapability", err)
	}

	// Blank name.
	_, err = env.profiles.CreateProfile(creator, project.UUID, &dto.CreateProfileRequest{Name: "   "})
	if !errors.Is(err, constants.ErrInvalidProfileName) {
		t.Errorf("CreateProfile(blank name) error = %v, want ErrInvalidProfileName", err)
	}
}

// TestUpdateProfileLastManaging tests that demoting the only managing
// profile is rejected, and allowed once another managing profile exists.
func TestUpdateProfileLastManaging(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice")
	project := env.createProject(t, creator, "Rollout")

	admin := env.profileByName(t, project.UUID, constants.DefaultAdministratorProfile)

	demotion := &dto.UpdateProfileRequest{
		Capabilities: map[string]bool{constants.CapActivityCreate: true},
	}
	_, err := env.profiles.UpdateProfile(creator, project.UUID, admin.UUID, demotion)
	if !errors.Is(err, constants.ErrLastManagingProfile) {
		t.Errorf("UpdateProfile(demote last managing) error = %v, want ErrLastManagingProfile", err)
	}

	// A second managing profile unblocks the demotion.
	_, err = env.profiles.CreateProfile(creator, project.UUID, &dto.CreateProfileRequest{
		Name: "Backup Admin",
		Capabilities: map[string]bool{
			constants.CapMemberManage:  true,
			constants.CapProfileManage: true,
		},
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}

	updated, err := env.profiles.UpdateProfile(creator, project.UUID, admin.UUID, demotion)
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Capabilities[constants.CapMemberManage] {
		t.Error("demoted profile still holds member.manage")
	}
}

// TestDeleteProfileBlocked tests the two deletion guards: referencing
// memberships and the managing-profile floor.
func TestDeleteProfileBlocked(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice")
	project := env.createProject(t, creator, "Rollout")

	admin := env.profileByName(t, project.UUID, constants.DefaultAdministratorProfile)
	member := env.profileByName(t, project.UUID, constants.DefaultMemberProfile)

	// The creator's membership references Administrator.
	err := env.profiles.DeleteProfile(creator, project.UUID, admin.UUID)
	if !errors.Is(err, constants.ErrProfileInUse) {
		t.Errorf("DeleteProfile(in use) error = %v, want ErrProfileInUse", err)
	}

	// The unreferenced Member profile deletes cleanly.
	if err := env.profiles.DeleteProfile(creator, project.UUID, member.UUID); err != nil {
		t.Errorf("DeleteProfile(unused) error = %v, want nil", err)
	}

	if err := env.profiles.DeleteProfile(creator, project.UUID, "no-such-profile"); !errors.Is(err, constants.ErrProfileNotFound) {
		t.Errorf("DeleteProfile(unknown) error = %v, want ErrProfileNotFound", err)
	}
}

// TestProfileChangesApplyToNextCheck tests that rewriting a profile's
// capability set immediately affects members bound to it.
func TestProfileChangesApplyToNextCheck(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, creator, "Rollout")

	member := env.profileByName(t, project.UUID, constants.DefaultMemberProfile)
	if _, err := env.memberships.AddMember(creator, project.UUID, &dto.AddMemberRequest{
		UserID:    bob,
		ProfileID: member.UUID,
	}); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}

	if err := env.authz.RequireCapability(bob, project.UUID, constants.CapActivityDelete); !errors.Is(err, constants.ErrPermissionDenied) {
		t.Fatalf("RequireCapability(before grant) error = %v, want ErrPermissionDenied", err)
	}

	caps := member.Capabilities.ToMap()
	caps[constants.CapActivityDelete] = true
	if _, err := env.profiles.UpdateProfile(creator, project.UUID, member.UUID, &dto.UpdateProfileRequest{
		Capabilities: caps,
	}); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if err := env.authz.RequireCapability(bob, project.UUID, constants.CapActivityDelete); err != nil {
		t.Errorf("RequireCapability(after grant) error = %v, want nil", err)
	}
}
