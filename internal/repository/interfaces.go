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

	"project-api/src/internal/model"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUUID(uuid string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	CreateProjectTx(tx *sql.Tx, project *model.Project) error
	GetProjectByUUID(uuid string) (*model.Project, error)
	GetProjectsByUserID(userUUID string) ([]*model.Project, error)
	ListProjects(limit, offset int) ([]*model.Project, error)
	UpdateProject(project *model.Project) error
	DeleteProject(uuid string) error
}

// ProfileRepository defines the interface for profile data access.
// Tx variants exist for every operation that participates in an
// invariant-sensitive check-then-write sequence.
type ProfileRepository interface {
	CreateProfile(profile *model.Profile) error
	CreateProfileTx(tx *sql.Tx, profile *model.Profile) error
	GetProfileByUUID(uuid string) (*model.Profile, error)
	GetProfileByName(projectUUID, name string) (*model.Profile, error)
	GetProfilesByProjectID(projectUUID string) ([]*model.Profile, error)
	GetProfilesByProjectIDTx(tx *sql.Tx, projectUUID string) ([]*model.Profile, error)
	UpdateProfileTx(tx *sql.Tx, profile *model.Profile) error
	DeleteProfileTx(tx *sql.Tx, uuid string) error
}

// MembershipRepository defines the interface for membership data access
type MembershipRepository interface {
	CreateMembershipTx(tx *sql.Tx, membership *model.Membership) error
	GetMembershipByUUID(uuid string) (*model.Membership, error)
	GetMembershipByUserAndProject(userUUID, projectUUID string) (*model.Membership, error)
	GetMembershipByUserAndProjectTx(tx *sql.Tx, userUUID, projectUUID string) (*model.Membership, error)
	GetMembershipsByProjectID(projectUUID string) ([]*model.Membership, error)
	CountMembershipsByProfileIDTx(tx *sql.Tx, profileUUID string) (int, error)
	// CountManagingMembershipsTx counts the project's memberships whose
	// profile holds member.manage, excluding the given membership UUID
	// (empty string excludes none).
	CountManagingMembershipsTx(tx *sql.Tx, projectUUID, excludeMembershipUUID string) (int, error)
	UpdateMembershipTx(tx *sql.Tx, membership *model.Membership) error
	DeleteMembershipTx(tx *sql.Tx, uuid string) error
}

// PhaseRepository defines the interface for phase data access
type PhaseRepository interface {
	CreatePhase(phase *model.Phase) error
	GetPhaseByUUID(uuid string) (*model.Phase, error)
	GetPhasesByProjectID(projectUUID string) ([]*model.Phase, error)
	UpdatePhase(phase *model.Phase) error
	DeletePhase(uuid string) error
}

// ScenarioRepository defines the interface for scenario data access
type ScenarioRepository interface {
	CreateScenario(scenario *model.Scenario) error
	GetScenarioByUUID(uuid string) (*model.Scenario, error)
	GetScenariosByPhaseID(phaseUUID string) ([]*model.Scenario, error)
	UpdateScenario(scenario *model.Scenario) error
	DeleteScenario(uuid string) error
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	CreateActivity(activity *model.Activity) error
	GetActivityByUUID(uuid string) (*model.Activity, error)
	GetActivityByUUIDTx(tx *sql.Tx, uuid string) (*model.Activity, error)
	GetActivitiesByScenarioID(scenarioUUID string) ([]*model.Activity, error)
	GetActivityBySequenceTx(tx *sql.Tx, scenarioUUID string, sequenceNumber int) (*model.Activity, error)
	GetMaxSequenceNumber(scenarioUUID string) (int, error)
	UpdateActivity(activity *model.Activity) error
	UpdateActivityTx(tx *sql.Tx, activity *model.Activity) error
	DeleteActivity(uuid string) error
}

// LessonLearnedRepository defines the interface for lesson learned data access
type LessonLearnedRepository interface {
	CreateLesson(lesson *model.LessonLearned) error
	GetLessonByUUID(uuid string) (*model.LessonLearned, error)
	GetLessonsByProjectID(projectUUID string) ([]*model.LessonLearned, error)
	UpdateLesson(lesson *model.LessonLearned) error
	DeleteLesson(uuid string) error
}

// ChangeRequestRepository defines the interface for change request data access
type ChangeRequestRepository interface {
	CreateChangeRequest(changeRequest *model.ChangeRequest) error
	GetChangeRequestByUUID(uuid string) (*model.ChangeRequest, error)
	GetChangeRequestsByProjectID(projectUUID string) ([]*model.ChangeRequest, error)
	UpdateChangeRequest(changeRequest *model.ChangeRequest) error
	DeleteChangeRequest(uuid string) error
}
