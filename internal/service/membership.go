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

	"project-api/src/internal/constants"
	"project-api/src/internal/database"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// MembershipService manages who belongs to a project and under which
// profile. Mutations run inside a transaction because the last-manager
// invariant is a check-then-write: removing or demoting the last
// member.manage-capable membership must fail atomically.
type MembershipService struct {
	db             *database.DB
	membershipRepo repository.MembershipRepository
	profileRepo    repository.ProfileRepository
	projectRepo    repository.ProjectRepository
	userRepo       repository.UserRepository
	authz          *AuthorizationService
}

func NewMembershipService(db *database.DB, membershipRepo repository.MembershipRepository,
	profileRepo repository.ProfileRepository, projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository, authz *AuthorizationService) *MembershipService {
	return &MembershipService{
		db:             db,
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		authz:          authz,
	}
}

// AddMember enrolls a user in a project under a profile. Requires
// member.manage. A user can hold at most one membership per project.
func (s *MembershipService) AddMember(userUUID, projectUUID string, req *dto.AddMemberRequest) (*dto.Membership, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapMemberManage); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByUUID(req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}

	membership := &model.Membership{
		UUID:      uuid.New().String(),
		ProjectID: projectUUID,
		UserID:    req.UserID,
		ProfileID: req.ProfileID,
	}

	err = s.db.WithTx(func(tx *sql.Tx) error {
		if _, err := s.checkProfileInProjectTx(tx, projectUUID, req.ProfileID); err != nil {
			return err
		}

		existing, err := s.membershipRepo.GetMembershipByUserAndProjectTx(tx, req.UserID, projectUUID)
		if err != nil {
			return err
		}
		if existing != nil {
			return constants.ErrMembershipExists
		}

		return s.membershipRepo.CreateMembershipTx(tx, membership)
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	out := s.ModelToDTO(membership)
	out.Username = user.Username
	return out, nil
}

// ListMembers retrieves the project's memberships with usernames and
// profile names resolved.
func (s *MembershipService) ListMembers(userUUID, projectUUID string) (*dto.MembershipListResponse, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	membershipModels, err := s.membershipRepo.GetMembershipsByProjectID(projectUUID)
	if err != nil {
		return nil, err
	}

	profileModels, err := s.profileRepo.GetProfilesByProjectID(projectUUID)
	if err != nil {
		return nil, err
	}
	profileNames := make(map[string]string, len(profileModels))
	for _, p := range profileModels {
		profileNames[p.UUID] = p.Name
	}

	memberships := make([]*dto.Membership, 0, len(membershipModels))
	for _, membershipModel := range membershipModels {
		membership := s.ModelToDTO(membershipModel)
		membership.ProfileName = profileNames[membershipModel.ProfileID]
		if user, err := s.userRepo.GetUserByUUID(membershipModel.UserID); err == nil && user != nil {
			membership.Username = user.Username
		}
		memberships = append(memberships, membership)
	}
	return &dto.MembershipListResponse{
		Count: len(memberships),
		List:  memberships,
		Pagination: dto.Pagination{
			Total:  len(memberships),
			Offset: 0,
			Limit:  len(memberships),
		},
	}, nil
}

// ChangeProfile reassigns a member to another profile. Requires
// member.manage. Demoting the last member.manage-capable membership is
// rejected, which also blocks a sole manager demoting themselves.
func (s *MembershipService) ChangeProfile(userUUID, projectUUID, membershipUUID string, req *dto.ChangeProfileRequest) (*dto.Membership, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapMemberManage); err != nil {
		return nil, err
	}

	var updated *model.Membership
	err := s.db.WithTx(func(tx *sql.Tx) error {
		membership, err := s.getMembershipInProject(membershipUUID, projectUUID)
		if err != nil {
			return err
		}

		newProfile, err := s.checkProfileInProjectTx(tx, projectUUID, req.ProfileID)
		if err != nil {
			return err
		}

		if !newProfile.Capabilities.ManageMembers {
			remaining, err := s.membershipRepo.CountManagingMembershipsTx(tx, projectUUID, membershipUUID)
			if err != nil {
				return err
			}
			if remaining == 0 {
				return constants.ErrLastManagingMembership
			}
		}

		membership.ProfileID = req.ProfileID
		updated = membership
		return s.membershipRepo.UpdateMembershipTx(tx, membership)
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	return s.ModelToDTO(updated), nil
}

// RemoveMember removes a membership. Requires member.manage. Removing the
// last member.manage-capable membership is rejected; members with other
// profiles can always be removed, and managers can remove themselves while
// another manager remains.
func (s *MembershipService) RemoveMember(userUUID, projectUUID, membershipUUID string) error {
	if err := s.checkProject(projectUUID); err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapMemberManage); err != nil {
		return err
	}

	err := s.db.WithTx(func(tx *sql.Tx) error {
		membership, err := s.getMembershipInProject(membershipUUID, projectUUID)
		if err != nil {
			return err
		}

		remaining, err := s.membershipRepo.CountManagingMembershipsTx(tx, projectUUID, membershipUUID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			// The membership being removed is only relevant if it was a
			// managing one; a non-managing membership never changes the
			// manager count, so remaining==0 means it was the last.
			profile, err := s.profileRepo.GetProfileByUUID(membership.ProfileID)
			if err != nil {
				return err
			}
			if profile != nil && profile.Capabilities.ManageMembers {
				return constants.ErrLastManagingMembership
			}
		}

		return s.membershipRepo.DeleteMembershipTx(tx, membershipUUID)
	})
	return wrapTransient(err)
}

func (s *MembershipService) checkProject(projectUUID string) error {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return err
	}
	if project == nil {
		return constants.ErrProjectNotFound
	}
	return nil
}

func (s *MembershipService) getMembershipInProject(membershipUUID, projectUUID string) (*model.Membership, error) {
	membership, err := s.membershipRepo.GetMembershipByUUID(membershipUUID)
	if err != nil {
		return nil, err
	}
	if membership == nil || membership.ProjectID != projectUUID {
		return nil, constants.ErrMembershipNotFound
	}
	return membership, nil
}

func (s *MembershipService) checkProfileInProjectTx(tx *sql.Tx, projectUUID, profileUUID string) (*model.Profile, error) {
	profiles, err := s.profileRepo.GetProfilesByProjectIDTx(tx, projectUUID)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.UUID == profileUUID {
			return p, nil
		}
	}
	return nil, constants.ErrProfileProjectMismatch
}

// ModelToDTO converts a membership model to its API representation.
func (s *MembershipService) ModelToDTO(membership *model.Membership) *dto.Membership {
	if membership == nil {
		return nil
	}
	return &dto.Membership{
		UUID:      membership.UUID,
		ProjectID: membership.ProjectID,
		UserID:    membership.UserID,
		ProfileID: membership.ProfileID,
		CreatedAt: membership.CreatedAt,
		UpdatedAt: membership.UpdatedAt,
	}
}
