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
	"strings"

	"project-api/src/internal/constants"
	"project-api/src/internal/database"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// ProfileService manages project-scoped profiles. Mutations run inside a
// transaction because the managing-profile invariant is a check-then-write:
// the project must never lose its last profile holding both member.manage
// and profile.manage.
type ProfileService struct {
	db             *database.DB
	profileRepo    repository.ProfileRepository
	membershipRepo repository.MembershipRepository
	projectRepo    repository.ProjectRepository
	authz          *AuthorizationService
}

func NewProfileService(db *database.DB, profileRepo repository.ProfileRepository,
	membershipRepo repository.MembershipRepository, projectRepo repository.ProjectRepository,
	authz *AuthorizationService) *ProfileService {
	return &ProfileService{
		db:             db,
		profileRepo:    profileRepo,
		membershipRepo: membershipRepo,
		projectRepo:    projectRepo,
		authz:          authz,
	}
}

// CreateProfile adds a profile to a project. Requires profile.manage.
func (s *ProfileService) CreateProfile(userUUID, projectUUID string, req *dto.CreateProfileRequest) (*dto.Profile, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapProfileManage); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, constants.ErrInvalidProfileName
	}

	capabilities, err := model.CapabilitiesFromMap(req.Capabilities)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		UUID:         uuid.New().String(),
		ProjectID:    projectUUID,
		Name:         name,
		Capabilities: capabilities,
	}

	err = s.db.WithTx(func(tx *sql.Tx) error {
		existing, err := s.profileRepo.GetProfilesByProjectIDTx(tx, projectUUID)
		if err != nil {
			return err
		}
		for _, p := range existing {
			if p.Name == name {
				return constants.ErrProfileNameExists
			}
		}
		return s.profileRepo.CreateProfileTx(tx, profile)
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	return s.ModelToDTO(profile), nil
}

// GetProfile retrieves a profile. Any member of the project may read it.
func (s *ProfileService) GetProfile(userUUID, projectUUID, profileUUID string) (*dto.Profile, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetProfileByUUID(profileUUID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ProjectID != projectUUID {
		return nil, constants.ErrProfileNotFound
	}
	return s.ModelToDTO(profile), nil
}

// ListProfiles retrieves all profiles of a project.
func (s *ProfileService) ListProfiles(userUUID, projectUUID string) (*dto.ProfileListResponse, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	profileModels, err := s.profileRepo.GetProfilesByProjectID(projectUUID)
	if err != nil {
		return nil, err
	}

	profiles := make([]*dto.Profile, 0, len(profileModels))
	for _, profileModel := range profileModels {
		profiles = append(profiles, s.ModelToDTO(profileModel))
	}
	return &dto.ProfileListResponse{
		Count: len(profiles),
		List:  profiles,
		Pagination: dto.Pagination{
			Total:  len(profiles),
			Offset: 0,
			Limit:  len(profiles),
		},
	}, nil
}

// UpdateProfile renames a profile or rewrites its capability set. Requires
// profile.manage. Capability changes take effect on the next authorization
// check of every member bound to the profile; there is no per-user caching.
func (s *ProfileService) UpdateProfile(userUUID, projectUUID, profileUUID string, req *dto.UpdateProfileRequest) (*dto.Profile, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapProfileManage); err != nil {
		return nil, err
	}

	var newCapabilities *model.Capabilities
	if req.Capabilities != nil {
		capabilities, err := model.CapabilitiesFromMap(req.Capabilities)
		if err != nil {
			return nil, err
		}
		newCapabilities = &capabilities
	}

	var updated *model.Profile
	err := s.db.WithTx(func(tx *sql.Tx) error {
		profiles, err := s.profileRepo.GetProfilesByProjectIDTx(tx, projectUUID)
		if err != nil {
			return err
		}

		var profile *model.Profile
		for _, p := range profiles {
			if p.UUID == profileUUID {
				profile = p
				break
			}
		}
		if profile == nil {
			return constants.ErrProfileNotFound
		}

		if req.Name != "" {
			name := strings.TrimSpace(req.Name)
			if name == "" {
				return constants.ErrInvalidProfileName
			}
			for _, p := range profiles {
				if p.UUID != profileUUID && p.Name == name {
					return constants.ErrProfileNameExists
				}
			}
			profile.Name = name
		}

		if newCapabilities != nil {
			// Demoting this profile must leave at least one managing
			// profile behind.
			if profile.Capabilities.IsManaging() && !newCapabilities.IsManaging() {
				if countManagingProfiles(profiles, profileUUID) == 0 {
					return constants.ErrLastManagingProfile
				}
			}
			profile.Capabilities = *newCapabilities
		}

		updated = profile
		return s.profileRepo.UpdateProfileTx(tx, profile)
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	return s.ModelToDTO(updated), nil
}

// DeleteProfile removes a profile. Requires profile.manage. Blocked while
// any membership references the profile, and when deletion would leave the
// project without a managing profile.
func (s *ProfileService) DeleteProfile(userUUID, projectUUID, profileUUID string) error {
	if err := s.checkProject(projectUUID); err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapProfileManage); err != nil {
		return err
	}

	err := s.db.WithTx(func(tx *sql.Tx) error {
		profiles, err := s.profileRepo.GetProfilesByProjectIDTx(tx, projectUUID)
		if err != nil {
			return err
		}

		var profile *model.Profile
		for _, p := range profiles {
			if p.UUID == profileUUID {
				profile = p
				break
			}
		}
		if profile == nil {
			return constants.ErrProfileNotFound
		}

		inUse, err := s.membershipRepo.CountMembershipsByProfileIDTx(tx, profileUUID)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return constants.ErrProfileInUse
		}

		if profile.Capabilities.IsManaging() && countManagingProfiles(profiles, profileUUID) == 0 {
			return constants.ErrLastManagingProfile
		}

		return s.profileRepo.DeleteProfileTx(tx, profileUUID)
	})
	return wrapTransient(err)
}

func (s *ProfileService) checkProject(projectUUID string) error {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return err
	}
	if project == nil {
		return constants.ErrProjectNotFound
	}
	return nil
}

// countManagingProfiles counts profiles holding both managing capabilities,
// excluding the given profile UUID.
func countManagingProfiles(profiles []*model.Profile, excludeUUID string) int {
	count := 0
	for _, p := range profiles {
		if p.UUID == excludeUUID {
			continue
		}
		if p.Capabilities.IsManaging() {
			count++
		}
	}
	return count
}

// ModelToDTO converts a profile model to its API representation.
func (s *ProfileService) ModelToDTO(profile *model.Profile) *dto.Profile {
	if profile == nil {
		return nil
	}
	return &dto.Profile{
		UUID:         profile.UUID,
		ProjectID:    profile.ProjectID,
		Name:         profile.Name,
		IsDefault:    profile.IsDefault,
		Capabilities: profile.Capabilities.ToMap(),
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}
