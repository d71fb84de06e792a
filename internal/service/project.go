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
	"fmt"
	"strings"

	"project-api/src/internal/constants"
	"project-api/src/internal/database"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// ProjectService owns the project lifecycle, including the bootstrap that
// gives every new project its default profiles and the creator's managing
// membership in one atomic transaction.
type ProjectService struct {
	db             *database.DB
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
	seeder         *ProfileSeeder
	authz          *AuthorizationService
}

func NewProjectService(db *database.DB, projectRepo repository.ProjectRepository,
	membershipRepo repository.MembershipRepository, seeder *ProfileSeeder,
	authz *AuthorizationService) *ProjectService {
	return &ProjectService{
		db:             db,
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		seeder:         seeder,
		authz:          authz,
	}
}

// CreateProject creates a project, seeds its default profiles and enrolls
// the creator with the managing profile. Either everything commits or
// nothing does, so a project can never exist without a managing member.
func (s *ProjectService) CreateProject(userUUID string, req *dto.CreateProjectRequest) (*dto.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, constants.ErrInvalidProjectName
	}

	project := &model.Project{
		UUID:        uuid.New().String(),
		Name:        name,
		Description: req.Description,
		CreatedBy:   userUUID,
	}

	err := s.db.WithTx(func(tx *sql.Tx) error {
		if err := s.projectRepo.CreateProjectTx(tx, project); err != nil {
			return err
		}

		profiles, err := s.seeder.SeedForProjectTx(tx, project.UUID)
		if err != nil {
			return err
		}

		managing := ManagingProfile(profiles)
		if managing == nil {
			return fmt.Errorf("default profile definitions produced no managing profile")
		}

		membership := &model.Membership{
			UUID:      uuid.New().String(),
			ProjectID: project.UUID,
			UserID:    userUUID,
			ProfileID: managing.UUID,
		}
		return s.membershipRepo.CreateMembershipTx(tx, membership)
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	return s.ModelToDTO(project), nil
}

// GetProject retrieves a project the user is a member of.
func (s *ProjectService) GetProject(userUUID, projectUUID string) (*dto.Project, error) {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}

	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}
	return s.ModelToDTO(project), nil
}

// ListProjects retrieves the projects the user is a member of.
func (s *ProjectService) ListProjects(userUUID string) (*dto.ProjectListResponse, error) {
	projectModels, err := s.projectRepo.GetProjectsByUserID(userUUID)
	if err != nil {
		return nil, err
	}

	projects := make([]*dto.Project, 0, len(projectModels))
	for _, projectModel := range projectModels {
		projects = append(projects, s.ModelToDTO(projectModel))
	}
	return &dto.ProjectListResponse{
		Count: len(projects),
		List:  projects,
		Pagination: dto.Pagination{
			Total:  len(projects),
			Offset: 0,
			Limit:  len(projects),
		},
	}, nil
}

// UpdateProject renames a project. Gated on member.manage since project
// metadata is administrative.
func (s *ProjectService) UpdateProject(userUUID, projectUUID string, req *dto.UpdateProjectRequest) (*dto.Project, error) {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}

	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapMemberManage); err != nil {
		return nil, err
	}

	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, constants.ErrInvalidProjectName
		}
		project.Name = name
	}
	if req.Description != "" {
		project.Description = req.Description
	}

	if err := s.projectRepo.UpdateProject(project); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(project), nil
}

// DeleteProject removes a project and everything it contains.
func (s *ProjectService) DeleteProject(userUUID, projectUUID string) error {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return err
	}
	if project == nil {
		return constants.ErrProjectNotFound
	}

	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapMemberManage); err != nil {
		return err
	}

	return wrapTransient(s.projectRepo.DeleteProject(projectUUID))
}

// ModelToDTO converts a project model to its API representation.
func (s *ProjectService) ModelToDTO(project *model.Project) *dto.Project {
	if project == nil {
		return nil
	}
	return &dto.Project{
		UUID:        project.UUID,
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
