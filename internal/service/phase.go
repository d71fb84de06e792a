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
	"project-api/src/internal/constants"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// PhaseService manages project phases. Structural changes to the activity
// tree (phases, scenarios) are gated by the activity capabilities.
type PhaseService struct {
	phaseRepo   repository.PhaseRepository
	projectRepo repository.ProjectRepository
	authz       *AuthorizationService
}

func NewPhaseService(phaseRepo repository.PhaseRepository, projectRepo repository.ProjectRepository,
	authz *AuthorizationService) *PhaseService {
	return &PhaseService{
		phaseRepo:   phaseRepo,
		projectRepo: projectRepo,
		authz:       authz,
	}
}

// CreatePhase adds a phase to a project. Requires activity.create.
func (s *PhaseService) CreatePhase(userUUID, projectUUID string, req *dto.CreatePhaseRequest) (*dto.Phase, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityCreate); err != nil {
		return nil, err
	}

	phase := &model.Phase{
		UUID:      uuid.New().String(),
		ProjectID: projectUUID,
		Name:      req.Name,
		Position:  req.Position,
	}
	if err := s.phaseRepo.CreatePhase(phase); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(phase), nil
}

// GetPhase retrieves a phase. Any member of the project may read it.
func (s *PhaseService) GetPhase(userUUID, projectUUID, phaseUUID string) (*dto.Phase, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	phase, err := s.phaseRepo.GetPhaseByUUID(phaseUUID)
	if err != nil {
		return nil, err
	}
	if phase == nil || phase.ProjectID != projectUUID {
		return nil, constants.ErrPhaseNotFound
	}
	return s.ModelToDTO(phase), nil
}

// ListPhases retrieves all phases of a project in position order.
func (s *PhaseService) ListPhases(userUUID, projectUUID string) (*dto.PhaseListResponse, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	phaseModels, err := s.phaseRepo.GetPhasesByProjectID(projectUUID)
	if err != nil {
		return nil, err
	}

	phases := make([]*dto.Phase, 0, len(phaseModels))
	for _, phaseModel := range phaseModels {
		phases = append(phases, s.ModelToDTO(phaseModel))
	}
	return &dto.PhaseListResponse{
		Count: len(phases),
		List:  phases,
		Pagination: dto.Pagination{
			Total:  len(phases),
			Offset: 0,
			Limit:  len(phases),
		},
	}, nil
}

// UpdatePhase modifies a phase. Requires activity.edit.
func (s *PhaseService) UpdatePhase(userUUID, projectUUID, phaseUUID string, req *dto.UpdatePhaseRequest) (*dto.Phase, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityEdit); err != nil {
		return nil, err
	}

	phase, err := s.phaseRepo.GetPhaseByUUID(phaseUUID)
	if err != nil {
		return nil, err
	}
	if phase == nil || phase.ProjectID != projectUUID {
		return nil, constants.ErrPhaseNotFound
	}

	if req.Name != "" {
		phase.Name = req.Name
	}
	if req.Position != nil {
		phase.Position = *req.Position
	}

	if err := s.phaseRepo.UpdatePhase(phase); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(phase), nil
}

// DeletePhase removes a phase and everything under it. Requires
// activity.delete.
func (s *PhaseService) DeletePhase(userUUID, projectUUID, phaseUUID string) error {
	if err := s.checkProject(projectUUID); err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityDelete); err != nil {
		return err
	}

	phase, err := s.phaseRepo.GetPhaseByUUID(phaseUUID)
	if err != nil {
		return err
	}
	if phase == nil || phase.ProjectID != projectUUID {
		return constants.ErrPhaseNotFound
	}

	return wrapTransient(s.phaseRepo.DeletePhase(phaseUUID))
}

func (s *PhaseService) checkProject(projectUUID string) error {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return err
	}
	if project == nil {
		return constants.ErrProjectNotFound
	}
	return nil
}

// ModelToDTO converts a phase model to its API representation.
func (s *PhaseService) ModelToDTO(phase *model.Phase) *dto.Phase {
	if phase == nil {
		return nil
	}
	return &dto.Phase{
		UUID:      phase.UUID,
		ProjectID: phase.ProjectID,
		Name:      phase.Name,
		Position:  phase.Position,
		CreatedAt: phase.CreatedAt,
		UpdatedAt: phase.UpdatedAt,
	}
}
