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

// ScenarioService manages test scenarios. Scenarios are addressed through
// their phase; authorization resolves the owning project first.
type ScenarioService struct {
	scenarioRepo repository.ScenarioRepository
	phaseRepo    repository.PhaseRepository
	authz        *AuthorizationService
}

func NewScenarioService(scenarioRepo repository.ScenarioRepository, phaseRepo repository.PhaseRepository,
	authz *AuthorizationService) *ScenarioService {
	return &ScenarioService{
		scenarioRepo: scenarioRepo,
		phaseRepo:    phaseRepo,
		authz:        authz,
	}
}

// CreateScenario adds a scenario to a phase. Requires activity.create in
// the owning project.
func (s *ScenarioService) CreateScenario(userUUID, phaseUUID string, req *dto.CreateScenarioRequest) (*dto.Scenario, error) {
	phase, err := s.getPhase(phaseUUID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, phase.ProjectID, constants.CapActivityCreate); err != nil {
		return nil, err
	}

	scenario := &model.Scenario{
		UUID:        uuid.New().String(),
		PhaseID:     phaseUUID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.scenarioRepo.CreateScenario(scenario); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(scenario), nil
}

// GetScenario retrieves a scenario. Any member of the owning project may
// read it.
func (s *ScenarioService) GetScenario(userUUID, scenarioUUID string) (*dto.Scenario, error) {
	scenario, phase, err := s.getScenarioWithPhase(scenarioUUID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, phase.ProjectID); err != nil {
		return nil, err
	}
	return s.ModelToDTO(scenario), nil
}

// ListScenarios retrieves all scenarios of a phase.
func (s *ScenarioService) ListScenarios(userUUID, phaseUUID string) (*dto.ScenarioListResponse, error) {
	phase, err := s.getPhase(phaseUUID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, phase.ProjectID); err != nil {
		return nil, err
	}

	scenarioModels, err := s.scenarioRepo.GetScenariosByPhaseID(phaseUUID)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*dto.Scenario, 0, len(scenarioModels))
	for _, scenarioModel := range scenarioModels {
		scenarios = append(scenarios, s.ModelToDTO(scenarioModel))
	}
	return &dto.ScenarioListResponse{
		Count: len(scenarios),
		List:  scenarios,
		Pagination: dto.Pagination{
			Total:  len(scenarios),
			Offset: 0,
			Limit:  len(scenarios),
		},
	}, nil
}

// UpdateScenario modifies a scenario. Requires activity.edit in the owning
// project.
func (s *ScenarioService) UpdateScenario(userUUID, scenarioUUID string, req *dto.UpdateScenarioRequest) (*dto.Scenario, error) {
	scenario, phase, err := s.getScenarioWithPhase(scenarioUUID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, phase.ProjectID, constants.CapActivityEdit); err != nil {
		return nil, err
	}

	if req.Name != "" {
		scenario.Name = req.Name
	}
	if req.Description != "" {
		scenario.Description = req.Description
	}

	if err := s.scenarioRepo.UpdateScenario(scenario); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(scenario), nil
}

// DeleteScenario removes a scenario and its activities. Requires
// activity.delete in the owning project.
func (s *ScenarioService) DeleteScenario(userUUID, scenarioUUID string) error {
	_, phase, err := s.getScenarioWithPhase(scenarioUUID)
	if err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, phase.ProjectID, constants.CapActivityDelete); err != nil {
		return err
	}

	return wrapTransient(s.scenarioRepo.DeleteScenario(scenarioUUID))
}

func (s *ScenarioService) getPhase(phaseUUID string) (*model.Phase, error) {
	phase, err := s.phaseRepo.GetPhaseByUUID(phaseUUID)
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, constants.ErrPhaseNotFound
	}
	return phase, nil
}

func (s *ScenarioService) getScenarioWithPhase(scenarioUUID string) (*model.Scenario, *model.Phase, error) {
	scenario, err := s.scenarioRepo.GetScenarioByUUID(scenarioUUID)
	if err != nil {
		return nil, nil, err
	}
	if scenario == nil {
		return nil, nil, constants.ErrScenarioNotFound
	}
	phase, err := s.getPhase(scenario.PhaseID)
	if err != nil {
		return nil, nil, err
	}
	return scenario, phase, nil
}

// ModelToDTO converts a scenario model to its API representation.
func (s *ScenarioService) ModelToDTO(scenario *model.Scenario) *dto.Scenario {
	if scenario == nil {
		return nil
	}
	return &dto.Scenario{
		UUID:        scenario.UUID,
		PhaseID:     scenario.PhaseID,
		Name:        scenario.Name,
		Description: scenario.Description,
		CreatedAt:   scenario.CreatedAt,
		UpdatedAt:   scenario.UpdatedAt,
	}
}
