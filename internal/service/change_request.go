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

// ChangeRequestService manages a project's change requests, including the
// decision trail (status, approver, dates).
type ChangeRequestService struct {
	changeRequestRepo repository.ChangeRequestRepository
	projectRepo       repository.ProjectRepository
	authz             *AuthorizationService
}

func NewChangeRequestService(changeRequestRepo repository.ChangeRequestRepository,
	projectRepo repository.ProjectRepository, authz *AuthorizationService) *ChangeRequestService {
	return &ChangeRequestService{
		changeRequestRepo: changeRequestRepo,
		projectRepo:       projectRepo,
		authz:             authz,
	}
}

// CreateChangeRequest opens a change request in pending status. Requires
// change_request.create.
func (s *ChangeRequestService) CreateChangeRequest(userUUID, projectUUID string, req *dto.CreateChangeRequestRequest) (*dto.ChangeRequest, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapChangeRequestCreate); err != nil {
		return nil, err
	}

	cr := &model.ChangeRequest{
		UUID:           uuid.New().String(),
		ProjectID:      projectUUID,
		RequestedBy:    req.RequestedBy,
		RequestingArea: req.RequestingArea,
		Description:    req.Description,
		Justification:  req.Justification,
		ChangeType:     req.ChangeType,
		ScheduleImpact: req.ScheduleImpact,
		CostImpact:     req.CostImpact,
		ScopeImpact:    req.ScopeImpact,
		ResourceImpact: req.ResourceImpact,
		RiskImpact:     req.RiskImpact,
		Priority:       req.Priority,
		Status:         constants.ChangeRequestStatusPending,
		CreatedBy:      userUUID,
	}
	if err := s.changeRequestRepo.CreateChangeRequest(cr); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(cr), nil
}

// GetChangeRequest retrieves a change request. Any member of the project
// may read it.
func (s *ChangeRequestService) GetChangeRequest(userUUID, projectUUID, changeRequestUUID string) (*dto.ChangeRequest, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	cr, err := s.getChangeRequestInProject(changeRequestUUID, projectUUID)
	if err != nil {
		return nil, err
	}
	return s.ModelToDTO(cr), nil
}

// ListChangeRequests retrieves all change requests of a project, newest
// first.
func (s *ChangeRequestService) ListChangeRequests(userUUID, projectUUID string) (*dto.ChangeRequestListResponse, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	crModels, err := s.changeRequestRepo.GetChangeRequestsByProjectID(projectUUID)
	if err != nil {
		return nil, err
	}

	changeRequests := make([]*dto.ChangeRequest, 0, len(crModels))
	for _, crModel := range crModels {
		changeRequests = append(changeRequests, s.ModelToDTO(crModel))
	}
	return &dto.ChangeRequestListResponse{
		Count: len(changeRequests),
		List:  changeRequests,
		Pagination: dto.Pagination{
			Total:  len(changeRequests),
			Offset: 0,
			Limit:  len(changeRequests),
		},
	}, nil
}

// UpdateChangeRequest edits a change request, including recording the
// decision. Requires change_request.edit.
func (s *ChangeRequestService) UpdateChangeRequest(userUUID, projectUUID, changeRequestUUID string, req *dto.UpdateChangeRequestRequest) (*dto.ChangeRequest, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapChangeRequestEdit); err != nil {
		return nil, err
	}

	cr, err := s.getChangeRequestInProject(changeRequestUUID, projectUUID)
	if err != nil {
		return nil, err
	}

	if req.RequestedBy != "" {
		cr.RequestedBy = req.RequestedBy
	}
	if req.RequestingArea != "" {
		cr.RequestingArea = req.RequestingArea
	}
	if req.Description != "" {
		cr.Description = req.Description
	}
	if req.Justification != "" {
		cr.Justification = req.Justification
	}
	if req.ChangeType != "" {
		cr.ChangeType = req.ChangeType
	}
	if req.ScheduleImpact != "" {
		cr.ScheduleImpact = req.ScheduleImpact
	}
	if req.CostImpact != "" {
		cr.CostImpact = req.CostImpact
	}
	if req.ScopeImpact != "" {
		cr.ScopeImpact = req.ScopeImpact
	}
	if req.ResourceImpact != "" {
		cr.ResourceImpact = req.ResourceImpact
	}
	if req.RiskImpact != "" {
		cr.RiskImpact = req.RiskImpact
	}
	if req.Priority != "" {
		cr.Priority = req.Priority
	}
	if req.PMRecommendation != "" {
		cr.PMRecommendation = req.PMRecommendation
	}
	if req.Status != "" {
		cr.Status = req.Status
	}
	if req.Approver != "" {
		cr.Approver = req.Approver
	}
	if req.DecisionDate != nil {
		cr.DecisionDate = req.DecisionDate
	}
	if req.ImplementationDate != nil {
		cr.ImplementationDate = req.ImplementationDate
	}
	if req.Notes != "" {
		cr.Notes = req.Notes
	}

	if err := s.changeRequestRepo.UpdateChangeRequest(cr); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(cr), nil
}

// DeleteChangeRequest removes a change request. Requires
// change_request.delete.
func (s *ChangeRequestService) DeleteChangeRequest(userUUID, projectUUID, changeRequestUUID string) error {
	if err := s.checkProject(projectUUID); err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapChangeRequestDelete); err != nil {
		return err
	}

	if _, err := s.getChangeRequestInProject(changeRequestUUID, projectUUID); err != nil {
		return err
	}
	return wrapTransient(s.changeRequestRepo.DeleteChangeRequest(changeRequestUUID))
}

func (s *ChangeRequestService) checkProject(projectUUID string) error {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return err
	}
	if project == nil {
		return constants.ErrProjectNotFound
	}
	return nil
}

func (s *ChangeRequestService) getChangeRequestInProject(changeRequestUUID, projectUUID string) (*model.ChangeRequest, error) {
	cr, err := s.changeRequestRepo.GetChangeRequestByUUID(changeRequestUUID)
	if err != nil {
		return nil, err
	}
	if cr == nil || cr.ProjectID != projectUUID {
		return nil, constants.ErrChangeRequestNotFound
	}
	return cr, nil
}

// ModelToDTO converts a change request model to its API representation.
func (s *ChangeRequestService) ModelToDTO(cr *model.ChangeRequest) *dto.ChangeRequest {
	if cr == nil {
		return nil
	}
	return &dto.ChangeRequest{
		UUID:               cr.UUID,
		ProjectID:          cr.ProjectID,
		RequestedBy:        cr.RequestedBy,
		RequestingArea:     cr.RequestingArea,
		Description:        cr.Description,
		Justification:      cr.Justification,
		ChangeType:         cr.ChangeType,
		ScheduleImpact:     cr.ScheduleImpact,
		CostImpact:         cr.CostImpact,
		ScopeImpact:        cr.ScopeImpact,
		ResourceImpact:     cr.ResourceImpact,
		RiskImpact:         cr.RiskImpact,
		Priority:           cr.Priority,
		PMRecommendation:   cr.PMRecommendation,
		Status:             cr.Status,
		Approver:           cr.Approver,
		DecisionDate:       cr.DecisionDate,
		ImplementationDate: cr.ImplementationDate,
		Notes:              cr.Notes,
		CreatedBy:          cr.CreatedBy,
		CreatedAt:          cr.CreatedAt,
		UpdatedAt:          cr.UpdatedAt,
	}
}
