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
	"time"

	"project-api/src/internal/constants"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// LessonLearnedService manages lessons captured during a project.
type LessonLearnedService struct {
	lessonRepo  repository.LessonLearnedRepository
	phaseRepo   repository.PhaseRepository
	projectRepo repository.ProjectRepository
	authz       *AuthorizationService
}

func NewLessonLearnedService(lessonRepo repository.LessonLearnedRepository,
	phaseRepo repository.PhaseRepository, projectRepo repository.ProjectRepository,
	authz *AuthorizationService) *LessonLearnedService {
	return &LessonLearnedService{
		lessonRepo:  lessonRepo,
		phaseRepo:   phaseRepo,
		projectRepo: projectRepo,
		authz:       authz,
	}
}

// CreateLesson records a lesson. Requires lesson.create.
func (s *LessonLearnedService) CreateLesson(userUUID, projectUUID string, req *dto.CreateLessonLearnedRequest) (*dto.LessonLearned, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapLessonCreate); err != nil {
		return nil, err
	}
	if err := s.checkPhase(projectUUID, req.PhaseID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constants.LessonStatusOpen
	}
	applicable := true
	if req.ApplicableToFuture != nil {
		applicable = *req.ApplicableToFuture
	}

	lesson := &model.LessonLearned{
		UUID:               uuid.New().String(),
		ProjectID:          projectUUID,
		PhaseID:            req.PhaseID,
		Category:           req.Category,
		Type:               req.Type,
		Description:        req.Description,
		RootCause:          req.RootCause,
		Impact:             req.Impact,
		ActionTaken:        req.ActionTaken,
		Recommendation:     req.Recommendation,
		Owner:              req.Owner,
		Status:             status,
		ApplicableToFuture: applicable,
		CreatedBy:          userUUID,
		RecordedAt:         time.Now(),
	}
	if err := s.lessonRepo.CreateLesson(lesson); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(lesson), nil
}

// GetLesson retrieves a lesson. Any member of the project may read it.
func (s *LessonLearnedService) GetLesson(userUUID, projectUUID, lessonUUID string) (*dto.LessonLearned, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	lesson, err := s.getLessonInProject(lessonUUID, projectUUID)
	if err != nil {
		return nil, err
	}
	return s.ModelToDTO(lesson), nil
}

// ListLessons retrieves all lessons of a project, newest first.
func (s *LessonLearnedService) ListLessons(userUUID, projectUUID string) (*dto.LessonLearnedListResponse, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	lessonModels, err := s.lessonRepo.GetLessonsByProjectID(projectUUID)
	if err != nil {
		return nil, err
	}

	lessons := make([]*dto.LessonLearned, 0, len(lessonModels))
	for _, lessonModel := range lessonModels {
		lessons = append(lessons, s.ModelToDTO(lessonModel))
	}
	return &dto.LessonLearnedListResponse{
		Count: len(lessons),
		List:  lessons,
		Pagination: dto.Pagination{
			Total:  len(lessons),
			Offset: 0,
			Limit:  len(lessons),
		},
	}, nil
}

// UpdateLesson edits a lesson. Requires lesson.edit.
func (s *LessonLearnedService) UpdateLesson(userUUID, projectUUID, lessonUUID string, req *dto.UpdateLessonLearnedRequest) (*dto.LessonLearned, error) {
	if err := s.checkProject(projectUUID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapLessonEdit); err != nil {
		return nil, err
	}

	lesson, err := s.getLessonInProject(lessonUUID, projectUUID)
	if err != nil {
		return nil, err
	}

	if req.PhaseID != nil {
		if err := s.checkPhase(projectUUID, req.PhaseID); err != nil {
			return nil, err
		}
		lesson.PhaseID = req.PhaseID
	}
	if req.Category != "" {
		lesson.Category = req.Category
	}
	if req.Type != "" {
		lesson.Type = req.Type
	}
	if req.Description != "" {
		lesson.Description = req.Description
	}
	if req.RootCause != "" {
		lesson.RootCause = req.RootCause
	}
	if req.Impact != "" {
		lesson.Impact = req.Impact
	}
	if req.ActionTaken != "" {
		lesson.ActionTaken = req.ActionTaken
	}
	if req.Recommendation != "" {
		lesson.Recommendation = req.Recommendation
	}
	if req.Owner != "" {
		lesson.Owner = req.Owner
	}
	if req.Status != "" {
		lesson.Status = req.Status
	}
	if req.ApplicableToFuture != nil {
		lesson.ApplicableToFuture = *req.ApplicableToFuture
	}

	if err := s.lessonRepo.UpdateLesson(lesson); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(lesson), nil
}

// DeleteLesson removes a lesson. Requires lesson.delete.
func (s *LessonLearnedService) DeleteLesson(userUUID, projectUUID, lessonUUID string) error {
	if err := s.checkProject(projectUUID); err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapLessonDelete); err != nil {
		return err
	}

	if _, err := s.getLessonInProject(lessonUUID, projectUUID); err != nil {
		return err
	}
	return wrapTransient(s.lessonRepo.DeleteLesson(lessonUUID))
}

func (s *LessonLearnedService) checkProject(projectUUID string) error {
	project, err := s.projectRepo.GetProjectByUUID(projectUUID)
	if err != nil {
		return err
	}
	if project == nil {
		return constants.ErrProjectNotFound
	}
	return nil
}

// checkPhase verifies that an optional phase reference belongs to the
// project.
func (s *LessonLearnedService) checkPhase(projectUUID string, phaseUUID *string) error {
	if phaseUUID == nil || *phaseUUID == "" {
		return nil
	}
	phase, err := s.phaseRepo.GetPhaseByUUID(*phaseUUID)
	if err != nil {
		return err
	}
	if phase == nil || phase.ProjectID != projectUUID {
		return constants.ErrPhaseNotFound
	}
	return nil
}

func (s *LessonLearnedService) getLessonInProject(lessonUUID, projectUUID string) (*model.LessonLearned, error) {
	lesson, err := s.lessonRepo.GetLessonByUUID(lessonUUID)
	if err != nil {
		return nil, err
	}
	if lesson == nil || lesson.ProjectID != projectUUID {
		return nil, constants.ErrLessonNotFound
	}
	return lesson, nil
}

// ModelToDTO converts a lesson model to its API representation.
func (s *LessonLearnedService) ModelToDTO(lesson *model.LessonLearned) *dto.LessonLearned {
	if lesson == nil {
		return nil
	}
	return &dto.LessonLearned{
		UUID:               lesson.UUID,
		ProjectID:          lesson.ProjectID,
		PhaseID:            lesson.PhaseID,
		Category:           lesson.Category,
		Type:               lesson.Type,
		Description:        lesson.Description,
		RootCause:          lesson.RootCause,
		Impact:             lesson.Impact,
		ActionTaken:        lesson.ActionTaken,
		Recommendation:     lesson.Recommendation,
		Owner:              lesson.Owner,
		Status:             lesson.Status,
		ApplicableToFuture: lesson.ApplicableToFuture,
		CreatedBy:          lesson.CreatedBy,
		RecordedAt:         lesson.RecordedAt,
		CreatedAt:          lesson.CreatedAt,
		UpdatedAt:          lesson.UpdatedAt,
	}
}
