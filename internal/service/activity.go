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
	"time"

	"project-api/src/internal/constants"
	"project-api/src/internal/database"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// ActivityService manages sequenced activities inside scenarios. Completion
// is the one stateful transition: it requires the activity to be released,
// and releasing the next activity in the sequence happens in the same
// transaction.
type ActivityService struct {
	db           *database.DB
	activityRepo repository.ActivityRepository
	scenarioRepo repository.ScenarioRepository
	phaseRepo    repository.PhaseRepository
	authz        *AuthorizationService
}

func NewActivityService(db *database.DB, activityRepo repository.ActivityRepository,
	scenarioRepo repository.ScenarioRepository, phaseRepo repository.PhaseRepository,
	authz *AuthorizationService) *ActivityService {
	return &ActivityService{
		db:           db,
		activityRepo: activityRepo,
		scenarioRepo: scenarioRepo,
		phaseRepo:    phaseRepo,
		authz:        authz,
	}
}

// CreateActivity appends an activity to a scenario's sequence. Requires
// activity.create in the owning project.
func (s *ActivityService) CreateActivity(userUUID, scenarioUUID string, req *dto.CreateActivityRequest) (*dto.Activity, error) {
	projectUUID, err := s.resolveProjectByScenario(scenarioUUID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityCreate); err != nil {
		return nil, err
	}

	maxSeq, err := s.activityRepo.GetMaxSequenceNumber(scenarioUUID)
	if err != nil {
		return nil, err
	}

	activity := &model.Activity{
		UUID:           uuid.New().String(),
		ScenarioID:     scenarioUUID,
		SequenceNumber: maxSeq + 1,
		Description:    req.Description,
		AssigneeID:     req.AssigneeID,
		Status:         constants.ActivityStatusPending,
		CreatedBy:      userUUID,
	}
	if req.Released {
		now := time.Now()
		activity.ReleasedAt = &now
	}

	if err := s.activityRepo.CreateActivity(activity); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(activity), nil
}

// GetActivity retrieves an activity. Any member of the owning project may
// read it.
func (s *ActivityService) GetActivity(userUUID, activityUUID string) (*dto.Activity, error) {
	activity, projectUUID, err := s.getActivityWithProject(activityUUID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}
	return s.ModelToDTO(activity), nil
}

// ListActivities retrieves a scenario's activities in sequence order.
func (s *ActivityService) ListActivities(userUUID, scenarioUUID string) (*dto.ActivityListResponse, error) {
	projectUUID, err := s.resolveProjectByScenario(scenarioUUID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireMember(userUUID, projectUUID); err != nil {
		return nil, err
	}

	activityModels, err := s.activityRepo.GetActivitiesByScenarioID(scenarioUUID)
	if err != nil {
		return nil, err
	}

	activities := make([]*dto.Activity, 0, len(activityModels))
	for _, activityModel := range activityModels {
		activities = append(activities, s.ModelToDTO(activityModel))
	}
	return &dto.ActivityListResponse{
		Count: len(activities),
		List:  activities,
		Pagination: dto.Pagination{
			Total:  len(activities),
			Offset: 0,
			Limit:  len(activities),
		},
	}, nil
}

// UpdateActivity edits an activity's description or assignee. Requires
// activity.edit in the owning project.
func (s *ActivityService) UpdateActivity(userUUID, activityUUID string, req *dto.UpdateActivityRequest) (*dto.Activity, error) {
	activity, projectUUID, err := s.getActivityWithProject(activityUUID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityEdit); err != nil {
		return nil, err
	}

	if req.Description != "" {
		activity.Description = req.Description
	}
	if req.AssigneeID != nil {
		activity.AssigneeID = req.AssigneeID
	}

	if err := s.activityRepo.UpdateActivity(activity); err != nil {
		return nil, wrapTransient(err)
	}
	return s.ModelToDTO(activity), nil
}

// DeleteActivity removes an activity. Requires activity.delete in the
// owning project.
func (s *ActivityService) DeleteActivity(userUUID, activityUUID string) error {
	_, projectUUID, err := s.getActivityWithProject(activityUUID)
	if err != nil {
		return err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityDelete); err != nil {
		return err
	}

	return wrapTransient(s.activityRepo.DeleteActivity(activityUUID))
}

// CompleteActivity marks a released activity as completed and releases the
// next activity in the scenario's sequence, atomically. Completing an
// unreleased activity fails; completing twice fails.
func (s *ActivityService) CompleteActivity(userUUID, activityUUID string) (*dto.Activity, error) {
	_, projectUUID, err := s.getActivityWithProject(activityUUID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(userUUID, projectUUID, constants.CapActivityComplete); err != nil {
		return nil, err
	}

	var completed *model.Activity
	err = s.db.WithTx(func(tx *sql.Tx) error {
		activity, err := s.activityRepo.GetActivityByUUIDTx(tx, activityUUID)
		if err != nil {
			return err
		}
		if activity == nil {
			return constants.ErrActivityNotFound
		}
		if activity.ReleasedAt == nil {
			return constants.ErrActivityNotReleased
		}
		if activity.Status == constants.ActivityStatusCompleted {
			return constants.ErrActivityAlreadyCompleted
		}

		now := time.Now()
		activity.Status = constants.ActivityStatusCompleted
		activity.CompletedAt = &now
		if err := s.activityRepo.UpdateActivityTx(tx, activity); err != nil {
			return err
		}

		next, err := s.activityRepo.GetActivityBySequenceTx(tx, activity.ScenarioID, activity.SequenceNumber+1)
		if err != nil {
			return err
		}
		if next != nil && next.ReleasedAt == nil {
			next.ReleasedAt = &now
			if err := s.activityRepo.UpdateActivityTx(tx, next); err != nil {
				return err
			}
		}

		completed = activity
		return nil
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	return s.ModelToDTO(completed), nil
}

func (s *ActivityService) resolveProjectByScenario(scenarioUUID string) (string, error) {
	scenario, err := s.scenarioRepo.GetScenarioByUUID(scenarioUUID)
	if err != nil {
		return "", err
	}
	if scenario == nil {
		return "", constants.ErrScenarioNotFound
	}
	phase, err := s.phaseRepo.GetPhaseByUUID(scenario.PhaseID)
	if err != nil {
		return "", err
	}
	if phase == nil {
		return "", constants.ErrPhaseNotFound
	}
	return phase.ProjectID, nil
}

func (s *ActivityService) getActivityWithProject(activityUUID string) (*model.Activity, string, error) {
	activity, err := s.activityRepo.GetActivityByUUID(activityUUID)
	if err != nil {
		return nil, "", err
	}
	if activity == nil {
		return nil, "", constants.ErrActivityNotFound
	}
	projectUUID, err := s.resolveProjectByScenario(activity.ScenarioID)
	if err != nil {
		return nil, "", err
	}
	return activity, projectUUID, nil
}

// ModelToDTO converts an activity model to its API representation.
func (s *ActivityService) ModelToDTO(activity *model.Activity) *dto.Activity {
	if activity == nil {
		return nil
	}
	return &dto.Activity{
		UUID:           activity.UUID,
		ScenarioID:     activity.ScenarioID,
		SequenceNumber: activity.SequenceNumber,
		Description:    activity.Description,
		AssigneeID:     activity.AssigneeID,
		Status:         activity.Status,
		ReleasedAt:     activity.ReleasedAt,
		CompletedAt:    activity.CompletedAt,
		CreatedBy:      activity.CreatedBy,
		CreatedAt:      activity.CreatedAt,
		UpdatedAt:      activity.UpdatedAt,
	}
}
