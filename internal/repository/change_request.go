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
	"errors"
	"time"

	"project-api/src/internal/database"
	"project-api/src/internal/model"
)

const changeRequestColumns = `uuid, project_uuid, requested_by, requesting_area, description, justification,
		change_type, schedule_impact, cost_impact, scope_impact, resource_impact, risk_impact, priority,
		pm_recommendation, status, approver, decision_date, implementation_date, notes, created_by,
		created_at, updated_at`

// ChangeRequestRepo implements ChangeRequestRepository
type ChangeRequestRepo struct {
	db *database.DB
}

// NewChangeRequestRepo creates a new change request repository
func NewChangeRequestRepo(db *database.DB) ChangeRequestRepository {
	return &ChangeRequestRepo{db: db}
}

// CreateChangeRequest inserts a new change request
func (r *ChangeRequestRepo) CreateChangeRequest(cr *model.ChangeRequest) error {
	cr.CreatedAt = time.Now()
	cr.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO change_requests (` + changeRequestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, cr.UUID, cr.ProjectID, cr.RequestedBy, cr.RequestingArea, cr.Description,
		cr.Justification, cr.ChangeType, cr.ScheduleImpact, cr.CostImpact, cr.ScopeImpact, cr.ResourceImpact,
		cr.RiskImpact, cr.Priority, cr.PMRecommendation, cr.Status, cr.Approver, cr.DecisionDate,
		cr.ImplementationDate, cr.Notes, cr.CreatedBy, cr.CreatedAt, cr.UpdatedAt)
	return err
}

// GetChangeRequestByUUID retrieves a change request by ID
func (r *ChangeRequestRepo) GetChangeRequestByUUID(uuid string) (*model.ChangeRequest, error) {
	query := r.db.Rebind(`SELECT ` + changeRequestColumns + ` FROM change_requests WHERE uuid = ?`)
	cr, err := scanChangeRequest(r.db.QueryRow(query, uuid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cr, nil
}

// GetChangeRequestsByProjectID retrieves all change requests of a project
func (r *ChangeRequestRepo) GetChangeRequestsByProjectID(projectUUID string) ([]*model.ChangeRequest, error) {
	query := r.db.Rebind(`
		SELECT ` + changeRequestColumns + `
		FROM change_requests
		WHERE project_uuid = ?
		ORDER BY created_at DESC
	`)
	rows, err := r.db.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changeRequests []*model.ChangeRequest
	for rows.Next() {
		cr, err := scanChangeRequest(rows)
		if err != nil {
			return nil, err
		}
		changeRequests = append(changeRequests, cr)
	}
	return changeRequests, rows.Err()
}

// UpdateChangeRequest modifies an existing change request
func (r *ChangeRequestRepo) UpdateChangeRequest(cr *model.ChangeRequest) error {
	cr.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE change_requests
		SET requested_by = ?, requesting_area = ?, description = ?, justification = ?, change_type = ?,
			schedule_impact = ?, cost_impact = ?, scope_impact = ?, resource_impact = ?, risk_impact = ?,
			priority = ?, pm_recommendation = ?, status = ?, approver = ?, decision_date = ?,
			implementation_date = ?, notes = ?, updated_at = ?
		WHERE uuid = ?
	`)
	_, err := r.db.Exec(query, cr.RequestedBy, cr.RequestingArea, cr.Description, cr.Justification, cr.ChangeType,
		cr.ScheduleImpact, cr.CostImpact, cr.ScopeImpact, cr.ResourceImpact, cr.RiskImpact, cr.Priority,
		cr.PMRecommendation, cr.Status, cr.Approver, cr.DecisionDate, cr.ImplementationDate, cr.Notes,
		cr.UpdatedAt, cr.UUID)
	return err
}

// DeleteChangeRequest removes a change request
func (r *ChangeRequestRepo) DeleteChangeRequest(uuid string) error {
	query := r.db.Rebind(`DELETE FROM change_requests WHERE uuid = ?`)
	_, err := r.db.Exec(query, uuid)
	return err
}

func scanChangeRequest(row rowScanner) (*model.ChangeRequest, error) {
	cr := &model.ChangeRequest{}
	err := row.Scan(&cr.UUID, &cr.ProjectID, &cr.RequestedBy, &cr.RequestingArea, &cr.Description,
		&cr.Justification, &cr.ChangeType, &cr.ScheduleImpact, &cr.CostImpact, &cr.ScopeImpact,
		&cr.ResourceImpact, &cr.RiskImpact, &cr.Priority, &cr.PMRecommendation, &cr.Status, &cr.Approver,
		&cr.DecisionDate, &cr.ImplementationDate, &cr.Notes, &cr.CreatedBy, &cr.CreatedAt, &cr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cr, nil
}
