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

// PhaseRepo implements PhaseRepository
type PhaseRepo struct {
	db *database.DB
}

// NewPhaseRepo creates a new phase repository
func NewPhaseRepo(db *database.DB) PhaseRepository {
	return &PhaseRepo{db: db}
}

// CreatePhase inserts a new phase
func (r *PhaseRepo) CreatePhase(phase *model.Phase) error {
	phase.CreatedAt = time.Now()
	phase.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO phases (uuid, project_uuid, name, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, phase.UUID, phase.ProjectID, phase.Name, phase.Position, phase.CreatedAt, phase.UpdatedAt)
	return err
}

// GetPhaseByUUID retrieves a phase by ID
func (r *PhaseRepo) GetPhaseByUUID(uuid string) (*model.Phase, error) {
	phase := &model.Phase{}
	query := r.db.Rebind(`
		SELECT uuid, project_uuid, name, position, created_at, updated_at
		FROM phases
		WHERE uuid = ?
	`)
	err := r.db.QueryRow(query, uuid).Scan(&phase.UUID, &phase.ProjectID, &phase.Name, &phase.Position,
		&phase.CreatedAt, &phase.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return phase, nil
}

// GetPhasesByProjectID retrieves all phases of a project ordered by position
func (r *PhaseRepo) GetPhasesByProjectID(projectUUID string) ([]*model.Phase, error) {
	query := r.db.Rebind(`
		SELECT uuid, project_uuid, name, position, created_at, updated_at
		FROM phases
		WHERE project_uuid = ?
		ORDER BY position
	`)
	rows, err := r.db.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phases []*model.Phase
	for rows.Next() {
		phase := &model.Phase{}
		err := rows.Scan(&phase.UUID, &phase.ProjectID, &phase.Name, &phase.Position, &phase.CreatedAt, &phase.UpdatedAt)
		if err != nil {
			return nil, err
		}
		phases = append(phases, phase)
	}
	return phases, rows.Err()
}

// UpdatePhase modifies an existing phase
func (r *PhaseRepo) UpdatePhase(phase *model.Phase) error {
	phase.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE phases
		SET name = ?, position = ?, updated_at = ?
		WHERE uuid = ?
	`)
	_, err := r.db.Exec(query, phase.Name, phase.Position, phase.UpdatedAt, phase.UUID)
	return err
}

// DeletePhase removes a phase. Contained scenarios and activities cascade.
func (r *PhaseRepo) DeletePhase(uuid string) error {
	query := r.db.Rebind(`DELETE FROM phases WHERE uuid = ?`)
	_, err := r.db.Exec(query, uuid)
	return err
}
