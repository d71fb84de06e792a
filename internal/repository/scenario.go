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

// ScenarioRepo implements ScenarioRepository
type ScenarioRepo struct {
	db *database.DB
}

// NewScenarioRepo creates a new scenario repository
func NewScenarioRepo(db *database.DB) ScenarioRepository {
	return &ScenarioRepo{db: db}
}

// CreateScenario inserts a new scenario
func (r *ScenarioRepo) CreateScenario(scenario *model.Scenario) error {
	scenario.CreatedAt = time.Now()
	scenario.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO scenarios (uuid, phase_uuid, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, scenario.UUID, scenario.PhaseID, scenario.Name, scenario.Description,
		scenario.CreatedAt, scenario.UpdatedAt)
	return err
}

// GetScenarioByUUID retrieves a scenario by ID
func (r *ScenarioRepo) GetScenarioByUUID(uuid string) (*model.Scenario, error) {
	scenario := &model.Scenario{}
	query := r.db.Rebind(`
		SELECT uuid, phase_uuid, name, description, created_at, updated_at
		FROM scenarios
		WHERE uuid = ?
	`)
	err := r.db.QueryRow(query, uuid).Scan(&scenario.UUID, &scenario.PhaseID, &scenario.Name, &scenario.Description,
		&scenario.CreatedAt, &scenario.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return scenario, nil
}

// GetScenariosByPhaseID retrieves all scenarios of a phase
func (r *ScenarioRepo) GetScenariosByPhaseID(phaseUUID string) ([]*model.Scenario, error) {
	query := r.db.Rebind(`
		SELECT uuid, phase_uuid, name, description, created_at, updated_at
		FROM scenarios
		WHERE phase_uuid = ?
		ORDER BY created_at
	`)
	rows, err := r.db.Query(query, phaseUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []*model.Scenario
	for rows.Next() {
		scenario := &model.Scenario{}
		err := rows.Scan(&scenario.UUID, &scenario.PhaseID, &scenario.Name, &scenario.Description,
			&scenario.CreatedAt, &scenario.UpdatedAt)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, rows.Err()
}

// UpdateScenario modifies an existing scenario
func (r *ScenarioRepo) UpdateScenario(scenario *model.Scenario) error {
	scenario.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE scenarios
		SET name = ?, description = ?, updated_at = ?
		WHERE uuid = ?
	`)
	_, err := r.db.Exec(query, scenario.Name, scenario.Description, scenario.UpdatedAt, scenario.UUID)
	return err
}

// DeleteScenario removes a scenario. Contained activities cascade.
func (r *ScenarioRepo) DeleteScenario(uuid string) error {
	query := r.db.Rebind(`DELETE FROM scenarios WHERE uuid = ?`)
	_, err := r.db.Exec(query, uuid)
	return err
}
