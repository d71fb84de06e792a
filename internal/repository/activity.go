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

const activityColumns = `uuid, scenario_uuid, sequence_number, description, assignee_uuid, status,
		released_at, completed_at, created_by, created_at, updated_at`

// ActivityRepo implements ActivityRepository
type ActivityRepo struct {
	db *database.DB
}

// NewActivityRepo creates a new activity repository
func NewActivityRepo(db *database.DB) ActivityRepository {
	return &ActivityRepo{db: db}
}

// CreateActivity inserts a new activity
func (r *ActivityRepo) CreateActivity(activity *model.Activity) error {
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, activity.UUID, activity.ScenarioID, activity.SequenceNumber, activity.Description,
		activity.AssigneeID, activity.Status, activity.ReleasedAt, activity.CompletedAt, activity.CreatedBy,
		activity.CreatedAt, activity.UpdatedAt)
	return err
}

// GetActivityByUUID retrieves an activity by ID
func (r *ActivityRepo) GetActivityByUUID(uuid string) (*model.Activity, error) {
	query := r.db.Rebind(`SELECT ` + activityColumns + ` FROM activities WHERE uuid = ?`)
	return scanActivityRow(r.db.QueryRow(query, uuid))
}

// GetActivityByUUIDTx retrieves an activity by ID within a transaction
func (r *ActivityRepo) GetActivityByUUIDTx(tx *sql.Tx, uuid string) (*model.Activity, error) {
	query := r.db.Rebind(`SELECT ` + activityColumns + ` FROM activities WHERE uuid = ?`)
	return scanActivityRow(tx.QueryRow(query, uuid))
}

// GetActivitiesByScenarioID retrieves a scenario's activities in sequence
// order
func (r *ActivityRepo) GetActivitiesByScenarioID(scenarioUUID string) ([]*model.Activity, error) {
	query := r.db.Rebind(`
		SELECT ` + activityColumns + `
		FROM activities
		WHERE scenario_uuid = ?
		ORDER BY sequence_number
	`)
	rows, err := r.db.Query(query, scenarioUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*model.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

// GetActivityBySequenceTx retrieves the activity at a given sequence number
// within a transaction. Completing an activity reads its successor through
// this.
func (r *ActivityRepo) GetActivityBySequenceTx(tx *sql.Tx, scenarioUUID string, sequenceNumber int) (*model.Activity, error) {
	query := r.db.Rebind(`SELECT ` + activityColumns + ` FROM activities WHERE scenario_uuid = ? AND sequence_number = ?`)
	return scanActivityRow(tx.QueryRow(query, scenarioUUID, sequenceNumber))
}

// GetMaxSequenceNumber returns the highest sequence number in a scenario,
// zero when the scenario has no activities
func (r *ActivityRepo) GetMaxSequenceNumber(scenarioUUID string) (int, error) {
	query := r.db.Rebind(`SELECT COALESCE(MAX(sequence_number), 0) FROM activities WHERE scenario_uuid = ?`)
	var max int
	err := r.db.QueryRow(query, scenarioUUID).Scan(&max)
	return max, err
}

// UpdateActivity modifies an existing activity
func (r *ActivityRepo) UpdateActivity(activity *model.Activity) error {
	query, args := r.updateActivity(activity)
	_, err := r.db.Exec(query, args...)
	return err
}

// UpdateActivityTx modifies an existing activity within a transaction
func (r *ActivityRepo) UpdateActivityTx(tx *sql.Tx, activity *model.Activity) error {
	query, args := r.updateActivity(activity)
	_, err := tx.Exec(query, args...)
	return err
}

func (r *ActivityRepo) updateActivity(activity *model.Activity) (string, []interface{}) {
	activity.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE activities
		SET description = ?, assignee_uuid = ?, status = ?, released_at = ?, completed_at = ?, updated_at = ?
		WHERE uuid = ?
	`)
	args := []interface{}{activity.Description, activity.AssigneeID, activity.Status, activity.ReleasedAt,
		activity.CompletedAt, activity.UpdatedAt, activity.UUID}
	return query, args
}

// DeleteActivity removes an activity
func (r *ActivityRepo) DeleteActivity(uuid string) error {
	query := r.db.Rebind(`DELETE FROM activities WHERE uuid = ?`)
	_, err := r.db.Exec(query, uuid)
	return err
}

func scanActivity(row rowScanner) (*model.Activity, error) {
	activity := &model.Activity{}
	err := row.Scan(&activity.UUID, &activity.ScenarioID, &activity.SequenceNumber, &activity.Description,
		&activity.AssigneeID, &activity.Status, &activity.ReleasedAt, &activity.CompletedAt, &activity.CreatedBy,
		&activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func scanActivityRow(row *sql.Row) (*model.Activity, error) {
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return activity, nil
}
