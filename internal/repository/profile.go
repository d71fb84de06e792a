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

const profileColumns = `uuid, project_uuid, name, is_default,
		can_create_activity, can_edit_activity, can_delete_activity, can_complete_activity,
		can_create_lesson, can_edit_lesson, can_delete_lesson,
		can_create_change_request, can_edit_change_request, can_delete_change_request,
		can_manage_members, can_manage_profiles,
		created_at, updated_at`

// ProfileRepo implements ProfileRepository
type ProfileRepo struct {
	db *database.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *database.DB) ProfileRepository {
	return &ProfileRepo{db: db}
}

// CreateProfile inserts a new profile
func (r *ProfileRepo) CreateProfile(profile *model.Profile) error {
	query, args := r.insertProfile(profile)
	_, err := r.db.Exec(query, args...)
	return err
}

// CreateProfileTx inserts a new profile within a transaction
func (r *ProfileRepo) CreateProfileTx(tx *sql.Tx, profile *model.Profile) error {
	query, args := r.insertProfile(profile)
	_, err := tx.Exec(query, args...)
	return err
}

func (r *ProfileRepo) insertProfile(profile *model.Profile) (string, []interface{}) {
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	c := profile.Capabilities
	args := []interface{}{
		profile.UUID, profile.ProjectID, profile.Name, profile.IsDefault,
		c.CreateActivity, c.EditActivity, c.DeleteActivity, c.CompleteActivity,
		c.CreateLesson, c.EditLesson, c.DeleteLesson,
		c.CreateChangeRequest, c.EditChangeRequest, c.DeleteChangeRequest,
		c.ManageMembers, c.ManageProfiles,
		profile.CreatedAt, profile.UpdatedAt,
	}
	return query, args
}

// GetProfileByUUID retrieves a profile by ID
func (r *ProfileRepo) GetProfileByUUID(uuid string) (*model.Profile, error) {
	query := r.db.Rebind(`SELECT ` + profileColumns + ` FROM profiles WHERE uuid = ?`)
	return scanProfileRow(r.db.QueryRow(query, uuid))
}

// GetProfileByName retrieves a profile by name within a project
func (r *ProfileRepo) GetProfileByName(projectUUID, name string) (*model.Profile, error) {
	query := r.db.Rebind(`SELECT ` + profileColumns + ` FROM profiles WHERE project_uuid = ? AND name = ?`)
	return scanProfileRow(r.db.QueryRow(query, projectUUID, name))
}

// GetProfilesByProjectID retrieves all profiles for a project
func (r *ProfileRepo) GetProfilesByProjectID(projectUUID string) ([]*model.Profile, error) {
	query := r.db.Rebind(`SELECT ` + profileColumns + ` FROM profiles WHERE project_uuid = ? ORDER BY created_at`)
	rows, err := r.db.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProfiles(rows)
}

// GetProfilesByProjectIDTx retrieves all profiles for a project within a
// transaction, so invariant checks see the state the write will see.
func (r *ProfileRepo) GetProfilesByProjectIDTx(tx *sql.Tx, projectUUID string) ([]*model.Profile, error) {
	query := r.db.Rebind(`SELECT ` + profileColumns + ` FROM profiles WHERE project_uuid = ? ORDER BY created_at`)
	rows, err := tx.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProfiles(rows)
}

// UpdateProfileTx modifies an existing profile within a transaction
func (r *ProfileRepo) UpdateProfileTx(tx *sql.Tx, profile *model.Profile) error {
	profile.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE profiles
		SET name = ?,
			can_create_activity = ?, can_edit_activity = ?, can_delete_activity = ?, can_complete_activity = ?,
			can_create_lesson = ?, can_edit_lesson = ?, can_delete_lesson = ?,
			can_create_change_request = ?, can_edit_change_request = ?, can_delete_change_request = ?,
			can_manage_members = ?, can_manage_profiles = ?,
			updated_at = ?
		WHERE uuid = ?
	`)
	c := profile.Capabilities
	_, err := tx.Exec(query,
		profile.Name,
		c.CreateActivity, c.EditActivity, c.DeleteActivity, c.CompleteActivity,
		c.CreateLesson, c.EditLesson, c.DeleteLesson,
		c.CreateChangeRequest, c.EditChangeRequest, c.DeleteChangeRequest,
		c.ManageMembers, c.ManageProfiles,
		profile.UpdatedAt, profile.UUID,
	)
	return err
}

// DeleteProfileTx removes a profile within a transaction
func (r *ProfileRepo) DeleteProfileTx(tx *sql.Tx, uuid string) error {
	query := r.db.Rebind(`DELETE FROM profiles WHERE uuid = ?`)
	_, err := tx.Exec(query, uuid)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	profile := &model.Profile{}
	c := &profile.Capabilities
	err := row.Scan(
		&profile.UUID, &profile.ProjectID, &profile.Name, &profile.IsDefault,
		&c.CreateActivity, &c.EditActivity, &c.DeleteActivity, &c.CompleteActivity,
		&c.CreateLesson, &c.EditLesson, &c.DeleteLesson,
		&c.CreateChangeRequest, &c.EditChangeRequest, &c.DeleteChangeRequest,
		&c.ManageMembers, &c.ManageProfiles,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func scanProfileRow(row *sql.Row) (*model.Profile, error) {
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func scanProfiles(rows *sql.Rows) ([]*model.Profile, error) {
	var profiles []*model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
