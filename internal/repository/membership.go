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

// MembershipRepo implements MembershipRepository
type MembershipRepo struct {
	db *database.DB
}

// NewMembershipRepo creates a new membership repository
func NewMembershipRepo(db *database.DB) MembershipRepository {
	return &MembershipRepo{db: db}
}

// CreateMembershipTx inserts a new membership within a transaction. The
// UNIQUE (project_uuid, user_uuid) index rejects a second membership for
// the same user in the same project.
func (r *MembershipRepo) CreateMembershipTx(tx *sql.Tx, membership *model.Membership) error {
	membership.CreatedAt = time.Now()
	membership.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO memberships (uuid, project_uuid, user_uuid, profile_uuid, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := tx.Exec(query, membership.UUID, membership.ProjectID, membership.UserID, membership.ProfileID,
		membership.CreatedAt, membership.UpdatedAt)
	return err
}

// GetMembershipByUUID retrieves a membership by ID
func (r *MembershipRepo) GetMembershipByUUID(uuid string) (*model.Membership, error) {
	query := r.db.Rebind(`
		SELECT uuid, project_uuid, user_uuid, profile_uuid, created_at, updated_at
		FROM memberships
		WHERE uuid = ?
	`)
	return scanMembershipRow(r.db.QueryRow(query, uuid))
}

// GetMembershipByUserAndProject retrieves the user's membership in a project
func (r *MembershipRepo) GetMembershipByUserAndProject(userUUID, projectUUID string) (*model.Membership, error) {
	query := r.db.Rebind(`
		SELECT uuid, project_uuid, user_uuid, profile_uuid, created_at, updated_at
		FROM memberships
		WHERE user_uuid = ? AND project_uuid = ?
	`)
	return scanMembershipRow(r.db.QueryRow(query, userUUID, projectUUID))
}

// GetMembershipByUserAndProjectTx retrieves the user's membership in a
// project within a transaction
func (r *MembershipRepo) GetMembershipByUserAndProjectTx(tx *sql.Tx, userUUID, projectUUID string) (*model.Membership, error) {
	query := r.db.Rebind(`
		SELECT uuid, project_uuid, user_uuid, profile_uuid, created_at, updated_at
		FROM memberships
		WHERE user_uuid = ? AND project_uuid = ?
	`)
	return scanMembershipRow(tx.QueryRow(query, userUUID, projectUUID))
}

// GetMembershipsByProjectID retrieves all memberships of a project
func (r *MembershipRepo) GetMembershipsByProjectID(projectUUID string) ([]*model.Membership, error) {
	query := r.db.Rebind(`
		SELECT uuid, project_uuid, user_uuid, profile_uuid, created_at, updated_at
		FROM memberships
		WHERE project_uuid = ?
		ORDER BY created_at
	`)
	rows, err := r.db.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []*model.Membership
	for rows.Next() {
		membership := &model.Membership{}
		err := rows.Scan(&membership.UUID, &membership.ProjectID, &membership.UserID, &membership.ProfileID,
			&membership.CreatedAt, &membership.UpdatedAt)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, rows.Err()
}

// CountMembershipsByProfileIDTx counts memberships assigned to a profile
// within a transaction
func (r *MembershipRepo) CountMembershipsByProfileIDTx(tx *sql.Tx, profileUUID string) (int, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM memberships WHERE profile_uuid = ?`)
	var count int
	err := tx.QueryRow(query, profileUUID).Scan(&count)
	return count, err
}

// CountManagingMembershipsTx counts the project's memberships whose profile
// holds member.manage. When excludeMembershipUUID is non-empty that
// membership is left out, so callers can ask "how many managers remain
// besides this one".
func (r *MembershipRepo) CountManagingMembershipsTx(tx *sql.Tx, projectUUID, excludeMembershipUUID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM memberships m
		JOIN profiles p ON p.uuid = m.profile_uuid
		WHERE m.project_uuid = ? AND p.can_manage_members = ?
	`
	args := []interface{}{projectUUID, true}
	if excludeMembershipUUID != "" {
		query += ` AND m.uuid != ?`
		args = append(args, excludeMembershipUUID)
	}

	var count int
	err := tx.QueryRow(r.db.Rebind(query), args...).Scan(&count)
	return count, err
}

// UpdateMembershipTx changes the profile a membership is bound to within a
// transaction
func (r *MembershipRepo) UpdateMembershipTx(tx *sql.Tx, membership *model.Membership) error {
	membership.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE memberships
		SET profile_uuid = ?, updated_at = ?
		WHERE uuid = ?
	`)
	_, err := tx.Exec(query, membership.ProfileID, membership.UpdatedAt, membership.UUID)
	return err
}

// DeleteMembershipTx removes a membership within a transaction
func (r *MembershipRepo) DeleteMembershipTx(tx *sql.Tx, uuid string) error {
	query := r.db.Rebind(`DELETE FROM memberships WHERE uuid = ?`)
	_, err := tx.Exec(query, uuid)
	return err
}

func scanMembershipRow(row *sql.Row) (*model.Membership, error) {
	membership := &model.Membership{}
	err := row.Scan(&membership.UUID, &membership.ProjectID, &membership.UserID, &membership.ProfileID,
		&membership.CreatedAt, &membership.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return membership, nil
}
