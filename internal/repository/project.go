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

// ProjectRepo implements ProjectRepository
type ProjectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &ProjectRepo{db: db}
}

// CreateProjectTx inserts a new project inside the bootstrap transaction so
// the project, its default profiles and the creator membership commit
// together.
func (r *ProjectRepo) CreateProjectTx(tx *sql.Tx, project *model.Project) error {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO projects (uuid, name, description, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := tx.Exec(query, project.UUID, project.Name, project.Description, project.CreatedBy, project.CreatedAt, project.UpdatedAt)
	return err
}

// GetProjectByUUID retrieves a project by ID
func (r *ProjectRepo) GetProjectByUUID(uuid string) (*model.Project, error) {
	project := &model.Project{}
	query := r.db.Rebind(`
		SELECT uuid, name, description, created_by, created_at, updated_at
		FROM projects
		WHERE uuid = ?
	`)
	err := r.db.QueryRow(query, uuid).Scan(
		&project.UUID, &project.Name, &project.Description, &project.CreatedBy, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// GetProjectsByUserID retrieves all projects the user is a member of
func (r *ProjectRepo) GetProjectsByUserID(userUUID string) ([]*model.Project, error) {
	query := r.db.Rebind(`
		SELECT p.uuid, p.name, p.description, p.created_by, p.created_at, p.updated_at
		FROM projects p
		JOIN memberships m ON m.project_uuid = p.uuid
		WHERE m.user_uuid = ?
		ORDER BY p.created_at DESC
	`)
	rows, err := r.db.Query(query, userUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// ListProjects retrieves projects with pagination
func (r *ProjectRepo) ListProjects(limit, offset int) ([]*model.Project, error) {
	query := r.db.Rebind(`
		SELECT uuid, name, description, created_by, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`)
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// UpdateProject modifies an existing project
func (r *ProjectRepo) UpdateProject(project *model.Project) error {
	project.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE projects
		SET name = ?, description = ?, updated_at = ?
		WHERE uuid = ?
	`)
	_, err := r.db.Exec(query, project.Name, project.Description, project.UpdatedAt, project.UUID)
	return err
}

// DeleteProject removes a project. Contained phases, scenarios, activities,
// lessons, change requests, profiles and memberships cascade at the FK level.
func (r *ProjectRepo) DeleteProject(uuid string) error {
	query := r.db.Rebind(`DELETE FROM projects WHERE uuid = ?`)
	_, err := r.db.Exec(query, uuid)
	return err
}

func scanProjects(rows *sql.Rows) ([]*model.Project, error) {
	var projects []*model.Project
	for rows.Next() {
		project := &model.Project{}
		err := rows.Scan(&project.UUID, &project.Name, &project.Description, &project.CreatedBy, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
