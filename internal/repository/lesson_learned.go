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

const lessonColumns = `uuid, project_uuid, phase_uuid, category, type, description, root_cause, impact,
		action_taken, recommendation, owner, status, applicable_to_future, created_by, recorded_at,
		created_at, updated_at`

// LessonLearnedRepo implements LessonLearnedRepository
type LessonLearnedRepo struct {
	db *database.DB
}

// NewLessonLearnedRepo creates a new lesson learned repository
func NewLessonLearnedRepo(db *database.DB) LessonLearnedRepository {
	return &LessonLearnedRepo{db: db}
}

// CreateLesson inserts a new lesson learned
func (r *LessonLearnedRepo) CreateLesson(lesson *model.LessonLearned) error {
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO lessons_learned (` + lessonColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, lesson.UUID, lesson.ProjectID, lesson.PhaseID, lesson.Category, lesson.Type,
		lesson.Description, lesson.RootCause, lesson.Impact, lesson.ActionTaken, lesson.Recommendation,
		lesson.Owner, lesson.Status, lesson.ApplicableToFuture, lesson.CreatedBy, lesson.RecordedAt,
		lesson.CreatedAt, lesson.UpdatedAt)
	return err
}

// GetLessonByUUID retrieves a lesson learned by ID
func (r *LessonLearnedRepo) GetLessonByUUID(uuid string) (*model.LessonLearned, error) {
	query := r.db.Rebind(`SELECT ` + lessonColumns + ` FROM lessons_learned WHERE uuid = ?`)
	lesson, err := scanLesson(r.db.QueryRow(query, uuid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return lesson, nil
}

// GetLessonsByProjectID retrieves all lessons learned of a project
func (r *LessonLearnedRepo) GetLessonsByProjectID(projectUUID string) ([]*model.LessonLearned, error) {
	query := r.db.Rebind(`
		SELECT ` + lessonColumns + `
		FROM lessons_learned
		WHERE project_uuid = ?
		ORDER BY recorded_at DESC
	`)
	rows, err := r.db.Query(query, projectUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*model.LessonLearned
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

// UpdateLesson modifies an existing lesson learned
func (r *LessonLearnedRepo) UpdateLesson(lesson *model.LessonLearned) error {
	lesson.UpdatedAt = time.Now()
	query := r.db.Rebind(`
		UPDATE lessons_learned
		SET phase_uuid = ?, category = ?, type = ?, description = ?, root_cause = ?, impact = ?,
			action_taken = ?, recommendation = ?, owner = ?, status = ?, applicable_to_future = ?,
			updated_at = ?
		WHERE uuid = ?
	`)
	_, err := r.db.Exec(query, lesson.PhaseID, lesson.Category, lesson.Type, lesson.Description, lesson.RootCause,
		lesson.Impact, lesson.ActionTaken, lesson.Recommendation, lesson.Owner, lesson.Status,
		lesson.ApplicableToFuture, lesson.UpdatedAt, lesson.UUID)
	return err
}

// DeleteLesson removes a lesson learned
func (r *LessonLearnedRepo) DeleteLesson(uuid string) error {
	query := r.db.Rebind(`DELETE FROM lessons_learned WHERE uuid = ?`)
	_, err := r.db.Exec(query, uuid)
	return err
}

func scanLesson(row rowScanner) (*model.LessonLearned, error) {
	lesson := &model.LessonLearned{}
	err := row.Scan(&lesson.UUID, &lesson.ProjectID, &lesson.PhaseID, &lesson.Category, &lesson.Type,
		&lesson.Description, &lesson.RootCause, &lesson.Impact, &lesson.ActionTaken, &lesson.Recommendation,
		&lesson.Owner, &lesson.Status, &lesson.ApplicableToFuture, &lesson.CreatedBy, &lesson.RecordedAt,
		&lesson.CreatedAt, &lesson.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return lesson, nil
}
