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

package model

import (
	"time"
)

// LessonLearned records an insight captured during a project, optionally
// tied to a phase.
type LessonLearned struct {
	UUID               string    `json:"uuid" db:"uuid"`
	ProjectID          string    `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	PhaseID            *string   `json:"phase_id,omitempty" db:"phase_uuid"`
	Category           string    `json:"category" db:"category"`
	Type               string    `json:"type" db:"type"`
	Description        string    `json:"description" db:"description"`
	RootCause          string    `json:"root_cause" db:"root_cause"`
	Impact             string    `json:"impact" db:"impact"`
	ActionTaken        string    `json:"action_taken" db:"action_taken"`
	Recommendation     string    `json:"recommendation" db:"recommendation"`
	Owner              string    `json:"owner" db:"owner"`
	Status             string    `json:"status" db:"status"`
	ApplicableToFuture bool      `json:"applicable_to_future" db:"applicable_to_future"`
	CreatedBy          string    `json:"created_by" db:"created_by"` // FK to User.UUID
	RecordedAt         time.Time `json:"recorded_at" db:"recorded_at"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the LessonLearned model
func (LessonLearned) TableName() string {
	return "lessons_learned"
}
