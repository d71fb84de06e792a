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

// Activity is a sequenced unit of work inside a scenario. An activity can
// only be completed after it has been released; completing it releases the
// next activity in the sequence.
type Activity struct {
	UUID           string     `json:"uuid" db:"uuid"`
	ScenarioID     string     `json:"scenario_id" db:"scenario_uuid"` // FK to Scenario.UUID
	SequenceNumber int        `json:"sequence_number" db:"sequence_number"`
	Description    string     `json:"description" db:"description"`
	AssigneeID     *string    `json:"assignee_id,omitempty" db:"assignee_uuid"` // FK to User.UUID
	Status         string     `json:"status" db:"status"`
	ReleasedAt     *time.Time `json:"released_at,omitempty" db:"released_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedBy      string     `json:"created_by" db:"created_by"` // FK to User.UUID
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Activity model
func (Activity) TableName() string {
	return "activities"
}
