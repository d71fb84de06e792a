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

// Membership binds one user to one profile within one project. A user has
// at most one active membership per project (UNIQUE project_uuid,user_uuid).
type Membership struct {
	UUID      string    `json:"uuid" db:"uuid"`
	ProjectID string    `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	UserID    string    `json:"user_id" db:"user_uuid"`       // FK to User.UUID
	ProfileID string    `json:"profile_id" db:"profile_uuid"` // FK to Profile.UUID
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Membership model
func (Membership) TableName() string {
	return "memberships"
}
