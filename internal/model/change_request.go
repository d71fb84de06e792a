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

// ChangeRequest tracks a formal request to change project scope, schedule
// or cost, together with its impact assessment and decision trail.
type ChangeRequest struct {
	UUID               string     `json:"uuid" db:"uuid"`
	ProjectID          string     `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	RequestedBy        string     `json:"requested_by" db:"requested_by"`
	RequestingArea     string     `json:"requesting_area" db:"requesting_area"`
	Description        string     `json:"description" db:"description"`
	Justification      string     `json:"justification" db:"justification"`
	ChangeType         string     `json:"change_type" db:"change_type"`
	ScheduleImpact     string     `json:"schedule_impact" db:"schedule_impact"`
	CostImpact         string     `json:"cost_impact" db:"cost_impact"`
	ScopeImpact        string     `json:"scope_impact" db:"scope_impact"`
	ResourceImpact     string     `json:"resource_impact" db:"resource_impact"`
	RiskImpact         string     `json:"risk_impact" db:"risk_impact"`
	Priority           string     `json:"priority" db:"priority"`
	PMRecommendation   string     `json:"pm_recommendation" db:"pm_recommendation"`
	Status             string     `json:"status" db:"status"`
	Approver           string     `json:"approver" db:"approver"`
	DecisionDate       *time.Time `json:"decision_date,omitempty" db:"decision_date"`
	ImplementationDate *time.Time `json:"implementation_date,omitempty" db:"implementation_date"`
	Notes              string     `json:"notes" db:"notes"`
	CreatedBy          string     `json:"created_by" db:"created_by"` // FK to User.UUID
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the ChangeRequest model
func (ChangeRequest) TableName() string {
	return "change_requests"
}
