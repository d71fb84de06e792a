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
	"fmt"
	"time"

	"project-api/src/internal/constants"
)

// Capabilities is the closed set of permission bits a profile can hold.
// One boolean per capability name; anything outside the set is rejected at
// validation time.
type Capabilities struct {
	CreateActivity      bool `json:"activity.create" db:"can_create_activity"`
	EditActivity        bool `json:"activity.edit" db:"can_edit_activity"`
	DeleteActivity      bool `json:"activity.delete" db:"can_delete_activity"`
	CompleteActivity    bool `json:"activity.complete" db:"can_complete_activity"`
	CreateLesson        bool `json:"lesson.create" db:"can_create_lesson"`
	EditLesson          bool `json:"lesson.edit" db:"can_edit_lesson"`
	DeleteLesson        bool `json:"lesson.delete" db:"can_delete_lesson"`
	CreateChangeRequest bool `json:"change_request.create" db:"can_create_change_request"`
	EditChangeRequest   bool `json:"change_request.edit" db:"can_edit_change_request"`
	DeleteChangeRequest bool `json:"change_request.delete" db:"can_delete_change_request"`
	ManageMembers       bool `json:"member.manage" db:"can_manage_members"`
	ManageProfiles      bool `json:"profile.manage" db:"can_manage_profiles"`
}

// Has reports whether the named capability bit is set. Unknown names are
// false; callers validate names before asking.
func (c Capabilities) Has(capability string) bool {
	switch capability {
	case constants.CapActivityCreate:
		return c.CreateActivity
	case constants.CapActivityEdit:
		return c.EditActivity
	case constants.CapActivityDelete:
		return c.DeleteActivity
	case constants.CapActivityComplete:
		return c.CompleteActivity
	case constants.CapLessonCreate:
		return c.CreateLesson
	case constants.CapLessonEdit:
		return c.EditLesson
	case constants.CapLessonDelete:
		return c.DeleteLesson
	case constants.CapChangeRequestCreate:
		return c.CreateChangeRequest
	case constants.CapChangeRequestEdit:
		return c.EditChangeRequest
	case constants.CapChangeRequestDelete:
		return c.DeleteChangeRequest
	case constants.CapMemberManage:
		return c.ManageMembers
	case constants.CapProfileManage:
		return c.ManageProfiles
	}
	return false
}

// IsManaging reports whether the capability set holds both administrative
// bits. Every project must keep at least one such profile at all times.
func (c Capabilities) IsManaging() bool {
	return c.ManageMembers && c.ManageProfiles
}

// ToMap converts the capability bits to a name→bool map covering the full
// closed set.
func (c Capabilities) ToMap() map[string]bool {
	out := make(map[string]bool, len(constants.AllCapabilities))
	for _, name := range constants.AllCapabilities {
		out[name] = c.Has(name)
	}
	return out
}

// CapabilitiesFromMap builds a capability set from a name→bool map. Names
// outside the closed set fail with ErrUnknownCapability; names absent from
// the map default to false.
func CapabilitiesFromMap(m map[string]bool) (Capabilities, error) {
	var c Capabilities
	for name, value := range m {
		if !constants.IsValidCapability(name) {
			return Capabilities{}, fmt.Errorf("%w: %s", constants.ErrUnknownCapability, name)
		}
		switch name {
		case constants.CapActivityCreate:
			c.CreateActivity = value
		case constants.CapActivityEdit:
			c.EditActivity = value
		case constants.CapActivityDelete:
			c.DeleteActivity = value
		case constants.CapActivityComplete:
			c.CompleteActivity = value
		case constants.CapLessonCreate:
			c.CreateLesson = value
		case constants.CapLessonEdit:
			c.EditLesson = value
		case constants.CapLessonDelete:
			c.DeleteLesson = value
		case constants.CapChangeRequestCreate:
			c.CreateChangeRequest = value
		case constants.CapChangeRequestEdit:
			c.EditChangeRequest = value
		case constants.CapChangeRequestDelete:
			c.DeleteChangeRequest = value
		case constants.CapMemberManage:
			c.ManageMembers = value
		case constants.CapProfileManage:
			c.ManageProfiles = value
		}
	}
	return c, nil
}

// AllCapabilitiesSet returns a capability set with every bit enabled.
func AllCapabilitiesSet() Capabilities {
	c, _ := CapabilitiesFromMap(allTrue())
	return c
}

func allTrue() map[string]bool {
	m := make(map[string]bool, len(constants.AllCapabilities))
	for _, name := range constants.AllCapabilities {
		m[name] = true
	}
	return m
}

// Profile represents a named, project-scoped capability bundle. Profiles
// belong to exactly one project and are never shared.
type Profile struct {
	UUID         string       `json:"uuid" db:"uuid"`
	ProjectID    string       `json:"project_id" db:"project_uuid"` // FK to Project.UUID
	Name         string       `json:"name" db:"name"`
	IsDefault    bool         `json:"is_default" db:"is_default"`
	Capabilities Capabilities `json:"capabilities"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
