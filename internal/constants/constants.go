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

package constants

// Capability names form a closed set. Capabilities are always validated
// against this set so a typo'd name fails loudly instead of silently
// always-denying.
const (
	CapActivityCreate   = "activity.create"
	CapActivityEdit     = "activity.edit"
	CapActivityDelete   = "activity.delete"
	CapActivityComplete = "activity.complete"

	CapLessonCreate = "lesson.create"
	CapLessonEdit   = "lesson.edit"
	CapLessonDelete = "lesson.delete"

	CapChangeRequestCreate = "change_request.create"
	CapChangeRequestEdit   = "change_request.edit"
	CapChangeRequestDelete = "change_request.delete"

	CapMemberManage  = "member.manage"
	CapProfileManage = "profile.manage"
)

// AllCapabilities lists every capability name in the closed set.
var AllCapabilities = []string{
	CapActivityCreate,
	CapActivityEdit,
	CapActivityDelete,
	CapActivityComplete,
	CapLessonCreate,
	CapLessonEdit,
	CapLessonDelete,
	CapChangeRequestCreate,
	CapChangeRequestEdit,
	CapChangeRequestDelete,
	CapMemberManage,
	CapProfileManage,
}

// IsValidCapability reports whether name belongs to the closed capability set.
func IsValidCapability(name string) bool {
	for _, c := range AllCapabilities {
		if c == name {
			return true
		}
	}
	return false
}

// Authorization decision reason codes. Kept for audit logging; the
// caller-facing message is always the uniform "Not authorized".
const (
	ReasonNoMembership     = "no_membership"
	ReasonCapabilityDenied = "capability_denied"
)

// Default profile names seeded for every project.
const (
	DefaultAdministratorProfile = "Administrator"
	DefaultMemberProfile        = "Member"
)

// Activity lifecycle states.
const (
	ActivityStatusPending   = "pending"
	ActivityStatusCompleted = "completed"
)

// Lesson learned lifecycle states.
const (
	LessonStatusOpen       = "open"
	LessonStatusInProgress = "in_progress"
	LessonStatusClosed     = "closed"
)

// Change request lifecycle states.
const (
	ChangeRequestStatusPending     = "pending"
	ChangeRequestStatusApproved    = "approved"
	ChangeRequestStatusRejected    = "rejected"
	ChangeRequestStatusImplemented = "implemented"
)
