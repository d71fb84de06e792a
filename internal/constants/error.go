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

import "errors"

var (
	ErrUserExists        = errors.New("user already exists with the given email or username")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid email or password")
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectName = errors.New("invalid project name")
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrProfileNameExists      = errors.New("profile already exists in project")
	ErrInvalidProfileName     = errors.New("invalid profile name")
	ErrUnknownCapability      = errors.New("unknown capability name")
	ErrProfileInUse           = errors.New("profile is referenced by active memberships")
	ErrProfileProjectMismatch = errors.New("profile does not belong to project")
	ErrLastManagingProfile    = errors.New("project must keep at least one profile with member.manage and profile.manage")
)

var (
	ErrMembershipNotFound     = errors.New("membership not found")
	ErrMembershipExists       = errors.New("user already has a membership in project")
	ErrLastManagingMembership = errors.New("project must keep at least one member.manage-capable membership")
)

var (
	ErrActivityNotFound         = errors.New("activity not found")
	ErrActivityNotReleased      = errors.New("activity has not been released yet")
	ErrActivityAlreadyCompleted = errors.New("activity is already completed")
	ErrScenarioNotFound         = errors.New("scenario not found")
	ErrPhaseNotFound            = errors.New("phase not found")
)

var (
	ErrLessonNotFound        = errors.New("lesson learned not found")
	ErrChangeRequestNotFound = errors.New("change request not found")
)

// ErrPermissionDenied is the uniform authorization failure. The deny reason
// (no membership vs capability denied) is logged for audit but never leaks
// to the caller.
var ErrPermissionDenied = errors.New("not authorized")

// ErrTransient marks storage contention or timeout. Safe to retry: every
// mutation runs in a single atomic transaction, so no partial writes occur.
var ErrTransient = errors.New("transient storage error, retry")
