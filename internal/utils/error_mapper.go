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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"project-api/src/internal/constants"

	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized error response tuple
func makeError(status int, message string) (int, interface{}) {
	return status, NewErrorResponse(status, http.StatusText(status), message)
}

// FormatValidationError converts validator errors to user-friendly messages (public API)
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error() // Not a validation error, return as-is
	}
	return formatValidationError(validationErrors)
}

// formatValidationError converts ValidationErrors to user-friendly messages (internal)
func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := getUserFriendlyFieldName(fieldError.Field())
		message := getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param())
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

// getUserFriendlyFieldName maps struct field names to user-friendly field names
func getUserFriendlyFieldName(fieldName string) string {
	fieldMap := map[string]string{
		"Name":           "name",
		"Email":          "email",
		"Password":       "password",
		"Username":       "username",
		"Description":    "description",
		"UserID":         "user ID",
		"ProfileID":      "profile ID",
		"AssigneeID":     "assignee ID",
		"Capabilities":   "capabilities",
		"Status":         "status",
		"Position":       "position",
		"Category":       "category",
		"RequestedBy":    "requested by",
		"RequestingArea": "requesting area",
		"ChangeType":     "change type",
		"Priority":       "priority",
	}

	if friendly, exists := fieldMap[fieldName]; exists {
		return friendly
	}
	return strings.ToLower(fieldName)
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to HTTP status and error response
func GetErrorResponse(err error) (int, interface{}) {
	// First check if it's a validation error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		userFriendlyMessage := formatValidationError(validationErrors)
		return makeError(http.StatusBadRequest, userFriendlyMessage)
	}

	// Handle domain/business logic errors
	switch {
	// User errors
	case errors.Is(err, constants.ErrUserExists):
		return makeError(http.StatusConflict, "User already exists with the given email or username")
	case errors.Is(err, constants.ErrUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrInvalidCredential):
		return makeError(http.StatusUnauthorized, "Invalid email or password")

	// Project errors
	case errors.Is(err, constants.ErrProjectNotFound):
		return makeError(http.StatusNotFound, "Project not found")
	case errors.Is(err, constants.ErrInvalidProjectName):
		return makeError(http.StatusBadRequest, "Invalid project name")

	// Profile errors
	case errors.Is(err, constants.ErrProfileNotFound):
		return makeError(http.StatusNotFound, "Profile not found")
	case errors.Is(err, constants.ErrProfileNameExists):
		return makeError(http.StatusConflict, "Profile with this name already exists in the project")
	case errors.Is(err, constants.ErrInvalidProfileName):
		return makeError(http.StatusBadRequest, "Invalid profile name")
	case errors.Is(err, constants.ErrUnknownCapability):
		return makeError(http.StatusBadRequest, "Unknown capability name")
	case errors.Is(err, constants.ErrProfileInUse):
		return makeError(http.StatusConflict, "Profile is referenced by active memberships")
	case errors.Is(err, constants.ErrProfileProjectMismatch):
		return makeError(http.StatusBadRequest, "Profile does not belong to this project")
	case errors.Is(err, constants.ErrLastManagingProfile):
		return makeError(http.StatusConflict, "Project must keep at least one profile that can manage members and profiles")

	// Membership errors
	case errors.Is(err, constants.ErrMembershipNotFound):
		return makeError(http.StatusNotFound, "Membership not found")
	case errors.Is(err, constants.ErrMembershipExists):
		return makeError(http.StatusConflict, "User already has a membership in this project")
	case errors.Is(err, constants.ErrLastManagingMembership):
		return makeError(http.StatusConflict, "Project must keep at least one member that can manage members")

	// Phase, scenario and activity errors
	case errors.Is(err, constants.ErrPhaseNotFound):
		return makeError(http.StatusNotFound, "Phase not found")
	case errors.Is(err, constants.ErrScenarioNotFound):
		return makeError(http.StatusNotFound, "Scenario not found")
	case errors.Is(err, constants.ErrActivityNotFound):
		return makeError(http.StatusNotFound, "Activity not found")
	case errors.Is(err, constants.ErrActivityNotReleased):
		return makeError(http.StatusConflict, "Activity has not been released yet")
	case errors.Is(err, constants.ErrActivityAlreadyCompleted):
		return makeError(http.StatusConflict, "Activity is already completed")

	// Lesson learned and change request errors
	case errors.Is(err, constants.ErrLessonNotFound):
		return makeError(http.StatusNotFound, "Lesson learned not found")
	case errors.Is(err, constants.ErrChangeRequestNotFound):
		return makeError(http.StatusNotFound, "Change request not found")

	// Authorization failures are uniform: the caller never learns whether
	// membership or a capability was missing.
	case errors.Is(err, constants.ErrPermissionDenied):
		return makeError(http.StatusForbidden, "Not authorized")

	// Storage contention; the request can be retried as-is.
	case errors.Is(err, constants.ErrTransient):
		return makeError(http.StatusServiceUnavailable, "Temporarily unable to process the request, please retry")

	// Default case for unknown errors
	default:
		return makeError(http.StatusInternalServerError, "Internal Server Error")
	}
}
