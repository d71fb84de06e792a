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

package service

import (
	"fmt"

	"project-api/src/internal/constants"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"
	"project-api/src/internal/utils"
)

// Decision is the outcome of an authorization check. Reason is set only on
// deny and carries the audit reason code, never shown to the caller.
type Decision struct {
	Allow  bool
	Reason string
}

// AuthorizationService answers "may this user do this in this project". The
// decision path is always membership lookup, then profile lookup, then a
// single capability bit. There is no global role shortcut.
type AuthorizationService struct {
	membershipRepo repository.MembershipRepository
	profileRepo    repository.ProfileRepository
}

func NewAuthorizationService(membershipRepo repository.MembershipRepository,
	profileRepo repository.ProfileRepository) *AuthorizationService {
	return &AuthorizationService{
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
	}
}

// Authorize evaluates whether the user holds the named capability in the
// project. Unknown capability names fail with ErrUnknownCapability rather
// than silently denying.
func (s *AuthorizationService) Authorize(userUUID, projectUUID, capability string) (Decision, error) {
	if !constants.IsValidCapability(capability) {
		return Decision{}, fmt.Errorf("%w: %s", constants.ErrUnknownCapability, capability)
	}

	membership, err := s.membershipRepo.GetMembershipByUserAndProject(userUUID, projectUUID)
	if err != nil {
		return Decision{}, err
	}
	if membership == nil {
		return Decision{Allow: false, Reason: constants.ReasonNoMembership}, nil
	}

	profile, err := s.profileRepo.GetProfileByUUID(membership.ProfileID)
	if err != nil {
		return Decision{}, err
	}
	if profile == nil {
		// Membership pointing at a vanished profile; treat as no grant.
		return Decision{Allow: false, Reason: constants.ReasonCapabilityDenied}, nil
	}

	if !profile.Capabilities.Has(capability) {
		return Decision{Allow: false, Reason: constants.ReasonCapabilityDenied}, nil
	}
	return Decision{Allow: true}, nil
}

// RequireCapability authorizes and converts a deny into ErrPermissionDenied.
// The deny reason is logged for audit; callers only ever see the uniform
// error.
func (s *AuthorizationService) RequireCapability(userUUID, projectUUID, capability string) error {
	decision, err := s.Authorize(userUUID, projectUUID, capability)
	if err != nil {
		return err
	}
	if !decision.Allow {
		utils.LogWarnf("authorization denied: user=%s project=%s capability=%s reason=%s",
			userUUID, projectUUID, capability, decision.Reason)
		return constants.ErrPermissionDenied
	}
	return nil
}

// RequireMember checks that the user has any membership in the project and
// returns it. Read endpoints need membership but no specific capability.
func (s *AuthorizationService) RequireMember(userUUID, projectUUID string) (*model.Membership, error) {
	membership, err := s.membershipRepo.GetMembershipByUserAndProject(userUUID, projectUUID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		utils.LogWarnf("authorization denied: user=%s project=%s reason=%s",
			userUUID, projectUUID, constants.ReasonNoMembership)
		return nil, constants.ErrPermissionDenied
	}
	return membership, nil
}
