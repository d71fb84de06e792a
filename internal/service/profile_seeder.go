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
	"database/sql"
	"fmt"

	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/google/uuid"
)

// ProfileSeeder seeds the default profile set into a project so every
// project starts with at least one managing profile.
//
// Seeding is idempotent: existing profiles are matched by name and never
// overwritten, so operator-edited capability bits survive restarts.
type ProfileSeeder struct {
	profileRepo repository.ProfileRepository
	definitions []*model.ProfileDefinition
}

func NewProfileSeeder(profileRepo repository.ProfileRepository, definitions []*model.ProfileDefinition) *ProfileSeeder {
	return &ProfileSeeder{profileRepo: profileRepo, definitions: definitions}
}

// SeedForProject creates any default profiles the project is missing. Used
// by the startup loop that walks existing projects.
func (s *ProfileSeeder) SeedForProject(projectUUID string) error {
	if s == nil || s.profileRepo == nil {
		return nil
	}
	if projectUUID == "" {
		return fmt.Errorf("projectUUID is empty")
	}
	if len(s.definitions) == 0 {
		return nil
	}

	existing, err := s.profileRepo.GetProfilesByProjectID(projectUUID)
	if err != nil {
		return fmt.Errorf("failed to list existing profiles: %w", err)
	}
	existingByName := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		if p == nil {
			continue
		}
		existingByName[p.Name] = struct{}{}
	}

	for _, def := range s.definitions {
		if def == nil || def.Name == "" {
			continue
		}
		if _, ok := existingByName[def.Name]; ok {
			continue
		}

		toCreate := &model.Profile{
			UUID:         uuid.New().String(),
			ProjectID:    projectUUID,
			Name:         def.Name,
			IsDefault:    true,
			Capabilities: def.Capabilities,
		}
		if err := s.profileRepo.CreateProfile(toCreate); err != nil {
			// Be tolerant to concurrent startup / repeated seeding.
			current, getErr := s.profileRepo.GetProfileByName(projectUUID, def.Name)
			if getErr == nil && current != nil {
				continue
			}
			return fmt.Errorf("failed to create default profile %s: %w", def.Name, err)
		}
	}

	return nil
}

// SeedForProjectTx creates the full default profile set for a freshly
// created project inside the bootstrap transaction, and returns the created
// profiles in definition order.
func (s *ProfileSeeder) SeedForProjectTx(tx *sql.Tx, projectUUID string) ([]*model.Profile, error) {
	if projectUUID == "" {
		return nil, fmt.Errorf("projectUUID is empty")
	}

	profiles := make([]*model.Profile, 0, len(s.definitions))
	for _, def := range s.definitions {
		if def == nil || def.Name == "" {
			continue
		}
		profile := &model.Profile{
			UUID:         uuid.New().String(),
			ProjectID:    projectUUID,
			Name:         def.Name,
			IsDefault:    true,
			Capabilities: def.Capabilities,
		}
		if err := s.profileRepo.CreateProfileTx(tx, profile); err != nil {
			return nil, fmt.Errorf("failed to create default profile %s: %w", def.Name, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ManagingProfile returns the first created profile holding both managing
// capabilities. The project creator's membership binds to it.
func ManagingProfile(profiles []*model.Profile) *model.Profile {
	for _, p := range profiles {
		if p != nil && p.Capabilities.IsManaging() {
			return p
		}
	}
	return nil
}
