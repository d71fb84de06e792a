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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"project-api/src/internal/constants"
	"project-api/src/internal/model"

	"gopkg.in/yaml.v3"
)

type profileDefinitionYAML struct {
	Name         string          `yaml:"name"`
	Capabilities map[string]bool `yaml:"capabilities"`
}

type profileDefinitionsDocYAML struct {
	Profiles []profileDefinitionYAML `yaml:"profiles"`
}

// LoadProfileDefinitionsFromDirectory reads every YAML file in dirPath and
// returns the default profile definitions it declares. At least one
// definition must carry both member.manage and profile.manage, otherwise
// seeded projects would start without a managing profile.
func LoadProfileDefinitionsFromDirectory(dirPath string) ([]*model.ProfileDefinition, error) {
	if strings.TrimSpace(dirPath) == "" {
		return nil, fmt.Errorf("profile definitions directory path is empty")
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile definitions directory %s: %w", dirPath, err)
	}

	res := make([]*model.ProfileDefinition, 0)
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".yaml") && !strings.HasSuffix(lower, ".yml") {
			continue
		}

		filePath := filepath.Join(dirPath, name)
		content, readErr := os.ReadFile(filePath)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read profile definitions file %s: %w", filePath, readErr)
		}

		var doc profileDefinitionsDocYAML
		if unmarshalErr := yaml.Unmarshal(content, &doc); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse YAML profile definitions %s: %w", filePath, unmarshalErr)
		}

		for _, def := range doc.Profiles {
			profileName := strings.TrimSpace(def.Name)
			if profileName == "" {
				return nil, fmt.Errorf("profile definitions file %s contains a profile without a name", filePath)
			}
			if _, ok := seen[profileName]; ok {
				return nil, fmt.Errorf("profile definitions file %s declares duplicate profile %s", filePath, profileName)
			}
			seen[profileName] = struct{}{}

			capabilities, capErr := model.CapabilitiesFromMap(def.Capabilities)
			if capErr != nil {
				return nil, fmt.Errorf("profile %s in %s: %w", profileName, filePath, capErr)
			}

			res = append(res, &model.ProfileDefinition{
				Name:         profileName,
				Capabilities: capabilities,
			})
		}
	}

	if len(res) == 0 {
		return nil, fmt.Errorf("no profile definitions found in %s", dirPath)
	}
	if err := ValidateProfileDefinitions(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ValidateProfileDefinitions checks that the definition set can bootstrap a
// project: at least one definition must hold both managing capabilities.
func ValidateProfileDefinitions(definitions []*model.ProfileDefinition) error {
	for _, def := range definitions {
		if def != nil && def.Capabilities.IsManaging() {
			return nil
		}
	}
	return fmt.Errorf("profile definitions must include at least one profile with %s and %s",
		constants.CapMemberManage, constants.CapProfileManage)
}

// DefaultProfileDefinitions is the built-in fallback used when no definitions
// directory is configured or readable: an Administrator profile with every
// capability and a Member profile that can create and edit but not delete or
// manage.
func DefaultProfileDefinitions() []*model.ProfileDefinition {
	member, _ := model.CapabilitiesFromMap(map[string]bool{
		constants.CapActivityCreate:      true,
		constants.CapActivityEdit:        true,
		constants.CapActivityComplete:    true,
		constants.CapLessonCreate:        true,
		constants.CapLessonEdit:          true,
		constants.CapChangeRequestCreate: true,
		constants.CapChangeRequestEdit:   true,
	})
	return []*model.ProfileDefinition{
		{Name: constants.DefaultAdministratorProfile, Capabilities: model.AllCapabilitiesSet()},
		{Name: constants.DefaultMemberProfile, Capabilities: member},
	}
}
