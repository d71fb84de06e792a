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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"project-api/src/internal/constants"
	"project-api/src/internal/model"
)

func writeDefinitionsFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// TestLoadProfileDefinitionsFromDirectory tests loading, validation and the
// error paths of the YAML definitions loader
func TestLoadProfileDefinitionsFromDirectory(t *testing.T) {
	validYAML := `profiles:
  - name: Administrator
    capabilities:
      activity.create: true
      activity.edit: true
      activity.delete: true
      activity.complete: true
      lesson.create: true
      lesson.edit: true
      lesson.delete: true
      change_request.create: true
      change_request.edit: true
      change_request.delete: true
      member.manage: true
      profile.manage: true
  - name: Member
    capabilities:
      activity.create: true
      activity.complete: true
`

	tests := []struct {
		name        string
		files       map[string]string
		wantErr     bool
		errContains string
		wantNames   []string
	}{
		{
			name:      "valid definitions",
			files:     map[string]string{"profiles.yaml": validYAML},
			wantNames: []string{"Administrator", "Member"},
		},
		{
			name:        "empty directory",
			files:       map[string]string{},
			wantErr:     true,
			errContains: "no profile definitions found",
		},
		{
			name: "non-yaml files are ignored",
			files: map[string]string{
				"profiles.yaml": validYAML,
				"README.md":     "not yaml",
			},
			wantNames: []string{"Administrator", "Member"},
		},
		{
			name: "unknown capability name",
			files: map[string]string{
				"profiles.yaml": `profiles:
  - name: Broken
    capabilities:
      activity.destroy: true
`,
			},
			wantErr:     true,
			errContains: "unknown capability",
		},
		{
			name: "no managing profile",
			files: map[string]string{
				"profiles.yaml": `profiles:
  - name: Member
    capabilities:
      activity.create: true
`,
			},
			wantErr:     true,
			errContains: "at least one profile",
		},
		{
			name: "duplicate profile name",
			files: map[string]string{
				"profiles.yaml": validYAML + `  - name: Member
    capabilities:
      activity.create: true
`,
			},
			wantErr:     true,
			errContains: "duplicate profile",
		},
		{
			name: "profile without a name",
			files: map[string]string{
				"profiles.yaml": `profiles:
  - capabilities:
      member.manage: true
`,
			},
			wantErr:     true,
			errContains: "without a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeDefinitionsFile(t, dir, name, content)
			}

			definitions, err := LoadProfileDefinitionsFromDirectory(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadProfileDefinitionsFromDirectory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if len(definitions) != len(tt.wantNames) {
				t.Fatalf("loaded %d definitions, want %d", len(definitions), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if definitions[i].Name != name {
					t.Errorf("definitions[%d].Name = %q, want %q", i, definitions[i].Name, name)
				}
			}
		})
	}
}

// TestLoadProfileDefinitionsMissingDirectory tests the error for an absent
// directory, which the server falls back from
func TestLoadProfileDefinitionsMissingDirectory(t *testing.T) {
	if _, err := LoadProfileDefinitionsFromDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadProfileDefinitionsFromDirectory() error = nil, want error for missing directory")
	}
	if _, err := LoadProfileDefinitionsFromDirectory("  "); err == nil {
		t.Error("LoadProfileDefinitionsFromDirectory() error = nil, want error for blank path")
	}
}

// TestDefaultProfileDefinitions tests the built-in fallback set
func TestDefaultProfileDefinitions(t *testing.T) {
	definitions := DefaultProfileDefinitions()
	if err := ValidateProfileDefinitions(definitions); err != nil {
		t.Fatalf("ValidateProfileDefinitions() error = %v", err)
	}

	var admin, member *model.ProfileDefinition
	for _, def := range definitions {
		switch def.Name {
		case constants.DefaultAdministratorProfile:
			admin = def
		case constants.DefaultMemberProfile:
			member = def
		}
	}
	if admin == nil || member == nil {
		t.Fatalf("definitions missing defaults: %+v", definitions)
	}
	if !admin.Capabilities.IsManaging() {
		t.Error("Administrator definition is not managing")
	}
	if member.Capabilities.IsManaging() {
		t.Error("Member definition unexpectedly managing")
	}
	if member.Capabilities.DeleteActivity {
		t.Error("Member definition unexpectedly holds activity.delete")
	}
}
