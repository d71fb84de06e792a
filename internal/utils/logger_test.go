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
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	fn()
	return buf.String()
}

// TestLogLevels tests the level prefixes and formatting of the log helpers
func TestLogLevels(t *testing.T) {
	out := captureLog(t, func() {
		LogInfof("seeded %d profiles", 2)
	})
	if !strings.Contains(out, "[INFO] seeded 2 profiles") {
		t.Errorf("LogInfof output = %q, want [INFO] line", out)
	}

	out = captureLog(t, func() {
		LogWarnf("authorization denied: user=%s", "u1")
	})
	if !strings.Contains(out, "[WARN] authorization denied: user=u1") {
		t.Errorf("LogWarnf output = %q, want [WARN] line", out)
	}
}

// TestLogErrorf tests the stack trace emission and the nil no-op
func TestLogErrorf(t *testing.T) {
	out := captureLog(t, func() {
		LogErrorf(errors.New("boom"), "seeding project %s", "p1")
	})
	if !strings.Contains(out, "[ERROR] seeding project p1: boom") {
		t.Errorf("LogErrorf output = %q, want [ERROR] line with error", out)
	}
	if !strings.Contains(out, "[STACK]") {
		t.Errorf("LogErrorf output = %q, want stack trace", out)
	}

	out = captureLog(t, func() {
		LogErrorf(nil, "never written")
	})
	if out != "" {
		t.Errorf("LogErrorf(nil) output = %q, want no output", out)
	}
}
