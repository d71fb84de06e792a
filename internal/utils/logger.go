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
	"log"
	"runtime/debug"
)

// Leveled printf-style helpers over the standard logger. The authorization
// engine writes its deny audit lines through LogWarnf; server wiring uses
// LogInfof/LogWarnf for schema, definition loading and seeding progress.

// LogInfof logs an informational message
func LogInfof(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// LogWarnf logs a warning
func LogWarnf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}

// LogErrorf logs an error with a stack trace. A nil error is a no-op so
// callers can pass through results unconditionally.
func LogErrorf(err error, format string, args ...interface{}) {
	if err == nil {
		return
	}
	args = append(args, err)
	log.Printf("[ERROR] "+format+": %v", args...)
	log.Printf("[STACK] %s", debug.Stack())
}
