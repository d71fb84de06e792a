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

package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"9443"`

	// Database configurations
	Database     Database `envconfig:"DATABASE"`
	DBSchemaPath string   `envconfig:"DB_SCHEMA_PATH" default:"./internal/database/schema.sql"`

	// Default profile bootstrap (used to seed defaults into the DB)
	ProfileDefinitionsPath string `envconfig:"PROFILE_DEFINITIONS_PATH" default:"./resources/default-profiles"`

	// JWT Authentication configurations
	JWT JWT `envconfig:"JWT"`
}

// JWT holds JWT-specific configuration
type JWT struct {
	SecretKey      string   `envconfig:"SECRET_KEY" default:"your-secret-key-change-in-production"`
	Issuer         string   `envconfig:"ISSUER" default:"project-api"`
	ExpiryHours    int      `envconfig:"EXPIRY_HOURS" default:"24"`
	SkipPaths      []string `envconfig:"SKIP_PATHS" default:"/health,/api/v1/auth/login,/api/v1/auth/register"`
	SkipValidation bool     `envconfig:"SKIP_VALIDATION" default:"false"`
}

// Database holds database-specific configuration
type Database struct {
	Driver string `envconfig:"DRIVER" default:"sqlite3"`
	// Path is the file path for SQLite databases.
	// Use DATABASE_DB_PATH to override; keeping it distinct from the OS PATH variable.
	Path            string `envconfig:"DB_PATH" default:"./data/project_api.db"`
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            int    `envconfig:"PORT" default:"5432"`
	Name            string `envconfig:"NAME" default:"project_api"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"` // seconds

	// ExecuteSchemaDDL controls whether to run the schema DDL (CREATE TABLE, etc.) on startup.
	// Set to false when the DB user lacks DDL privileges (e.g. deployed Postgres with restricted role).
	// Env: DATABASE_EXECUTE_SCHEMA_DDL (default: true)
	ExecuteSchemaDDL bool `envconfig:"EXECUTE_SCHEMA_DDL" default:"true"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server struct.
// It uses sync.Once to ensure that the initialization logic is executed only
// once, making it safe for concurrent use. A local .env file is loaded first
// when present so development overrides work without exporting variables.
// If there is an error during the initialization, the function will panic.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		_ = godotenv.Load()
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}
