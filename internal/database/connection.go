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

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"project-api/src/config"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// DB holds the database connection
type DB struct {
	*sql.DB
	driver string // Database driver name (sqlite3, postgres, etc.)
}

// Driver returns the underlying database driver name (e.g., sqlite3, postgres).
func (db *DB) Driver() string {
	return db.driver
}

// NewConnection creates a new database connection using configuration
func NewConnection(cfg *config.Database) (*DB, error) {
	var db *sql.DB
	var err error

	switch cfg.Driver {
	case "sqlite3":
		// Ensure the directory exists for SQLite
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		db, err = sql.Open("sqlite3", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Enable foreign key constraints for SQLite
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
		)

		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: cfg.Driver}, nil
}

// InitSchema initializes the database schema.
// Automatically selects the appropriate schema file based on the database
// driver: the "schema.sql" suffix of the configured path is replaced with
// "schema.{driver}.sql".
func (db *DB) InitSchema(dbSchemaPath string) error {
	dir := "./internal/database"
	if dbSchemaPath != "" {
		dir = filepath.Dir(dbSchemaPath)
	}

	var schemaFile string
	switch db.driver {
	case "sqlite3":
		schemaFile = "schema.sqlite.sql"
	case "postgres", "postgresql":
		schemaFile = "schema.postgres.sql"
	default:
		return fmt.Errorf("unsupported database driver for schema initialization: %s", db.driver)
	}

	schemaSQL, err := os.ReadFile(filepath.Join(dir, schemaFile))
	if err != nil {
		return fmt.Errorf("failed to read schema file %s: %w", filepath.Join(dir, schemaFile), err)
	}

	// The PostgreSQL driver doesn't handle multi-statement Exec() well, so
	// statements are executed individually inside one transaction. SQLite
	// accepts the whole script in a single Exec.
	if db.driver == "postgres" || db.driver == "postgresql" {
		return db.initSchemaPostgres(string(schemaSQL))
	}

	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

func (db *DB) initSchemaPostgres(schemaSQL string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range splitSQLStatements(schemaSQL) {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}

// splitSQLStatements splits a schema script on semicolons that sit outside
// string literals, dropping empty fragments and pure comment lines.
func splitSQLStatements(script string) []string {
	var statements []string
	var current strings.Builder
	inString := false

	for _, r := range script {
		if r == '\'' {
			inString = !inString
		}
		if r == ';' && !inString {
			if stmt := trimCommentLines(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if stmt := trimCommentLines(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}

func trimCommentLines(stmt string) string {
	var kept []string
	for _, line := range strings.Split(stmt, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error. Every invariant-sensitive mutation (check-then-write) goes
// through here so concurrent requests against the same project serialize at
// the storage layer.
func (db *DB) WithTx(fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsTransientError reports whether err is a storage contention or timeout
// condition that the caller may safely retry.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// serialization_failure, deadlock_detected, lock_not_available
		return pqErr.Code == "40001" || pqErr.Code == "40P01" || pqErr.Code == "55P03"
	}

	return false
}

// Rebind converts a SQL query with `?` placeholders to the appropriate
// format for the current database driver. For PostgreSQL, converts `?` to
// `$1, $2, ...`. For SQLite, leaves `?` as-is.
func (db *DB) Rebind(query string) string {
	if db.driver != "postgres" && db.driver != "postgresql" {
		return query
	}

	parts := strings.Split(query, "?")
	if len(parts) == 1 {
		return query // No placeholders
	}

	var result strings.Builder
	for i, part := range parts {
		if i > 0 {
			result.WriteString(fmt.Sprintf("$%d", i))
		}
		result.WriteString(part)
	}
	return result.String()
}
