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

package repository

import (
	"database/sql"
	"errors"
	"time"

	"project-api/src/internal/database"
	"project-api/src/internal/model"
)

// UserRepo implements UserRepository
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &UserRepo{db: db}
}

// CreateUser inserts a new user
func (r *UserRepo) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO users (uuid, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, user.UUID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	return err
}

// GetUserByUUID retrieves a user by ID
func (r *UserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	return r.getUser("uuid", uuid)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	return r.getUser("email", email)
}

// GetUserByUsername retrieves a user by username
func (r *UserRepo) GetUserByUsername(username string) (*model.User, error) {
	return r.getUser("username", username)
}

func (r *UserRepo) getUser(column, value string) (*model.User, error) {
	user := &model.User{}
	query := r.db.Rebind(`
		SELECT uuid, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE ` + column + ` = ?
	`)
	err := r.db.QueryRow(query, value).Scan(
		&user.UUID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
