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
	"strings"
	"time"

	"project-api/src/config"
	"project-api/src/internal/constants"
	"project-api/src/internal/dto"
	"project-api/src/internal/model"
	"project-api/src/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration, credential login and bearer token
// issuance.
type AuthService struct {
	userRepo repository.UserRepository
	jwtCfg   *config.JWT
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg *config.JWT) *AuthService {
	return &AuthService{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates a new user account. Username defaults to the local part
// of the email address when not supplied.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = email
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		}
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserExists
	}
	existing, err = s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, wrapTransient(err)
	}

	return s.ModelToDTO(user), nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, constants.ErrInvalidCredential
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  s.ModelToDTO(user),
	}, nil
}

// GenerateToken issues a signed HS256 JWT for the user.
func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.UUID,
		"username": user.Username,
		"email":    user.Email,
		"iss":      s.jwtCfg.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.jwtCfg.ExpiryHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

// GetUser retrieves a user by UUID.
func (s *AuthService) GetUser(userUUID string) (*dto.User, error) {
	user, err := s.userRepo.GetUserByUUID(userUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}
	return s.ModelToDTO(user), nil
}

// ModelToDTO converts a user model to its API representation. The password
// hash never crosses this boundary.
func (s *AuthService) ModelToDTO(user *model.User) *dto.User {
	if user == nil {
		return nil
	}
	return &dto.User{
		UUID:      user.UUID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
