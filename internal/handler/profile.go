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

package handler

import (
	"net/http"

	"project-api/src/internal/dto"
	"project-api/src/internal/service"
	"project-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// CreateProfile handles POST /api/v1/projects/:projectId/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	profile, err := h.profileService.CreateProfile(userID, c.Param("projectId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /api/v1/projects/:projectId/profiles/:profileId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(userID, c.Param("projectId"), c.Param("profileId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /api/v1/projects/:projectId/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profiles, err := h.profileService.ListProfiles(userID, c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// UpdateProfile handles PUT /api/v1/projects/:projectId/profiles/:profileId
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, c.Param("projectId"), c.Param("profileId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/v1/projects/:projectId/profiles/:profileId
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(userID, c.Param("projectId"), c.Param("profileId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *ProfileHandler) RegisterRoutes(r *gin.Engine) {
	profileGroup := r.Group("/api/v1/projects/:projectId/profiles")
	{
		profileGroup.GET("", h.ListProfiles)
		profileGroup.POST("", h.CreateProfile)
		profileGroup.GET("/:profileId", h.GetProfile)
		profileGroup.PUT("/:profileId", h.UpdateProfile)
		profileGroup.DELETE("/:profileId", h.DeleteProfile)
	}
}
