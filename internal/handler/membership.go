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

type MembershipHandler struct {
	membershipService *service.MembershipService
}

func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// AddMember handles POST /api/v1/projects/:projectId/members
func (h *MembershipHandler) AddMember(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	membership, err := h.membershipService.AddMember(userID, c.Param("projectId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// ListMembers handles GET /api/v1/projects/:projectId/members
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	memberships, err := h.membershipService.ListMembers(userID, c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// ChangeProfile handles PUT /api/v1/projects/:projectId/members/:membershipId
func (h *MembershipHandler) ChangeProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.ChangeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	membership, err := h.membershipService.ChangeProfile(userID, c.Param("projectId"), c.Param("membershipId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, membership)
}

// RemoveMember handles DELETE /api/v1/projects/:projectId/members/:membershipId
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.membershipService.RemoveMember(userID, c.Param("projectId"), c.Param("membershipId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *MembershipHandler) RegisterRoutes(r *gin.Engine) {
	memberGroup := r.Group("/api/v1/projects/:projectId/members")
	{
		memberGroup.GET("", h.ListMembers)
		memberGroup.POST("", h.AddMember)
		memberGroup.PUT("/:membershipId", h.ChangeProfile)
		memberGroup.DELETE("/:membershipId", h.RemoveMember)
	}
}
