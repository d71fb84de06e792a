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

type ChangeRequestHandler struct {
	changeRequestService *service.ChangeRequestService
}

func NewChangeRequestHandler(changeRequestService *service.ChangeRequestService) *ChangeRequestHandler {
	return &ChangeRequestHandler{
		changeRequestService: changeRequestService,
	}
}

// CreateChangeRequest handles POST /api/v1/projects/:projectId/change-requests
func (h *ChangeRequestHandler) CreateChangeRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	changeRequest, err := h.changeRequestService.CreateChangeRequest(userID, c.Param("projectId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, changeRequest)
}

// GetChangeRequest handles GET /api/v1/projects/:projectId/change-requests/:changeRequestId
func (h *ChangeRequestHandler) GetChangeRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	changeRequest, err := h.changeRequestService.GetChangeRequest(userID, c.Param("projectId"), c.Param("changeRequestId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, changeRequest)
}

// ListChangeRequests handles GET /api/v1/projects/:projectId/change-requests
func (h *ChangeRequestHandler) ListChangeRequests(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	changeRequests, err := h.changeRequestService.ListChangeRequests(userID, c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, changeRequests)
}

// UpdateChangeRequest handles PUT /api/v1/projects/:projectId/change-requests/:changeRequestId
func (h *ChangeRequestHandler) UpdateChangeRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	changeRequest, err := h.changeRequestService.UpdateChangeRequest(userID, c.Param("projectId"), c.Param("changeRequestId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, changeRequest)
}

// DeleteChangeRequest handles DELETE /api/v1/projects/:projectId/change-requests/:changeRequestId
func (h *ChangeRequestHandler) DeleteChangeRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.changeRequestService.DeleteChangeRequest(userID, c.Param("projectId"), c.Param("changeRequestId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *ChangeRequestHandler) RegisterRoutes(r *gin.Engine) {
	changeRequestGroup := r.Group("/api/v1/projects/:projectId/change-requests")
	{
		changeRequestGroup.GET("", h.ListChangeRequests)
		changeRequestGroup.POST("", h.CreateChangeRequest)
		changeRequestGroup.GET("/:changeRequestId", h.GetChangeRequest)
		changeRequestGroup.PUT("/:changeRequestId", h.UpdateChangeRequest)
		changeRequestGroup.DELETE("/:changeRequestId", h.DeleteChangeRequest)
	}
}
