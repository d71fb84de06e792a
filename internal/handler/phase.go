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

type PhaseHandler struct {
	phaseService *service.PhaseService
}

func NewPhaseHandler(phaseService *service.PhaseService) *PhaseHandler {
	return &PhaseHandler{
		phaseService: phaseService,
	}
}

// CreatePhase handles POST /api/v1/projects/:projectId/phases
func (h *PhaseHandler) CreatePhase(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	phase, err := h.phaseService.CreatePhase(userID, c.Param("projectId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, phase)
}

// GetPhase handles GET /api/v1/projects/:projectId/phases/:phaseId
func (h *PhaseHandler) GetPhase(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	phase, err := h.phaseService.GetPhase(userID, c.Param("projectId"), c.Param("phaseId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, phase)
}

// ListPhases handles GET /api/v1/projects/:projectId/phases
func (h *PhaseHandler) ListPhases(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	phases, err := h.phaseService.ListPhases(userID, c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, phases)
}

// UpdatePhase handles PUT /api/v1/projects/:projectId/phases/:phaseId
func (h *PhaseHandler) UpdatePhase(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	phase, err := h.phaseService.UpdatePhase(userID, c.Param("projectId"), c.Param("phaseId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, phase)
}

// DeletePhase handles DELETE /api/v1/projects/:projectId/phases/:phaseId
func (h *PhaseHandler) DeletePhase(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.phaseService.DeletePhase(userID, c.Param("projectId"), c.Param("phaseId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *PhaseHandler) RegisterRoutes(r *gin.Engine) {
	phaseGroup := r.Group("/api/v1/projects/:projectId/phases")
	{
		phaseGroup.GET("", h.ListPhases)
		phaseGroup.POST("", h.CreatePhase)
		phaseGroup.GET("/:phaseId", h.GetPhase)
		phaseGroup.PUT("/:phaseId", h.UpdatePhase)
		phaseGroup.DELETE("/:phaseId", h.DeletePhase)
	}
}
