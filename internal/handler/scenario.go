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

type ScenarioHandler struct {
	scenarioService *service.ScenarioService
}

func NewScenarioHandler(scenarioService *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
	}
}

// CreateScenario handles POST /api/v1/phases/:phaseId/scenarios
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	scenario, err := h.scenarioService.CreateScenario(userID, c.Param("phaseId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, scenario)
}

// GetScenario handles GET /api/v1/scenarios/:scenarioId
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	scenario, err := h.scenarioService.GetScenario(userID, c.Param("scenarioId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// ListScenarios handles GET /api/v1/phases/:phaseId/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	scenarios, err := h.scenarioService.ListScenarios(userID, c.Param("phaseId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, scenarios)
}

// UpdateScenario handles PUT /api/v1/scenarios/:scenarioId
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(userID, c.Param("scenarioId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// DeleteScenario handles DELETE /api/v1/scenarios/:scenarioId
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.scenarioService.DeleteScenario(userID, c.Param("scenarioId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *ScenarioHandler) RegisterRoutes(r *gin.Engine) {
	phaseScenarioGroup := r.Group("/api/v1/phases/:phaseId/scenarios")
	{
		phaseScenarioGroup.GET("", h.ListScenarios)
		phaseScenarioGroup.POST("", h.CreateScenario)
	}

	scenarioGroup := r.Group("/api/v1/scenarios")
	{
		scenarioGroup.GET("/:scenarioId", h.GetScenario)
		scenarioGroup.PUT("/:scenarioId", h.UpdateScenario)
		scenarioGroup.DELETE("/:scenarioId", h.DeleteScenario)
	}
}
