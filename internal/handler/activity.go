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

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// CreateActivity handles POST /api/v1/scenarios/:scenarioId/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	activity, err := h.activityService.CreateActivity(userID, c.Param("scenarioId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetActivity handles GET /api/v1/activities/:activityId
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	activity, err := h.activityService.GetActivity(userID, c.Param("activityId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, activity)
}

// ListActivities handles GET /api/v1/scenarios/:scenarioId/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	activities, err := h.activityService.ListActivities(userID, c.Param("scenarioId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, activities)
}

// UpdateActivity handles PUT /api/v1/activities/:activityId
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	activity, err := h.activityService.UpdateActivity(userID, c.Param("activityId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, activity)
}

// CompleteActivity handles POST /api/v1/activities/:activityId/complete
func (h *ActivityHandler) CompleteActivity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	activity, err := h.activityService.CompleteActivity(userID, c.Param("activityId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity handles DELETE /api/v1/activities/:activityId
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.activityService.DeleteActivity(userID, c.Param("activityId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *ActivityHandler) RegisterRoutes(r *gin.Engine) {
	scenarioActivityGroup := r.Group("/api/v1/scenarios/:scenarioId/activities")
	{
		scenarioActivityGroup.GET("", h.ListActivities)
		scenarioActivityGroup.POST("", h.CreateActivity)
	}

	activityGroup := r.Group("/api/v1/activities")
	{
		activityGroup.GET("/:activityId", h.GetActivity)
		activityGroup.PUT("/:activityId", h.UpdateActivity)
		activityGroup.POST("/:activityId/complete", h.CompleteActivity)
		activityGroup.DELETE("/:activityId", h.DeleteActivity)
	}
}
