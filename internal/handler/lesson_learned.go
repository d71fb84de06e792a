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

type LessonLearnedHandler struct {
	lessonService *service.LessonLearnedService
}

func NewLessonLearnedHandler(lessonService *service.LessonLearnedService) *LessonLearnedHandler {
	return &LessonLearnedHandler{
		lessonService: lessonService,
	}
}

// CreateLesson handles POST /api/v1/projects/:projectId/lessons
func (h *LessonLearnedHandler) CreateLesson(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateLessonLearnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	lesson, err := h.lessonService.CreateLesson(userID, c.Param("projectId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

// GetLesson handles GET /api/v1/projects/:projectId/lessons/:lessonId
func (h *LessonLearnedHandler) GetLesson(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	lesson, err := h.lessonService.GetLesson(userID, c.Param("projectId"), c.Param("lessonId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// ListLessons handles GET /api/v1/projects/:projectId/lessons
func (h *LessonLearnedHandler) ListLessons(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	lessons, err := h.lessonService.ListLessons(userID, c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// UpdateLesson handles PUT /api/v1/projects/:projectId/lessons/:lessonId
func (h *LessonLearnedHandler) UpdateLesson(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateLessonLearnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	lesson, err := h.lessonService.UpdateLesson(userID, c.Param("projectId"), c.Param("lessonId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /api/v1/projects/:projectId/lessons/:lessonId
func (h *LessonLearnedHandler) DeleteLesson(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.lessonService.DeleteLesson(userID, c.Param("projectId"), c.Param("lessonId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *LessonLearnedHandler) RegisterRoutes(r *gin.Engine) {
	lessonGroup := r.Group("/api/v1/projects/:projectId/lessons")
	{
		lessonGroup.GET("", h.ListLessons)
		lessonGroup.POST("", h.CreateLesson)
		lessonGroup.GET("/:lessonId", h.GetLesson)
		lessonGroup.PUT("/:lessonId", h.UpdateLesson)
		lessonGroup.DELETE("/:lessonId", h.DeleteLesson)
	}
}
