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

package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"project-api/src/config"
	"project-api/src/internal/database"
	"project-api/src/internal/handler"
	"project-api/src/internal/middleware"
	"project-api/src/internal/repository"
	"project-api/src/internal/service"
	"project-api/src/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	db     *database.DB
}

// StartProjectAPIServer creates a new server instance with all dependencies initialized
func StartProjectAPIServer(cfg *config.Server) (*Server, error) {
	// Initialize database using configuration
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize schema (skip when ExecuteSchemaDDL is false, e.g. deployed Postgres without DDL access)
	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(cfg.DBSchemaPath); err != nil {
			return nil, err
		}
	} else {
		utils.LogInfof("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	membershipRepo := repository.NewMembershipRepo(db)
	phaseRepo := repository.NewPhaseRepo(db)
	scenarioRepo := repository.NewScenarioRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	lessonRepo := repository.NewLessonLearnedRepo(db)
	changeRequestRepo := repository.NewChangeRequestRepo(db)

	// Load the default profile definitions used to bootstrap every project
	cfg.ProfileDefinitionsPath = strings.TrimSpace(cfg.ProfileDefinitionsPath)
	definitions, err := utils.LoadProfileDefinitionsFromDirectory(cfg.ProfileDefinitionsPath)
	if err != nil {
		cleanPath := filepath.Clean(cfg.ProfileDefinitionsPath)
		fallbackPath := ""
		if cleanPath != "" && cleanPath != "." && cleanPath != "src" && !filepath.IsAbs(cleanPath) && !strings.HasPrefix(cleanPath, "src"+string(os.PathSeparator)) {
			fallbackPath = filepath.Join("src", cleanPath)
		}
		if fallbackPath != "" {
			if defs, fallbackErr := utils.LoadProfileDefinitionsFromDirectory(fallbackPath); fallbackErr == nil {
				definitions = defs
				cfg.ProfileDefinitionsPath = fallbackPath
				err = nil
			} else {
				utils.LogWarnf("Failed to load default profile definitions from %s: %v", fallbackPath, fallbackErr)
			}
		}
		if err != nil {
			utils.LogWarnf("Failed to load default profile definitions from %s: %v, using built-in defaults", cfg.ProfileDefinitionsPath, err)
			definitions = utils.DefaultProfileDefinitions()
		}
	}

	// Seed default profiles into every existing project so older projects
	// pick up definitions added after they were created
	profileSeeder := service.NewProfileSeeder(profileRepo, definitions)
	const pageSize = 200
	offset := 0
	for {
		projects, listErr := projectRepo.ListProjects(pageSize, offset)
		if listErr != nil {
			utils.LogWarnf("Failed to list projects for profile seeding: %v", listErr)
			break
		}
		if len(projects) == 0 {
			break
		}
		for _, project := range projects {
			if project == nil || project.UUID == "" {
				continue
			}
			if seedErr := profileSeeder.SeedForProject(project.UUID); seedErr != nil {
				utils.LogWarnf("Failed to seed default profiles for project %s: %v", project.UUID, seedErr)
			}
		}
		offset += pageSize
	}
	utils.LogInfof("Loaded default profile definitions: count=%d", len(definitions))

	// Initialize services
	authzService := service.NewAuthorizationService(membershipRepo, profileRepo)
	authService := service.NewAuthService(userRepo, &cfg.JWT)
	projectService := service.NewProjectService(db, projectRepo, membershipRepo, profileSeeder, authzService)
	profileService := service.NewProfileService(db, profileRepo, membershipRepo, projectRepo, authzService)
	membershipService := service.NewMembershipService(db, membershipRepo, profileRepo, projectRepo, userRepo, authzService)
	phaseService := service.NewPhaseService(phaseRepo, projectRepo, authzService)
	scenarioService := service.NewScenarioService(scenarioRepo, phaseRepo, authzService)
	activityService := service.NewActivityService(db, activityRepo, scenarioRepo, phaseRepo, authzService)
	lessonService := service.NewLessonLearnedService(lessonRepo, phaseRepo, projectRepo, authzService)
	changeRequestService := service.NewChangeRequestService(changeRequestRepo, projectRepo, authzService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	profileHandler := handler.NewProfileHandler(profileService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	phaseHandler := handler.NewPhaseHandler(phaseService)
	scenarioHandler := handler.NewScenarioHandler(scenarioService)
	activityHandler := handler.NewActivityHandler(activityService)
	lessonHandler := handler.NewLessonLearnedHandler(lessonService)
	changeRequestHandler := handler.NewChangeRequestHandler(changeRequestService)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Configure and apply JWT authentication middleware
	authConfig := middleware.AuthConfig{
		SecretKey:      cfg.JWT.SecretKey,
		TokenIssuer:    cfg.JWT.Issuer,
		SkipPaths:      cfg.JWT.SkipPaths,
		SkipValidation: cfg.JWT.SkipValidation,
	}
	router.Use(middleware.AuthMiddleware(authConfig))

	// Register routes
	authHandler.RegisterRoutes(router)
	projectHandler.RegisterRoutes(router)
	profileHandler.RegisterRoutes(router)
	membershipHandler.RegisterRoutes(router)
	phaseHandler.RegisterRoutes(router)
	scenarioHandler.RegisterRoutes(router)
	activityHandler.RegisterRoutes(router)
	lessonHandler.RegisterRoutes(router)
	changeRequestHandler.RegisterRoutes(router)

	// Health endpoint verifies storage connectivity
	router.GET("/health", func(c *gin.Context) {
		var one int
		if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		db:     db,
	}, nil
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	address := fmt.Sprintf(":%s", port)
	server := &http.Server{
		Addr:    address,
		Handler: s.router,
	}

	utils.LogInfof("Starting server on http://localhost:%s", port)
	return server.ListenAndServe()
}

// GetRouter returns the gin router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
