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

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims represents the JWT claims issued by the auth service
type CustomClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthConfig holds the configuration for JWT authentication
type AuthConfig struct {
	SecretKey      string
	TokenIssuer    string
	SkipPaths      []string // Paths to skip authentication
	SkipValidation bool     // Skip token signature validation (for development)
}

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(config AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip authentication for specified paths
		for _, path := range config.SkipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		// Get token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			c.Abort()
			return
		}

		// Check if the header starts with "Bearer "
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format. Expected: Bearer <token>",
			})
			c.Abort()
			return
		}

		var claims *CustomClaims

		// Parse token without validation if SkipValidation is true
		if config.SkipValidation {
			// Parse without validation - just decode the JWT structure
			parser := jwt.NewParser(jwt.WithoutClaimsValidation())
			token, _, parseErr := parser.ParseUnverified(tokenString, &CustomClaims{})

			if parseErr != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": fmt.Sprintf("Invalid JWT format: %v", parseErr),
				})
				c.Abort()
				return
			}

			var ok bool
			claims, ok = token.Claims.(*CustomClaims)
			if !ok {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid token claims",
				})
				c.Abort()
				return
			}
		} else {
			// Parse and validate the token with signature verification
			token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
				// Validate the signing method
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.SecretKey), nil
			})

			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": fmt.Sprintf("Invalid token: %v", err),
				})
				c.Abort()
				return
			}

			var ok bool
			claims, ok = token.Claims.(*CustomClaims)
			if !ok || !token.Valid {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid token claims",
				})
				c.Abort()
				return
			}

			// Validate issuer if configured
			if config.TokenIssuer != "" && claims.Issuer != config.TokenIssuer {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid token issuer",
				})
				c.Abort()
				return
			}
		}

		// The subject claim is the user identity; everything downstream
		// keys off it.
		if claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Token missing required 'sub' claim",
			})
			c.Abort()
			return
		}

		// Set claims in context for use in handlers
		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("claims", claims)

		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userIDStr, ok := userID.(string)
	return userIDStr, ok
}

// GetUsernameFromContext extracts the username from the Gin context
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	usernameStr, ok := username.(string)
	return usernameStr, ok
}

// GetEmailFromContext extracts the email from the Gin context
func GetEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetClaimsFromContext extracts the full claims object from the Gin context
func GetClaimsFromContext(c *gin.Context) (*CustomClaims, bool) {
	claims, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claimsObj, ok := claims.(*CustomClaims)
	return claimsObj, ok
}
