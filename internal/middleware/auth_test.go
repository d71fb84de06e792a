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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func defaultClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":      "user-123",
		"username": "alice",
		"email":    "alice@example.com",
		"iss":      "project-api",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
}

func newTestRouter(config AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(config))
	router.GET("/api/whoami", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// TestAuthMiddleware tests token validation and the claims it requires
func TestAuthMiddleware(t *testing.T) {
	config := AuthConfig{
		SecretKey:   testSecret,
		TokenIssuer: "project-api",
		SkipPaths:   []string{"/health"},
	}

	expired := defaultClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongIssuer := defaultClaims()
	wrongIssuer["iss"] = "someone-else"

	noSubject := defaultClaims()
	delete(noSubject, "sub")

	tests := []struct {
		name         string
		path         string
		authHeader   string
		wantStatus   int
		wantContains string
	}{
		{
			name:       "valid token",
			path:       "/api/whoami",
			authHeader: "Bearer " + signTestToken(t, testSecret, jwt.SigningMethodHS256, defaultClaims()),
			wantStatus: http.StatusOK,
		},
		{
			name:         "skip path needs no token",
			path:         "/health",
			wantStatus:   http.StatusOK,
			wantContains: "ok",
		},
		{
			name:         "missing header",
			path:         "/api/whoami",
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Authorization header is required",
		},
		{
			name:         "not a bearer token",
			path:         "/api/whoami",
			authHeader:   "Basic dXNlcjpwYXNz",
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Bearer",
		},
		{
			name:         "wrong secret",
			path:         "/api/whoami",
			authHeader:   "Bearer " + signTestToken(t, "other-secret", jwt.SigningMethodHS256, defaultClaims()),
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Invalid token",
		},
		{
			name:         "expired token",
			path:         "/api/whoami",
			authHeader:   "Bearer " + signTestToken(t, testSecret, jwt.SigningMethodHS256, expired),
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Invalid token",
		},
		{
			name:         "wrong issuer",
			path:         "/api/whoami",
			authHeader:   "Bearer " + signTestToken(t, testSecret, jwt.SigningMethodHS256, wrongIssuer),
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Invalid token issuer",
		},
		{
			name:         "missing sub claim",
			path:         "/api/whoami",
			authHeader:   "Bearer " + signTestToken(t, testSecret, jwt.SigningMethodHS256, noSubject),
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Token missing required 'sub' claim",
		},
	}

	router := newTestRouter(config)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantContains != "" && !strings.Contains(w.Body.String(), tt.wantContains) {
				t.Errorf("body = %s, want substring %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}

// TestAuthMiddlewareRejectsNonHMAC tests the signing method check by
// presenting an unsigned token
func TestAuthMiddlewareRejectsNonHMAC(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, defaultClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Failed to build unsigned token: %v", err)
	}

	router := newTestRouter(AuthConfig{SecretKey: testSecret})
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(w.Body.String(), "unexpected signing method") {
		t.Errorf("body = %s, want signing method rejection", w.Body.String())
	}
}

// TestAuthMiddlewareSetsContext tests the claim propagation into the request
// context
func TestAuthMiddlewareSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(AuthConfig{SecretKey: testSecret}))

	var gotUserID, gotUsername, gotEmail string
	var gotClaims *CustomClaims
	router.GET("/probe", func(c *gin.Context) {
		gotUserID, _ = GetUserIDFromContext(c)
		gotUsername, _ = GetUsernameFromContext(c)
		gotEmail, _ = GetEmailFromContext(c)
		gotClaims, _ = GetClaimsFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, jwt.SigningMethodHS256, defaultClaims()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if gotUserID != "user-123" {
		t.Errorf("user_id = %q, want user-123", gotUserID)
	}
	if gotUsername != "alice" {
		t.Errorf("username = %q, want alice", gotUsername)
	}
	if gotEmail != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", gotEmail)
	}
	if gotClaims == nil || gotClaims.Subject != "user-123" {
		t.Errorf("claims = %+v, want subject user-123", gotClaims)
	}
}

// TestAuthMiddlewareSkipValidation tests the development mode that decodes
// without verifying the signature
func TestAuthMiddlewareSkipValidation(t *testing.T) {
	router := newTestRouter(AuthConfig{SkipValidation: true})

	// Signed with a secret the middleware never sees.
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "unknown-secret", jwt.SigningMethodHS256, defaultClaims()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d for malformed token", w.Code, http.StatusUnauthorized)
	}
}
