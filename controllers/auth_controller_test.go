package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/models"
	"inventory/services"
)

func authRouter() (*gin.Engine, *services.TokenService) {
	gin.SetMode(gin.TestMode)
	credentials := services.NewCredentialStore([]models.Credential{
		{Username: "admin1", Password: "password1", IsAdmin: true},
	})
	tokens := services.NewTokenService("test-secret", time.Hour)

	r := gin.New()
	r.POST("/auth/login", NewAuthController(credentials, tokens).Login)
	return r, tokens
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	r, tokens := authRouter()

	w := perform(r, http.MethodPost, "/auth/login", `{"username":"admin1","password":"password1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin1", resp.Username)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := authRouter()

	// Wrong password and unknown user fail identically.
	for _, body := range []string{
		`{"username":"admin1","password":"wrong"}`,
		`{"username":"ghost","password":"password1"}`,
	} {
		w := perform(r, http.MethodPost, "/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r, _ := authRouter()

	w := perform(r, http.MethodPost, "/auth/login", `{"username":"admin1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
