package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory/apperrors"
	"inventory/models"
	"inventory/services"
)

type AuthController struct {
	credentials *services.CredentialStore
	tokens      *services.TokenService
}

func NewAuthController(credentials *services.CredentialStore, tokens *services.TokenService) *AuthController {
	return &AuthController{credentials: credentials, tokens: tokens}
}

// Login exchanges a configured admin credential for a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	cred, err := ac.credentials.Validate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.tokens.Issue(cred)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, Username: cred.Username})
}
