package models

import "github.com/golang-jwt/jwt/v4"

// Credential is a configured admin identity. Passwords are compared as-is;
// IsAdmin is always true today and reserved for future role distinction.
type Credential struct {
	Username string
	Password string
	IsAdmin  bool
}

// Claims is the signed token payload.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
