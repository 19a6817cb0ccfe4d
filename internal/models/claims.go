package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims the shop backend issues at login.
// The checkout gateway only reads them; it never mints tokens itself.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
