package auth

import "skyward/aerodrome/internal/constants"

// UserClaims is what the rest of the app sees about the caller. The auth
// middleware builds it from the bearer token; handlers and services only
// consume the interface.
type UserClaims interface {
	UserID() string
	Role() string
	IsAdmin() bool
	Source() string
}

type JWTClaims struct {
	UserUUID  string
	RoleValue constants.UserRole
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Role() string   { return string(c.RoleValue) }
func (c *JWTClaims) IsAdmin() bool  { return c.RoleValue == constants.RoleAdmin }
func (c *JWTClaims) Source() string { return "JWT" }
