package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/auth"
)

// caller returns the claims of the authenticated user. Routes using it
// sit behind auth.Middleware.
func caller(c *gin.Context) *auth.Claims {
	claims, found := auth.ClaimsFrom(c)
	if !found {
		fail(c, http.StatusUnauthorized, "Authentication token is missing")
		return nil
	}
	return claims
}

// self checks that the path id names the caller's own account.
func self(c *gin.Context, id uint) (*auth.Claims, bool) {
	claims := caller(c)
	if claims == nil {
		return nil, false
	}
	if claims.UserID != id {
		fail(c, http.StatusForbidden, "You can only access your own account")
		return nil, false
	}
	return claims, true
}

// sameUser rejects a body id that disagrees with the token.
func sameUser(c *gin.Context, claims *auth.Claims, bodyID *uint, field string) bool {
	if bodyID != nil && *bodyID != claims.UserID {
		fail(c, http.StatusForbidden, field+" does not match the authenticated user")
		return false
	}
	return true
}
