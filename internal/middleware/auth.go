package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/educonnect-booking/internal/auth"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextSession  = "session"
)

// AuthMiddleware accepts a bearer token only while the session it names is
// still in the store.
func AuthMiddleware(tokens *auth.TokenIssuer, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authorization header is required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Expected a bearer token.")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token is invalid or expired.")
			return
		}

		sess, err := store.Load(c.Request.Context(), claims.SessionID)
		if err != nil {
			httperr.Abort(c, http.StatusInternalServerError, "session_lookup_failed", "Could not verify session.")
			return
		}
		if sess == nil {
			httperr.Abort(c, http.StatusUnauthorized, "session_expired", "Session has ended, please log in again.")
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextUserRole, sess.Role)
		c.Set(ContextSession, sess)

		c.Next()
	}
}

// RequireRole lets the request through only for the given roles. It must
// run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if !slices.Contains(roles, role) {
			httperr.Forbidden(c, "forbidden", "You do not have access to this resource.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session AuthMiddleware stored on c.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
