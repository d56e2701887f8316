package auth

import (
	"net/http"

	"github.com/omer1abay/Todo-App/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "session_id"

const contextKeyUserID = "user_id"

// UserIDFromContext returns the current user ID set by the session middleware. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// IdentifySession attaches the caller's identity when a valid session cookie
// is present and lets anonymous requests through.
func IdentifySession(sessions Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		identify(c, sessions)
		c.Next()
	}
}

// RequireSession is IdentifySession that responds 401 to anonymous requests.
func RequireSession(sessions Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identify(c, sessions) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Next()
	}
}

// identify sets the user id on the gin context and the username as the
// audit author on the request context.
func identify(c *gin.Context, sessions Sessions) bool {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return false
	}
	sess, ok, err := sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		log.Warn().Err(err).Msg("session lookup")
		return false
	}
	if !ok {
		return false
	}
	c.Set(contextKeyUserID, sess.UserID)
	c.Request = c.Request.WithContext(repo.WithAuthor(c.Request.Context(), sess.Username))
	return true
}
