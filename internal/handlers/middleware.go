package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "recipeshare_session"
	sessionKeyUserID  = "user_id"
	ctxKeyUserID      = "userId"

	errUnauthorized = "Unauthorized"
)

// sessionAuth rejects requests that carry no authenticated session before any
// validation or persistence work happens. The same uniform body is used for
// every unauthorized case.
func (h *Handler) sessionAuth(c *gin.Context) {
	sess := sessions.Default(c)
	id, ok := sess.Get(sessionKeyUserID).(int)
	if !ok || id <= 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
		return
	}

	// store in Gin context
	c.Set(ctxKeyUserID, id)
	c.Next()
}

// currentUserID returns the authenticated user id placed by sessionAuth.
func currentUserID(c *gin.Context) int {
	return c.GetInt(ctxKeyUserID)
}

// setSessionUser binds the session cookie to a user id (signup and login).
func setSessionUser(c *gin.Context, userID int) error {
	sess := sessions.Default(c)
	sess.Set(sessionKeyUserID, userID)
	return sess.Save()
}

// clearSessionUser drops the user id from the session (logout).
func clearSessionUser(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(sessionKeyUserID)
	return sess.Save()
}
