package middleware

import (
	"errors"
	"net/http"

	"timetable-app/database"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRight loads the session context for the authenticated user and
// aborts with 403 unless the given right holds under the authority of the
// user's current academic session. The loaded context is stored under
// "session_context" for the handler.
func RequireRight(right security.Right) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx := &security.SessionContext{User: &user}
		if user.CurrentSessionID != nil {
			ctx.SessionID = *user.CurrentSessionID
			var authority security.Authority
			err := database.DB.Preload("Qualifiers").
				Where("user_id = ? AND session_id = ?", user.ID, ctx.SessionID).
				First(&authority).Error
			if err == nil {
				ctx.Authority = &authority
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load authority"})
				return
			}
		}

		if !ctx.HasRight(right) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied (" + string(right) + ")",
			})
			return
		}

		c.Set("session_context", ctx)
		c.Next()
	}
}
