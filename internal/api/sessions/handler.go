package sessions

import (
	"net/http"

	"timetable-app/database"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type SessionDTO struct {
	ID                 uint   `json:"id"`
	Reference          string `json:"reference"`
	Label              string `json:"label"`
	AcademicInitiative string `json:"academic_initiative"`
	Current            bool   `json:"current"`
}

// ListSessions returns the academic sessions the user holds an authority
// for, ascending by begin date.
func ListSessions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var sessions []timetable.Session
	err := database.DB.
		Joins("JOIN authorities ON authorities.session_id = sessions.id AND authorities.user_id = ?", user.ID).
		Order("sessions.begin_date").
		Find(&sessions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sessions"})
		return
	}

	out := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionDTO{
			ID:                 s.ID,
			Reference:          s.Reference,
			Label:              s.Label,
			AcademicInitiative: s.AcademicInitiative,
			Current:            user.CurrentSessionID != nil && *user.CurrentSessionID == s.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

// SelectSession switches the user's current academic session. The user must
// hold an authority for the target session.
func SelectSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		SessionID uint `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id"})
		return
	}

	var authority security.Authority
	err := database.DB.
		Where("user_id = ? AND session_id = ?", user.ID, body.SessionID).
		First(&authority).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No authority for that session"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("current_session_id", body.SessionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session selected"})
}

func currentUser(c *gin.Context) (*users.User, bool) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return nil, false
	}
	return &user, true
}
