package admin

import (
	"net/http"

	"timetable-app/database"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Lastname    string           `json:"lastname"`
	Email       string           `json:"email"`
	Role        string           `json:"role"`
	IsVerified  bool             `json:"is_verified"`
	Authorities []AdminAuthority `json:"authorities"`
}

type AdminAuthority struct {
	ID          uint   `json:"id"`
	SessionID   uint   `json:"session_id"`
	Role        string `json:"role"`
	Departments []uint `json:"departments"`
}

type AdminDepartment struct {
	ID           uint   `json:"id"`
	SessionID    uint   `json:"session_id"`
	DeptCode     string `json:"dept_code"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	External     bool   `json:"external"`
	AllowEvents  bool   `json:"allow_events"`
}

func ListAllUsers(c *gin.Context) {
	var accounts []users.User
	if err := database.DB.Order("email").Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var out []AdminUser
	for _, u := range accounts {
		entry := AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Lastname:   u.Lastname,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified,
		}

		var authorities []security.Authority
		if err := database.DB.Preload("Qualifiers").Where("user_id = ?", u.ID).Find(&authorities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load authorities"})
			return
		}
		for _, a := range authorities {
			binding := AdminAuthority{ID: a.ID, SessionID: a.SessionID, Role: a.Role}
			for _, q := range a.Qualifiers {
				if q.Type == security.QualifierDepartment {
					binding.Departments = append(binding.Departments, q.RefID)
				}
			}
			entry.Authorities = append(entry.Authorities, binding)
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"users": out})
}

func ListDepartments(c *gin.Context) {
	var departments []timetable.Department
	if err := database.DB.Order("session_id, dept_code").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load departments"})
		return
	}

	var out []AdminDepartment
	for _, d := range departments {
		out = append(out, AdminDepartment{
			ID:           d.ID,
			SessionID:    d.SessionID,
			DeptCode:     d.DeptCode,
			Abbreviation: d.Abbreviation,
			Name:         d.Name,
			External:     d.ExternalManager,
			AllowEvents:  d.AllowEvents,
		})
	}

	c.JSON(http.StatusOK, gin.H{"departments": out})
}

// GrantAuthority binds a role to a user for one academic session, with an
// optional set of department qualifiers. The session qualifier is attached
// automatically so the binding carries its session's label.
func GrantAuthority(c *gin.Context) {
	var body struct {
		UserID      uint   `json:"user_id" binding:"required"`
		SessionID   uint   `json:"session_id" binding:"required"`
		Role        string `json:"role" binding:"required"`
		Departments []uint `json:"departments"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(security.RightsForRole(body.Role)) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, body.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var session timetable.Session
	if err := database.DB.First(&session, body.SessionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	authority := security.Authority{
		UserID:    user.ID,
		SessionID: session.ID,
		Role:      body.Role,
		Label:     body.Role + " (" + session.Label + ")",
		Qualifiers: []security.AuthorityQualifier{
			{Type: security.QualifierSession, RefID: session.ID, Label: session.Label},
		},
	}
	for _, deptID := range body.Departments {
		var department timetable.Department
		if err := database.DB.First(&department, deptID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
			return
		}
		authority.Qualifiers = append(authority.Qualifiers, security.AuthorityQualifier{
			Type:  security.QualifierDepartment,
			RefID: department.ID,
			Label: department.DeptCode,
		})
	}

	if err := database.DB.Create(&authority).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create authority"})
		return
	}

	// First authority doubles as the user's current session.
	if user.CurrentSessionID == nil {
		database.DB.Model(&user).Update("current_session_id", session.ID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Authority granted", "authority_id": authority.ID})
}
