package rooms

import (
	"net/http"

	"timetable-app/database"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetLastDepartment remembers the department the user last worked with, so
// department-scoped pages can preselect it on the next visit.
func SetLastDepartment(c *gin.Context) {
	ctx, ok := loadSessionContext(c)
	if !ok {
		return
	}

	var body struct {
		DepartmentID uint `json:"department_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing department_id"})
		return
	}

	var department timetable.Department
	if err := database.DB.First(&department, body.DepartmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", ctx.User.ID).
		Update("last_department_id", department.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store department"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Last department updated"})
}
