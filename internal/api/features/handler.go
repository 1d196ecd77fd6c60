package features

import (
	"net/http"

	"timetable-app/database"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"

	"github.com/gin-gonic/gin"
)

// ListFeatures returns the global room features of the current session plus
// the department features of one department, selected by deptCode. The
// department code is required; department features respect the same
// department partitioning as the room-management configuration.
func ListFeatures(c *gin.Context) {
	ctxAny, exists := c.Get("session_context")
	ctx, _ := ctxAny.(*security.SessionContext)
	if !exists || ctx == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deptCode := c.Query("deptCode")
	if deptCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Department is required"})
		return
	}

	var department timetable.Department
	if err := database.DB.
		Where("session_id = ? AND dept_code = ?", ctx.SessionID, deptCode).
		First(&department).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	filterDepartments := !ctx.HasRight(security.RightDepartmentIndependent)
	if filterDepartments && !ctx.HasDepartment(department.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var global []timetable.RoomFeature
	if err := database.DB.Preload("FeatureType").
		Where("session_id = ? AND department_id IS NULL", ctx.SessionID).
		Order("label, id").Find(&global).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load features"})
		return
	}

	var departmental []timetable.RoomFeature
	if err := database.DB.Preload("FeatureType").
		Where("session_id = ? AND department_id = ?", ctx.SessionID, department.ID).
		Order("label, id").Find(&departmental).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load features"})
		return
	}

	response := FeatureListResponse{DeptCode: deptCode}
	for _, f := range global {
		response.GlobalFeatures = append(response.GlobalFeatures, buildFeatureRow(f))
	}
	for _, f := range departmental {
		response.DepartmentFeatures = append(response.DepartmentFeatures, buildFeatureRow(f))
	}

	c.JSON(http.StatusOK, response)
}

func buildFeatureRow(f timetable.RoomFeature) FeatureRowDTO {
	row := FeatureRowDTO{ID: f.ID, Abbreviation: f.Abbreviation, Label: f.Label}
	if f.FeatureType != nil {
		row.TypeLabel = f.FeatureType.Label
	}
	return row
}
