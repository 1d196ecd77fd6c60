package rooms

import (
	"errors"
	"net/http"

	"timetable-app/config"
	"timetable-app/database"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/users"
	"timetable-app/internal/infra/distance"

	"github.com/gin-gonic/gin"
)

// loadSessionContext resolves the authenticated user and the authority for
// their currently selected academic session. Writes the error response
// itself and returns false when the actor cannot be resolved.
func loadSessionContext(c *gin.Context) (*security.SessionContext, bool) {
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

	ctx := &security.SessionContext{User: &user}
	if user.CurrentSessionID != nil {
		ctx.SessionID = *user.CurrentSessionID
		authority, err := fetchAuthority(database.DB, user.ID, ctx.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load authority"})
			return nil, false
		}
		ctx.Authority = authority
	}
	return ctx, true
}

// GetRoomProperties serves the consolidated room-management configuration
// for the current actor. The baseline Rooms check runs before any catalog
// is touched; a failed check yields 403 and no partial data.
func GetRoomProperties(c *gin.Context) {
	ctx, ok := loadSessionContext(c)
	if !ok {
		return
	}

	if err := CheckBaseline(ctx); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied (Rooms)"})
		return
	}

	db := database.DB
	sessionID := ctx.SessionID

	var (
		cat Catalogs
		err error
	)
	if cat.RoomTypes, err = fetchRoomTypes(db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room types"})
		return
	}
	if cat.Buildings, err = fetchBuildings(db, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load buildings"})
		return
	}
	if cat.FeatureTypes, err = fetchFeatureTypes(db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feature types"})
		return
	}
	if cat.ExamTypes, err = fetchUsedExamTypes(db, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exam types"})
		return
	}
	if cat.Departments, err = fetchVisibleDepartments(db, ctx, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load departments"})
		return
	}
	if cat.Groups, err = fetchRoomGroups(db, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room groups"})
		return
	}
	if cat.GlobalFeatures, err = fetchGlobalFeatures(db, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room features"})
		return
	}
	if cat.DepartmentFeatures, err = fetchDepartmentFeatures(db, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room features"})
		return
	}
	if cat.Preferences, err = fetchPreferenceLevels(db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preference levels"})
		return
	}
	if cat.FutureSessions, err = fetchFutureSessions(db, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sessions"})
		return
	}

	props := Properties{
		Ellipsoid:    distance.ByReference(config.DISTANCE_ELLIPSOID).Name,
		MapEnabled:   config.ROOM_USE_MAP,
		SharingModes: config.RoomSharingModes(),
	}

	eval := func(futureSessionID uint, r security.Right) bool {
		authority, err := fetchAuthority(db, ctx.User.ID, futureSessionID)
		if err != nil {
			return false
		}
		derived := ctx.WithSession(futureSessionID, authority)
		return derived.HasRight(r)
	}

	response, err := BuildRoomProperties(ctx, cat, props, eval)
	if err != nil {
		if errors.Is(err, ErrAuthorization) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied (Rooms)"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
