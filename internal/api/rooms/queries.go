package rooms

import (
	"errors"

	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"

	"gorm.io/gorm"
)

func fetchRoomTypes(db *gorm.DB) ([]timetable.RoomType, error) {
	var types []timetable.RoomType
	err := db.Order("ord, id").Find(&types).Error
	return types, err
}

func fetchBuildings(db *gorm.DB, sessionID uint) ([]timetable.Building, error) {
	var buildings []timetable.Building
	err := db.Where("session_id = ?", sessionID).Order("abbreviation").Find(&buildings).Error
	return buildings, err
}

func fetchFeatureTypes(db *gorm.DB) ([]timetable.FeatureType, error) {
	var types []timetable.FeatureType
	// natural order, so the response traversal is deterministic
	err := db.Order("label, id").Find(&types).Error
	return types, err
}

func fetchUsedExamTypes(db *gorm.DB, sessionID uint) ([]timetable.ExamType, error) {
	var types []timetable.ExamType
	err := db.
		Joins("JOIN exams ON exams.exam_type_id = exam_types.id AND exams.session_id = ?", sessionID).
		Distinct("exam_types.*").
		Order("exam_types.reference").
		Find(&types).Error
	return types, err
}

// fetchVisibleDepartments returns the departments of the session the actor
// may see: all of them for DepartmentIndependent holders, otherwise only the
// departments the authority is qualified over.
func fetchVisibleDepartments(db *gorm.DB, ctx *security.SessionContext, sessionID uint) ([]timetable.Department, error) {
	var departments []timetable.Department
	if !ctx.HasUser() || ctx.Authority == nil {
		return departments, nil
	}
	query := db.Where("session_id = ?", sessionID).Order("dept_code")
	if ctx.HasRight(security.RightDepartmentIndependent) {
		err := query.Find(&departments).Error
		return departments, err
	}
	var ids []uint
	for _, q := range ctx.Authority.Qualifiers {
		if q.Type == security.QualifierDepartment {
			ids = append(ids, q.RefID)
		}
	}
	if len(ids) == 0 {
		return departments, nil
	}
	err := query.Where("id IN ?", ids).Find(&departments).Error
	return departments, err
}

func fetchRoomGroups(db *gorm.DB, sessionID uint) ([]timetable.RoomGroup, error) {
	var groups []timetable.RoomGroup
	err := db.Where("session_id = ?", sessionID).Order("name, id").Find(&groups).Error
	return groups, err
}

func fetchGlobalFeatures(db *gorm.DB, sessionID uint) ([]timetable.RoomFeature, error) {
	var features []timetable.RoomFeature
	err := db.Where("session_id = ? AND department_id IS NULL", sessionID).Order("label, id").Find(&features).Error
	return features, err
}

func fetchDepartmentFeatures(db *gorm.DB, sessionID uint) ([]timetable.RoomFeature, error) {
	var features []timetable.RoomFeature
	err := db.Where("session_id = ? AND department_id IS NOT NULL", sessionID).Order("label, id").Find(&features).Error
	return features, err
}

func fetchPreferenceLevels(db *gorm.DB) ([]timetable.PreferenceLevel, error) {
	var levels []timetable.PreferenceLevel
	err := db.Order("ord, id").Find(&levels).Error
	return levels, err
}

// fetchFutureSessions returns the sibling sessions strictly after the given
// one within the same academic initiative, ascending by begin date. The
// ordering is load-bearing: consumers expect the nearest future session
// first.
func fetchFutureSessions(db *gorm.DB, sessionID uint) ([]timetable.Session, error) {
	var current timetable.Session
	if err := db.First(&current, sessionID).Error; err != nil {
		return nil, err
	}
	var sessions []timetable.Session
	err := db.
		Where("begin_date > ? AND academic_initiative = ?", current.BeginDate, current.AcademicInitiative).
		Order("begin_date").
		Find(&sessions).Error
	return sessions, err
}

// fetchAuthority loads the authority (with qualifiers) a user holds for a
// session, or nil when they have none there.
func fetchAuthority(db *gorm.DB, userID, sessionID uint) (*security.Authority, error) {
	var authority security.Authority
	err := db.Preload("Qualifiers").
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		First(&authority).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &authority, nil
}
