package access

import (
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
)

// Visibility predicates for the room-management configuration. All of them
// are pure: right checks that hold for a whole collection (global features,
// department features, the two group rights, department filtering) are
// evaluated once by the caller and passed in, never re-derived per row.

// FilterDepartments reports whether department partitioning applies to this
// actor. Holders of DepartmentIndependent see across all departments.
func FilterDepartments(ctx *security.SessionContext) bool {
	return ctx.HasUser() && !ctx.HasRight(security.RightDepartmentIndependent)
}

// CanSeeGlobalFeatures gates the global room feature collection.
func CanSeeGlobalFeatures(ctx *security.SessionContext) bool {
	return ctx.HasUser() && ctx.HasRight(security.RightRoomEditGlobalFeatures)
}

// CanSeeDepartmentFeatures gates the department room feature collection.
func CanSeeDepartmentFeatures(ctx *security.SessionContext) bool {
	return ctx.HasUser() && ctx.HasRight(security.RightRoomEditFeatures)
}

// CanSeeGroup decides per-row inclusion of a room group. includeGlobal and
// includeDept are the collection-level group rights (RoomEditGlobalGroups,
// RoomEditGroups); filterDepts is FilterDepartments, all computed once.
func CanSeeGroup(ctx *security.SessionContext, g timetable.RoomGroup, filterDepts, includeGlobal, includeDept bool) bool {
	if g.DepartmentID == nil {
		return includeGlobal
	}
	if !includeDept {
		return false
	}
	if filterDepts && !ctx.HasDepartment(*g.DepartmentID) {
		return false
	}
	return true
}

// CanSeeDepartmentFeature decides per-row inclusion of a department room
// feature, after the collection gate already passed.
func CanSeeDepartmentFeature(ctx *security.SessionContext, f timetable.RoomFeature, filterDepts bool) bool {
	if f.DepartmentID == nil {
		return false
	}
	if filterDepts && !ctx.HasDepartment(*f.DepartmentID) {
		return false
	}
	return true
}
