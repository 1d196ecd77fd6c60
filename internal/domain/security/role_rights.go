package security

// Role names as stored on Authority.Role.
const (
	RoleAdmin       = "admin"
	RoleScheduler   = "scheduler"
	RoleEventMgr    = "event-manager"
	RoleExamMgr     = "exam-manager"
	RoleFacilityMgr = "facility-manager"
	RoleViewer      = "viewer"
	RoleNoRole      = "user"
)

var roleRights = map[string][]Right{
	RoleAdmin: {
		RightRooms,
		RightEditRoomDepartments,
		RightEditRoomDepartmentsExams,
		RightRoomsExportCsv,
		RightRoomsExportPdf,
		RightAddRoom,
		RightAddNonUnivLocation,
		RightInstructionalOfferings,
		RightClasses,
		RightExaminations,
		RightEvents,
		RightRoomEditAvailability,
		RightRoomEditChangeControl,
		RightRoomEditEventAvailability,
		RightRoomEditChangeEventProperties,
		RightRoomEditChangeExamStatus,
		RightRoomEditChangeExternalId,
		RightRoomEditChangePicture,
		RightRoomEditPreference,
		RightRoomEditFeatures,
		RightRoomEditGlobalFeatures,
		RightRoomEditGroups,
		RightRoomEditGlobalGroups,
		RightDepartmentIndependent,
	},
	RoleScheduler: {
		RightRooms,
		RightEditRoomDepartments,
		RightRoomsExportCsv,
		RightRoomsExportPdf,
		RightAddRoom,
		RightInstructionalOfferings,
		RightClasses,
		RightRoomEditAvailability,
		RightRoomEditChangeControl,
		RightRoomEditChangePicture,
		RightRoomEditPreference,
		RightRoomEditFeatures,
		RightRoomEditGroups,
	},
	RoleEventMgr: {
		RightRooms,
		RightEvents,
		RightAddNonUnivLocation,
		RightRoomsExportCsv,
		RightRoomEditEventAvailability,
		RightRoomEditChangeEventProperties,
	},
	RoleExamMgr: {
		RightRooms,
		RightExaminations,
		RightEditRoomDepartmentsExams,
		RightRoomsExportPdf,
		RightRoomEditChangeExamStatus,
	},
	RoleFacilityMgr: {
		RightRooms,
		RightRoomsExportCsv,
		RightRoomEditGlobalFeatures,
		RightRoomEditGlobalGroups,
	},
	RoleViewer: {
		RightRooms,
		RightRoomsExportCsv,
		RightRoomsExportPdf,
	},
}

// RightsForRole returns the rights granted by a role name; unknown roles
// grant nothing.
func RightsForRole(role string) []Right {
	return roleRights[role]
}

func roleHasRight(role string, r Right) bool {
	for _, granted := range roleRights[role] {
		if granted == r {
			return true
		}
	}
	return false
}
