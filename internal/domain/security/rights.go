package security

// Right is an atomic capability checked against an actor's active authority.
type Right string

const (
	RightRooms                    Right = "Rooms"
	RightEditRoomDepartments      Right = "EditRoomDepartments"
	RightEditRoomDepartmentsExams Right = "EditRoomDepartmentsExams"
	RightRoomsExportCsv           Right = "RoomsExportCsv"
	RightRoomsExportPdf           Right = "RoomsExportPdf"
	RightAddRoom                  Right = "AddRoom"
	RightAddNonUnivLocation       Right = "AddNonUnivLocation"

	RightInstructionalOfferings Right = "InstructionalOfferings"
	RightClasses                Right = "Classes"
	RightExaminations           Right = "Examinations"
	RightEvents                 Right = "Events"

	RightRoomEditAvailability          Right = "RoomEditAvailability"
	RightRoomEditChangeControl         Right = "RoomEditChangeControl"
	RightRoomEditEventAvailability     Right = "RoomEditEventAvailability"
	RightRoomEditChangeEventProperties Right = "RoomEditChangeEventProperties"
	RightRoomEditChangeExamStatus      Right = "RoomEditChangeExamStatus"
	RightRoomEditChangeExternalId      Right = "RoomEditChangeExternalId"
	RightRoomEditChangePicture         Right = "RoomEditChangePicture"
	RightRoomEditPreference            Right = "RoomEditPreference"
	RightRoomEditFeatures              Right = "RoomEditFeatures"
	RightRoomEditGlobalFeatures        Right = "RoomEditGlobalFeatures"
	RightRoomEditGroups                Right = "RoomEditGroups"
	RightRoomEditGlobalGroups          Right = "RoomEditGlobalGroups"

	// RightDepartmentIndependent exempts the holder from department
	// partitioning: department-owned rows are visible regardless of the
	// authority's department qualifiers.
	RightDepartmentIndependent Right = "DepartmentIndependent"
)
