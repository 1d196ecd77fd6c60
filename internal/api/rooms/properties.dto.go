package rooms

// RoomPropertiesResponse is the consolidated room-management configuration
// for the current actor and their selected academic session. It is built
// fresh per request and never mutated after assembly.
type RoomPropertiesResponse struct {
	AcademicSessionID   *uint  `json:"academic_session_id,omitempty"`
	AcademicSessionName string `json:"academic_session_name,omitempty"`

	CanEditDepartments  bool `json:"can_edit_departments"`
	CanExportCsv        bool `json:"can_export_csv"`
	CanExportPdf        bool `json:"can_export_pdf"`
	CanEditRoomExams    bool `json:"can_edit_room_exams"`
	CanAddRoom          bool `json:"can_add_room"`
	CanAddNonUniversity bool `json:"can_add_non_university"`

	CanSeeCourses bool `json:"can_see_courses"`
	CanSeeExams   bool `json:"can_see_exams"`
	CanSeeEvents  bool `json:"can_see_events"`

	CanChangeAvailability      bool `json:"can_change_availability"`
	CanChangeControl           bool `json:"can_change_control"`
	CanChangeEventAvailability bool `json:"can_change_event_availability"`
	CanChangeEventProperties   bool `json:"can_change_event_properties"`
	CanChangeExamStatus        bool `json:"can_change_exam_status"`
	CanChangeExternalId        bool `json:"can_change_external_id"`
	CanChangeFeatures          bool `json:"can_change_features"`
	CanChangeGroups            bool `json:"can_change_groups"`
	CanChangePicture           bool `json:"can_change_picture"`
	CanChangePreferences       bool `json:"can_change_preferences"`

	RoomTypes    []RoomTypeDTO     `json:"room_types"`
	Buildings    []BuildingDTO     `json:"buildings"`
	FeatureTypes []*FeatureTypeDTO `json:"feature_types"`
	ExamTypes    []ExamTypeDTO     `json:"exam_types"`
	Departments  []*DepartmentDTO  `json:"departments"`
	Groups       []GroupDTO        `json:"groups"`
	Features     []FeatureDTO      `json:"features"`
	Preferences  []PreferenceDTO   `json:"preferences"`

	SharingModes []string `json:"sharing_modes"`
	Ellipsoid    string   `json:"ellipsoid"`
	MapEnabled   bool     `json:"map_enabled"`

	Horizontal bool `json:"horizontal"`
	GridAsText bool `json:"grid_as_text"`

	FutureSessions []FutureSessionDTO `json:"future_sessions"`
}

type RoomTypeDTO struct {
	ID     uint   `json:"id"`
	Label  string `json:"label"`
	IsRoom bool   `json:"is_room"`
}

type BuildingDTO struct {
	ID           uint     `json:"id"`
	Abbreviation string   `json:"abbreviation"`
	Name         string   `json:"name"`
	X            *float64 `json:"x,omitempty"`
	Y            *float64 `json:"y,omitempty"`
}

type FeatureTypeDTO struct {
	ID           uint   `json:"id"`
	Reference    string `json:"reference"`
	Label        string `json:"label"`
	ShowInEvents bool   `json:"show_in_events"`
}

type ExamTypeDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Label     string `json:"label"`
	Final     bool   `json:"final"`
}

type DepartmentDTO struct {
	ID              uint   `json:"id"`
	DeptCode        string `json:"dept_code"`
	Abbreviation    string `json:"abbreviation"`
	Label           string `json:"label"`
	External        bool   `json:"external"`
	Event           bool   `json:"event"`
	ExtAbbreviation string `json:"ext_abbreviation,omitempty"`
	ExtLabel        string `json:"ext_label,omitempty"`
	Title           string `json:"title"`
}

type GroupDTO struct {
	ID           uint           `json:"id"`
	Abbreviation string         `json:"abbreviation"`
	Name         string         `json:"name"`
	Title        string         `json:"title"`
	Department   *DepartmentDTO `json:"department,omitempty"`
}

type FeatureDTO struct {
	ID           uint            `json:"id"`
	Abbreviation string          `json:"abbreviation"`
	Label        string          `json:"label"`
	Title        string          `json:"title"`
	Type         *FeatureTypeDTO `json:"type,omitempty"`
	Department   *DepartmentDTO  `json:"department,omitempty"`
}

type PreferenceDTO struct {
	ID       uint   `json:"id"`
	Color    string `json:"color"`
	Prolog   string `json:"prolog"`
	Name     string `json:"name"`
	Editable bool   `json:"editable"`
}

type FutureSessionDTO struct {
	ID                  uint   `json:"id"`
	Label               string `json:"label"`
	CanAddRoom          bool   `json:"can_add_room"`
	CanAddNonUniversity bool   `json:"can_add_non_university"`
}
