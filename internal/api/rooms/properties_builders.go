package rooms

import (
	"errors"
	"fmt"

	"timetable-app/internal/domain/access"
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"
)

var (
	// ErrAuthorization is returned when the actor lacks the baseline Rooms
	// right; nothing is assembled in that case.
	ErrAuthorization = errors.New("access denied")

	// ErrInconsistentReference is returned when a group or feature points
	// at a department that never made it into the department map. That
	// means the catalogs and the visibility query disagree; dropping the
	// row silently would hide the fault.
	ErrInconsistentReference = errors.New("inconsistent department reference")
)

// CheckBaseline is the step-0 precondition of the whole request.
func CheckBaseline(ctx *security.SessionContext) error {
	if !ctx.HasRight(security.RightRooms) {
		return ErrAuthorization
	}
	return nil
}

// Catalogs carries the pre-fetched rows the assembler works from.
// Departments is already scoped to "departments visible to this actor";
// FutureSessions is already restricted to later siblings of the current
// session in the same academic initiative, ascending by begin date.
type Catalogs struct {
	RoomTypes          []timetable.RoomType
	Buildings          []timetable.Building
	FeatureTypes       []timetable.FeatureType
	ExamTypes          []timetable.ExamType
	Departments        []timetable.Department
	Groups             []timetable.RoomGroup
	GlobalFeatures     []timetable.RoomFeature
	DepartmentFeatures []timetable.RoomFeature
	Preferences        []timetable.PreferenceLevel
	FutureSessions     []timetable.Session
}

// Properties are the configuration pass-throughs of the response.
type Properties struct {
	Ellipsoid    string
	MapEnabled   bool
	SharingModes []string
}

// RightEvaluator checks a right in a derived context re-bound to another
// academic session. Used only by the future-session scan.
type RightEvaluator func(sessionID uint, r security.Right) bool

// BuildRoomProperties assembles the room-management configuration snapshot.
// Construction order matters: the department map must exist before groups
// and department features attach department references into it, and the
// feature type map before features link their types.
func BuildRoomProperties(ctx *security.SessionContext, cat Catalogs, props Properties, eval RightEvaluator) (*RoomPropertiesResponse, error) {
	response := &RoomPropertiesResponse{}

	if ctx.HasUser() {
		sessionID := ctx.SessionID
		response.AcademicSessionID = &sessionID
		response.AcademicSessionName = ctx.Authority.SessionLabel()
	}

	response.CanEditDepartments = ctx.HasRight(security.RightEditRoomDepartments)
	response.CanExportCsv = ctx.HasRight(security.RightRoomsExportCsv)
	response.CanExportPdf = ctx.HasRight(security.RightRoomsExportPdf)
	response.CanEditRoomExams = ctx.HasRight(security.RightEditRoomDepartmentsExams)
	response.CanAddRoom = ctx.HasRight(security.RightAddRoom)
	response.CanAddNonUniversity = ctx.HasRight(security.RightAddNonUnivLocation)

	response.CanSeeCourses = ctx.HasRight(security.RightInstructionalOfferings) || ctx.HasRight(security.RightClasses)
	response.CanSeeExams = ctx.HasRight(security.RightExaminations)
	response.CanSeeEvents = ctx.HasRight(security.RightEvents)

	if ctx.HasUser() {
		response.CanChangeAvailability = ctx.HasRight(security.RightRoomEditAvailability)
		response.CanChangeControl = ctx.HasRight(security.RightRoomEditChangeControl)
		response.CanChangeEventAvailability = ctx.HasRight(security.RightRoomEditEventAvailability)
		response.CanChangeEventProperties = ctx.HasRight(security.RightRoomEditChangeEventProperties)
		response.CanChangeExamStatus = ctx.HasRight(security.RightRoomEditChangeExamStatus)
		response.CanChangeExternalId = ctx.HasRight(security.RightRoomEditChangeExternalId)
		response.CanChangeFeatures = ctx.HasRight(security.RightRoomEditFeatures) || ctx.HasRight(security.RightRoomEditGlobalFeatures)
		response.CanChangeGroups = ctx.HasRight(security.RightRoomEditGroups) || ctx.HasRight(security.RightRoomEditGlobalGroups)
		response.CanChangePicture = ctx.HasRight(security.RightRoomEditChangePicture)
		response.CanChangePreferences = ctx.HasRight(security.RightRoomEditPreference)
	}

	for _, t := range cat.RoomTypes {
		response.RoomTypes = append(response.RoomTypes, RoomTypeDTO{ID: t.ID, Label: t.Label, IsRoom: t.IsRoom})
	}

	for _, b := range cat.Buildings {
		response.Buildings = append(response.Buildings, BuildingDTO{
			ID:           b.ID,
			Abbreviation: b.Abbreviation,
			Name:         b.Name,
			X:            b.CoordinateX,
			Y:            b.CoordinateY,
		})
	}

	featureTypes := make(map[uint]*FeatureTypeDTO)
	for _, t := range cat.FeatureTypes {
		ft := &FeatureTypeDTO{ID: t.ID, Reference: t.Reference, Label: t.Label, ShowInEvents: t.ShowInEventManagement}
		featureTypes[t.ID] = ft
		response.FeatureTypes = append(response.FeatureTypes, ft)
	}

	if ctx.HasUser() {
		for _, t := range cat.ExamTypes {
			response.ExamTypes = append(response.ExamTypes, ExamTypeDTO{
				ID:        t.ID,
				Reference: t.Reference,
				Label:     t.Label,
				Final:     t.Kind == timetable.ExamFinal,
			})
		}
	}

	// The department map must be complete before groups and features start
	// attaching references into it.
	departments := make(map[uint]*DepartmentDTO)
	for _, d := range cat.Departments {
		department := &DepartmentDTO{
			ID:              d.ID,
			DeptCode:        d.DeptCode,
			Abbreviation:    d.Abbreviation,
			Label:           d.Name,
			External:        d.ExternalManager,
			Event:           d.AllowEvents,
			ExtAbbreviation: d.ExtManagerAbbv,
			ExtLabel:        d.ExtManagerLabel,
			Title:           d.Label,
		}
		departments[d.ID] = department
		response.Departments = append(response.Departments, department)
	}

	if ctx.HasUser() {
		response.Horizontal = ctx.User.GridOrientation == users.GridHorizontal
		response.GridAsText = ctx.User.GridOrientation == users.GridText
	}

	response.SharingModes = append(response.SharingModes, props.SharingModes...)

	// Collection-level gates, evaluated once.
	filterDepartments := access.FilterDepartments(ctx)
	includeGlobalGroups := ctx.HasUser() && ctx.HasRight(security.RightRoomEditGlobalGroups)
	includeDeptGroups := ctx.HasUser() && ctx.HasRight(security.RightRoomEditGroups)

	for _, g := range cat.Groups {
		if !access.CanSeeGroup(ctx, g, filterDepartments, includeGlobalGroups, includeDeptGroups) {
			continue
		}
		group := GroupDTO{ID: g.ID, Abbreviation: g.Abbreviation, Name: g.Name}
		title := g.Description
		if title == "" {
			title = g.Name
		}
		if g.DepartmentID != nil {
			department, ok := departments[*g.DepartmentID]
			if !ok {
				return nil, fmt.Errorf("group %d: %w", g.ID, ErrInconsistentReference)
			}
			group.Department = department
			group.Title = title + " (" + department.Label + ")"
		} else {
			group.Title = title
		}
		response.Groups = append(response.Groups, group)
	}

	if access.CanSeeGlobalFeatures(ctx) {
		for _, f := range cat.GlobalFeatures {
			feature := FeatureDTO{ID: f.ID, Abbreviation: f.Abbreviation, Label: f.Label, Title: f.Label}
			if f.FeatureTypeID != nil {
				feature.Type = featureTypes[*f.FeatureTypeID]
			}
			response.Features = append(response.Features, feature)
		}
	}

	if access.CanSeeDepartmentFeatures(ctx) {
		for _, f := range cat.DepartmentFeatures {
			if !access.CanSeeDepartmentFeature(ctx, f, filterDepartments) {
				continue
			}
			feature := FeatureDTO{ID: f.ID, Abbreviation: f.Abbreviation, Label: f.Label}
			if f.FeatureTypeID != nil {
				feature.Type = featureTypes[*f.FeatureTypeID]
			}
			department, ok := departments[*f.DepartmentID]
			if !ok {
				return nil, fmt.Errorf("feature %d: %w", f.ID, ErrInconsistentReference)
			}
			feature.Department = department
			feature.Title = f.Label + " (" + department.Label + ")"
			response.Features = append(response.Features, feature)
		}
	}

	for _, pref := range cat.Preferences {
		response.Preferences = append(response.Preferences, PreferenceDTO{
			ID:       pref.ID,
			Color:    timetable.Prolog2Color(pref.PrefProlog),
			Prolog:   pref.PrefProlog,
			Name:     pref.PrefName,
			Editable: true,
		})
	}

	response.Ellipsoid = props.Ellipsoid
	response.MapEnabled = props.MapEnabled

	if response.AcademicSessionID != nil {
		response.FutureSessions = ScanFutureSessions(cat.FutureSessions, eval)
	}

	return response, nil
}
