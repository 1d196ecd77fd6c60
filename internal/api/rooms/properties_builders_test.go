package rooms

import (
	"testing"
	"time"

	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func testContext(role string, departments ...uint) *security.SessionContext {
	authority := &security.Authority{
		Role:      role,
		SessionID: 10,
		Qualifiers: []security.AuthorityQualifier{
			{Type: security.QualifierSession, RefID: 10, Label: "Fall 2026"},
		},
	}
	for _, id := range departments {
		authority.Qualifiers = append(authority.Qualifiers, security.AuthorityQualifier{
			Type:  security.QualifierDepartment,
			RefID: id,
		})
	}
	return &security.SessionContext{
		User:      &users.User{ID: 1, Email: "mgr@university.edu", GridOrientation: users.GridVertical},
		SessionID: 10,
		Authority: authority,
	}
}

// testCatalogs builds a fixture with two departments (3 COMP, 4 PHYS), two
// feature types, one global and two department features, and one global plus
// two department groups.
func testCatalogs() Catalogs {
	return Catalogs{
		RoomTypes: []timetable.RoomType{
			{ID: 1, Reference: "genClassroom", Label: "Classroom", IsRoom: true},
			{ID: 2, Reference: "nonUniversity", Label: "Non-University Location"},
		},
		Buildings: []timetable.Building{
			{ID: 1, SessionID: 10, Abbreviation: "EE", Name: "Electrical Engineering"},
		},
		FeatureTypes: []timetable.FeatureType{
			{ID: 1, Reference: "equipment", Label: "Equipment", ShowInEventManagement: true},
			{ID: 2, Reference: "seating", Label: "Seating"},
		},
		ExamTypes: []timetable.ExamType{
			{ID: 1, Reference: "final", Label: "Final Examinations", Kind: timetable.ExamFinal},
			{ID: 2, Reference: "midterm", Label: "Midterm Examinations", Kind: timetable.ExamMidterm},
		},
		Departments: []timetable.Department{
			{ID: 3, SessionID: 10, DeptCode: "0101", Abbreviation: "COMP", Name: "Computer Science", Label: "0101 - Computer Science"},
			{ID: 4, SessionID: 10, DeptCode: "0102", Abbreviation: "PHYS", Name: "Physics", Label: "0102 - Physics"},
		},
		Groups: []timetable.RoomGroup{
			{ID: 1, SessionID: 10, Abbreviation: "CLASS", Name: "Classrooms"},
			{ID: 2, SessionID: 10, Abbreviation: "CLAB", Name: "Comp Labs", Description: "Computing laboratories", DepartmentID: uintPtr(3)},
			{ID: 3, SessionID: 10, Abbreviation: "PLAB", Name: "Physics Labs", DepartmentID: uintPtr(4)},
		},
		GlobalFeatures: []timetable.RoomFeature{
			{ID: 1, SessionID: 10, Abbreviation: "Audio", Label: "Audio Recording", FeatureTypeID: uintPtr(1)},
			{ID: 2, SessionID: 10, Abbreviation: "Tables", Label: "Tables and Chairs", FeatureTypeID: uintPtr(2)},
		},
		DepartmentFeatures: []timetable.RoomFeature{
			{ID: 3, SessionID: 10, Abbreviation: "HPC", Label: "Compute Cluster", FeatureTypeID: uintPtr(1), DepartmentID: uintPtr(3)},
			{ID: 4, SessionID: 10, Abbreviation: "Laser", Label: "Laser Bench", DepartmentID: uintPtr(4)},
		},
		Preferences: []timetable.PreferenceLevel{
			{ID: 1, PrefProlog: timetable.PrefRequired, PrefName: "Required"},
			{ID: 2, PrefProlog: timetable.PrefNeutral, PrefName: "Neutral"},
			{ID: 3, PrefProlog: timetable.PrefProhibited, PrefName: "Prohibited"},
		},
		FutureSessions: []timetable.Session{
			{ID: 11, Label: "Spring 2027", BeginDate: time.Date(2027, 1, 11, 0, 0, 0, 0, time.UTC), AcademicInitiative: "main"},
			{ID: 12, Label: "Fall 2027", BeginDate: time.Date(2027, 8, 23, 0, 0, 0, 0, time.UTC), AcademicInitiative: "main"},
		},
	}
}

func testProperties() Properties {
	return Properties{
		Ellipsoid:    "WGS-84 (GPS)",
		MapEnabled:   true,
		SharingModes: []string{"Show as used|0|1|86|1020"},
	}
}

func denyAll(uint, security.Right) bool { return false }

func TestCheckBaseline(t *testing.T) {
	assert.NoError(t, CheckBaseline(testContext(security.RoleViewer)))
	assert.ErrorIs(t, CheckBaseline(testContext(security.RoleNoRole)), ErrAuthorization)
	assert.ErrorIs(t, CheckBaseline(nil), ErrAuthorization)

	// no authority for the current session means no baseline right either
	ctx := testContext(security.RoleAdmin)
	ctx.Authority = nil
	assert.ErrorIs(t, CheckBaseline(ctx), ErrAuthorization)
}

func TestBuildRoomPropertiesAdmin(t *testing.T) {
	ctx := testContext(security.RoleAdmin)
	response, err := BuildRoomProperties(ctx, testCatalogs(), testProperties(), denyAll)
	require.NoError(t, err)

	require.NotNil(t, response.AcademicSessionID)
	assert.Equal(t, uint(10), *response.AcademicSessionID)
	assert.Equal(t, "Fall 2026", response.AcademicSessionName)

	assert.True(t, response.CanEditDepartments)
	assert.True(t, response.CanAddRoom)
	assert.True(t, response.CanChangeFeatures)
	assert.True(t, response.CanChangeGroups)

	assert.Len(t, response.RoomTypes, 2)
	assert.Len(t, response.Buildings, 1)
	assert.Len(t, response.FeatureTypes, 2)
	assert.Len(t, response.ExamTypes, 2)
	assert.True(t, response.ExamTypes[0].Final)
	assert.False(t, response.ExamTypes[1].Final)

	// department independent: both departments, all groups, all features
	assert.Len(t, response.Departments, 2)
	assert.Len(t, response.Groups, 3)
	assert.Len(t, response.Features, 4)

	assert.Equal(t, "WGS-84 (GPS)", response.Ellipsoid)
	assert.True(t, response.MapEnabled)
	assert.Equal(t, []string{"Show as used|0|1|86|1020"}, response.SharingModes)

	assert.Len(t, response.Preferences, 3)
	assert.Equal(t, "#660099", response.Preferences[0].Color)
	assert.Equal(t, "#660000", response.Preferences[2].Color)
}

func TestBuildRoomPropertiesTitles(t *testing.T) {
	ctx := testContext(security.RoleAdmin)
	response, err := BuildRoomProperties(ctx, testCatalogs(), testProperties(), denyAll)
	require.NoError(t, err)

	byID := map[uint]GroupDTO{}
	for _, g := range response.Groups {
		byID[g.ID] = g
	}

	// global group: plain name, no department
	assert.Equal(t, "Classrooms", byID[1].Title)
	assert.Nil(t, byID[1].Department)

	// description wins over name, department name appended
	assert.Equal(t, "Computing laboratories (Computer Science)", byID[2].Title)
	// blank description falls back to the name
	assert.Equal(t, "Physics Labs (Physics)", byID[3].Title)

	features := map[uint]FeatureDTO{}
	for _, f := range response.Features {
		features[f.ID] = f
	}
	assert.Equal(t, "Audio Recording", features[1].Title)
	assert.Equal(t, "Compute Cluster (Computer Science)", features[3].Title)
	assert.Equal(t, "Laser Bench (Physics)", features[4].Title)
}

func TestBuildRoomPropertiesCrossReferences(t *testing.T) {
	ctx := testContext(security.RoleAdmin)
	response, err := BuildRoomProperties(ctx, testCatalogs(), testProperties(), denyAll)
	require.NoError(t, err)

	types := map[uint]*FeatureTypeDTO{}
	for _, ft := range response.FeatureTypes {
		types[ft.ID] = ft
	}
	departments := map[uint]*DepartmentDTO{}
	for _, d := range response.Departments {
		departments[d.ID] = d
	}

	for _, f := range response.Features {
		switch f.ID {
		case 1:
			// global features link the entry of the feature type map
			assert.Same(t, types[1], f.Type)
		case 3:
			// department features link the same map entries, not copies
			assert.Same(t, types[1], f.Type)
			assert.Same(t, departments[3], f.Department)
		case 4:
			assert.Nil(t, f.Type)
			assert.Same(t, departments[4], f.Department)
		}
	}

	for _, g := range response.Groups {
		if g.ID == 2 {
			assert.Same(t, departments[3], g.Department)
		}
	}
}

func TestBuildRoomPropertiesDepartmentPartitioning(t *testing.T) {
	// qualified over COMP (3) only, holds department groups/features rights,
	// not DepartmentIndependent and not the global rights
	ctx := testContext(security.RoleScheduler, 3)
	cat := testCatalogs()
	cat.Departments = cat.Departments[:1] // visible departments query returns COMP only

	response, err := BuildRoomProperties(ctx, cat, testProperties(), denyAll)
	require.NoError(t, err)

	require.Len(t, response.Groups, 1)
	assert.Equal(t, uint(2), response.Groups[0].ID, "only the COMP group is visible; global groups need the global groups right")

	require.Len(t, response.Features, 1)
	assert.Equal(t, uint(3), response.Features[0].ID, "global features are gated behind their own right")
	assert.Equal(t, "Compute Cluster (Computer Science)", response.Features[0].Title)
}

func TestBuildRoomPropertiesGlobalFeaturesOnly(t *testing.T) {
	// baseline + global features/groups, nothing department scoped
	ctx := testContext(security.RoleFacilityMgr)
	cat := testCatalogs()
	cat.Departments = nil // not qualified over any department

	response, err := BuildRoomProperties(ctx, cat, testProperties(), denyAll)
	require.NoError(t, err)

	require.Len(t, response.Features, 2)
	for _, f := range response.Features {
		assert.Nil(t, f.Department)
	}
	assert.Same(t, response.FeatureTypes[0], response.Features[0].Type)

	require.Len(t, response.Groups, 1)
	assert.Equal(t, uint(1), response.Groups[0].ID)
}

func TestBuildRoomPropertiesViewer(t *testing.T) {
	ctx := testContext(security.RoleViewer)
	cat := testCatalogs()
	cat.Departments = nil

	response, err := BuildRoomProperties(ctx, cat, testProperties(), denyAll)
	require.NoError(t, err)

	// right-free catalogs are present
	assert.Len(t, response.RoomTypes, 2)
	assert.Len(t, response.FeatureTypes, 2)
	assert.Len(t, response.Preferences, 3)

	// every gated collection is empty
	assert.Empty(t, response.Groups)
	assert.Empty(t, response.Features)
	assert.False(t, response.CanChangeFeatures)
	assert.False(t, response.CanChangeGroups)
	assert.True(t, response.CanExportCsv)
}

func TestBuildRoomPropertiesAnonymous(t *testing.T) {
	cat := testCatalogs()
	cat.Departments = nil
	cat.ExamTypes = nil

	response, err := BuildRoomProperties(nil, cat, testProperties(), denyAll)
	require.NoError(t, err)

	assert.Nil(t, response.AcademicSessionID)
	assert.Len(t, response.RoomTypes, 2)
	assert.Len(t, response.Buildings, 1)
	assert.Len(t, response.FeatureTypes, 2)
	assert.Empty(t, response.Groups)
	assert.Empty(t, response.Features)
	assert.False(t, response.CanAddRoom)
	assert.False(t, response.CanChangeFeatures)
	assert.Empty(t, response.FutureSessions)
}

func TestBuildRoomPropertiesInconsistentReference(t *testing.T) {
	ctx := testContext(security.RoleAdmin)
	cat := testCatalogs()
	// a feature pointing at a department the department map never saw
	cat.DepartmentFeatures = append(cat.DepartmentFeatures, timetable.RoomFeature{
		ID: 99, SessionID: 10, Label: "Stray", DepartmentID: uintPtr(77),
	})

	_, err := BuildRoomProperties(ctx, cat, testProperties(), denyAll)
	assert.ErrorIs(t, err, ErrInconsistentReference)
}

func TestBuildRoomPropertiesIdempotent(t *testing.T) {
	ctx := testContext(security.RoleScheduler, 3)
	cat := testCatalogs()
	cat.Departments = cat.Departments[:1]
	props := testProperties()

	first, err := BuildRoomProperties(ctx, cat, props, denyAll)
	require.NoError(t, err)
	second, err := BuildRoomProperties(ctx, cat, props, denyAll)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildRoomPropertiesGridOrientation(t *testing.T) {
	ctx := testContext(security.RoleViewer)
	ctx.User.GridOrientation = users.GridHorizontal
	cat := testCatalogs()
	cat.Departments = nil

	response, err := BuildRoomProperties(ctx, cat, testProperties(), denyAll)
	require.NoError(t, err)
	assert.True(t, response.Horizontal)
	assert.False(t, response.GridAsText)

	ctx.User.GridOrientation = users.GridText
	response, err = BuildRoomProperties(ctx, cat, testProperties(), denyAll)
	require.NoError(t, err)
	assert.False(t, response.Horizontal)
	assert.True(t, response.GridAsText)
}
