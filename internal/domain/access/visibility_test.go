package access

import (
	"testing"

	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func contextWithRole(role string, departments ...uint) *security.SessionContext {
	authority := &security.Authority{Role: role}
	for _, id := range departments {
		authority.Qualifiers = append(authority.Qualifiers, security.AuthorityQualifier{
			Type:  security.QualifierDepartment,
			RefID: id,
		})
	}
	return &security.SessionContext{
		User:      &users.User{ID: 1, Email: "someone@university.edu"},
		SessionID: 10,
		Authority: authority,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestFilterDepartments(t *testing.T) {
	assert.False(t, FilterDepartments(contextWithRole(security.RoleAdmin)), "department independent actors are not filtered")
	assert.True(t, FilterDepartments(contextWithRole(security.RoleScheduler, 3)))
	assert.False(t, FilterDepartments(nil), "anonymous actors never reach department filtering")
}

func TestCollectionGates(t *testing.T) {
	admin := contextWithRole(security.RoleAdmin)
	scheduler := contextWithRole(security.RoleScheduler, 3)
	viewer := contextWithRole(security.RoleViewer)

	assert.True(t, CanSeeGlobalFeatures(admin))
	assert.False(t, CanSeeGlobalFeatures(scheduler))
	assert.False(t, CanSeeGlobalFeatures(viewer))
	assert.False(t, CanSeeGlobalFeatures(nil))

	assert.True(t, CanSeeDepartmentFeatures(admin))
	assert.True(t, CanSeeDepartmentFeatures(scheduler))
	assert.False(t, CanSeeDepartmentFeatures(viewer))
	assert.False(t, CanSeeDepartmentFeatures(nil))
}

func TestCanSeeGroup(t *testing.T) {
	globalGroup := timetable.RoomGroup{ID: 1, Name: "Classrooms"}
	deptGroup := timetable.RoomGroup{ID: 2, Name: "Comp Labs", DepartmentID: uintPtr(3)}
	otherDeptGroup := timetable.RoomGroup{ID: 3, Name: "Physics Labs", DepartmentID: uintPtr(4)}

	qualified := contextWithRole(security.RoleScheduler, 3)

	tests := []struct {
		name          string
		ctx           *security.SessionContext
		group         timetable.RoomGroup
		filterDepts   bool
		includeGlobal bool
		includeDept   bool
		want          bool
	}{
		{"global group with global right", qualified, globalGroup, true, true, true, true},
		{"global group without global right", qualified, globalGroup, true, false, true, false},
		{"dept group, qualified", qualified, deptGroup, true, false, true, true},
		{"dept group, unqualified dept", qualified, otherDeptGroup, true, false, true, false},
		{"dept group without dept right", qualified, deptGroup, true, true, false, false},
		{"unqualified dept, filtering off", qualified, otherDeptGroup, false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanSeeGroup(tt.ctx, tt.group, tt.filterDepts, tt.includeGlobal, tt.includeDept)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanSeeDepartmentFeature(t *testing.T) {
	qualified := contextWithRole(security.RoleScheduler, 3)

	mine := timetable.RoomFeature{ID: 1, Label: "Projector", DepartmentID: uintPtr(3)}
	other := timetable.RoomFeature{ID: 2, Label: "Fume Hood", DepartmentID: uintPtr(4)}
	orphan := timetable.RoomFeature{ID: 3, Label: "Stray"}

	assert.True(t, CanSeeDepartmentFeature(qualified, mine, true))
	assert.False(t, CanSeeDepartmentFeature(qualified, other, true))
	assert.True(t, CanSeeDepartmentFeature(qualified, other, false), "department independent actors see every department")
	assert.False(t, CanSeeDepartmentFeature(qualified, orphan, true), "a department feature without a department is never shown")
}
