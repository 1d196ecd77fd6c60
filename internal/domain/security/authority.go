package security

// Authority is one role binding of a user for one academic session. Rights
// come from the role; qualifiers scope the binding to concrete departments
// (and carry the session label the binding was made for).
type Authority struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint
	SessionID uint
	Role      string
	Label     string

	Qualifiers []AuthorityQualifier `gorm:"foreignKey:AuthorityID"`
}

const (
	QualifierDepartment = "Department"
	QualifierSession    = "Session"
)

type AuthorityQualifier struct {
	ID          uint `gorm:"primaryKey"`
	AuthorityID uint
	Type        string
	RefID       uint `gorm:"column:ref_id"`
	Label       string
}

func (a *Authority) HasRight(r Right) bool {
	if a == nil {
		return false
	}
	return roleHasRight(a.Role, r)
}

// HasDepartment reports whether this authority is qualified over the given
// department. It does NOT consider the DepartmentIndependent right; callers
// that honor the exemption check the right separately.
func (a *Authority) HasDepartment(departmentID uint) bool {
	if a == nil {
		return false
	}
	for _, q := range a.Qualifiers {
		if q.Type == QualifierDepartment && q.RefID == departmentID {
			return true
		}
	}
	return false
}

// SessionLabel returns the label of the session qualifier this authority
// was bound for, or "" when absent.
func (a *Authority) SessionLabel() string {
	if a == nil {
		return ""
	}
	for _, q := range a.Qualifiers {
		if q.Type == QualifierSession {
			return q.Label
		}
	}
	return ""
}
