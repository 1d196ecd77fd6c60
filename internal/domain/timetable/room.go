package timetable

// RoomType classifies locations (classroom, computing lab, non-university
// location, ...). IsRoom distinguishes rooms from outside locations.
type RoomType struct {
	ID        uint `gorm:"primaryKey"`
	Reference string
	Label     string
	IsRoom    bool `gorm:"column:is_room"`
	Ord       int
}

type Building struct {
	ID           uint `gorm:"primaryKey"`
	SessionID    uint
	Abbreviation string
	Name         string
	CoordinateX  *float64 `gorm:"column:coordinate_x"`
	CoordinateY  *float64 `gorm:"column:coordinate_y"`
}

type FeatureType struct {
	ID                    uint `gorm:"primaryKey"`
	Reference             string
	Label                 string
	ShowInEventManagement bool `gorm:"column:show_in_event_management"`
}

const (
	ExamFinal   = "final"
	ExamMidterm = "midterm"
)

type ExamType struct {
	ID        uint `gorm:"primaryKey"`
	Reference string
	Label     string
	Kind      string
}

// Exam rows exist only so "used" exam types of a session can be derived;
// examination scheduling itself lives elsewhere.
type Exam struct {
	ID         uint `gorm:"primaryKey"`
	SessionID  uint
	ExamTypeID uint
	Label      string
}

// RoomGroup is a named set of rooms. A group with no department is a global
// group shared by the whole session.
type RoomGroup struct {
	ID           uint `gorm:"primaryKey"`
	SessionID    uint
	Abbreviation string
	Name         string
	Description  string
	DepartmentID *uint
	Department   *Department
}

// RoomFeature describes an amenity of a room. A feature with no department
// is a global feature; a department feature belongs to exactly one
// department and is never stored without one.
type RoomFeature struct {
	ID            uint `gorm:"primaryKey"`
	SessionID     uint
	Abbreviation  string
	Label         string
	FeatureTypeID *uint
	FeatureType   *FeatureType
	DepartmentID  *uint
	Department    *Department
}
