package timetable

import "time"

// Session is one academic session (e.g. "Fall 2026"). Sessions belonging to
// the same campus share an AcademicInitiative tag.
type Session struct {
	ID                 uint `gorm:"primaryKey"`
	Reference          string
	Label              string
	BeginDate          time.Time `gorm:"column:begin_date"`
	AcademicInitiative string    `gorm:"column:academic_initiative"`
}
