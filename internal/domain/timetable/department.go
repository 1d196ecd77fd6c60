package timetable

type Department struct {
	ID              uint `gorm:"primaryKey"`
	SessionID       uint
	DeptCode        string `gorm:"column:dept_code"`
	Abbreviation    string
	Name            string
	Label           string
	ExternalManager bool `gorm:"column:external_manager"`
	ExtManagerAbbv  string
	ExtManagerLabel string
	AllowEvents     bool `gorm:"column:allow_events"`
}
