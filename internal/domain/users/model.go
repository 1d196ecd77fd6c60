package users

import "time"

// Grid orientation display preference for the room availability grids.
const (
	GridHorizontal = "horizontal"
	GridVertical   = "vertical"
	GridText       = "text"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	SSOSub       *string `gorm:"column:sso_sub;uniqueIndex:idx_users_sso_sub"`
	Role         string
	IsVerified   bool

	// Currently selected academic session; nil until the user picks one
	// (or is given an authority).
	CurrentSessionID *uint `gorm:"column:current_session_id"`

	// Last department the user worked with, remembered across requests.
	LastDepartmentID *uint `gorm:"column:last_department_id"`

	GridOrientation string `gorm:"column:grid_orientation;default:'vertical'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
