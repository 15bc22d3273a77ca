package models

// Role defines the actor role encoded in the session token
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// DriveMode defines how a placement drive is conducted
type DriveMode string

const (
	DriveModeOnline  DriveMode = "online"
	DriveModeOffline DriveMode = "offline"
)
