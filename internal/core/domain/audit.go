package domain

import "time"

// AuthAction identifies the operation an audit event was recorded for.
type AuthAction string

const (
	ActionRegister AuthAction = "register"
	ActionLogin    AuthAction = "login"
	ActionLogout   AuthAction = "logout"
	ActionRefresh  AuthAction = "refresh"
)

// AuthEvent is a single entry in the authentication audit trail.
type AuthEvent struct {
	Action    AuthAction
	Username  string
	Email     string
	Success   bool
	Reason    string // failure reason, empty on success
	Timestamp time.Time
}
