package workflow

// Role names a group of users allowed to act on a stage. Roles are advisory:
// the engine records them for callers, it never enforces them.
type Role string

const (
	Admin          Role = "Admin"
	Dispatcher     Role = "Dispatcher"
	FleetManager   Role = "Fleet Manager"
	Driver         Role = "Driver"
	OperationsTeam Role = "Operations Team"
)
