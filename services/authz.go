package services

// Actor is the verified identity a mutating call runs under. Identity
// issuance and verification live outside this core; we trust the claims.
type Actor struct {
	ID   string
	Role string
}

type Action string

const (
	ActionTransitionStatus  Action = "transition_status"
	ActionAssign            Action = "assign"
	ActionUnassign          Action = "unassign"
	ActionReject            Action = "reject"
	ActionPurge             Action = "purge"
	ActionManageSettings    Action = "manage_settings"
	ActionSubmitRemediation Action = "submit_remediation"
	ActionTrack             Action = "track"
)

var rolePermissions = map[string]map[Action]bool{
	"admin": {
		ActionTransitionStatus: true,
		ActionAssign:           true,
		ActionUnassign:         true,
		ActionReject:           true,
		ActionPurge:            true,
		ActionManageSettings:   true,
	},
	"superadmin": {
		ActionTransitionStatus: true,
		ActionAssign:           true,
		ActionUnassign:         true,
		ActionReject:           true,
		ActionPurge:            true,
		ActionManageSettings:   true,
	},
	"user": {
		ActionSubmitRemediation: true,
		ActionTrack:             true,
	},
}

// Can is the single capability check every state-machine and scheduler entry
// point consults. Role checks never happen ad hoc per endpoint.
func Can(actor Actor, action Action) bool {
	perms, ok := rolePermissions[actor.Role]
	if !ok {
		return false
	}
	return perms[action]
}
