package models

// DisposalAction enumerates the supported packaging disposal actions.
type DisposalAction string

const (
	ActionRecycle    DisposalAction = "Recycle"
	ActionTrash      DisposalAction = "Trash"
	ActionCheckLocal DisposalAction = "Check Local Guidelines"
)

// Icon returns the display icon for the action.
func (a DisposalAction) Icon() string {
	switch a {
	case ActionRecycle:
		return "♻"
	case ActionTrash:
		return "🗑"
	default:
		return "ℹ"
	}
}

// Valid reports whether a is one of the fixed actions.
func (a DisposalAction) Valid() bool {
	switch a {
	case ActionRecycle, ActionTrash, ActionCheckLocal:
		return true
	}
	return false
}
