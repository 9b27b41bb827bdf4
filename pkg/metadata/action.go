package metadata

import "fmt"

type Action string

const (
	ActionCheckOut Action = "CHECK_OUT"
	ActionCheckIn  Action = "CHECK_IN"
)

func NewAction(value string) (Action, error) {
	action := Action(value)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid action: %s", value)
	}
	return action, nil
}

func (a Action) IsValid() bool {
	switch a {
	case ActionCheckOut, ActionCheckIn:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	return string(a)
}
