package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Action is what happens to each unused package once it has been found.
type Action string

const (
	// ActionPrint only reports the unused packages.
	ActionPrint Action = "print"
	// ActionColconIgnore creates a COLCON_IGNORE marker in each unused package.
	ActionColconIgnore Action = "colcon-ignore"
	// ActionCatkinIgnore creates a CATKIN_IGNORE marker in each unused package.
	ActionCatkinIgnore Action = "catkin-ignore"
	// ActionAmentIgnore creates an AMENT_IGNORE marker in each unused package.
	ActionAmentIgnore Action = "ament-ignore"
	// ActionRemove recursively deletes each unused package directory.
	ActionRemove Action = "remove"
)

// Marker file names. A directory containing any of them is never scanned.
const (
	ColconIgnoreMarker = "COLCON_IGNORE"
	CatkinIgnoreMarker = "CATKIN_IGNORE"
	AmentIgnoreMarker  = "AMENT_IGNORE"
)

// ManifestFileName is the package descriptor looked for in every directory.
const ManifestFileName = "package.xml"

// IgnoreMarkers returns the marker file names that stop directory traversal.
func IgnoreMarkers() []string {
	return []string{ColconIgnoreMarker, CatkinIgnoreMarker, AmentIgnoreMarker}
}

// Actions returns every supported action.
func Actions() []Action {
	return []Action{ActionPrint, ActionColconIgnore, ActionCatkinIgnore, ActionAmentIgnore, ActionRemove}
}

// ParseAction parses an action name, ignoring case.
func ParseAction(s string) (Action, error) {
	name := Action(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range Actions() {
		if a == name {
			return a, nil
		}
	}
	return "", zerr.With(ErrInvalidAction, "action", s)
}

// Marker returns the marker file the action creates, if any.
func (a Action) Marker() (string, bool) {
	switch a {
	case ActionColconIgnore:
		return ColconIgnoreMarker, true
	case ActionCatkinIgnore:
		return CatkinIgnoreMarker, true
	case ActionAmentIgnore:
		return AmentIgnoreMarker, true
	default:
		return "", false
	}
}

// Destructive reports whether the action changes the file system.
func (a Action) Destructive() bool {
	return a != ActionPrint
}

// Heading returns the report heading placed above the unused packages.
func (a Action) Heading() string {
	switch a {
	case ActionColconIgnore:
		return "Setting up colcon ignore for:"
	case ActionCatkinIgnore:
		return "Setting up catkin ignore for:"
	case ActionAmentIgnore:
		return "Setting up ament ignore for:"
	case ActionRemove:
		return "Removing:"
	default:
		return "Unused:"
	}
}
