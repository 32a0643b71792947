package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ActionKind tags the variant of an Action.
type ActionKind string

const (
	ActionMoving ActionKind = "Moving"
	ActionIdle   ActionKind = "Idle"
	// ActionUnknown marks an action that could not be interpreted. It is
	// treated like any other non-moving kind.
	ActionUnknown ActionKind = "Unknown"
)

// ErrMalformedSnapshot is returned when a payload is not a snapshot object.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Action describes what a villager is doing. Position is only meaningful
// when Kind is ActionMoving.
type Action struct {
	Kind     ActionKind
	Position Point
}

// Move returns a Moving action at (x, y).
func Move(x, y int) Action {
	return Action{Kind: ActionMoving, Position: Point{X: x, Y: y}}
}

// Moving reports the grid position when the action is Moving.
func (a Action) Moving() (Point, bool) {
	if a.Kind != ActionMoving {
		return Point{}, false
	}
	return a.Position, true
}

type wireAction struct {
	Kind     string          `json:"kind"`
	Position json.RawMessage `json:"position,omitempty"`
}

// MarshalJSON encodes the action as {"kind": ..., "position": [x, y]}.
func (a Action) MarshalJSON() ([]byte, error) {
	w := wireAction{Kind: string(a.Kind)}
	if a.Kind == ActionMoving {
		pos, err := json.Marshal([2]int{a.Position.X, a.Position.Y})
		if err != nil {
			return nil, err
		}
		w.Position = pos
	}
	return json.Marshal(w)
}

// UnmarshalJSON never fails: anything that does not read as an action
// becomes ActionUnknown.
func (a *Action) UnmarshalJSON(data []byte) error {
	*a = parseAction(data)
	return nil
}

func parseAction(data []byte) Action {
	unknown := Action{Kind: ActionUnknown}
	var w wireAction
	if len(data) == 0 || json.Unmarshal(data, &w) != nil {
		return unknown
	}
	switch ActionKind(w.Kind) {
	case "":
		return unknown
	case ActionMoving:
		var pos []int
		if json.Unmarshal(w.Position, &pos) != nil || len(pos) != 2 {
			return unknown
		}
		return Move(pos[0], pos[1])
	default:
		return Action{Kind: ActionKind(w.Kind)}
	}
}

type wireVillager struct {
	Action *Action `json:"action"`
}

// MarshalJSON encodes the villager as {"action": ...}.
func (v Villager) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireVillager{Action: &v.Action})
}

// UnmarshalJSON keeps the villager even when it cannot be read, so that
// snapshot order is preserved; its action is then ActionUnknown.
func (v *Villager) UnmarshalJSON(data []byte) error {
	var w wireVillager
	if json.Unmarshal(data, &w) != nil || w.Action == nil {
		v.Action = Action{Kind: ActionUnknown}
		return nil
	}
	v.Action = *w.Action
	return nil
}

type wireSnapshot struct {
	Villagers []Villager `json:"villagers"`
}

// MarshalJSON encodes the snapshot as {"villagers": [...]}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	villagers := s.Villagers
	if villagers == nil {
		villagers = []Villager{}
	}
	return json.Marshal(wireSnapshot{Villagers: villagers})
}

// DecodeSnapshot parses one snapshot payload. Unreadable villagers are kept
// as ActionUnknown; only a payload that is not a snapshot object fails.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return Snapshot{Villagers: w.Villagers}, nil
}
