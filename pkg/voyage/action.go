package voyage

import (
	"encoding/json"
	"fmt"
)

// ActionKind is the wire discriminator for an Action's "type" field.
type ActionKind string

const (
	KindMove               ActionKind = "Move"
	KindBake               ActionKind = "Bake"
	KindShoot              ActionKind = "Shoot"
	KindRaiseShields       ActionKind = "RaiseShields"
	KindEvasiveManeuvers   ActionKind = "EvasiveManeuvers"
	KindLookout            ActionKind = "Lookout"
	KindFirstAid           ActionKind = "FirstAid"
	KindRevive             ActionKind = "Revive"
	KindPickUp             ActionKind = "PickUp"
	KindDrop               ActionKind = "Drop"
	KindThrow              ActionKind = "Throw"
	KindExtinguish         ActionKind = "Extinguish"
	KindRepair             ActionKind = "Repair"
	KindInteract           ActionKind = "Interact"
	KindPass               ActionKind = "Pass"
	KindUndo               ActionKind = "Undo"

	KindJoin         ActionKind = "Join"
	KindSetName      ActionKind = "SetName"
	KindSetMapLayout ActionKind = "SetMapLayout"
	KindFullSync     ActionKind = "FullSync"
	KindVoteReady    ActionKind = "VoteReady"
	KindChat         ActionKind = "Chat"
)

// Action is the sum type of everything a player can submit. Concrete
// types below implement it; dispatch happens by type-switch in the
// handler/card registries rather than runtime reflection, matching the
// spec's guidance to avoid dynamic dispatch beyond what Go interfaces
// already cost.
type Action interface {
	Kind() ActionKind
}

// IsMeta reports whether a an action is valid outside TacticalPlanning.
func IsMeta(a Action) bool {
	switch a.Kind() {
	case KindJoin, KindSetName, KindSetMapLayout, KindFullSync, KindVoteReady, KindChat:
		return true
	default:
		return false
	}
}

// --- Game actions ---

type MoveAction struct{ ToRoom RoomID }
type BakeAction struct{}
type ShootAction struct{}
type RaiseShieldsAction struct{}
type EvasiveManeuversAction struct{}
type LookoutAction struct{}
type FirstAidAction struct{ Target PlayerID }
type ReviveAction struct{ Target PlayerID }
type PickUpAction struct{ Item ItemType }
type DropAction struct{ Index int }
type ThrowAction struct {
	Target PlayerID
	Index  int
}
type ExtinguishAction struct{}
type RepairAction struct{}
type InteractAction struct{}
type PassAction struct{}
type UndoAction struct{ ActionID string }

func (MoveAction) Kind() ActionKind             { return KindMove }
func (BakeAction) Kind() ActionKind             { return KindBake }
func (ShootAction) Kind() ActionKind            { return KindShoot }
func (RaiseShieldsAction) Kind() ActionKind     { return KindRaiseShields }
func (EvasiveManeuversAction) Kind() ActionKind { return KindEvasiveManeuvers }
func (LookoutAction) Kind() ActionKind          { return KindLookout }
func (FirstAidAction) Kind() ActionKind         { return KindFirstAid }
func (ReviveAction) Kind() ActionKind           { return KindRevive }
func (PickUpAction) Kind() ActionKind           { return KindPickUp }
func (DropAction) Kind() ActionKind             { return KindDrop }
func (ThrowAction) Kind() ActionKind            { return KindThrow }
func (ExtinguishAction) Kind() ActionKind       { return KindExtinguish }
func (RepairAction) Kind() ActionKind           { return KindRepair }
func (InteractAction) Kind() ActionKind         { return KindInteract }
func (PassAction) Kind() ActionKind             { return KindPass }
func (UndoAction) Kind() ActionKind             { return KindUndo }

// --- Meta actions ---

type JoinAction struct {
	RoomID   string
	PlayerID PlayerID
}
type SetNameAction struct{ Name string }
type SetMapLayoutAction struct{ Layout Layout }
type FullSyncAction struct{ State *GameState }
type VoteReadyAction struct{ Ready bool }
type ChatAction struct{ Message string }

func (JoinAction) Kind() ActionKind         { return KindJoin }
func (SetNameAction) Kind() ActionKind      { return KindSetName }
func (SetMapLayoutAction) Kind() ActionKind { return KindSetMapLayout }
func (FullSyncAction) Kind() ActionKind     { return KindFullSync }
func (VoteReadyAction) Kind() ActionKind    { return KindVoteReady }
func (ChatAction) Kind() ActionKind         { return KindChat }

// envelope is the wire shape: {"type": "...", "payload": {...}}.
type envelope struct {
	Type    ActionKind      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MarshalAction encodes an Action into the §6 envelope form.
func MarshalAction(a Action) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: a.Kind(), Payload: payload})
}

// UnmarshalAction decodes the §6 envelope form into a concrete Action.
// Every concrete Action type uses a value receiver for Kind(), so each
// branch decodes into a local value and returns it directly.
func UnmarshalAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case KindMove:
		var v MoveAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindBake:
		return BakeAction{}, nil
	case KindShoot:
		return ShootAction{}, nil
	case KindRaiseShields:
		return RaiseShieldsAction{}, nil
	case KindEvasiveManeuvers:
		return EvasiveManeuversAction{}, nil
	case KindLookout:
		return LookoutAction{}, nil
	case KindFirstAid:
		var v FirstAidAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindRevive:
		var v ReviveAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindPickUp:
		var v PickUpAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindDrop:
		var v DropAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindThrow:
		var v ThrowAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindExtinguish:
		return ExtinguishAction{}, nil
	case KindRepair:
		return RepairAction{}, nil
	case KindInteract:
		return InteractAction{}, nil
	case KindPass:
		return PassAction{}, nil
	case KindUndo:
		var v UndoAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindJoin:
		var v JoinAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindSetName:
		var v SetNameAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindSetMapLayout:
		var v SetMapLayoutAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindFullSync:
		var v FullSyncAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindVoteReady:
		var v VoteReadyAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindChat:
		var v ChatAction
		if err := decodePayload(env.Payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", env.Type)
	}
}

func decodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, v)
}
