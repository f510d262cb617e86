// Package schema exports the wire shape of voyage.Action as a JSON
// Schema document, so external clients (the browser UI, the verify
// tool, third-party bots) can validate a submission before it ever
// reaches ApplyAction (§6).
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/sintftl/voyage/pkg/voyage"
)

// Each wrapper mirrors the §6 envelope {"type": "...", "payload": {...}}
// for one concrete action kind. jsonschema reflects these directly;
// nothing here touches the library's internal schema-building types.
type moveEnvelope struct {
	Type    string           `json:"type" jsonschema:"enum=Move"`
	Payload voyage.MoveAction `json:"payload"`
}
type noArgEnvelope struct {
	Type string `json:"type"`
}
type firstAidEnvelope struct {
	Type    string               `json:"type" jsonschema:"enum=FirstAid"`
	Payload voyage.FirstAidAction `json:"payload"`
}
type reviveEnvelope struct {
	Type    string             `json:"type" jsonschema:"enum=Revive"`
	Payload voyage.ReviveAction `json:"payload"`
}
type pickUpEnvelope struct {
	Type    string             `json:"type" jsonschema:"enum=PickUp"`
	Payload voyage.PickUpAction `json:"payload"`
}
type dropEnvelope struct {
	Type    string           `json:"type" jsonschema:"enum=Drop"`
	Payload voyage.DropAction `json:"payload"`
}
type throwEnvelope struct {
	Type    string            `json:"type" jsonschema:"enum=Throw"`
	Payload voyage.ThrowAction `json:"payload"`
}
type undoEnvelope struct {
	Type    string           `json:"type" jsonschema:"enum=Undo"`
	Payload voyage.UndoAction `json:"payload"`
}
type joinEnvelope struct {
	Type    string           `json:"type" jsonschema:"enum=Join"`
	Payload voyage.JoinAction `json:"payload"`
}
type setNameEnvelope struct {
	Type    string             `json:"type" jsonschema:"enum=SetName"`
	Payload voyage.SetNameAction `json:"payload"`
}
type setMapLayoutEnvelope struct {
	Type    string                  `json:"type" jsonschema:"enum=SetMapLayout"`
	Payload voyage.SetMapLayoutAction `json:"payload"`
}
type voteReadyEnvelope struct {
	Type    string               `json:"type" jsonschema:"enum=VoteReady"`
	Payload voyage.VoteReadyAction `json:"payload"`
}
type chatEnvelope struct {
	Type    string           `json:"type" jsonschema:"enum=Chat"`
	Payload voyage.ChatAction `json:"payload"`
}

// noArgKinds lists the action kinds whose payload is an empty struct;
// FullSync is deliberately excluded since its payload embeds a whole
// GameState and is meant for server-to-server sync, not a client
// submission a schema-validating UI would ever construct.
var noArgKinds = []voyage.ActionKind{
	voyage.KindBake, voyage.KindShoot, voyage.KindRaiseShields,
	voyage.KindEvasiveManeuvers, voyage.KindLookout, voyage.KindExtinguish,
	voyage.KindRepair, voyage.KindInteract, voyage.KindPass,
}

// ActionSchema reflects every concrete Action payload type into one
// JSON Schema document: a top-level oneOf over one object schema per
// action kind, each with a literal "type" enum and a "payload" object
// reflected from the corresponding Go struct.
func ActionSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}

	var variants []*jsonschema.Schema
	variants = append(variants,
		r.Reflect(&moveEnvelope{}),
		r.Reflect(&firstAidEnvelope{}),
		r.Reflect(&reviveEnvelope{}),
		r.Reflect(&pickUpEnvelope{}),
		r.Reflect(&dropEnvelope{}),
		r.Reflect(&throwEnvelope{}),
		r.Reflect(&undoEnvelope{}),
		r.Reflect(&joinEnvelope{}),
		r.Reflect(&setNameEnvelope{}),
		r.Reflect(&setMapLayoutEnvelope{}),
		r.Reflect(&voteReadyEnvelope{}),
		r.Reflect(&chatEnvelope{}),
	)
	for _, kind := range noArgKinds {
		s := r.Reflect(&noArgEnvelope{})
		s.Title = string(kind)
		variants = append(variants, s)
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Action",
		Description: "Every action a player may submit to ApplyAction.",
		OneOf:       variants,
	}
}

// MarshalActionSchemaJSON is the convenience entry point cmd/server
// uses to serve GET /schema/action.
func MarshalActionSchemaJSON() ([]byte, error) {
	return json.MarshalIndent(ActionSchema(), "", "  ")
}
