package voyage

import "fmt"

// bakeHandler produces a Peppernut in the Kitchen.
type bakeHandler struct{}

func (bakeHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (bakeHandler) validate(state *GameState, pid PlayerID) error {
	return requireRoomSystem(state, pid, SystemKitchen, "Bake")
}

func (h bakeHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	room := state.Map.Room(p.RoomID)
	room.Items = append(room.Items, ItemPeppernut)
	return nil
}

// shootHandler fires a Peppernut at the enemy from Cannons.
type shootHandler struct{}

func (shootHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (shootHandler) validate(state *GameState, pid PlayerID) error {
	if err := requireRoomSystem(state, pid, SystemCannons, "Shoot"); err != nil {
		return err
	}
	p := state.Player(pid)
	if p.ammoCount() == 0 {
		return invalidActionf("Shoot requires a Peppernut")
	}
	return nil
}

func (h shootHandler) execute(state *GameState, pid PlayerID, simulation bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	for i, it := range p.Inventory {
		if it == ItemPeppernut {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			break
		}
	}
	if simulation {
		return nil
	}
	roll := state.rollD6()
	if roll >= hitThreshold(state) && state.Enemy != nil {
		state.Enemy.HP--
	}
	return nil
}

// hitThreshold asks every active situation's get_hit_threshold in
// ascending CardID order; each hook's return value replaces the running
// value, so the last active card's answer wins. No card in the current
// roster overrides the hook's default of 3.
func hitThreshold(state *GameState) int {
	threshold := 3
	for _, c := range activeBehaviorsInOrder(state) {
		threshold = GetBehavior(c.ID).GetHitThreshold(state)
	}
	return threshold
}

// raiseShieldsHandler arms the shields flag from Engine.
type raiseShieldsHandler struct{}

func (raiseShieldsHandler) baseCost(*GameState, PlayerID) int { return 2 }

func (raiseShieldsHandler) validate(state *GameState, pid PlayerID) error {
	if err := requireRoomSystem(state, pid, SystemEngine, "RaiseShields"); err != nil {
		return err
	}
	if state.ShieldsActive {
		return invalidActionf("shields are already raised")
	}
	return nil
}

func (h raiseShieldsHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	state.ShieldsActive = true
	return nil
}

// evasiveManeuversHandler arms the evasion flag from Bridge.
type evasiveManeuversHandler struct{}

func (evasiveManeuversHandler) baseCost(*GameState, PlayerID) int { return 2 }

func (evasiveManeuversHandler) validate(state *GameState, pid PlayerID) error {
	if err := requireRoomSystem(state, pid, SystemBridge, "EvasiveManeuvers"); err != nil {
		return err
	}
	if state.EvasionActive {
		return invalidActionf("evasive maneuvers are already active")
	}
	return nil
}

func (h evasiveManeuversHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	state.EvasionActive = true
	return nil
}

// lookoutHandler reports the telegraphed attack to chat. The core
// holds one shared GameState with no per-player view, so a Hidden
// attack unmasked "for the lookout only" is revealed to the whole
// chat log here rather than to a private channel.
type lookoutHandler struct{}

func (lookoutHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (lookoutHandler) validate(state *GameState, pid PlayerID) error {
	return requireRoomSystem(state, pid, SystemBow, "Lookout")
}

func (h lookoutHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	text := "Lookout report: no attack spotted."
	if state.Enemy != nil && state.Enemy.NextAttack != nil {
		a := state.Enemy.NextAttack
		switch {
		case a.Effect == AttackMiss:
			text = "Lookout report: the enemy will miss this round."
		case a.TargetSystem != nil:
			text = fmt.Sprintf("Lookout report: the enemy is aiming at %s.", a.TargetSystem.String())
		default:
			text = "Lookout report: the enemy's aim is unclear."
		}
	}
	state.ChatLog = append(state.ChatLog, ChatMessage{PlayerID: pid, Text: text})
	return nil
}

// firstAidHandler heals an adjacent crewmate.
type firstAidHandler struct{ target PlayerID }

func (firstAidHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (h firstAidHandler) validate(state *GameState, pid PlayerID) error {
	p := state.Player(pid)
	t := state.Player(h.target)
	if p == nil || t == nil {
		return actionError(ErrPlayerNotFound, "unknown player")
	}
	if t.isFainted() {
		return invalidActionf("FirstAid target is Fainted, use Revive")
	}
	if t.HP >= MaxHP {
		return invalidActionf("FirstAid target is already at full health")
	}
	if t.RoomID != p.RoomID && state.Map.Distance(p.RoomID, t.RoomID) != 1 {
		return invalidActionf("FirstAid target must be in the same or a neighboring room")
	}
	return nil
}

func (h firstAidHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	state.Player(h.target).HP++
	return nil
}

// requireRoomSystem is the recurring "must be standing in the room
// that hosts system X" validation shared by most system handlers.
func requireRoomSystem(state *GameState, pid PlayerID, want SystemType, actionName string) error {
	p := state.Player(pid)
	if p == nil {
		return actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	room := state.Map.Room(p.RoomID)
	if room == nil {
		return actionError(ErrRoomNotFound, "player is in an unknown room")
	}
	wantRoom, ok := state.Map.RoomWithSystem(want)
	if !ok || p.RoomID != wantRoom {
		return invalidActionf("%s requires %s, but you are in %s", actionName, want, room.Name)
	}
	if room.IsBroken {
		return invalidActionf("%s is disabled", want)
	}
	return nil
}
