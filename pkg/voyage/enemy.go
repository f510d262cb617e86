package voyage

// telegraphSystems is the 2d6 table (rolls 2..10 map one-to-one to a
// system); 11 and 12 are a Miss. Ascending roll order matches the
// original source's SystemType::from_u32 table.
var telegraphSystems = []SystemType{
	SystemBow, SystemDormitory, SystemCargo, SystemEngine, SystemKitchen,
	SystemCannons, SystemBridge, SystemSickbay, SystemStorage,
}

// systemForRoll maps a 2d6 total to a target system, or reports a miss.
func systemForRoll(roll int) (SystemType, bool) {
	if roll < 2 || roll > 10 {
		return 0, false
	}
	return telegraphSystems[roll-2], true
}

// generateTelegraph rolls the enemy's next attack (EnemyTelegraph
// phase). A roll of 11 or 12 is a Miss with no target.
func generateTelegraph(state *GameState) *EnemyAttack {
	roll := state.roll2D6()
	sysType, hit := systemForRoll(roll)
	if !hit {
		return &EnemyAttack{Effect: AttackMiss}
	}
	room, ok := state.Map.RoomWithSystem(sysType)
	attack := &EnemyAttack{TargetSystem: &sysType}
	if ok {
		attack.TargetRoom = &room
	}
	if state.rollIntn(2) == 0 {
		attack.Effect = AttackFireball
	} else {
		attack.Effect = AttackLeak
	}
	return attack
}

// applyTelegraphModifiers runs every active situation's ModifyTelegraph
// hook in ascending CardID order.
func applyTelegraphModifiers(state *GameState, attack *EnemyAttack) {
	for _, c := range activeBehaviorsInOrder(state) {
		GetBehavior(c.ID).ModifyTelegraph(state, attack)
	}
}

// applyTelegraphResolution runs every active situation's ResolveTelegraph
// hook, letting e.g. Fog Bank reveal a re-rolled attack.
func applyTelegraphResolution(state *GameState, attack *EnemyAttack) {
	for _, c := range activeBehaviorsInOrder(state) {
		GetBehavior(c.ID).ResolveTelegraph(state, attack)
	}
}

func hazardModifierSum(state *GameState) int {
	total := 0
	for _, c := range activeBehaviorsInOrder(state) {
		total += GetBehavior(c.ID).GetHazardModifier(state)
	}
	return total
}

func enemyAttackCount(state *GameState) int {
	count := 1
	for _, c := range activeBehaviorsInOrder(state) {
		if n := GetBehavior(c.ID).GetEnemyAttackCount(state); n > count {
			count = n
		}
	}
	return count
}

// resolveEnemyAttack applies state.Enemy.NextAttack, then any extra
// attack rolls from get_enemy_attack_count, per §4.5.
func resolveEnemyAttack(state *GameState) {
	attack := state.Enemy.NextAttack
	if attack == nil {
		return
	}
	resolveOneAttack(state, attack)

	extra := enemyAttackCount(state) - 1
	for i := 0; i < extra; i++ {
		roll := state.roll2D6()
		sysType, hit := systemForRoll(roll)
		if !hit {
			continue
		}
		room, ok := state.Map.RoomWithSystem(sysType)
		if !ok {
			continue
		}
		effect := AttackFireball
		if state.rollIntn(2) == 1 {
			effect = AttackLeak
		}
		resolveOneAttack(state, &EnemyAttack{TargetRoom: &room, TargetSystem: &sysType, Effect: effect})
	}
	state.Enemy.NextAttack = nil
}

func resolveOneAttack(state *GameState, attack *EnemyAttack) {
	if state.ShieldsActive {
		state.ShieldsActive = false
		return
	}
	if state.EvasionActive {
		state.EvasionActive = false
		if state.rollD6() < EvasionBeats {
			return
		}
	}
	switch attack.Effect {
	case AttackFireball:
		state.HullIntegrity = clampHull(state.HullIntegrity - 1 - hazardModifierSum(state))
		if attack.TargetRoom != nil {
			addHazard(state, *attack.TargetRoom, HazardFire)
		}
	case AttackLeak:
		state.HullIntegrity = clampHull(state.HullIntegrity - 1 - hazardModifierSum(state))
		if attack.TargetRoom != nil {
			addHazard(state, *attack.TargetRoom, HazardWater)
		}
	case AttackMiss, AttackHidden:
		// No hull damage, no hazard.
	}
}

func clampHull(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxHull {
		return MaxHull
	}
	return v
}

func addHazard(state *GameState, roomID RoomID, h HazardType) {
	room := state.Map.Room(roomID)
	if room == nil {
		return
	}
	room.Hazards = append(room.Hazards, h)
}

// checkBossProgression handles a dead boss: advance the ladder, award
// Victory at the top, otherwise spawn the next boss and start a rest round.
func checkBossProgression(state *GameState) {
	if state.Enemy == nil || state.Enemy.HP > 0 {
		return
	}
	state.Enemy.State = EnemyDefeated
	state.BossLevel++
	if state.BossLevel >= MaxBossLevel {
		state.Phase = PhaseVictory
		return
	}
	state.Enemy = newEnemy(state.BossLevel)
	state.IsResting = true
}
