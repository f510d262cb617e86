package voyage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// validateGameAction runs every active situation's ValidateAction hook
// (ascending CardID order) and then the action's own handler.validate,
// against the given (usually projected) state.
func validateGameAction(state *GameState, pid PlayerID, action Action) error {
	for _, c := range activeBehaviorsInOrder(state) {
		if err := GetBehavior(c.ID).ValidateAction(state, pid, action); err != nil {
			return err
		}
	}
	return getHandler(action).validate(state, pid)
}

// runCardCheckResolutionHooks runs check_resolution, only meaningful
// during a non-simulation execute (§4.4).
func runCardCheckResolutionHooks(state *GameState, pid PlayerID, action Action) error {
	for _, c := range activeBehaviorsInOrder(state) {
		if err := GetBehavior(c.ID).CheckResolution(state, pid, action); err != nil {
			return err
		}
	}
	return nil
}

// projectState returns a clone of state with its proposal queue
// replayed in simulation mode, the "projected state" §4.2 validates
// new proposals against.
func projectState(state *GameState) (*GameState, error) {
	proj := state.Clone()
	if err := replayQueue(proj, true); err != nil {
		return nil, err
	}
	return proj, nil
}

// replayQueue drains state.ProposalQueue in insertion order, applying
// each entry's handler.execute plus the folded AP cost. simulation
// controls whether nondeterministic branches (RNG rolls) actually run.
func replayQueue(state *GameState, simulation bool) error {
	queue := state.ProposalQueue
	state.ProposalQueue = nil
	for _, pa := range queue {
		if err := applyQueuedAction(state, pa, simulation); err != nil {
			return err
		}
	}
	state.ProposalQueue = queue
	return nil
}

// applyQueuedAction executes one proposal and deducts its folded AP
// cost from the acting player.
func applyQueuedAction(state *GameState, pa ProposedAction, simulation bool) error {
	cost := finalActionCost(state, pa.PlayerID, pa.Action)
	if err := getHandler(pa.Action).execute(state, pa.PlayerID, simulation); err != nil {
		return err
	}
	if !simulation {
		if err := runCardCheckResolutionHooks(state, pa.PlayerID, pa.Action); err != nil {
			return err
		}
	}
	if p := state.Player(pa.PlayerID); p != nil {
		p.AP -= cost
		if p.AP < 0 {
			p.AP = 0
		}
	}
	return nil
}

// enqueueAction validates a Game action against the projected state
// and, if legal, appends it to the real committed queue with a
// deterministic ID. Nothing about the real committed players changes
// here — AP is only actually deducted when Execution later drains the
// queue for real (§4.2).
func enqueueAction(state *GameState, pid PlayerID, action Action) (*GameState, error) {
	proj, err := projectState(state)
	if err != nil {
		return nil, err
	}
	if err := validateGameAction(proj, pid, action); err != nil {
		return nil, err
	}
	p := proj.Player(pid)
	if p == nil {
		return nil, actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	cost := finalActionCost(proj, pid, action)
	if p.AP < cost {
		return nil, invalidActionf("not enough AP: need %d, have %d", cost, p.AP)
	}

	id := computeActionID(state.RngSeed, pid, action, len(state.ProposalQueue))
	next := state.Clone()
	next.ProposalQueue = append(next.ProposalQueue, ProposedAction{ID: id, PlayerID: pid, Action: action})
	return next, nil
}

// computeActionID is the §4.2 deterministic action ID: a SHA-256
// digest over (rng_seed, player_id, action-canonical-form,
// queue_length_before_insert). Standard-library justified: the spec
// only needs a stable, collision-irrelevant content digest, nothing
// beyond what crypto/sha256 already gives for this.
func computeActionID(seed uint64, pid PlayerID, action Action, queueLen int) string {
	canonical, err := MarshalAction(action)
	if err != nil {
		canonical = []byte(fmt.Sprintf("%v", action))
	}
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%d|", seed, pid, queueLen)
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil))
}

// undoAction removes the matching queued proposal, refunds its AP
// (implicit: AP is never deducted from the real committed player
// until Execution drains the queue, so removing the proposal is
// itself the refund) and rebuilds the queue by replaying the
// remainder from scratch, cascading the removal to any now-invalid
// dependent actions (§4.2, §9 Undo cascade).
func undoAction(state *GameState, actionID string) (*GameState, error) {
	idx := -1
	for i, pa := range state.ProposalQueue {
		if pa.ID == actionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, invalidActionf("no queued action with id %q", actionID)
	}

	next := state.Clone()
	remaining := append([]ProposedAction(nil), next.ProposalQueue[:idx]...)
	remaining = append(remaining, next.ProposalQueue[idx+1:]...)
	next.ProposalQueue = nil

	kept, notices := replayAndPrune(next, remaining)
	next.ProposalQueue = kept
	for _, msg := range notices {
		next.ChatLog = append(next.ChatLog, ChatMessage{Text: msg})
	}
	return next, nil
}

// replayAndPrune replays queue entries one at a time from scratch
// against base, dropping (and reporting) any entry that is no longer
// valid or affordable now that an earlier entry has been removed.
func replayAndPrune(base *GameState, queue []ProposedAction) (kept []ProposedAction, notices []string) {
	proj := base.Clone()
	for _, pa := range queue {
		if err := validateGameAction(proj, pa.PlayerID, pa.Action); err != nil {
			notices = append(notices, fmt.Sprintf("Undo cascade: removed %s's queued %s (%v)", pa.PlayerID, pa.Action.Kind(), err))
			continue
		}
		cost := finalActionCost(proj, pa.PlayerID, pa.Action)
		p := proj.Player(pa.PlayerID)
		if p == nil || p.AP < cost {
			notices = append(notices, fmt.Sprintf("Undo cascade: removed %s's queued %s (insufficient AP)", pa.PlayerID, pa.Action.Kind()))
			continue
		}
		if err := applyQueuedAction(proj, pa, true); err != nil {
			notices = append(notices, fmt.Sprintf("Undo cascade: removed %s's queued %s (%v)", pa.PlayerID, pa.Action.Kind(), err))
			continue
		}
		kept = append(kept, pa)
	}
	return kept, notices
}
