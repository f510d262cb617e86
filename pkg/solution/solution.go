// Package solution parses the line-oriented solution-file grammar used by
// cmd/verify to replay a recorded game against pkg/voyage without a live
// relay session.
package solution

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sintftl/voyage/pkg/voyage"
)

// Entry is one "Pn: Verb ..." line, decoded into a concrete Action.
type Entry struct {
	Line   int
	Player voyage.PlayerID
	Action voyage.Action
}

// Round groups the entries recorded under one "ROUND n" header.
type Round struct {
	Number  int
	Entries []Entry
}

// Solution is the fully parsed contents of a solution file.
type Solution struct {
	Seed    uint64
	Players int
	Rounds  []Round
}

// PlayerIDs generates the canonical "P1".."Pn" identifiers a solution's
// PLAYERS header implies, matching the order NewGame expects.
func PlayerIDs(n int) []voyage.PlayerID {
	ids := make([]voyage.PlayerID, n)
	for i := range ids {
		ids[i] = voyage.PlayerID(fmt.Sprintf("P%d", i+1))
	}
	return ids
}

// Parse reads a solution file of the form:
//
//	SEED 12345
//	PLAYERS 2
//	ROUND 1
//	  P1: Move 5
//	  P1: Bake
//	  P2: Pass
//	ROUND 2
//	  ...
//
// Blank lines and lines starting with "#" are skipped. SEED and PLAYERS
// must each appear exactly once, before any ROUND header.
func Parse(r io.Reader) (*Solution, error) {
	sc := bufio.NewScanner(r)
	sol := &Solution{}
	var seedSet, playersSet bool
	var current *Round
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "SEED":
			seed, err := parseUintArg(fields, "SEED", lineNo)
			if err != nil {
				return nil, err
			}
			sol.Seed = seed
			seedSet = true
		case "PLAYERS":
			n, err := parseIntArg(fields, "PLAYERS", lineNo)
			if err != nil {
				return nil, err
			}
			if n <= 0 {
				return nil, fmt.Errorf("line %d: PLAYERS must be positive, got %d", lineNo, n)
			}
			sol.Players = n
			playersSet = true
		case "ROUND":
			n, err := parseIntArg(fields, "ROUND", lineNo)
			if err != nil {
				return nil, err
			}
			sol.Rounds = append(sol.Rounds, Round{Number: n})
			current = &sol.Rounds[len(sol.Rounds)-1]
		default:
			if current == nil {
				return nil, fmt.Errorf("line %d: action line before any ROUND header", lineNo)
			}
			entry, err := parseActionLine(lineNo, line)
			if err != nil {
				return nil, err
			}
			current.Entries = append(current.Entries, entry)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seedSet {
		return nil, fmt.Errorf("solution file must specify SEED")
	}
	if !playersSet {
		return nil, fmt.Errorf("solution file must specify PLAYERS")
	}
	return sol, nil
}

func parseUintArg(fields []string, keyword string, lineNo int) (uint64, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("line %d: %s needs exactly one argument", lineNo, keyword)
	}
	v, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s value %q", lineNo, keyword, fields[1])
	}
	return v, nil
}

func parseIntArg(fields []string, keyword string, lineNo int) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("line %d: %s needs exactly one argument", lineNo, keyword)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s value %q", lineNo, keyword, fields[1])
	}
	return v, nil
}

// parseActionLine splits "Pn: Verb ..." and decodes the verb into an Action.
func parseActionLine(lineNo int, line string) (Entry, error) {
	pidPart, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Entry{}, fmt.Errorf("line %d: expected \"Pn: Verb ...\", got %q", lineNo, line)
	}
	pid := voyage.PlayerID(strings.TrimSpace(pidPart))
	if pid == "" {
		return Entry{}, fmt.Errorf("line %d: missing player id", lineNo)
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Entry{}, fmt.Errorf("line %d: missing verb for player %s", lineNo, pid)
	}

	verb, arg, _ := strings.Cut(rest, " ")
	arg = strings.TrimSpace(arg)

	action, err := parseVerb(verb, arg, rest)
	if err != nil {
		return Entry{}, fmt.Errorf("line %d: %w", lineNo, err)
	}
	return Entry{Line: lineNo, Player: pid, Action: action}, nil
}

// parseVerb implements the grammar's 17 verbs (§6): Move, Bake, Shoot,
// Extinguish, Repair, Interact, RaiseShields, EvasiveManeuvers, Lookout,
// Pass, Ready (alias VoteReady true), PickUp, Drop, Throw, Revive,
// FirstAid, Chat.
func parseVerb(verb, arg, rest string) (voyage.Action, error) {
	switch verb {
	case "Move":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("Move requires a room number, got %q", arg)
		}
		return voyage.MoveAction{ToRoom: voyage.RoomID(n)}, nil
	case "Bake":
		return voyage.BakeAction{}, nil
	case "Shoot":
		return voyage.ShootAction{}, nil
	case "Extinguish":
		return voyage.ExtinguishAction{}, nil
	case "Repair":
		return voyage.RepairAction{}, nil
	case "Interact":
		return voyage.InteractAction{}, nil
	case "RaiseShields":
		return voyage.RaiseShieldsAction{}, nil
	case "EvasiveManeuvers":
		return voyage.EvasiveManeuversAction{}, nil
	case "Lookout":
		return voyage.LookoutAction{}, nil
	case "Pass":
		return voyage.PassAction{}, nil
	case "Ready":
		return voyage.VoteReadyAction{Ready: true}, nil
	case "PickUp":
		item, ok := parseItemType(arg)
		if !ok {
			return nil, fmt.Errorf("PickUp: unknown item %q", arg)
		}
		return voyage.PickUpAction{Item: item}, nil
	case "Drop":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("Drop requires an inventory index, got %q", arg)
		}
		return voyage.DropAction{Index: n}, nil
	case "Throw":
		fields := strings.Fields(arg)
		if len(fields) != 2 {
			return nil, fmt.Errorf("Throw requires \"<player> <index>\", got %q", arg)
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("Throw requires a numeric index, got %q", fields[1])
		}
		return voyage.ThrowAction{Target: voyage.PlayerID(fields[0]), Index: idx}, nil
	case "Revive":
		if arg == "" {
			return nil, fmt.Errorf("Revive requires a target player id")
		}
		return voyage.ReviveAction{Target: voyage.PlayerID(arg)}, nil
	case "FirstAid":
		if arg == "" {
			return nil, fmt.Errorf("FirstAid requires a target player id")
		}
		return voyage.FirstAidAction{Target: voyage.PlayerID(arg)}, nil
	case "Chat":
		msg := strings.TrimSpace(strings.TrimPrefix(rest, verb))
		return voyage.ChatAction{Message: msg}, nil
	default:
		return nil, fmt.Errorf("unknown verb %q", verb)
	}
}

var allItemTypes = []voyage.ItemType{
	voyage.ItemPeppernut, voyage.ItemExtinguisher, voyage.ItemWheelbarrow,
	voyage.ItemKeychain, voyage.ItemMitre,
}

func parseItemType(s string) (voyage.ItemType, bool) {
	for _, it := range allItemTypes {
		if it.String() == s {
			return it, true
		}
	}
	return 0, false
}
