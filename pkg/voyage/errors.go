package voyage

import (
	"errors"
	"fmt"
)

// Sentinel errors participating in errors.Is comparisons. Handlers and
// card behaviors wrap these with fmt.Errorf("...: %w", ...) to attach
// a human-readable reason without losing the taxonomy.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrInvalidMove    = errors.New("invalid move")
	ErrInvalidAction  = errors.New("invalid action")
	ErrInventoryFull  = errors.New("inventory full")
	ErrSilenced       = errors.New("silenced")
	ErrGameOver       = errors.New("game is over")
)

// actionError wraps a sentinel with a terse, UI-safe reason string.
func actionError(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

func invalidActionf(format string, args ...any) error {
	return actionError(ErrInvalidAction, format, args...)
}
