// Package callback wires per-turn behavior around the companion agent.
package callback

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// NewTurnStateCallback refreshes the per-turn state keys the instruction
// template injects, and seeds defaults for keys other callbacks read.
func NewTurnStateCallback() agent.BeforeAgentCallback {
	return func(cbCtx agent.CallbackContext) (*genai.Content, error) {
		state := cbCtx.State()
		if state == nil {
			slog.Warn("session state is nil, skipping state initialization")
			return nil, nil
		}

		if err := state.Set("Now", time.Now().Format(time.RFC3339)); err != nil {
			return nil, fmt.Errorf("failed to set Now: %w", err)
		}
		if err := state.Set("UserName", cbCtx.UserID()); err != nil {
			return nil, fmt.Errorf("failed to set UserName: %w", err)
		}

		ensureStateValue(state, "BehaviorInstruction", "")
		ensureStateValue(state, "GenuineMoment", false)

		return nil, nil
	}
}

func ensureStateValue(state session.State, key string, value any) {
	if value == nil {
		return
	}
	_, err := state.Get(key)
	if err == nil {
		// Existing keys are never overwritten.
		return
	}
	if !errors.Is(err, session.ErrStateKeyNotExist) {
		slog.Warn("failed to check session state key", "key", key, "error", err.Error())
		return
	}
	if err := state.Set(key, value); err != nil {
		// State write failures must not break the turn.
		slog.Warn("failed to set session state", "key", key, "error", err.Error())
	}
}

func getStateBool(state session.State, key string) bool {
	if state == nil {
		return false
	}
	value, err := state.Get(key)
	if err != nil {
		return false
	}

	boolValue, ok := value.(bool)
	if !ok {
		slog.Warn("session state key has unexpected type", "key", key)
		return false
	}

	return boolValue
}
