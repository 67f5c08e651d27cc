package callback

import (
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/types"
	"github.com/easeaico/project-iris/internal/utils"
)

// firstMessageTrigger is the sentinel clients send to open a conversation
// without user input.
const firstMessageTrigger = "0_0"

// NewFirstMessageCallback returns the character's scripted opener when a
// conversation starts with the trigger sentinel instead of real input.
// Once real input has arrived the sentinel no longer replays the opener.
func NewFirstMessageCallback(character *types.Character) agent.BeforeAgentCallback {
	return func(cbCtx agent.CallbackContext) (*genai.Content, error) {
		userText := utils.ExtractContentText(cbCtx.UserContent())
		trimmed := strings.TrimSpace(userText)

		state := cbCtx.State()
		hasInput := getStateBool(state, "HasUserInput")

		if trimmed != "" && trimmed != firstMessageTrigger && state != nil && !hasInput {
			if err := state.Set("HasUserInput", true); err != nil {
				slog.Error("failed to set session state", "key", "HasUserInput", "error", err.Error())
				return nil, fmt.Errorf("failed to set session state: %w", err)
			}
		}

		if trimmed == firstMessageTrigger && !hasInput && character != nil && character.FirstMessage != "" {
			firstMessage := utils.NormalizePromptText(character.FirstMessage, character.Name, cbCtx.UserID())
			return genai.NewContentFromText(firstMessage, "model"), nil
		}

		return nil, nil
	}
}
