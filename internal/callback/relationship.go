package callback

import (
	"log/slog"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/relationship"
	"github.com/easeaico/project-iris/internal/utils"
)

// NewRelationshipCallback scores the user's turn and folds it into the
// persisted relationship after the reply has gone out. Commands and the
// conversation-opener sentinel never move the relationship.
func NewRelationshipCallback(tracker *relationship.Tracker) agent.AfterAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		if tracker == nil {
			return nil, nil
		}

		userText := strings.TrimSpace(utils.ExtractContentText(ctx.UserContent()))
		if userText == "" || userText == firstMessageTrigger || strings.HasPrefix(userText, "/") {
			return nil, nil
		}

		if err := tracker.ApplyUserTurn(ctx, ctx.UserID(), ctx.AppName(), userText); err != nil {
			slog.Error("failed to update relationship", "error", err.Error())
			return nil, err
		}

		return nil, nil
	}
}
