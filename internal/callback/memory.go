package callback

import (
	"log/slog"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/memory"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// NewAddSessionToMemoryCallback records the completed turn into long-term
// memory. The full session is re-fetched from the session service so the
// window captures the model's final reply as well.
func NewAddSessionToMemoryCallback(sessionService session.Service, memoryService memory.Service) agent.AfterAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		resp, err := sessionService.Get(ctx, &session.GetRequest{
			AppName:   ctx.AppName(),
			UserID:    ctx.UserID(),
			SessionID: ctx.SessionID()})

		if err != nil {
			slog.Error("failed to get completed session", "error", err.Error())
			return nil, err
		}

		if err := memoryService.AddSession(ctx, resp.Session); err != nil {
			slog.Error("failed to add session to memory", "error", err.Error())
			return nil, err
		}

		return nil, nil
	}
}
