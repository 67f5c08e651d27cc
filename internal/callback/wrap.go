package callback

import (
	"log/slog"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// WrapBeforeCallback adds logging and panic recovery around a before-agent
// callback.
func WrapBeforeCallback(name string, cb agent.BeforeAgentCallback) agent.BeforeAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("before callback panic", "name", name, "error", err)
			}
		}()

		slog.Info("before callback start", "name", name)
		content, err := cb(ctx)
		if err != nil {
			slog.Error("before callback error", "name", name, "error", err.Error())
			return content, err
		}
		slog.Info("before callback done", "name", name, "has_content", content != nil)
		return content, nil
	}
}

// WrapAfterCallback adds logging and panic recovery around an after-agent
// callback.
func WrapAfterCallback(name string, cb agent.AfterAgentCallback) agent.AfterAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("after callback panic", "name", name, "error", err)
			}
		}()

		slog.Info("after callback start", "name", name)
		content, err := cb(ctx)
		if err != nil {
			slog.Error("after callback error", "name", name, "error", err.Error())
			return content, err
		}
		slog.Info("after callback done", "name", name, "has_content", content != nil)
		return content, nil
	}
}

// WrapAfterModelCallback adds logging and panic recovery around an
// after-model callback. Partial streaming chunks are passed through without
// logging to keep the log readable.
func WrapAfterModelCallback(name string, cb llmagent.AfterModelCallback) llmagent.AfterModelCallback {
	return func(ctx agent.CallbackContext, resp *model.LLMResponse, modelErr error) (*model.LLMResponse, error) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("after model callback panic", "name", name, "error", err)
			}
		}()

		if resp != nil && resp.Partial {
			return cb(ctx, resp, modelErr)
		}

		rewritten, err := cb(ctx, resp, modelErr)
		if err != nil {
			slog.Error("after model callback error", "name", name, "error", err.Error())
			return rewritten, err
		}
		slog.Info("after model callback done", "name", name, "rewrote", rewritten != nil)
		return rewritten, nil
	}
}
