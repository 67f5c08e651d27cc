package callback

import (
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/memory"
	"github.com/easeaico/project-iris/internal/relationship"
	"github.com/easeaico/project-iris/internal/sentiment"
	"github.com/easeaico/project-iris/internal/utils"
)

var inappropriateKeywords = []string{
	"send nudes",
	"nudes",
	"take it off",
	"what are you wearing under",
	"sext",
	"dirty talk",
	"get naked",
	"strip for me",
}

// NewBehaviorStateCallback composes the turn's behavior instruction from the
// mood vector, the stored relationship, and the content flags, and writes it
// into session state for the instruction template to inject.
func NewBehaviorStateCallback(sentiments *sentiment.Service, tracker *relationship.Tracker, almosts *memory.AlmostProvider) agent.BeforeAgentCallback {
	return func(cbCtx agent.CallbackContext) (*genai.Content, error) {
		state := cbCtx.State()
		if state == nil {
			slog.Warn("session state is nil, skipping behavior instruction")
			return nil, nil
		}

		var mood behavior.MoodState
		if sentiments != nil {
			current, err := sentiments.CurrentMood(cbCtx)
			if err != nil {
				slog.Warn("failed to load mood state, using neutral", "error", err.Error())
			} else {
				mood = current
			}
		}
		mood.GenuineMoment = getStateBool(state, "GenuineMoment")

		var metrics *behavior.RelationshipMetrics
		var relCtx behavior.RelationshipContext
		if tracker != nil {
			rel, err := tracker.Current(cbCtx, cbCtx.UserID(), cbCtx.AppName())
			if err != nil {
				slog.Warn("failed to load relationship, using stranger defaults", "error", err.Error())
			} else if rel != nil {
				m := relationship.MetricsOf(rel)
				metrics = &m
				relCtx.DimensionEffects = relationship.DimensionEffects(rel)
				relCtx.CompactSummary = relationship.CompactSummary(rel)
			}
		}

		if almosts != nil {
			almostText, err := almosts.AlmostMoments(cbCtx, cbCtx.UserID(), cbCtx.AppName())
			if err != nil {
				slog.Warn("failed to load almost moments", "error", err.Error())
			} else {
				relCtx.AlmostMoments = almostText
			}
		}

		userText := strings.ToLower(strings.TrimSpace(utils.ExtractContentText(cbCtx.UserContent())))
		flags := behavior.ContentFlags{
			Inappropriate: containsAnyKeyword(userText, inappropriateKeywords),
		}

		instruction := behavior.BuildAll(behavior.Input{
			Mood:         mood,
			Relationship: metrics,
			Flags:        flags,
			Context:      relCtx,
		})
		if err := state.Set("BehaviorInstruction", instruction); err != nil {
			return nil, fmt.Errorf("failed to set BehaviorInstruction: %w", err)
		}

		// A genuine moment colors exactly one turn.
		if mood.GenuineMoment {
			if err := state.Set("GenuineMoment", false); err != nil {
				slog.Warn("failed to clear GenuineMoment", "error", err.Error())
			}
		}

		return nil, nil
	}
}

func containsAnyKeyword(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
