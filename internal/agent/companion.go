// Package agent provides agent initialization.
package agent

import (
	"context"
	"fmt"

	adkagent "google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	adkmemory "google.golang.org/adk/memory"
	"google.golang.org/adk/model"
	"google.golang.org/adk/session"
	adktool "google.golang.org/adk/tool"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/callback"
	"github.com/easeaico/project-iris/internal/config"
	"github.com/easeaico/project-iris/internal/memory"
	"github.com/easeaico/project-iris/internal/models"
	"github.com/easeaico/project-iris/internal/prompt"
	"github.com/easeaico/project-iris/internal/relationship"
	"github.com/easeaico/project-iris/internal/sentiment"
	"github.com/easeaico/project-iris/internal/storage"
	"github.com/easeaico/project-iris/internal/tool"
	"github.com/easeaico/project-iris/internal/types"
)

// NewCompanionAgent builds the companion agent with its callbacks and tools.
func NewCompanionAgent(
	ctx context.Context,
	cfg *config.Config,
	store *storage.Store,
	sessionService session.Service,
	memoryService adkmemory.Service,
) (adkagent.Agent, error) {
	if store == nil || cfg == nil {
		return nil, fmt.Errorf("store and config are required")
	}

	chatModel, err := NewModel(ctx, cfg, cfg.ChatModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	character, err := loadCharacter(ctx, store, cfg.CharacterID)
	if err != nil {
		return nil, err
	}

	instruction, err := prompt.BuildCompanionInstruction(character)
	if err != nil {
		return nil, err
	}

	sentiments := sentiment.NewService(sentiment.NewStateMachine(), store.Characters, cfg.CharacterID)
	analyzer := sentiment.NewAnalyzer(chatModel)
	tracker := relationship.NewTracker(store.Relationships, cfg.CharacterID)
	almosts := memory.NewAlmostProvider(store.Moments, cfg.AlmostMomentLimit)

	before := []adkagent.BeforeAgentCallback{
		callback.WrapBeforeCallback("turn_state", callback.NewTurnStateCallback()),
		callback.WrapBeforeCallback("first_message", callback.NewFirstMessageCallback(character)),
	}
	if selfie := callback.NewSelfieCallback(ctx, cfg, character, tracker); selfie != nil {
		before = append(before, callback.WrapBeforeCallback("selfie", selfie))
	}
	before = append(before, callback.WrapBeforeCallback("behavior", callback.NewBehaviorStateCallback(sentiments, tracker, almosts)))

	after := []adkagent.AfterAgentCallback{
		callback.WrapAfterCallback("relationship", callback.NewRelationshipCallback(tracker)),
	}
	if sessionService != nil && memoryService != nil {
		after = append(after, callback.WrapAfterCallback("memory", callback.NewAddSessionToMemoryCallback(sessionService, memoryService)))
	}

	llmAgent, err := llmagent.New(llmagent.Config{
		Name:                 "project_iris_companion",
		Description:          "An emotionally grounded companion with her own moods, boundaries, and a memory of you.",
		Model:                chatModel,
		Instruction:          instruction,
		Tools:                []adktool.Tool{tool.NewPreloadMomentsTool(cfg)},
		BeforeAgentCallbacks: before,
		AfterAgentCallbacks:  after,
		AfterModelCallbacks: []llmagent.AfterModelCallback{
			callback.WrapAfterModelCallback("response", callback.NewResponseCallback(sentiments, analyzer)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create companion agent: %w", err)
	}

	return llmAgent, nil
}

// NewModel builds an LLM for the configured provider. The same switch
// serves the chat model and the memory summarizer model.
func NewModel(ctx context.Context, cfg *config.Config, modelName string) (model.LLM, error) {
	switch cfg.ModelProvider {
	case "openai":
		return models.NewOpenAIModel(ctx, modelName, &genai.ClientConfig{APIKey: cfg.OpenAIAPIKey})
	case "openrouter":
		return models.NewOpenRouterModel(ctx, modelName, &genai.ClientConfig{APIKey: cfg.OpenRouterAPIKey})
	default:
		return models.NewGrokModel(ctx, modelName, &genai.ClientConfig{APIKey: cfg.XAIAPIKey})
	}
}

func loadCharacter(ctx context.Context, store *storage.Store, characterID int) (*types.Character, error) {
	if characterID > 0 {
		character, err := store.Characters.GetByID(ctx, characterID)
		if err != nil {
			return nil, fmt.Errorf("failed to load character %d: %w", characterID, err)
		}
		return character, nil
	}

	character, err := store.Characters.GetDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default character: %w", err)
	}
	return character, nil
}
