// Package tool provides custom ADK tools for Project Iris.
package tool

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/adk/memory"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/config"
	"github.com/easeaico/project-iris/internal/utils"
)

const (
	defaultPreloadMomentsToolName        = "preload_moments"
	defaultPreloadMomentsToolDescription = "Preloads shared-history moments into the system instruction before each turn."
)

// PreloadMomentsTool injects retrieved moments into the system instruction.
type PreloadMomentsTool struct {
	name        string
	description string
	maxEntries  int
}

// NewPreloadMomentsTool creates a PreloadMomentsTool from the configuration.
func NewPreloadMomentsTool(cfg *config.Config) *PreloadMomentsTool {
	return &PreloadMomentsTool{
		name:        defaultPreloadMomentsToolName,
		description: defaultPreloadMomentsToolDescription,
		maxEntries:  cfg.TopK,
	}
}

// Name implements tool.Tool.
func (t *PreloadMomentsTool) Name() string {
	return t.name
}

// Description implements tool.Tool.
func (t *PreloadMomentsTool) Description() string {
	return t.description
}

// IsLongRunning implements tool.Tool.
func (t *PreloadMomentsTool) IsLongRunning() bool {
	return false
}

// ProcessRequest retrieves moments similar to the user's message and appends
// them to the system instruction.
func (t *PreloadMomentsTool) ProcessRequest(ctx tool.Context, req *model.LLMRequest) error {
	if ctx == nil || req == nil {
		return nil
	}

	query := strings.TrimSpace(utils.ExtractContentText(ctx.UserContent()))
	if query == "" {
		return nil
	}

	resp, err := ctx.SearchMemory(ctx, query)
	if err != nil {
		slog.Error("failed to search moments", "error", err.Error())
		return fmt.Errorf("failed to search moments: %w", err)
	}

	if resp == nil || len(resp.Memories) == 0 {
		return nil
	}

	instruction := buildMomentsInstruction(resp.Memories, t.maxEntries)
	if instruction == "" {
		return nil
	}
	appendInstruction(req, instruction)
	return nil
}

func buildMomentsInstruction(moments []memory.Entry, maxEntries int) string {
	if len(moments) == 0 {
		return ""
	}

	if maxEntries > 0 && len(moments) > maxEntries {
		moments = moments[:maxEntries]
	}

	var instruction strings.Builder
	instruction.WriteString(`These are moments you and the user actually share. Treat them as your own memories of this person, never as notes someone handed you.
<SHARED_MOMENTS>
`)
	for _, entry := range moments {
		text := strings.TrimSpace(utils.ExtractContentText(entry.Content))
		if text == "" {
			continue
		}
		stamp := ""
		if !entry.Timestamp.IsZero() {
			stamp = entry.Timestamp.Format(time.RFC3339)
		}
		author := strings.TrimSpace(entry.Author)
		instruction.WriteString(formatMomentLine(stamp, author, text))
		instruction.WriteString("\n")
	}

	instruction.WriteString(`</SHARED_MOMENTS>
`)
	return instruction.String()
}

func formatMomentLine(stamp, author, text string) string {
	parts := []string{"-"}
	if stamp != "" {
		parts = append(parts, "["+stamp+"]")
	}
	if author != "" {
		parts = append(parts, author+":")
	}
	parts = append(parts, text)
	return strings.Join(parts, " ")
}

func appendInstruction(req *model.LLMRequest, instruction string) {
	if strings.TrimSpace(instruction) == "" {
		return
	}
	if req.Config == nil {
		req.Config = &genai.GenerateContentConfig{}
	}
	if req.Config.SystemInstruction == nil {
		req.Config.SystemInstruction = genai.NewContentFromText(instruction, genai.RoleUser)
		return
	}
	req.Config.SystemInstruction.Parts = append(req.Config.SystemInstruction.Parts, genai.NewPartFromText(instruction))
}
