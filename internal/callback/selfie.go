package callback

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"text/template"

	"google.golang.org/adk/agent"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/config"
	"github.com/easeaico/project-iris/internal/models"
	"github.com/easeaico/project-iris/internal/relationship"
	"github.com/easeaico/project-iris/internal/types"
	"github.com/easeaico/project-iris/internal/utils"
)

const selfieCommand = "/selfie"

const (
	tplSelfieDeflect = "deflect"
	tplSelfieError   = "error"
	tplSelfieSuccess = "success"
)

// selfieTemplatesText keeps the canned responses in the character's voice.
var selfieTemplatesText = `
{{define "deflect"}}{{.Name}} laughs it off: "nice try. maybe when I actually know you."{{end}}
{{define "error"}}{{.Name}} fumbles with the camera: "ugh, it's not cooperating right now. later, promise."{{end}}
{{define "success"}}{{.Name}} snaps one and sends it over: "okay, here. don't make it weird."

![selfie]({{.URL}})
{{end}}
`

var selfieTemplates = template.Must(template.New("selfie").Parse(selfieTemplatesText))

// NewSelfieCallback handles the /selfie command. Whether a selfie is sent
// or deflected follows from the relationship tier alone; mood never enters
// the decision.
func NewSelfieCallback(ctx context.Context, cfg *config.Config, character *types.Character, tracker *relationship.Tracker) agent.BeforeAgentCallback {
	imageService, err := models.NewGeminiImageGenerator(ctx, cfg.GoogleAPIKey, cfg.ImageModel, cfg.AspectRatio, cfg.ImageStorageDir, cfg.ImageBaseURL)
	if err != nil {
		slog.Error("failed to create image generator", "error", err.Error())
		return nil
	}

	return func(cbCtx agent.CallbackContext) (*genai.Content, error) {
		userText := utils.ExtractContentText(cbCtx.UserContent())
		trimmed := strings.TrimSpace(userText)

		if trimmed == selfieCommand || strings.HasPrefix(trimmed, selfieCommand+" ") {
			return processSelfieCommand(cbCtx, trimmed, character, tracker, imageService)
		}

		return nil, nil
	}
}

func processSelfieCommand(cbCtx agent.CallbackContext, input string, character *types.Character, tracker *relationship.Tracker, imageService *models.ImageGenerator) (*genai.Content, error) {
	var metrics *behavior.RelationshipMetrics
	if tracker != nil {
		loaded, err := tracker.Metrics(cbCtx, cbCtx.UserID(), cbCtx.AppName())
		if err != nil {
			slog.Error("failed to load relationship for selfie gate", "error", err.Error())
			return renderSelfieResponse(tplSelfieError, character, "")
		}
		metrics = loaded
	}

	if behavior.SelfiePolicyFor(metrics) != behavior.SelfieFull {
		return renderSelfieResponse(tplSelfieDeflect, character, "")
	}

	request := strings.TrimSpace(strings.TrimPrefix(input, selfieCommand))
	imageURL, err := imageService.Generate(cbCtx, buildSelfiePrompt(character, request))
	if err != nil {
		slog.Error("failed to generate selfie", "error", err.Error())
		return renderSelfieResponse(tplSelfieError, character, "")
	}

	return renderSelfieResponse(tplSelfieSuccess, character, imageURL)
}

func buildSelfiePrompt(character *types.Character, request string) string {
	var sb strings.Builder
	sb.WriteString("Casual phone selfie of ")
	sb.WriteString(character.Name)
	if character.Appearance != "" {
		sb.WriteString(". Appearance: ")
		sb.WriteString(character.Appearance)
	}
	if character.Scenario != "" {
		sb.WriteString(". Setting: ")
		sb.WriteString(character.Scenario)
	}
	if request != "" {
		sb.WriteString(". ")
		sb.WriteString(request)
	}
	sb.WriteString(". Natural lighting, slightly imperfect framing, no text overlay.")
	return sb.String()
}

func renderSelfieResponse(tplName string, character *types.Character, imageURL string) (*genai.Content, error) {
	data := map[string]any{
		"Name": character.Name,
		"URL":  imageURL,
	}

	var buf bytes.Buffer
	if err := selfieTemplates.ExecuteTemplate(&buf, tplName, data); err != nil {
		slog.Error("failed to execute selfie template", "template", tplName, "error", err.Error())
		// Fall back to plain text so the conversation is not interrupted.
		return genai.NewContentFromText("Something went wrong handling that request.", "model"), nil
	}

	return genai.NewContentFromText(strings.TrimSpace(buf.String()), "model"), nil
}
