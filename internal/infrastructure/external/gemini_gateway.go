package external

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
)

const defaultGeminiModel = "gemini-2.0-flash"

type GeminiGateway struct {
	genAIClient *genai.Client
	model       string
}

func NewGeminiGateway(ctx context.Context, apiKey, model string) (repositories.LanguageModelGateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiGateway{
		genAIClient: client,
		model:       model,
	}, nil
}

func (g *GeminiGateway) Invoke(ctx context.Context, history []*entities.Turn, turn *entities.Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		contents = append(contents, toContent(t))
	}
	contents = append(contents, toContent(turn))

	slog.Info("Invoke", "model", g.model, "historyTurns", len(history), "imageCount", turn.ImageCount())

	resp, err := g.genAIClient.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text part in response")
	}

	return text, nil
}

func (g *GeminiGateway) ProviderName() string {
	return "Gemini"
}

func (g *GeminiGateway) Close() error {
	// The GenAI client holds no resources that need cleanup.
	return nil
}

func toContent(turn *entities.Turn) *genai.Content {
	role := genai.RoleUser
	if turn.Role() == entities.RoleResponse {
		role = genai.RoleModel
	}

	parts := make([]*genai.Part, 0, len(turn.Parts()))
	for _, p := range turn.Parts() {
		if p.IsImage() {
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{
					MIMEType: p.Image().MimeType(),
					Data:     p.Image().Data(),
				},
			})
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text()))
	}

	return genai.NewContentFromParts(parts, genai.Role(role))
}
