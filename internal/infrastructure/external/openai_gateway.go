package external

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIGateway is the alternate provider behind the same gateway contract,
// for deployments without Gemini access. Images travel as data URLs in
// vision message parts.
type OpenAIGateway struct {
	client *openai.Client
	model  string
}

func NewOpenAIGateway(apiKey, model string) repositories.LanguageModelGateway {
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIGateway{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGateway) Invoke(ctx context.Context, history []*entities.Turn, turn *entities.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, t := range history {
		messages = append(messages, toChatMessage(t))
	}
	messages = append(messages, toChatMessage(turn))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

func (g *OpenAIGateway) ProviderName() string {
	return "OpenAI"
}

func (g *OpenAIGateway) Close() error {
	return nil
}

func toChatMessage(turn *entities.Turn) openai.ChatCompletionMessage {
	role := openai.ChatMessageRoleUser
	if turn.Role() == entities.RoleResponse {
		role = openai.ChatMessageRoleAssistant
	}

	if turn.ImageCount() == 0 {
		return openai.ChatCompletionMessage{Role: role, Content: turn.Text()}
	}

	parts := make([]openai.ChatMessagePart, 0, len(turn.Parts()))
	for _, p := range turn.Parts() {
		if p.IsImage() {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    fmt.Sprintf("data:%s;base64,%s", p.Image().MimeType(), p.Image().ToBase64()),
					Detail: openai.ImageURLDetailHigh,
				},
			})
			continue
		}
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: p.Text(),
		})
	}

	return openai.ChatCompletionMessage{Role: role, MultiContent: parts}
}
