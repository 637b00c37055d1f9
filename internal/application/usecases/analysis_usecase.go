package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/services"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/valueobjects"
)

// AnalysisUseCase drives the conversational analysis pipeline for one session
// at a time: prepare images, build the prompt, invoke the gateway with the
// accumulated history, and append the completed exchange. Failed gateway
// calls append nothing, so a session history never holds a partial turn.
type AnalysisUseCase struct {
	gateway repositories.LanguageModelGateway
	prompts *services.PromptBuilder
}

func NewAnalysisUseCase(gateway repositories.LanguageModelGateway) *AnalysisUseCase {
	return &AnalysisUseCase{
		gateway: gateway,
		prompts: services.NewPromptBuilder(),
	}
}

// AnalyzeSingle runs the single-image assessment and stores the narrative as
// the session's current analysis.
func (uc *AnalysisUseCase) AnalyzeSingle(ctx context.Context, session *entities.Session, imagePath string) (string, error) {
	img, err := valueobjects.LoadImage(imagePath)
	if err != nil {
		return "", fmt.Errorf("image preparation failed: %w", err)
	}

	turn, err := entities.NewRequestTurn(
		entities.TextPart(uc.prompts.Single()),
		entities.ImagePart(img),
	)
	if err != nil {
		return "", err
	}

	reply, err := uc.invoke(ctx, session, turn)
	if err != nil {
		return "", err
	}

	session.SetAnalysis(reply)
	return reply, nil
}

// AnalyzeMultiple runs the comparative assessment over 1-4 images. Validation
// is all-or-nothing: every path must load before any turn is appended.
func (uc *AnalysisUseCase) AnalyzeMultiple(ctx context.Context, session *entities.Session, imagePaths []string) (string, error) {
	if len(imagePaths) == 0 {
		return "", entities.ErrNoImages
	}
	if len(imagePaths) > entities.MaxImagesPerTurn {
		return "", fmt.Errorf("%w: got %d, maximum is %d",
			entities.ErrTooManyImages, len(imagePaths), entities.MaxImagesPerTurn)
	}

	images := make([]*valueobjects.ImageData, 0, len(imagePaths))
	for _, path := range imagePaths {
		img, err := valueobjects.LoadImage(path)
		if err != nil {
			return "", fmt.Errorf("image preparation failed: %w", err)
		}
		images = append(images, img)
	}

	fileNames := make([]string, len(images))
	for i, img := range images {
		fileNames[i] = img.FileName()
	}

	parts := []entities.Part{entities.TextPart(uc.prompts.Multiple(len(images), fileNames))}
	for _, img := range images {
		parts = append(parts, entities.ImagePart(img))
	}

	turn, err := entities.NewRequestTurn(parts...)
	if err != nil {
		return "", err
	}

	reply, err := uc.invoke(ctx, session, turn)
	if err != nil {
		return "", err
	}

	session.SetAnalysis(reply)
	return reply, nil
}

// RequestAdvice asks for a treatment plan conditioned on everything said so
// far and stores the reply as the session's current advice.
func (uc *AnalysisUseCase) RequestAdvice(ctx context.Context, session *entities.Session, analysisText string, opts services.AdviceOptions) (string, error) {
	turn, err := entities.NewRequestTurn(entities.TextPart(uc.prompts.Advice(analysisText, opts)))
	if err != nil {
		return "", err
	}

	reply, err := uc.invoke(ctx, session, turn)
	if err != nil {
		return "", err
	}

	session.SetAdvice(reply)
	return reply, nil
}

// FollowUp sends free text into the conversation. It does not touch the
// session's stored analysis or advice.
func (uc *AnalysisUseCase) FollowUp(ctx context.Context, session *entities.Session, text string) (string, error) {
	turn, err := entities.NewRequestTurn(entities.TextPart(text))
	if err != nil {
		return "", err
	}
	return uc.invoke(ctx, session, turn)
}

// invoke is the single suspension point: one blocking gateway round trip per
// call, full history replayed in call order. The exchange is appended only
// after the gateway succeeds.
func (uc *AnalysisUseCase) invoke(ctx context.Context, session *entities.Session, turn *entities.Turn) (string, error) {
	reply, err := uc.gateway.Invoke(ctx, session.History(), turn)
	if err != nil {
		if isQuotaError(err) {
			return "", fmt.Errorf("%w: service temporarily unavailable due to high demand: %v", repositories.ErrService, err)
		}
		return "", fmt.Errorf("%w: %v", repositories.ErrService, err)
	}

	session.Append(turn, entities.NewResponseTurn(reply))
	return reply, nil
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted")
}
