package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/repos"
	"github.com/skillpath/skillpath-backend/internal/types"
	"github.com/skillpath/skillpath-backend/internal/utils"
)

// ErrAIUnavailable covers every model-side failure: network, quota, and
// empty responses. Callers surface it immediately; no retry lives here.
var ErrAIUnavailable = errors.New("ai service unavailable")

// AIClient is the only seam between this backend and the generative model.
// Success returns raw text with no structural guarantee whatsoever.
// Generate asks for a JSON response body; GenerateText leaves the model in
// its default prose mode for the writing endpoints.
type AIClient interface {
	Generate(ctx context.Context, callType string, userID uuid.UUID, prompt string) (string, error)
	GenerateText(ctx context.Context, callType string, userID uuid.UUID, prompt string) (string, error)
}

type geminiClient struct {
	log        *logger.Logger
	client     *genai.Client
	model      string
	callLog    repos.AICallLogRepo
	genTimeout time.Duration
}

func NewGeminiClient(log *logger.Logger, callLog repos.AICallLogRepo) (AIClient, error) {
	clientLog := log.With("service", "GeminiClient")

	apiKey := utils.GetEnv("GEMINI_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	model := utils.GetEnv("GEMINI_MODEL", "gemini-3-flash-preview", log)
	timeoutSec := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 120, log)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiClient{
		log:        clientLog,
		client:     client,
		model:      model,
		callLog:    callLog,
		genTimeout: time.Duration(timeoutSec) * time.Second,
	}, nil
}

func (g *geminiClient) Generate(ctx context.Context, callType string, userID uuid.UUID, prompt string) (string, error) {
	// Asks the model for bare JSON. Extraction downstream still treats
	// the reply as untrusted text.
	return g.call(ctx, callType, userID, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
}

func (g *geminiClient) GenerateText(ctx context.Context, callType string, userID uuid.UUID, prompt string) (string, error) {
	return g.call(ctx, callType, userID, prompt, nil)
}

func (g *geminiClient) call(ctx context.Context, callType string, userID uuid.UUID, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	ctx2, cancel := context.WithTimeout(ctx, g.genTimeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx2, g.model, genai.Text(prompt), cfg)
	latency := time.Since(start)

	text := ""
	if err == nil {
		text = strings.TrimSpace(resp.Text())
		if text == "" {
			err = fmt.Errorf("empty model response")
		}
	}

	g.recordCall(ctx, callType, userID, prompt, latency, err)

	if err != nil {
		g.log.Error("Gemini call failed", "call_type", callType, "latency_ms", latency.Milliseconds(), "error", err)
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	g.log.Debug("Gemini call succeeded", "call_type", callType, "latency_ms", latency.Milliseconds(), "chars", len(text))
	return text, nil
}

// recordCall is best-effort: a failed audit write never fails the request.
func (g *geminiClient) recordCall(ctx context.Context, callType string, userID uuid.UUID, prompt string, latency time.Duration, callErr error) {
	if g.callLog == nil {
		return
	}
	row := &types.AICallLog{
		CallType:  callType,
		Model:     g.model,
		Prompt:    prompt,
		Success:   callErr == nil,
		LatencyMS: latency.Milliseconds(),
	}
	if userID != uuid.Nil {
		row.UserID = &userID
	}
	if callErr != nil {
		row.Error = callErr.Error()
	}
	if _, err := g.callLog.Create(ctx, nil, []*types.AICallLog{row}); err != nil {
		g.log.Warn("Failed to record AI call log", "error", err)
	}
}
