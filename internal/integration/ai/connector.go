package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/config"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/integration/common"
	pkghttp "github.com/shettyrawat/anjob-backend/pkg/http"
	"go.uber.org/zap"
)

// Connector is the single point of contact with the chat-completion provider.
// Question-set and next-step generation fail fast; answer evaluation and
// resume scoring degrade to placeholder results so the caller's state machine
// can always proceed.
type Connector struct {
	config    config.AIConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.AIConnectorConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type chatCompletionRequest struct {
	Model     string               `json:"model"`
	Messages  []entity.ChatMessage `json:"messages"`
	MaxTokens int                  `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message entity.ChatMessage `json:"message"`
	} `json:"choices"`
}

// complete sends a message list to the provider and returns the first textual
// completion. Only network-level failures are retried.
func (c *Connector) complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	req := chatCompletionRequest{
		Model:     c.config.Model,
		Messages:  messages,
		MaxTokens: c.config.MaxTokens,
	}

	var resp chatCompletionResponse
	opts := append(c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			var netErr *pkghttp.NetworkError
			return errors.As(err, &netErr)
		}),
	)

	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatCompletionsEndpoint, req, &resp)
	}, opts...)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion has no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateQuestionSet asks the model for the fixed interview question set for
// a role. The reply must decode to exactly five non-empty questions.
func (c *Connector) GenerateQuestionSet(ctx context.Context, role string) ([]string, error) {
	ctxzap.Info(ctx, "generating interview question set", zap.String("role", role))

	raw, err := c.complete(ctx, []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: questionSetPrompt(role)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}

	var questions []string
	if err := unmarshalPayload(raw, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}

	if len(questions) != questionCount {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", entity.ErrGeneration, questionCount, len(questions))
	}
	for i, q := range questions {
		if q == "" {
			return nil, fmt.Errorf("%w: question %d is empty", entity.ErrGeneration, i)
		}
	}

	ctxzap.Info(ctx, "question set generated", zap.Int("count", len(questions)))
	return questions, nil
}

// NextAdaptiveStep asks the model for the next adaptive move given the
// transcript so far. The model answers with either a question or the
// completion signal.
func (c *Connector) NextAdaptiveStep(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error) {
	ctxzap.Info(ctx, "generating next adaptive step",
		zap.String("role", role),
		zap.Int("transcript_len", len(transcript)),
	)

	raw, err := c.complete(ctx, []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: adaptiveStepPrompt(role, transcript)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}

	var step entity.AdaptiveStep
	if err := unmarshalPayload(raw, &step); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}
	if step.Question == "" {
		return nil, fmt.Errorf("%w: step has no question", entity.ErrGeneration)
	}

	return &step, nil
}

// EvaluateAnswer critiques a single answer. It never fails: any transport or
// decode problem yields the degraded zero-score evaluation, because blocking
// a candidate's progress on a transient provider outage is worse than
// recording a zero.
func (c *Connector) EvaluateAnswer(ctx context.Context, question, answer string) *entity.Evaluation {
	ctxzap.Info(ctx, "evaluating interview answer")

	raw, err := c.complete(ctx, []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: evaluationPrompt(question, answer)},
	})
	if err != nil {
		ctxzap.Warn(ctx, "answer evaluation failed, recording degraded result", zap.Error(err))
		return degradedEvaluation()
	}

	var eval entity.Evaluation
	if err := unmarshalPayload(raw, &eval); err != nil {
		ctxzap.Warn(ctx, "answer evaluation reply malformed, recording degraded result", zap.Error(err))
		return degradedEvaluation()
	}

	if eval.Score < 1 || eval.Score > 10 {
		ctxzap.Warn(ctx, "answer evaluation score out of range, recording degraded result",
			zap.Int("score", eval.Score),
		)
		return degradedEvaluation()
	}

	if eval.Improvements == nil {
		eval.Improvements = []string{}
	}

	return &eval
}

func degradedEvaluation() *entity.Evaluation {
	return &entity.Evaluation{
		Score:        0,
		Feedback:     "AI Evaluation failed. Please try again later.",
		Improvements: []string{},
		ModelAnswer:  "Not available",
	}
}

type resumeScorePayload struct {
	ATSScore          int      `json:"atsScore"`
	KeywordScore      int      `json:"keywordScore"`
	FormattingScore   int      `json:"formattingScore"`
	CompletenessScore int      `json:"completenessScore"`
	Skills            []string `json:"skills"`
	Suggestions       []string `json:"suggestions"`
}

// ScoreResume returns the ATS compatibility breakdown for a resume text.
// It degrades to a conservative fallback score when the provider or the
// payload fails, mirroring the evaluation policy.
func (c *Connector) ScoreResume(ctx context.Context, text, role string) *entity.ResumeScore {
	ctxzap.Info(ctx, "scoring resume", zap.String("role", role))

	raw, err := c.complete(ctx, []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: resumeScorePrompt(text, role)},
	})
	if err != nil {
		ctxzap.Warn(ctx, "resume scoring failed, using fallback score", zap.Error(err))
		return fallbackResumeScore()
	}

	var payload resumeScorePayload
	if err := unmarshalPayload(raw, &payload); err != nil {
		ctxzap.Warn(ctx, "resume scoring reply malformed, using fallback score", zap.Error(err))
		return fallbackResumeScore()
	}

	score := &entity.ResumeScore{
		ATSScore:          payload.ATSScore,
		KeywordScore:      payload.KeywordScore,
		FormattingScore:   payload.FormattingScore,
		CompletenessScore: payload.CompletenessScore,
		Skills:            payload.Skills,
		Suggestions:       payload.Suggestions,
	}
	if score.Skills == nil {
		score.Skills = []string{}
	}
	if score.Suggestions == nil {
		score.Suggestions = []string{}
	}

	return score
}

func fallbackResumeScore() *entity.ResumeScore {
	return &entity.ResumeScore{
		ATSScore:          60,
		KeywordScore:      50,
		FormattingScore:   70,
		CompletenessScore: 60,
		Skills:            []string{},
		Suggestions:       []string{"AI analysis is currently unavailable. Please review your resume against industry standards."},
	}
}

type optimizedResumePayload struct {
	PersonalInfo struct {
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Phone    string   `json:"phone"`
		Location string   `json:"location"`
		Links    []string `json:"links"`
	} `json:"personalInfo"`
	Summary    string `json:"summary"`
	Experience []struct {
		Role        string   `json:"role"`
		Company     string   `json:"company"`
		Duration    string   `json:"duration"`
		Description []string `json:"description"`
	} `json:"experience"`
	Education []struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Duration    string `json:"duration"`
	} `json:"education"`
	Skills []string `json:"skills"`
}

// OptimizeResume asks the model for an ATS-optimized restructuring of the
// resume. Failures are returned to the caller, which treats the optimized
// section as absent rather than failing the analysis.
func (c *Connector) OptimizeResume(ctx context.Context, text, role string) (*entity.OptimizedResume, error) {
	ctxzap.Info(ctx, "generating optimized resume", zap.String("role", role))

	raw, err := c.complete(ctx, []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: optimizedResumePrompt(text, role)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}

	var payload optimizedResumePayload
	if err := unmarshalPayload(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}
	if payload.PersonalInfo.Name == "" {
		return nil, fmt.Errorf("%w: optimized resume has no candidate name", entity.ErrGeneration)
	}

	optimized := &entity.OptimizedResume{
		PersonalInfo: entity.PersonalInfo{
			Name:     payload.PersonalInfo.Name,
			Email:    payload.PersonalInfo.Email,
			Phone:    payload.PersonalInfo.Phone,
			Location: payload.PersonalInfo.Location,
			Links:    payload.PersonalInfo.Links,
		},
		Summary: payload.Summary,
		Skills:  payload.Skills,
	}

	for _, exp := range payload.Experience {
		optimized.Experience = append(optimized.Experience, entity.ExperienceEntry{
			Role:        exp.Role,
			Company:     exp.Company,
			Duration:    exp.Duration,
			Description: exp.Description,
		})
	}
	for _, edu := range payload.Education {
		optimized.Education = append(optimized.Education, entity.EducationEntry{
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Duration:    edu.Duration,
		})
	}

	ctxzap.Info(ctx, "optimized resume generated", zap.String("candidate", optimized.PersonalInfo.Name))
	return optimized, nil
}

// Chat runs one assistant turn. With no prior history the portal system
// instruction is folded into a single-turn prompt.
func (c *Connector) Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	ctxzap.Info(ctx, "handling chat message", zap.Int("history_len", len(history)))

	var messages []entity.ChatMessage
	if len(history) == 0 {
		messages = []entity.ChatMessage{{
			Role:    entity.ChatRoleUser,
			Content: chatSystemInstruction + "\n\nUser Question: " + message,
		}}
	} else {
		messages = append(messages, history...)
		messages = append(messages, entity.ChatMessage{Role: entity.ChatRoleUser, Content: message})
	}

	reply, err := c.complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}

	return reply, nil
}
