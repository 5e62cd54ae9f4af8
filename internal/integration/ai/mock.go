package ai

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a deterministic stand-in for the AI provider, used for
// local development and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) GenerateQuestionSet(ctx context.Context, role string) ([]string, error) {
	ctxzap.Info(ctx, "[MOCK] generating interview question set", zap.String("role", role))

	questions := []string{
		fmt.Sprintf("Tell me about yourself and why you are interested in the %s role.", role),
		fmt.Sprintf("Describe a challenging project you worked on that is relevant to %s.", role),
		"How do you prioritize tasks when you have several competing deadlines?",
		"Tell me about a time you disagreed with a teammate. How did you resolve it?",
		fmt.Sprintf("Where do you see the %s field heading in the next few years?", role),
	}

	ctxzap.Info(ctx, "[MOCK] question set generated", zap.Int("count", len(questions)))
	return questions, nil
}

func (m *MockConnector) NextAdaptiveStep(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error) {
	ctxzap.Info(ctx, "[MOCK] generating next adaptive step",
		zap.String("role", role),
		zap.Int("transcript_len", len(transcript)),
	)

	// After three candidate answers the mock wraps the interview up.
	answers := 0
	for _, turn := range transcript {
		if turn.Speaker == entity.SpeakerCandidate {
			answers++
		}
	}
	if answers >= 3 {
		return &entity.AdaptiveStep{
			Question:  entity.AdaptiveCompleteSignal,
			Rationale: "Enough signal collected to close the interview.",
		}, nil
	}

	return &entity.AdaptiveStep{
		Question:  fmt.Sprintf("Can you go deeper on that? What trade-offs did you consider as a %s?", role),
		Rationale: "Probing the previous answer for depth.",
	}, nil
}

func (m *MockConnector) EvaluateAnswer(ctx context.Context, question, answer string) *entity.Evaluation {
	ctxzap.Info(ctx, "[MOCK] evaluating interview answer")

	return &entity.Evaluation{
		Score:        7,
		Feedback:     "Solid answer with concrete examples. Structure it with the STAR method for more impact.",
		Improvements: []string{"Quantify the outcome of your work", "Keep the intro under thirty seconds"},
		ModelAnswer:  "A strong answer opens with context, names the specific actions taken, and closes with a measurable result.",
	}
}

func (m *MockConnector) ScoreResume(ctx context.Context, text, role string) *entity.ResumeScore {
	ctxzap.Info(ctx, "[MOCK] scoring resume", zap.String("role", role))

	return &entity.ResumeScore{
		ATSScore:          72,
		KeywordScore:      65,
		FormattingScore:   80,
		CompletenessScore: 70,
		Skills:            []string{"Go", "PostgreSQL", "REST APIs"},
		Suggestions: []string{
			fmt.Sprintf("Add more keywords from typical %s job descriptions.", role),
			"Lead each bullet with an action verb and a measurable result.",
		},
	}
}

func (m *MockConnector) OptimizeResume(ctx context.Context, text, role string) (*entity.OptimizedResume, error) {
	ctxzap.Info(ctx, "[MOCK] generating optimized resume", zap.String("role", role))

	return &entity.OptimizedResume{
		PersonalInfo: entity.PersonalInfo{
			Name:     "Alex Candidate",
			Email:    "alex.candidate@example.com",
			Phone:    "+1 555 0100",
			Location: "Remote",
			Links:    []string{"https://github.com/alexcandidate"},
		},
		Summary: fmt.Sprintf("Results-driven %s with hands-on experience shipping production systems.", role),
		Experience: []entity.ExperienceEntry{
			{
				Role:     role,
				Company:  "Example Corp",
				Duration: "2022 - Present",
				Description: []string{
					"Delivered three major product features ahead of schedule.",
					"Reduced service latency by 40% through targeted profiling.",
				},
			},
		},
		Education: []entity.EducationEntry{
			{
				Degree:      "B.Sc. Computer Science",
				Institution: "State University",
				Duration:    "2018 - 2022",
			},
		},
		Skills: []string{"Go", "PostgreSQL", "Docker", "CI/CD"},
	}, nil
}

func (m *MockConnector) Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] handling chat message", zap.Int("history_len", len(history)))

	return "Thanks for the question! Keep your applications organized, tailor your resume per role, and practice interviews regularly. (mock reply)", nil
}
