package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/shettyrawat/anjob-backend/internal/config"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"go.uber.org/zap"
)

type mockRepo struct {
	createFn func(ctx context.Context, interview entity.Interview) (*entity.Interview, error)
	getFn    func(ctx context.Context, ownerID, id string) (*entity.Interview, error)
	listFn   func(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Interview, error)
	updateFn func(ctx context.Context, interview *entity.Interview) (*entity.Interview, error)
}

func (m *mockRepo) Create(ctx context.Context, interview entity.Interview) (*entity.Interview, error) {
	if m.createFn != nil {
		return m.createFn(ctx, interview)
	}
	return &interview, nil
}

func (m *mockRepo) Get(ctx context.Context, ownerID, id string) (*entity.Interview, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, id)
	}
	return nil, entity.ErrInterviewNotFound
}

func (m *mockRepo) List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Interview, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, skip, limit)
	}
	return nil, nil
}

func (m *mockRepo) Update(ctx context.Context, interview *entity.Interview) (*entity.Interview, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, interview)
	}
	return interview, nil
}

type mockGateway struct {
	questionSetFn func(ctx context.Context, role string) ([]string, error)
	nextStepFn    func(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error)
	evaluateFn    func(ctx context.Context, question, answer string) *entity.Evaluation
}

func (m *mockGateway) GenerateQuestionSet(ctx context.Context, role string) ([]string, error) {
	if m.questionSetFn != nil {
		return m.questionSetFn(ctx, role)
	}
	return []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, nil
}

func (m *mockGateway) NextAdaptiveStep(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error) {
	if m.nextStepFn != nil {
		return m.nextStepFn(ctx, role, transcript)
	}
	return &entity.AdaptiveStep{Question: "Next question"}, nil
}

func (m *mockGateway) EvaluateAnswer(ctx context.Context, question, answer string) *entity.Evaluation {
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, question, answer)
	}
	return &entity.Evaluation{Score: 7, Feedback: "good", Improvements: []string{}, ModelAnswer: "model"}
}

func newTestUsecase(repo *mockRepo, gateway *mockGateway) *InterviewUsecase {
	return NewUsecase(repo, gateway, config.InterviewConfig{MaxExchanges: 10}, zap.NewNop())
}

func storedInterview(iv entity.Interview) *mockRepo {
	stored := iv
	return &mockRepo{
		getFn: func(ctx context.Context, ownerID, id string) (*entity.Interview, error) {
			if ownerID != stored.OwnerID || id != stored.ID {
				return nil, entity.ErrInterviewNotFound
			}
			copied := stored
			return &copied, nil
		},
		updateFn: func(ctx context.Context, interview *entity.Interview) (*entity.Interview, error) {
			stored = *interview
			stored.Revision++
			copied := stored
			return &copied, nil
		},
	}
}

func TestStartInterviewCreatesFiveSlots(t *testing.T) {
	uc := newTestUsecase(&mockRepo{}, &mockGateway{})

	iv, err := uc.StartInterview(context.Background(), "user-1", &entity.StartInterviewRequest{Role: "Backend Engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(iv.Exchanges) != 5 {
		t.Fatalf("expected 5 question slots, got %d", len(iv.Exchanges))
	}
	for i, ex := range iv.Exchanges {
		if ex.Answered() {
			t.Fatalf("slot %d should start unanswered", i)
		}
	}
	if iv.Status != entity.InterviewStatusOngoing {
		t.Fatalf("expected ongoing, got %s", iv.Status)
	}
	if iv.Mode != entity.InterviewModeText {
		t.Fatalf("expected default text mode, got %s", iv.Mode)
	}
	if iv.IsAdaptive {
		t.Fatal("static interview must not be adaptive")
	}
}

func TestStartInterviewFailsFastOnGeneration(t *testing.T) {
	gateway := &mockGateway{
		questionSetFn: func(ctx context.Context, role string) ([]string, error) {
			return nil, entity.ErrGeneration
		},
	}
	repo := &mockRepo{
		createFn: func(ctx context.Context, interview entity.Interview) (*entity.Interview, error) {
			t.Fatal("no interview should be persisted when generation fails")
			return nil, nil
		},
	}
	uc := newTestUsecase(repo, gateway)

	_, err := uc.StartInterview(context.Background(), "user-1", &entity.StartInterviewRequest{Role: "Backend Engineer"})
	if !errors.Is(err, entity.ErrGeneration) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestSubmitAnswerFillsSlotAndStaysOngoing(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:      "iv-1",
		OwnerID: "user-1",
		Status:  entity.InterviewStatusOngoing,
		Exchanges: []entity.Exchange{
			{Question: "Q1"}, {Question: "Q2"}, {Question: "Q3"},
		},
	})
	uc := newTestUsecase(repo, &mockGateway{})

	iv, err := uc.SubmitAnswer(context.Background(), "user-1", "iv-1", 1, "my answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if iv.Status != entity.InterviewStatusOngoing {
		t.Fatalf("expected ongoing with unanswered slots, got %s", iv.Status)
	}
	if iv.Exchanges[1].Answer != "my answer" || iv.Exchanges[1].Score != 7 {
		t.Fatalf("slot not filled: %+v", iv.Exchanges[1])
	}
	if iv.OverallScore != nil {
		t.Fatal("overall score must not be set while ongoing")
	}
}

func TestSubmitAnswerCompletesOnLastSlot(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:      "iv-1",
		OwnerID: "user-1",
		Status:  entity.InterviewStatusOngoing,
		Exchanges: []entity.Exchange{
			{Question: "Q1", Answer: "A1", Score: 8},
			{Question: "Q2"},
		},
	})
	gateway := &mockGateway{
		evaluateFn: func(ctx context.Context, question, answer string) *entity.Evaluation {
			return &entity.Evaluation{Score: 5, Feedback: "ok", Improvements: []string{}, ModelAnswer: "m"}
		},
	}
	uc := newTestUsecase(repo, gateway)

	iv, err := uc.SubmitAnswer(context.Background(), "user-1", "iv-1", 1, "final answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if iv.Status != entity.InterviewStatusCompleted {
		t.Fatalf("expected completed, got %s", iv.Status)
	}
	// mean of 8 and 5 is 6.5, rounds to 7
	if iv.OverallScore == nil || *iv.OverallScore != 7 {
		t.Fatalf("expected overall score 7, got %v", iv.OverallScore)
	}
}

func TestSubmitAnswerDegradedEvaluationStillAdvances(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:        "iv-1",
		OwnerID:   "user-1",
		Status:    entity.InterviewStatusOngoing,
		Exchanges: []entity.Exchange{{Question: "Q1"}},
	})
	gateway := &mockGateway{
		evaluateFn: func(ctx context.Context, question, answer string) *entity.Evaluation {
			return &entity.Evaluation{
				Score:        0,
				Feedback:     "AI Evaluation failed. Please try again later.",
				Improvements: []string{},
				ModelAnswer:  "Not available",
			}
		},
	}
	uc := newTestUsecase(repo, gateway)

	iv, err := uc.SubmitAnswer(context.Background(), "user-1", "iv-1", 0, "answer")
	if err != nil {
		t.Fatalf("degraded evaluation must not fail the submission: %v", err)
	}

	if iv.Status != entity.InterviewStatusCompleted {
		t.Fatalf("expected completion despite degraded evaluation, got %s", iv.Status)
	}
	if iv.OverallScore == nil || *iv.OverallScore != 0 {
		t.Fatalf("expected overall score 0, got %v", iv.OverallScore)
	}
}

func TestSubmitAnswerIndexOutOfRange(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:        "iv-1",
		OwnerID:   "user-1",
		Status:    entity.InterviewStatusOngoing,
		Exchanges: []entity.Exchange{{Question: "Q1"}},
	})
	uc := newTestUsecase(repo, &mockGateway{})

	for _, idx := range []int{-1, 1, 5} {
		_, err := uc.SubmitAnswer(context.Background(), "user-1", "iv-1", idx, "answer")
		if !errors.Is(err, entity.ErrInvalidParameter) {
			t.Fatalf("index %d: expected invalid parameter, got %v", idx, err)
		}
	}
}

func TestSubmitAnswerRejectsCompletedInterview(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:        "iv-1",
		OwnerID:   "user-1",
		Status:    entity.InterviewStatusCompleted,
		Exchanges: []entity.Exchange{{Question: "Q1", Answer: "A1", Score: 8}},
	})
	uc := newTestUsecase(repo, &mockGateway{})

	_, err := uc.SubmitAnswer(context.Background(), "user-1", "iv-1", 0, "late answer")
	if !errors.Is(err, entity.ErrInterviewCompleted) {
		t.Fatalf("expected completed rejection, got %v", err)
	}
}

func TestSubmitAnswerOtherOwnerReportsNotFound(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:        "iv-1",
		OwnerID:   "user-1",
		Status:    entity.InterviewStatusOngoing,
		Exchanges: []entity.Exchange{{Question: "Q1"}},
	})
	uc := newTestUsecase(repo, &mockGateway{})

	_, err := uc.SubmitAnswer(context.Background(), "user-2", "iv-1", 0, "answer")
	if !errors.Is(err, entity.ErrInterviewNotFound) {
		t.Fatalf("expected not found for foreign owner, got %v", err)
	}
}

func TestStartAdaptiveInterviewOpensWithFirstGeneratedQuestion(t *testing.T) {
	gateway := &mockGateway{
		questionSetFn: func(ctx context.Context, role string) ([]string, error) {
			return []string{"Tell me about yourself.", "Q2", "Q3", "Q4", "Q5"}, nil
		},
		nextStepFn: func(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error) {
			t.Fatal("the opening question must come from the question set, not a next-step call")
			return nil, nil
		},
	}
	uc := newTestUsecase(&mockRepo{}, gateway)

	iv, err := uc.StartAdaptiveInterview(context.Background(), "user-1", &entity.StartInterviewRequest{Role: "Data Engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !iv.IsAdaptive {
		t.Fatal("expected adaptive interview")
	}
	if len(iv.Transcript) != 1 || iv.Transcript[0].Speaker != entity.SpeakerInterviewer {
		t.Fatalf("transcript not seeded with interviewer turn: %+v", iv.Transcript)
	}
	if iv.Transcript[0].Text != "Tell me about yourself." {
		t.Fatalf("unexpected opening question: %q", iv.Transcript[0].Text)
	}
}

func TestStartAdaptiveInterviewFailsFastOnGeneration(t *testing.T) {
	gateway := &mockGateway{
		questionSetFn: func(ctx context.Context, role string) ([]string, error) {
			return nil, entity.ErrGeneration
		},
	}
	repo := &mockRepo{
		createFn: func(ctx context.Context, interview entity.Interview) (*entity.Interview, error) {
			t.Fatal("interview must not be stored when generation fails")
			return nil, nil
		},
	}
	uc := newTestUsecase(repo, gateway)

	_, err := uc.StartAdaptiveInterview(context.Background(), "user-1", &entity.StartInterviewRequest{Role: "Data Engineer"})
	if !errors.Is(err, entity.ErrGeneration) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestSubmitAdaptiveAnswerAppendsNextQuestion(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:         "iv-1",
		OwnerID:    "user-1",
		IsAdaptive: true,
		Status:     entity.InterviewStatusOngoing,
		Transcript: []entity.TranscriptTurn{{Speaker: entity.SpeakerInterviewer, Text: "Q1"}},
	})
	uc := newTestUsecase(repo, &mockGateway{})

	iv, err := uc.SubmitAdaptiveAnswer(context.Background(), "user-1", "iv-1", "my answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if iv.Status != entity.InterviewStatusOngoing {
		t.Fatalf("expected ongoing, got %s", iv.Status)
	}
	if len(iv.Exchanges) != 1 || iv.Exchanges[0].Question != "Q1" {
		t.Fatalf("exchange not recorded against current question: %+v", iv.Exchanges)
	}
	last := iv.Transcript[len(iv.Transcript)-1]
	if last.Speaker != entity.SpeakerInterviewer || last.Text != "Next question" {
		t.Fatalf("next question not appended: %+v", last)
	}
}

func TestSubmitAdaptiveAnswerCompletesOnSignalWithoutStoringIt(t *testing.T) {
	repo := storedInterview(entity.Interview{
		ID:         "iv-1",
		OwnerID:    "user-1",
		IsAdaptive: true,
		Status:     entity.InterviewStatusOngoing,
		Transcript: []entity.TranscriptTurn{{Speaker: entity.SpeakerInterviewer, Text: "Q1"}},
	})
	gateway := &mockGateway{
		nextStepFn: func(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error) {
			return &entity.AdaptiveStep{Question: entity.AdaptiveCompleteSignal}, nil
		},
	}
	uc := newTestUsecase(repo, gateway)

	iv, err := uc.SubmitAdaptiveAnswer(context.Background(), "user-1", "iv-1", "final answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if iv.Status != entity.InterviewStatusCompleted {
		t.Fatalf("expected completed, got %s", iv.Status)
	}
	if iv.OverallScore == nil {
		t.Fatal("expected overall score on completion")
	}
	for _, turn := range iv.Transcript {
		if turn.Text == entity.AdaptiveCompleteSignal {
			t.Fatal("completion signal must never be stored in the transcript")
		}
	}
}

func TestSubmitAdaptiveAnswerCapForcesCompletion(t *testing.T) {
	transcript := []entity.TranscriptTurn{{Speaker: entity.SpeakerInterviewer, Text: "Q"}}
	exchanges := make([]entity.Exchange, 2)
	for i := range exchanges {
		exchanges[i] = entity.Exchange{Question: "Q", Answer: "A", Score: 6}
	}

	repo := storedInterview(entity.Interview{
		ID:         "iv-1",
		OwnerID:    "user-1",
		IsAdaptive: true,
		Status:     entity.InterviewStatusOngoing,
		Transcript: transcript,
		Exchanges:  exchanges,
	})
	gateway := &mockGateway{
		nextStepFn: func(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error) {
			t.Fatal("next-step generation must be skipped once the cap is reached")
			return nil, nil
		},
	}

	uc := NewUsecase(repo, gateway, config.InterviewConfig{MaxExchanges: 3}, zap.NewNop())

	iv, err := uc.SubmitAdaptiveAnswer(context.Background(), "user-1", "iv-1", "capping answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if iv.Status != entity.InterviewStatusCompleted {
		t.Fatalf("expected cap to force completion, got %s", iv.Status)
	}
	if len(iv.Exchanges) != 3 {
		t.Fatalf("expected 3 exchanges, got %d", len(iv.Exchanges))
	}
}
