package ai

import (
	"testing"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

func TestUnmarshalPayloadPlainJSON(t *testing.T) {
	var questions []string
	err := unmarshalPayload(`["Q1", "Q2"]`, &questions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 || questions[0] != "Q1" {
		t.Fatalf("unexpected decode result: %v", questions)
	}
}

func TestUnmarshalPayloadStripsJSONFence(t *testing.T) {
	raw := "```json\n{\"question\": \"Why Go?\", \"thought\": \"probe depth\"}\n```"

	var step entity.AdaptiveStep
	if err := unmarshalPayload(raw, &step); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Question != "Why Go?" || step.Rationale != "probe depth" {
		t.Fatalf("unexpected step: %+v", step)
	}
}

func TestUnmarshalPayloadStripsBareFence(t *testing.T) {
	raw := "```\n{\"score\": 8, \"feedback\": \"solid\", \"improvements\": [], \"modelAnswer\": \"m\"}\n```"

	var eval entity.Evaluation
	if err := unmarshalPayload(raw, &eval); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 8 || eval.Feedback != "solid" {
		t.Fatalf("unexpected evaluation: %+v", eval)
	}
}

func TestUnmarshalPayloadRejectsEmptyReply(t *testing.T) {
	var questions []string
	if err := unmarshalPayload("   \n", &questions); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestUnmarshalPayloadRejectsSurroundingProse(t *testing.T) {
	raw := `Sure! Here are your questions: ["Q1", "Q2"]`

	var questions []string
	if err := unmarshalPayload(raw, &questions); err == nil {
		t.Fatal("expected error when prose surrounds the payload")
	}
}

func TestCleanPayloadLeavesCleanInputAlone(t *testing.T) {
	if got := cleanPayload(`{"a": 1}`); got != `{"a": 1}` {
		t.Fatalf("clean input mangled: %q", got)
	}
}
