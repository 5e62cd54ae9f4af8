package entity

import "fmt"

// ChatRole is the closed set of speaker roles accepted by the chat-completion
// provider. Client-supplied aliases ("ai") are translated to this enum once at
// the API boundary.
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// NormalizeChatRole maps a client-supplied role string onto the ChatRole
// enum. "ai" is accepted as a legacy alias for the assistant role; anything
// outside the closed set is rejected.
func NormalizeChatRole(role string) (ChatRole, error) {
	switch role {
	case string(ChatRoleUser):
		return ChatRoleUser, nil
	case string(ChatRoleAssistant), "ai":
		return ChatRoleAssistant, nil
	case string(ChatRoleSystem):
		return ChatRoleSystem, nil
	default:
		return "", fmt.Errorf("%w: unknown chat role %q", ErrInvalidParameter, role)
	}
}

// AdaptiveCompleteSignal is the literal value the model emits in place of a
// next question once it judges the adaptive interview covered enough ground.
const AdaptiveCompleteSignal = "INTERVIEW_COMPLETE"

// AdaptiveStep is the model's decision for the next adaptive interview move:
// either a follow-up/new question or the completion signal.
type AdaptiveStep struct {
	Question  string `json:"question"`
	Rationale string `json:"thought"`
}

// Complete reports whether the step carries the completion signal instead of
// a question.
func (s AdaptiveStep) Complete() bool {
	return s.Question == AdaptiveCompleteSignal
}

// Evaluation is the model's critique of one interview answer. A zero Score
// marks an evaluation that could not be obtained; the interview still
// advances.
type Evaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Improvements []string `json:"improvements"`
	ModelAnswer  string   `json:"modelAnswer"`
}
