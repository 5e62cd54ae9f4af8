package entity

type AnalyzeResumeRequest struct {
	Text string `json:"text"`
	Role string `json:"role"`
}

type ChatRequest struct {
	Message string           `json:"message"`
	History []ChatHistoryDTO `json:"history"`
}

// ChatHistoryDTO is the wire form of a chat turn. Clients historically sent
// "ai" for assistant turns; the role is normalized to the ChatRole enum when
// the request is converted.
type ChatHistoryDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
