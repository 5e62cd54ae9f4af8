package entity

type StartInterviewRequest struct {
	Role string `json:"role"`
	Mode string `json:"mode"`
}

type SubmitAnswerRequest struct {
	QuestionIndex *int   `json:"questionIndex"`
	Answer        string `json:"answer"`
}

type SubmitAdaptiveAnswerRequest struct {
	Answer string `json:"answer"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
