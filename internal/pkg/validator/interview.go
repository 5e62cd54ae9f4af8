package validator

import (
	"fmt"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

func (v *Validator) ValidateStartInterview(req *entity.StartInterviewRequest) error {
	if req.Role == "" {
		return fmt.Errorf("%w: role", entity.ErrMissingField)
	}
	if req.Mode != "" {
		if err := entity.InterviewMode(req.Mode).Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) ValidateSubmitAnswer(req *entity.SubmitAnswerRequest) error {
	if req.QuestionIndex == nil {
		return fmt.Errorf("%w: questionIndex", entity.ErrMissingField)
	}
	if req.Answer == "" {
		return fmt.Errorf("%w: answer", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateSubmitAdaptiveAnswer(req *entity.SubmitAdaptiveAnswerRequest) error {
	if req.Answer == "" {
		return fmt.Errorf("%w: answer", entity.ErrMissingField)
	}
	return nil
}
