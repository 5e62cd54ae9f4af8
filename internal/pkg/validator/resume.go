package validator

import (
	"fmt"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// maxResumeTextLen bounds the accepted resume text so a single request
// cannot blow up the AI prompt.
const maxResumeTextLen = 64 << 10

func (v *Validator) ValidateAnalyzeResume(req *entity.AnalyzeResumeRequest) error {
	if req.Text == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	if len(req.Text) > maxResumeTextLen {
		return fmt.Errorf("%w: text exceeds %d bytes", entity.ErrInvalidParameter, maxResumeTextLen)
	}
	return nil
}

func (v *Validator) ValidateChat(req *entity.ChatRequest) error {
	if req.Message == "" {
		return fmt.Errorf("%w: message", entity.ErrMissingField)
	}
	return nil
}
