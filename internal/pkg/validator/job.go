package validator

import (
	"fmt"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

func (v *Validator) ValidateCreateJob(req *entity.CreateJobRequest) error {
	if req.Company == "" {
		return fmt.Errorf("%w: company", entity.ErrMissingField)
	}
	if req.Position == "" {
		return fmt.Errorf("%w: position", entity.ErrMissingField)
	}
	if req.Status != "" {
		if err := entity.JobStatus(req.Status).Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) ValidateUpdateJob(req *entity.UpdateJobRequest) error {
	if req.Company != nil && *req.Company == "" {
		return fmt.Errorf("%w: company must not be empty", entity.ErrInvalidParameter)
	}
	if req.Position != nil && *req.Position == "" {
		return fmt.Errorf("%w: position must not be empty", entity.ErrInvalidParameter)
	}
	if req.Status != nil {
		if err := entity.JobStatus(*req.Status).Validate(); err != nil {
			return err
		}
	}
	return nil
}
