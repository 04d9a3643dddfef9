package campaign

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

type CreateCampaignRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	CampaignType  string  `json:"campaign_type"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	TargetSegment *string `json:"target_segment,omitempty"`
	Status        string  `json:"status"`
}

func (r *CreateCampaignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !IsValidType(r.CampaignType) {
		errs = append(errs, validator.ValidationError{Field: "campaign_type", Message: "must be email, sms, social or print"})
	}
	if r.Status == "" {
		r.Status = string(StatusDraft)
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft, active, completed or cancelled"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft, active, completed or cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CampaignResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	CampaignType  string  `json:"campaign_type"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	TargetSegment *string `json:"target_segment,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
