package ticket

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

type CreateTicketRequest struct {
	CustomerID  *string `json:"customer_id,omitempty"`
	Subject     string  `json:"subject"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

func (r *CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "is required"})
	}
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	}
	if !IsValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be low, medium, high or urgent"})
	}
	if r.Status == "" {
		r.Status = string(StatusOpen)
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be open, in_progress, resolved or closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID       string
	Status   string  `json:"status"`
	Priority *string `json:"priority,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be open, in_progress, resolved or closed"})
	}
	if r.Priority != nil && !IsValidPriority(*r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be low, medium, high or urgent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TicketResponse struct {
	ID            string  `json:"id"`
	CustomerID    *string `json:"customer_id,omitempty"`
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	Subject       string  `json:"subject"`
	Description   *string `json:"description,omitempty"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
