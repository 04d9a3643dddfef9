package customer

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

type CreateCustomerRequest struct {
	FullName string  `json:"full_name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Segment  string  `json:"segment"`
}

func (r *CreateCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Segment == "" {
		r.Segment = string(SegmentRegular)
	}
	if !IsValidSegment(r.Segment) {
		errs = append(errs, validator.ValidationError{Field: "segment", Message: "must be regular, vip or wholesale"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCustomerRequest struct {
	ID       string
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Segment  *string `json:"segment,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Segment != nil && !IsValidSegment(*r.Segment) {
		errs = append(errs, validator.ValidationError{Field: "segment", Message: "must be regular, vip or wholesale"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomerFilter struct {
	Search  *string `json:"search,omitempty"`
	Segment *string `json:"segment,omitempty"`
}

type CustomerResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Segment   string  `json:"segment"`
	CreatedAt string  `json:"created_at"`
}
