package user

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	FullName     string          `json:"full_name"`
	Role         string          `json:"role"`
	Phone        *string         `json:"phone,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	SalaryPerDay decimal.Decimal `json:"salary_per_day"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, manager, cashier, sales"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.SalaryPerDay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_per_day", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	Email        *string          `json:"email,omitempty"`
	FullName     *string          `json:"full_name,omitempty"`
	Role         *string          `json:"role,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	SalaryPerDay *decimal.Decimal `json:"salary_per_day,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Role != nil && !IsValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, manager, cashier, sales"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.SalaryPerDay != nil && r.SalaryPerDay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_per_day", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	FullName     string          `json:"full_name"`
	Role         string          `json:"role"`
	Phone        *string         `json:"phone,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	SalaryPerDay decimal.Decimal `json:"salary_per_day"`
	CreatedAt    string          `json:"created_at"`
}
