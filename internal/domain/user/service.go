package user

import "context"

// EmployeeService manages console accounts and the staff directory.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an account. The caller cannot delete itself.
	Delete(ctx context.Context, id string, callerID string) error
}
