package customer

import "context"

type CustomerService interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetByID(ctx context.Context, id string) (CustomerResponse, error)
	List(ctx context.Context, filter CustomerFilter) ([]CustomerResponse, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}
