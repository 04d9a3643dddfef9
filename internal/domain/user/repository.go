package user

import "context"

// UserRepository defines data access methods for console accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all accounts ordered by full name.
	List(ctx context.Context) ([]User, error)

	// ListStaff retrieves all accounts except the given role, ordered by
	// full name. The salary engine uses this with RoleAdmin.
	ListStaff(ctx context.Context, excludeRole Role) ([]User, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}
