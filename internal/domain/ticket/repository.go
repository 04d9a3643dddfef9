package ticket

import "context"

type TicketRepository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string) (Ticket, error)
	// List returns tickets joined with customer info, newest first.
	List(ctx context.Context) ([]Ticket, error)
	// UpdateStatus sets a ticket's status, and its priority when one is
	// given.
	UpdateStatus(ctx context.Context, id string, status Status, priority *Priority) error
}
