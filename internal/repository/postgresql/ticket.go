package postgresql

import (
	"context"
	"fmt"

	"github.com/brickmart/console-backend-go/internal/domain/ticket"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ticketRepositoryImpl struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) ticket.TicketRepository {
	return &ticketRepositoryImpl{db: db}
}

func (r *ticketRepositoryImpl) Create(ctx context.Context, t ticket.Ticket) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO support_tickets (customer_id, subject, description, priority, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, subject, description, priority, status, created_at, updated_at
	`

	var created ticket.Ticket
	err := q.QueryRow(ctx, query, t.CustomerID, t.Subject, t.Description, t.Priority, t.Status).Scan(
		&created.ID, &created.CustomerID, &created.Subject, &created.Description,
		&created.Priority, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("failed to create support ticket: %w", err)
	}

	return created, nil
}

func (r *ticketRepositoryImpl) GetByID(ctx context.Context, id string) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.customer_id, t.subject, t.description, t.priority, t.status,
			   t.created_at, t.updated_at, c.full_name, c.email
		FROM support_tickets t
		LEFT JOIN customers c ON c.id = t.customer_id
		WHERE t.id = $1
	`

	var t ticket.Ticket
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CustomerID, &t.Subject, &t.Description, &t.Priority, &t.Status,
		&t.CreatedAt, &t.UpdatedAt, &t.CustomerName, &t.CustomerEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ticket.Ticket{}, ticket.ErrTicketNotFound
		}
		return ticket.Ticket{}, fmt.Errorf("failed to get support ticket: %w", err)
	}

	return t, nil
}

func (r *ticketRepositoryImpl) List(ctx context.Context) ([]ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.customer_id, t.subject, t.description, t.priority, t.status,
			   t.created_at, t.updated_at, c.full_name, c.email
		FROM support_tickets t
		LEFT JOIN customers c ON c.id = t.customer_id
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list support tickets: %w", err)
	}
	defer rows.Close()

	var tickets []ticket.Ticket
	for rows.Next() {
		var t ticket.Ticket
		if err := rows.Scan(
			&t.ID, &t.CustomerID, &t.Subject, &t.Description, &t.Priority, &t.Status,
			&t.CreatedAt, &t.UpdatedAt, &t.CustomerName, &t.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan support ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

func (r *ticketRepositoryImpl) UpdateStatus(ctx context.Context, id string, status ticket.Status, priority *ticket.Priority) error {
	q := GetQuerier(ctx, r.db)

	setClause := "status = $1, updated_at = NOW()"
	args := []interface{}{status}
	if priority != nil {
		setClause += ", priority = $2"
		args = append(args, *priority)
	}
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE support_tickets
		SET %s
		WHERE id = $%d
		RETURNING id
	`, setClause, len(args))

	var returned string
	if err := q.QueryRow(ctx, query, args...).Scan(&returned); err != nil {
		if err == pgx.ErrNoRows {
			return ticket.ErrTicketNotFound
		}
		return fmt.Errorf("failed to update support ticket status: %w", err)
	}

	return nil
}
