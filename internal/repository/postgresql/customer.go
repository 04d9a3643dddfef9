package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickmart/console-backend-go/internal/domain/customer"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type customerRepositoryImpl struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) customer.CustomerRepository {
	return &customerRepositoryImpl{db: db}
}

const customerColumns = `id, full_name, email, phone, address, segment, created_at, updated_at`

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.Segment, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *customerRepositoryImpl) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (full_name, email, phone, address, segment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	created, err := scanCustomer(q.QueryRow(ctx, query, c.FullName, c.Email, c.Phone, c.Address, c.Segment))
	if err != nil {
		return customer.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return created, nil
}

func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

func (r *customerRepositoryImpl) List(ctx context.Context, filter customer.CustomerFilter) ([]customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customerColumns + ` FROM customers`
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Segment != nil && *filter.Segment != "" {
		conditions = append(conditions, fmt.Sprintf("segment = $%d", argIdx))
		args = append(args, *filter.Segment)
		argIdx++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (r *customerRepositoryImpl) Update(ctx context.Context, req customer.UpdateCustomerRequest) error {
	q := GetQuerier(ctx, r.db)

	var setClauses []string
	var args []interface{}
	argIdx := 1

	if req.FullName != nil {
		setClauses = append(setClauses, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Address != nil {
		setClauses = append(setClauses, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Segment != nil {
		setClauses = append(setClauses, fmt.Sprintf("segment = $%d", argIdx))
		args = append(args, *req.Segment)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE customers SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), argIdx)

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return customer.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

func (r *customerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}
