package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailshop/customer-services/internal/customersvc/models"
)

// pg unique constraint violation
const uniqueViolationCode = "23505"

// updatableColumns maps request field names to column identifiers, in the
// order assignments are built. Update requests may only touch columns listed
// here; caller input never reaches SQL as an identifier.
var updatableColumns = []struct {
	field  string
	column string
}{
	{"name", "name"},
	{"address", "address"},
	{"email", "email"},
	{"dateOfBirth", "date_of_birth"},
	{"gender", "gender"},
	{"age", "age"},
	{"cardHolderName", "card_holder_name"},
	{"cardNumber", "card_number"},
	{"expiryDate", "expiry_date"},
	{"cvv", "cvv"},
	{"timeStamp", "time_stamp"},
}

type CustomerStore struct {
	db *pgxpool.Pool
}

func NewCustomerStore(db *pgxpool.Pool) *CustomerStore {
	return &CustomerStore{db: db}
}

// Create inserts a fully-populated customer row and returns the generated id
// together with a confirmation message. A unique-constraint violation on the
// email column surfaces as models.ErrDuplicateEmail.
func (s *CustomerStore) Create(ctx context.Context, c *models.Customer) (int64, string, error) {
	var customerId int64

	query := `
        INSERT INTO customer
            (name, address, email, date_of_birth, gender, age, card_holder_name, card_number, expiry_date, cvv, time_stamp)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING customer_id;
    `

	err := s.db.QueryRow(ctx, query,
		c.Name, c.Address, c.Email, c.DateOfBirth, c.Gender, c.Age,
		c.CardHolderName, c.CardNumber, c.ExpiryDate, c.CVV, c.TimeStamp,
	).Scan(&customerId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, "", models.ErrDuplicateEmail
		}
		return 0, "", fmt.Errorf("could not create customer: %w", err)
	}

	message := fmt.Sprintf("Customer %s has registered successfully", c.Name)
	return customerId, message, nil
}

// GetByEmail returns the full customer row for an exact email match, or nil
// when no customer has that address.
func (s *CustomerStore) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	row := s.db.QueryRow(ctx, `
        SELECT customer_id, name, address, email, date_of_birth, gender, age,
               card_holder_name, card_number, expiry_date, cvv, time_stamp, created_at
        FROM customer
        WHERE email = $1
    `, email)

	c := &models.Customer{}
	err := row.Scan(
		&c.CustomerId,
		&c.Name,
		&c.Address,
		&c.Email,
		&c.DateOfBirth,
		&c.Gender,
		&c.Age,
		&c.CardHolderName,
		&c.CardNumber,
		&c.ExpiryDate,
		&c.CVV,
		&c.TimeStamp,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

// GetByID returns the public projection only. Card number and CVV are never
// selected on this path.
func (s *CustomerStore) GetByID(ctx context.Context, customerId int64) (*models.PublicCustomer, error) {
	row := s.db.QueryRow(ctx, `
        SELECT customer_id, name, email, date_of_birth, gender
        FROM customer
        WHERE customer_id = $1
    `, customerId)

	c := &models.PublicCustomer{}
	err := row.Scan(
		&c.CustomerId,
		&c.Name,
		&c.Email,
		&c.DateOfBirth,
		&c.Gender,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

// List returns summaries of every customer, most recently created first.
// Unbounded on purpose; this system runs at small scale.
func (s *CustomerStore) List(ctx context.Context) ([]models.CustomerSummary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT customer_id, name, email
        FROM customer
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.CustomerSummary{}
	for rows.Next() {
		var c models.CustomerSummary
		if err := rows.Scan(&c.CustomerId, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		summaries = append(summaries, c)
	}

	return summaries, rows.Err()
}

// Update applies the given field values to one customer. An empty map fails
// with models.ErrEmptyUpdate, a field outside the whitelist with
// models.ErrUnknownField. Returns whether a row was affected.
func (s *CustomerStore) Update(ctx context.Context, customerId int64, fields map[string]any) (bool, error) {
	if len(fields) == 0 {
		return false, models.ErrEmptyUpdate
	}

	assignments := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields)+1)

	// walk the whitelist rather than the request map to keep the
	// assignment order stable
	for _, col := range updatableColumns {
		value, ok := fields[col.field]
		if !ok {
			continue
		}
		values = append(values, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col.column, len(values)))
	}

	if len(assignments) != len(fields) {
		for name := range fields {
			if !isUpdatable(name) {
				return false, fmt.Errorf("%w: %s", models.ErrUnknownField, name)
			}
		}
	}

	values = append(values, customerId)
	query := fmt.Sprintf(
		"UPDATE customer SET %s WHERE customer_id = $%d",
		strings.Join(assignments, ", "), len(values),
	)

	tag, err := s.db.Exec(ctx, query, values...)
	if err != nil {
		return false, fmt.Errorf("could not update customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func isUpdatable(field string) bool {
	for _, col := range updatableColumns {
		if col.field == field {
			return true
		}
	}
	return false
}

// Delete removes one customer by id and reports whether a row was removed.
func (s *CustomerStore) Delete(ctx context.Context, customerId int64) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM customer WHERE customer_id = $1", customerId)
	if err != nil {
		return false, fmt.Errorf("could not delete customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
