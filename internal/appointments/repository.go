package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Appointment is a booking request persisted by the assistant. The id is
// assigned by the database and immutable; duplicate name/date pairs are
// allowed.
type Appointment struct {
	ID   int64
	Name string
	Date time.Time
}

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository provides persistence for appointments.
type Repository struct {
	db Querier
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(db Querier) *Repository {
	if db == nil {
		panic("appointments: querier required")
	}
	return &Repository{db: db}
}

// Create inserts a new appointment row and returns it with the assigned id.
func (r *Repository) Create(ctx context.Context, name string, date time.Time) (*Appointment, error) {
	const q = `INSERT INTO appointments (name, time) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, q, name, date).Scan(&id); err != nil {
		return nil, fmt.Errorf("appointments: insert: %w", err)
	}
	return &Appointment{ID: id, Name: name, Date: date}, nil
}

// List returns all appointments ordered by date ascending.
func (r *Repository) List(ctx context.Context) ([]Appointment, error) {
	const q = `SELECT id, name, time FROM appointments ORDER BY time ASC, id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("appointments: list: %w", err)
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.Name, &a.Date); err != nil {
			return nil, fmt.Errorf("appointments: scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("appointments: rows: %w", err)
	}
	return out, nil
}
