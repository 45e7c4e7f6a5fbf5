package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartcity-server/internal/model"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

const contactColumns = `id, user_id, name, email, COALESCE(phone_number, ''), message, submitted_at`

func (r *ContactRepository) Create(ctx context.Context, c model.Contact) (model.Contact, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (user_id, name, email, phone_number, message, submitted_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		 RETURNING id`,
		c.UserID, c.Name, c.Email, c.PhoneNumber, c.Message, c.SubmittedAt).
		Scan(&c.ID)
	if err != nil {
		return model.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int64) (model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber, &c.Message, &c.SubmittedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Contact{}, model.ErrContactNotFound
	}
	if err != nil {
		return model.Contact{}, fmt.Errorf("find contact by id: %w", err)
	}
	return c, nil
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *ContactRepository) FindByUser(ctx context.Context, userID int64) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE user_id = $1 ORDER BY submitted_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts by user: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrContactNotFound
	}
	return nil
}

func scanContacts(rows pgx.Rows) ([]model.Contact, error) {
	contacts := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber, &c.Message, &c.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
