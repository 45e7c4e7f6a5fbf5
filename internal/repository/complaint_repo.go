package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartcity-server/internal/model"
)

type ComplaintRepository struct {
	pool *pgxpool.Pool
}

func NewComplaintRepository(pool *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{pool: pool}
}

const complaintColumns = `id, user_id, complaint_type, description,
	COALESCE(attachment_url, ''), COALESCE(address, ''), status, priority, created_at, updated_at`

func (r *ComplaintRepository) Create(ctx context.Context, c model.Complaint) (model.Complaint, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO complaints (user_id, complaint_type, description, attachment_url, address, status, priority, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)
		 RETURNING id`,
		c.UserID, c.ComplaintType, c.Description, c.AttachmentURL, c.Address, c.Status, c.Priority, c.CreatedAt, c.UpdatedAt).
		Scan(&c.ID)
	if err != nil {
		return model.Complaint{}, fmt.Errorf("create complaint: %w", err)
	}
	return c, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id int64) (model.Complaint, error) {
	var c model.Complaint
	err := r.pool.QueryRow(ctx,
		`SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.ComplaintType, &c.Description, &c.AttachmentURL,
			&c.Address, &c.Status, &c.Priority, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Complaint{}, model.ErrComplaintNotFound
	}
	if err != nil {
		return model.Complaint{}, fmt.Errorf("find complaint by id: %w", err)
	}
	return c, nil
}

func (r *ComplaintRepository) FindAll(ctx context.Context) ([]model.Complaint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+complaintColumns+` FROM complaints ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

func (r *ComplaintRepository) FindByUser(ctx context.Context, userID int64) ([]model.Complaint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+complaintColumns+` FROM complaints WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list complaints by user: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

func (r *ComplaintRepository) Update(ctx context.Context, c model.Complaint) (model.Complaint, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE complaints
		 SET complaint_type = $2, description = $3, attachment_url = NULLIF($4, ''),
		     address = NULLIF($5, ''), status = $6, priority = $7, updated_at = $8
		 WHERE id = $1`,
		c.ID, c.ComplaintType, c.Description, c.AttachmentURL, c.Address, c.Status, c.Priority, c.UpdatedAt)
	if err != nil {
		return model.Complaint{}, fmt.Errorf("update complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Complaint{}, model.ErrComplaintNotFound
	}
	return c, nil
}

func scanComplaints(rows pgx.Rows) ([]model.Complaint, error) {
	complaints := make([]model.Complaint, 0)
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.UserID, &c.ComplaintType, &c.Description, &c.AttachmentURL,
			&c.Address, &c.Status, &c.Priority, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
