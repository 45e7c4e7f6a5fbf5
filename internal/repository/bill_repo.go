package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartcity-server/internal/model"
)

type BillRepository struct {
	pool *pgxpool.Pool
}

func NewBillRepository(pool *pgxpool.Pool) *BillRepository {
	return &BillRepository{pool: pool}
}

const billColumns = `id, user_id, bill_type, consumer_id, amount, paid, paid_at, created_at`

func (r *BillRepository) Create(ctx context.Context, b model.Bill) (model.Bill, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bills (user_id, bill_type, consumer_id, amount, paid, paid_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		b.UserID, b.BillType, b.ConsumerID, b.Amount, b.Paid, b.PaidAt, b.CreatedAt).
		Scan(&b.ID)
	if err != nil {
		return model.Bill{}, fmt.Errorf("create bill: %w", err)
	}
	return b, nil
}

func (r *BillRepository) FindByID(ctx context.Context, id int64) (model.Bill, error) {
	var b model.Bill
	err := r.pool.QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills WHERE id = $1`, id).
		Scan(&b.ID, &b.UserID, &b.BillType, &b.ConsumerID, &b.Amount, &b.Paid, &b.PaidAt, &b.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bill{}, model.ErrBillNotFound
	}
	if err != nil {
		return model.Bill{}, fmt.Errorf("find bill by id: %w", err)
	}
	return b, nil
}

func (r *BillRepository) FindAll(ctx context.Context) ([]model.Bill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+billColumns+` FROM bills ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	return scanBills(rows)
}

func (r *BillRepository) FindByUser(ctx context.Context, userID int64) ([]model.Bill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+billColumns+` FROM bills WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bills by user: %w", err)
	}
	defer rows.Close()

	return scanBills(rows)
}

func (r *BillRepository) Update(ctx context.Context, b model.Bill) (model.Bill, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bills
		 SET bill_type = $2, consumer_id = $3, amount = $4, paid = $5, paid_at = $6
		 WHERE id = $1`,
		b.ID, b.BillType, b.ConsumerID, b.Amount, b.Paid, b.PaidAt)
	if err != nil {
		return model.Bill{}, fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Bill{}, model.ErrBillNotFound
	}
	return b, nil
}

func scanBills(rows pgx.Rows) ([]model.Bill, error) {
	bills := make([]model.Bill, 0)
	for rows.Next() {
		var b model.Bill
		if err := rows.Scan(&b.ID, &b.UserID, &b.BillType, &b.ConsumerID, &b.Amount, &b.Paid, &b.PaidAt, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
