package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"smartcity-server/internal/auth"
	"smartcity-server/internal/model"
	"smartcity-server/pkg/apierror"
)

// BillService owns utility bills. Bills are created by administrators against
// a user account; visibility and payment follow the owner-or-admin rule keyed
// by that account.
type BillService struct {
	bills BillStore
	users UserStore
}

func NewBillService(bills BillStore, users UserStore) *BillService {
	return &BillService{bills: bills, users: users}
}

// Create issues a bill for a user. The router restricts this to admins; the
// target account must exist.
func (s *BillService) Create(ctx context.Context, req model.CreateBillRequest) (model.Bill, error) {
	if !req.BillType.Valid() {
		return model.Bill{}, apierror.New("BAD_REQUEST", "invalid bill type", string(req.BillType), http.StatusBadRequest)
	}
	if req.Amount <= 0 {
		return model.Bill{}, apierror.New("BAD_REQUEST", "amount must be greater than zero", "", http.StatusBadRequest)
	}
	consumerID := strings.TrimSpace(req.ConsumerID)
	if consumerID == "" {
		return model.Bill{}, apierror.New("BAD_REQUEST", "consumer_id is required", "", http.StatusBadRequest)
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return model.Bill{}, err
	}

	created, err := s.bills.Create(ctx, model.Bill{
		UserID:     req.UserID,
		BillType:   req.BillType,
		ConsumerID: consumerID,
		Amount:     req.Amount,
		Paid:       false,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return model.Bill{}, err
	}

	slog.Info("bill created", "bill_id", created.ID, "user_id", created.UserID)
	return created, nil
}

func (s *BillService) Get(ctx context.Context, principal auth.Principal, id int64) (model.Bill, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return model.Bill{}, err
	}

	if !principal.CanAccess(bill.UserID) {
		slog.Warn("bill access denied", "bill_id", id, "user_id", principal.ID)
		return model.Bill{}, model.ErrAccessDenied
	}

	return bill, nil
}

func (s *BillService) List(ctx context.Context, principal auth.Principal) ([]model.Bill, error) {
	if principal.Role == auth.RoleAdmin {
		return s.bills.FindAll(ctx)
	}

	return s.bills.FindByUser(ctx, principal.ID)
}

// MarkPaid settles a bill. Paying an already-paid bill is a no-op, not an
// error.
func (s *BillService) MarkPaid(ctx context.Context, principal auth.Principal, id int64) (model.Bill, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return model.Bill{}, err
	}

	if !principal.CanAccess(bill.UserID) {
		slog.Warn("bill payment denied", "bill_id", id, "user_id", principal.ID)
		return model.Bill{}, model.ErrAccessDenied
	}

	if bill.Paid {
		return bill, nil
	}

	now := time.Now().UTC()
	bill.Paid = true
	bill.PaidAt = &now

	updated, err := s.bills.Update(ctx, bill)
	if err != nil {
		return model.Bill{}, err
	}

	slog.Info("bill paid", "bill_id", id, "user_id", principal.ID)
	return updated, nil
}
