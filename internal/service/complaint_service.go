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

// ComplaintService owns complaint CRUD. Authentication establishes who the
// caller is before these methods run; the owner-or-admin decision for the
// specific row happens here.
type ComplaintService struct {
	complaints ComplaintStore
}

func NewComplaintService(complaints ComplaintStore) *ComplaintService {
	return &ComplaintService{complaints: complaints}
}

func (s *ComplaintService) Create(ctx context.Context, principal auth.Principal, req model.CreateComplaintRequest) (model.Complaint, error) {
	complaintType := strings.TrimSpace(req.ComplaintType)
	description := strings.TrimSpace(req.Description)

	if complaintType == "" || description == "" {
		return model.Complaint{}, apierror.New("BAD_REQUEST", "complaint_type and description are required", "", http.StatusBadRequest)
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	if !priority.Valid() {
		return model.Complaint{}, apierror.New("BAD_REQUEST", "invalid priority", string(priority), http.StatusBadRequest)
	}

	now := time.Now().UTC()
	created, err := s.complaints.Create(ctx, model.Complaint{
		UserID:        principal.ID,
		ComplaintType: complaintType,
		Description:   description,
		AttachmentURL: strings.TrimSpace(req.AttachmentURL),
		Address:       strings.TrimSpace(req.Address),
		Status:        model.ComplaintPending,
		Priority:      priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return model.Complaint{}, err
	}

	slog.Info("complaint created", "complaint_id", created.ID, "user_id", principal.ID)
	return created, nil
}

func (s *ComplaintService) Get(ctx context.Context, principal auth.Principal, id int64) (model.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return model.Complaint{}, err
	}

	if !principal.CanAccess(complaint.UserID) {
		slog.Warn("complaint access denied", "complaint_id", id, "user_id", principal.ID)
		return model.Complaint{}, model.ErrAccessDenied
	}

	return complaint, nil
}

// List returns every complaint for admins and only the caller's own rows for
// citizens. The restriction is a query filter, not a per-item check.
func (s *ComplaintService) List(ctx context.Context, principal auth.Principal) ([]model.Complaint, error) {
	if principal.Role == auth.RoleAdmin {
		return s.complaints.FindAll(ctx)
	}

	return s.complaints.FindByUser(ctx, principal.ID)
}

func (s *ComplaintService) Update(ctx context.Context, principal auth.Principal, id int64, req model.UpdateComplaintRequest) (model.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return model.Complaint{}, err
	}

	if !principal.CanAccess(complaint.UserID) {
		slog.Warn("complaint update denied", "complaint_id", id, "user_id", principal.ID)
		return model.Complaint{}, model.ErrAccessDenied
	}

	if v := strings.TrimSpace(req.ComplaintType); v != "" {
		complaint.ComplaintType = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		complaint.Description = v
	}
	if v := strings.TrimSpace(req.Address); v != "" {
		complaint.Address = v
	}
	complaint.UpdatedAt = time.Now().UTC()

	updated, err := s.complaints.Update(ctx, complaint)
	if err != nil {
		return model.Complaint{}, err
	}

	slog.Info("complaint updated", "complaint_id", updated.ID, "user_id", principal.ID)
	return updated, nil
}

// ChangeStatus is the admin review operation; the router restricts it to the
// ADMIN role, so no ownership check applies.
func (s *ComplaintService) ChangeStatus(ctx context.Context, id int64, status model.ComplaintStatus) (model.Complaint, error) {
	if !status.Valid() {
		return model.Complaint{}, apierror.New("BAD_REQUEST", "invalid complaint status", string(status), http.StatusBadRequest)
	}

	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return model.Complaint{}, err
	}

	complaint.Status = status
	complaint.UpdatedAt = time.Now().UTC()

	updated, err := s.complaints.Update(ctx, complaint)
	if err != nil {
		return model.Complaint{}, err
	}

	slog.Info("complaint status changed", "complaint_id", id, "status", status)
	return updated, nil
}
