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

// ContactService owns contact-message CRUD with the same owner-or-admin rule
// as complaints.
type ContactService struct {
	contacts ContactStore
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Create(ctx context.Context, principal auth.Principal, req model.CreateContactRequest) (model.Contact, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return model.Contact{}, apierror.New("BAD_REQUEST", "message is required", "", http.StatusBadRequest)
	}

	// Contact forms are usually prefilled from the profile; fall back to the
	// principal when the body omits name or email.
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = principal.Name
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = principal.Email
	}

	created, err := s.contacts.Create(ctx, model.Contact{
		UserID:      principal.ID,
		Name:        name,
		Email:       email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return model.Contact{}, err
	}

	slog.Info("contact submitted", "contact_id", created.ID, "user_id", principal.ID)
	return created, nil
}

func (s *ContactService) Get(ctx context.Context, principal auth.Principal, id int64) (model.Contact, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return model.Contact{}, err
	}

	if !principal.CanAccess(contact.UserID) {
		slog.Warn("contact access denied", "contact_id", id, "user_id", principal.ID)
		return model.Contact{}, model.ErrAccessDenied
	}

	return contact, nil
}

func (s *ContactService) List(ctx context.Context, principal auth.Principal) ([]model.Contact, error) {
	if principal.Role == auth.RoleAdmin {
		return s.contacts.FindAll(ctx)
	}

	return s.contacts.FindByUser(ctx, principal.ID)
}

func (s *ContactService) Delete(ctx context.Context, principal auth.Principal, id int64) error {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !principal.CanAccess(contact.UserID) {
		slog.Warn("contact delete denied", "contact_id", id, "user_id", principal.ID)
		return model.ErrAccessDenied
	}

	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("contact deleted", "contact_id", id, "user_id", principal.ID)
	return nil
}
