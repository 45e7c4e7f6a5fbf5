package service

import (
	"context"

	"smartcity-server/internal/model"
)

// Store interfaces are declared on the consumer side; internal/repository
// provides the PostgreSQL implementations and tests substitute in-memory
// ones. Every lookup miss is reported with the matching sentinel from
// internal/model.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user model.User) (model.User, error)
}

type ComplaintStore interface {
	Create(ctx context.Context, complaint model.Complaint) (model.Complaint, error)
	FindByID(ctx context.Context, id int64) (model.Complaint, error)
	FindAll(ctx context.Context) ([]model.Complaint, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Complaint, error)
	Update(ctx context.Context, complaint model.Complaint) (model.Complaint, error)
}

type ContactStore interface {
	Create(ctx context.Context, contact model.Contact) (model.Contact, error)
	FindByID(ctx context.Context, id int64) (model.Contact, error)
	FindAll(ctx context.Context) ([]model.Contact, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type BillStore interface {
	Create(ctx context.Context, bill model.Bill) (model.Bill, error)
	FindByID(ctx context.Context, id int64) (model.Bill, error)
	FindAll(ctx context.Context) ([]model.Bill, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Bill, error)
	Update(ctx context.Context, bill model.Bill) (model.Bill, error)
}
