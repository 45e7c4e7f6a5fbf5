package service

import (
	"context"
	"strings"
	"sync"

	"smartcity-server/internal/model"
)

// In-memory store implementations backing the service tests. They honor the
// same sentinel-error contract as the PostgreSQL repositories.

type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: make(map[int64]model.User)}
}

func (s *memUserStore) add(user model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	s.users[user.ID] = user
	return user
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return model.User{}, model.ErrDuplicateUser
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type memComplaintStore struct {
	mu         sync.Mutex
	nextID     int64
	complaints map[int64]model.Complaint
}

func newMemComplaintStore() *memComplaintStore {
	return &memComplaintStore{nextID: 1, complaints: make(map[int64]model.Complaint)}
}

func (s *memComplaintStore) Create(_ context.Context, complaint model.Complaint) (model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	complaint.ID = s.nextID
	s.nextID++
	s.complaints[complaint.ID] = complaint
	return complaint, nil
}

func (s *memComplaintStore) FindByID(_ context.Context, id int64) (model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	complaint, ok := s.complaints[id]
	if !ok {
		return model.Complaint{}, model.ErrComplaintNotFound
	}
	return complaint, nil
}

func (s *memComplaintStore) FindAll(_ context.Context) ([]model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Complaint, 0, len(s.complaints))
	for _, complaint := range s.complaints {
		out = append(out, complaint)
	}
	return out, nil
}

func (s *memComplaintStore) FindByUser(_ context.Context, userID int64) ([]model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Complaint, 0)
	for _, complaint := range s.complaints {
		if complaint.UserID == userID {
			out = append(out, complaint)
		}
	}
	return out, nil
}

func (s *memComplaintStore) Update(_ context.Context, complaint model.Complaint) (model.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.complaints[complaint.ID]; !ok {
		return model.Complaint{}, model.ErrComplaintNotFound
	}
	s.complaints[complaint.ID] = complaint
	return complaint, nil
}

type memContactStore struct {
	mu       sync.Mutex
	nextID   int64
	contacts map[int64]model.Contact
}

func newMemContactStore() *memContactStore {
	return &memContactStore{nextID: 1, contacts: make(map[int64]model.Contact)}
}

func (s *memContactStore) Create(_ context.Context, contact model.Contact) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact.ID = s.nextID
	s.nextID++
	s.contacts[contact.ID] = contact
	return contact, nil
}

func (s *memContactStore) FindByID(_ context.Context, id int64) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact, ok := s.contacts[id]
	if !ok {
		return model.Contact{}, model.ErrContactNotFound
	}
	return contact, nil
}

func (s *memContactStore) FindAll(_ context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Contact, 0, len(s.contacts))
	for _, contact := range s.contacts {
		out = append(out, contact)
	}
	return out, nil
}

func (s *memContactStore) FindByUser(_ context.Context, userID int64) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Contact, 0)
	for _, contact := range s.contacts {
		if contact.UserID == userID {
			out = append(out, contact)
		}
	}
	return out, nil
}

func (s *memContactStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return model.ErrContactNotFound
	}
	delete(s.contacts, id)
	return nil
}

type memBillStore struct {
	mu     sync.Mutex
	nextID int64
	bills  map[int64]model.Bill
}

func newMemBillStore() *memBillStore {
	return &memBillStore{nextID: 1, bills: make(map[int64]model.Bill)}
}

func (s *memBillStore) Create(_ context.Context, bill model.Bill) (model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bill.ID = s.nextID
	s.nextID++
	s.bills[bill.ID] = bill
	return bill, nil
}

func (s *memBillStore) FindByID(_ context.Context, id int64) (model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bill, ok := s.bills[id]
	if !ok {
		return model.Bill{}, model.ErrBillNotFound
	}
	return bill, nil
}

func (s *memBillStore) FindAll(_ context.Context) ([]model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Bill, 0, len(s.bills))
	for _, bill := range s.bills {
		out = append(out, bill)
	}
	return out, nil
}

func (s *memBillStore) FindByUser(_ context.Context, userID int64) ([]model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Bill, 0)
	for _, bill := range s.bills {
		if bill.UserID == userID {
			out = append(out, bill)
		}
	}
	return out, nil
}

func (s *memBillStore) Update(_ context.Context, bill model.Bill) (model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bills[bill.ID]; !ok {
		return model.Bill{}, model.ErrBillNotFound
	}
	s.bills[bill.ID] = bill
	return bill, nil
}
