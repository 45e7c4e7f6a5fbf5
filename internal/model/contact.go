package model

import "time"

// Contact is a message submitted through the contact form. UserID records the
// submitting citizen for row-level access checks.
type Contact struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}
