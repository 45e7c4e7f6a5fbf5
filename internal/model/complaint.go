package model

import "time"

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "PENDING"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintRejected   ComplaintStatus = "REJECTED"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintRejected:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Complaint is a citizen-filed issue. UserID records the creator and is the
// basis of row-level authorization; it is set once and never reassigned.
type Complaint struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	ComplaintType string          `json:"complaint_type"`
	Description   string          `json:"description"`
	AttachmentURL string          `json:"attachment_url,omitempty"`
	Address       string          `json:"address,omitempty"`
	Status        ComplaintStatus `json:"status"`
	Priority      Priority        `json:"priority"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
