package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateComplaintRequest struct {
	ComplaintType string   `json:"complaint_type"`
	Description   string   `json:"description"`
	AttachmentURL string   `json:"attachment_url"`
	Address       string   `json:"address"`
	Priority      Priority `json:"priority"`
}

type UpdateComplaintRequest struct {
	ComplaintType string `json:"complaint_type"`
	Description   string `json:"description"`
	Address       string `json:"address"`
}

type ChangeComplaintStatusRequest struct {
	Status ComplaintStatus `json:"status"`
}

type CreateContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type CreateBillRequest struct {
	UserID     int64    `json:"user_id"`
	BillType   BillType `json:"bill_type"`
	ConsumerID string   `json:"consumer_id"`
	Amount     float64  `json:"amount"`
}
