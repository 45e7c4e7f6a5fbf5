package model

import "time"

type BillType string

const (
	BillElectricity BillType = "ELECTRICITY"
	BillWater       BillType = "WATER"
	BillGas         BillType = "GAS"
	BillPropertyTax BillType = "PROPERTY_TAX"
)

func (t BillType) Valid() bool {
	switch t {
	case BillElectricity, BillWater, BillGas, BillPropertyTax:
		return true
	default:
		return false
	}
}

// Bill is a utility bill issued by an administrator against a user account.
// Visibility follows the same owner-or-admin rule as complaints, keyed by
// UserID.
type Bill struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	BillType   BillType   `json:"bill_type"`
	ConsumerID string     `json:"consumer_id"`
	Amount     float64    `json:"amount"`
	Paid       bool       `json:"paid"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
