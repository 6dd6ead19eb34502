package models

import "time"

const (
	MovementSaleCash     = "sale_cash"
	MovementSaleCard     = "sale_card"
	MovementSaleTransfer = "sale_transfer"
	MovementExpense      = "expense"
	MovementTip          = "tip"
)

// CashMovement is one ledger row pushed by a register during a shift.
// Rows are append-only; corrections arrive as new rows.
type CashMovement struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	ShiftID     uint   `gorm:"column:shift_id;not null;index" json:"shiftId"`
	Kind        string `gorm:"column:kind;type:varchar(20);not null" json:"kind"`
	Amount      int64  `gorm:"column:amount;not null" json:"amount"`
	Description string `gorm:"column:description" json:"description"`
	Category    string `gorm:"column:category;type:varchar(50)" json:"category"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (CashMovement) TableName() string {
	return "cash_movements"
}
