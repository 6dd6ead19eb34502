package models

import "time"

const (
	ShiftStatusOpen   = "open"
	ShiftStatusClosed = "closed"
)

// Shift is one work session at one register. ClosingMeta holds the
// serialized closing blob; it is parsed once by the back office and
// never interpreted by the store layer.
type Shift struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	LocationID int32  `gorm:"column:location_id;not null;index" json:"locationId"`
	Status     string `gorm:"column:status;type:varchar(20);not null;default:'open'" json:"status"`

	StartTime time.Time  `gorm:"column:start_time;not null" json:"startTime"`
	EndTime   *time.Time `gorm:"column:end_time" json:"endTime"`

	// Cash figures in minor currency units.
	InitialCash int64  `gorm:"column:initial_cash;not null;default:0" json:"initialCash"`
	FinalCash   *int64 `gorm:"column:final_cash" json:"finalCash"`

	ClosingMeta *string `gorm:"column:closing_meta;type:text" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Shift) TableName() string {
	return "shifts"
}
