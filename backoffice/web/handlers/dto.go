package handlers

import (
	"time"

	"kasira.com/kasira/web/common"
)

// RegisterPush is the sync payload a register sends when it comes back
// online: its shift headers and the movement ledger rows recorded since
// the last push.
type RegisterPush struct {
	Changes      Changes `json:"changes"`
	LastPushedAt int64   `json:"lastPushedAt"`
}

type Changes struct {
	Shifts    ShiftRecords    `json:"shifts"`
	Movements MovementRecords `json:"movements"`
}

type ShiftRecord struct {
	ID          uint                  `json:"id"`
	LocationID  int32                 `json:"locationId"`
	Status      string                `json:"status"`
	StartTime   common.LocalDateTime  `json:"startTime"`
	EndTime     *common.LocalDateTime `json:"endTime"`
	InitialCash int64                 `json:"initialCash"`
	FinalCash   *int64                `json:"finalCash"`
	ClosingMeta *string               `json:"closingMeta"`
}

type MovementRecord struct {
	ID          string    `json:"id"`
	ShiftID     uint      `json:"shiftId"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}

type ShiftRecords struct {
	Created []ShiftRecord `json:"created"`
	Updated []ShiftRecord `json:"updated"`
}

type MovementRecords struct {
	Created []MovementRecord `json:"created"`
	Updated []MovementRecord `json:"updated"`
}
