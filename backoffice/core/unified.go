package core

import (
	"time"

	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
)

// UnifiedClosing is one shift's reconciliation view, merging up to two
// sources. It is rebuilt from the shift row on every read and never
// persisted. Operational is always present — when the shift carries no
// usable closing blob a minimal source is synthesized from its own cash
// fields — so a UnifiedClosing with both sources absent cannot exist.
type UnifiedClosing struct {
	ShiftID    uint
	LocationID int32
	Date       string // business date, yyyy-MM-dd in store time
	StartTime  time.Time
	Status     string

	Operational   *SourceClosing
	Accounting    *SourceClosing
	TipsDelivered *int64

	// MetaError records a malformed blob that was recovered from; callers
	// may log it but the build itself never fails.
	MetaError error
}

// BuildUnifiedClosing assembles the view from a shift row and its raw
// closing blob. The blob is parsed exactly once, here; downstream code
// only ever sees the typed sources.
func BuildUnifiedClosing(shift *models.Shift, rawMeta any) *UnifiedClosing {
	meta, err := ParseClosingMeta(rawMeta)

	op := NormalizeOperational(meta, shift)

	return &UnifiedClosing{
		ShiftID:       shift.ID,
		LocationID:    shift.LocationID,
		Date:          utils.BusinessDate(shift.StartTime),
		StartTime:     shift.StartTime,
		Status:        shift.Status,
		Operational:   &op,
		Accounting:    NormalizeAccounting(meta),
		TipsDelivered: meta.TipsDelivered,
		MetaError:     err,
	}
}

// Source returns the payload for one source kind, nil when absent.
func (u *UnifiedClosing) Source(kind SourceKind) *SourceClosing {
	switch kind {
	case SourceOperational:
		return u.Operational
	case SourceAccounting:
		return u.Accounting
	}
	return nil
}

// IsComplete reports whether the accounting source exists and carries every
// attachment it requires. Recomputed on each call, never stored.
func (u *UnifiedClosing) IsComplete() bool {
	if u.Accounting == nil {
		return false
	}
	return HasRequiredAttachments(u.Accounting, SourceAccounting)
}

// Summarize returns the derived figures for the requested view. The
// combined view equals the fieldwise sum of the two per-source views; an
// absent source contributes zero to every aggregate.
func (u *UnifiedClosing) Summarize(filter ViewFilter) Summary {
	switch filter {
	case ViewOperational:
		return Summarize(u.Operational)
	case ViewAccounting:
		return Summarize(u.Accounting)
	default:
		return Summarize(u.Operational).Add(Summarize(u.Accounting))
	}
}
