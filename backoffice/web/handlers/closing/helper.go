package closing

import (
	"time"

	core "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
	web "kasira.com/kasira/web/common"
)

type SourceDTO struct {
	core.Summary
	SalesByCategory map[string]int64  `json:"salesByCategory,omitempty"`
	Attachments     map[string]string `json:"attachments,omitempty"`
	MissingSlots    []string          `json:"missingSlots,omitempty"`
}

func newSourceDTO(s *core.SourceClosing, kind core.SourceKind) *SourceDTO {
	if s == nil {
		return nil
	}
	dto := &SourceDTO{
		Summary:         core.Summarize(s),
		SalesByCategory: s.SalesByCategory,
		Attachments:     s.Attachments,
	}
	for _, slot := range core.RequiredSlots(kind) {
		if !core.IsSlotFilled(s, slot) {
			dto.MissingSlots = append(dto.MissingSlots, slot)
		}
	}
	return dto
}

// ClosingDTO is the list row of the closings screen: one shift with the
// derived figures of the requested view.
type ClosingDTO struct {
	ShiftID    uint      `json:"shiftId"`
	LocationID int32     `json:"locationId"`
	Date       string    `json:"date"`
	StartTime  time.Time `json:"startTime"`
	Status     string    `json:"status"`
	Complete   bool      `json:"complete"`

	Summary         core.Summary `json:"summary"`
	HandoverDisplay string       `json:"handoverDisplay"`

	MetaError string `json:"metaError,omitempty"`
}

type ClosingDetailDTO struct {
	ShiftID    uint       `json:"shiftId"`
	LocationID int32      `json:"locationId"`
	Date       string     `json:"date"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Status     string     `json:"status"`
	Complete   bool       `json:"complete"`

	Operational *SourceDTO `json:"operational"`
	Accounting  *SourceDTO `json:"accounting"`

	Combined        core.Summary `json:"combined"`
	HandoverDisplay string       `json:"handoverDisplay"`

	TipsDelivered *int64 `json:"tipsDelivered,omitempty"`
	MetaError     string `json:"metaError,omitempty"`
}

func newClosingDTO(u *core.UnifiedClosing, filter core.ViewFilter) ClosingDTO {
	summary := u.Summarize(filter)
	dto := ClosingDTO{
		ShiftID:         u.ShiftID,
		LocationID:      u.LocationID,
		Date:            u.Date,
		StartTime:       u.StartTime,
		Status:          u.Status,
		Complete:        u.IsComplete(),
		Summary:         summary,
		HandoverDisplay: web.FormatCurrency(summary.NetHandover),
	}
	if u.MetaError != nil {
		dto.MetaError = u.MetaError.Error()
	}
	return dto
}

func buildClosings(shifts []models.Shift) []*core.UnifiedClosing {
	return utils.Map(shifts, func(s models.Shift) *core.UnifiedClosing {
		shift := s
		return core.BuildUnifiedClosing(&shift, shift.ClosingMeta)
	})
}
