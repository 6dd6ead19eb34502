package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	backoffice "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/core/models"
)

// GormStore implements the engine's ShiftStore and ProductStore on a
// location-bound *gorm.DB obtained from the DatabaseManager.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ShiftByID(ctx context.Context, id uint) (*models.Shift, error) {
	var shift models.Shift
	result := s.db.WithContext(ctx).First(&shift, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &shift, nil
}

func (s *GormStore) ShiftsByDateRange(ctx context.Context, start, end time.Time, status string) ([]models.Shift, error) {
	query := s.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", start, end.Add(24*time.Hour)).
		Order("start_time")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var shifts []models.Shift
	if err := query.Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

type kindTotal struct {
	Kind  string
	Total int64
}

// ShiftCashTotals aggregates the shift's movement ledger by kind.
func (s *GormStore) ShiftCashTotals(ctx context.Context, shiftID uint) (backoffice.CashTotals, error) {
	var rows []kindTotal
	err := s.db.WithContext(ctx).
		Table("cash_movements").
		Select("kind, COALESCE(SUM(amount), 0) as total").
		Where("shift_id = ?", shiftID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return backoffice.CashTotals{}, err
	}

	var totals backoffice.CashTotals
	for _, row := range rows {
		switch row.Kind {
		case models.MovementSaleCash:
			totals.SalesCash = row.Total
		case models.MovementSaleCard:
			totals.SalesCard = row.Total
		case models.MovementSaleTransfer:
			totals.SalesTransfer = row.Total
		case models.MovementExpense:
			totals.Expenses = row.Total
		case models.MovementTip:
			totals.Tips = row.Total
		}
	}
	return totals, nil
}

// CloseShift is the one write of the remote-closing flow: status, end time,
// final cash and the consolidated blob in a single UPDATE. The status guard
// makes a lost race against another close surface as an error instead of a
// silent overwrite.
func (s *GormStore) CloseShift(ctx context.Context, shiftID uint, params backoffice.CloseShiftParams) error {
	blob, err := backoffice.EncodeClosingMeta(params.Meta)
	if err != nil {
		return fmt.Errorf("encode closing meta: %w", err)
	}

	result := s.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND status = ?", shiftID, models.ShiftStatusOpen).
		Updates(map[string]any{
			"status":       models.ShiftStatusClosed,
			"end_time":     params.EndTime,
			"final_cash":   params.FinalCash,
			"closing_meta": blob,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return backoffice.ErrShiftNotOpen
	}
	return nil
}

func (s *GormStore) FindProductByID(ctx context.Context, id int32) (*models.Product, error) {
	var product models.Product
	result := s.db.WithContext(ctx).Where("active = ?", true).First(&product, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

// RecordAttachment stores an uploaded document URL into the named slot of
// one source and writes the blob back. Uploads can arrive after the shift
// is closed, so no status guard here. An accounting slot on a shift without
// an accounting source creates an empty one; completeness still requires
// its required slots to be filled.
func (s *GormStore) RecordAttachment(ctx context.Context, shiftID uint, kind backoffice.SourceKind, slot, url string) error {
	shift, err := s.ShiftByID(ctx, shiftID)
	if err != nil {
		return err
	}
	if shift == nil {
		return backoffice.ErrShiftNotFound
	}

	meta, err := backoffice.ParseClosingMeta(shift.ClosingMeta)
	if err != nil {
		// Recovered: the malformed blob is replaced by a fresh one holding
		// just the attachment.
		meta = backoffice.ClosingMeta{}
	}

	var target *backoffice.SourceClosing
	switch kind {
	case backoffice.SourceOperational:
		if meta.Operational == nil {
			meta.Operational = &backoffice.SourceClosing{}
		}
		target = meta.Operational
	case backoffice.SourceAccounting:
		if meta.Accounting == nil {
			meta.Accounting = &backoffice.SourceClosing{}
		}
		target = meta.Accounting
	default:
		return fmt.Errorf("unknown source kind %q", kind)
	}

	if target.Attachments == nil {
		target.Attachments = map[string]string{}
	}
	target.Attachments[slot] = url

	blob, err := backoffice.EncodeClosingMeta(meta)
	if err != nil {
		return fmt.Errorf("encode closing meta: %w", err)
	}

	return s.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ?", shiftID).
		Update("closing_meta", blob).Error
}
