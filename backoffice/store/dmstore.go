package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	backoffice "kasira.com/kasira/backoffice/core"
	"kasira.com/kasira/core"
	"kasira.com/kasira/core/models"
)

// DmStore implements the engine stores on top of the DatabaseManager,
// resolving a schema-bound connection per call. Unlike GormStore it holds
// no connection, so it is safe to keep across requests — wizard sessions
// hold one for their whole lifetime.
type DmStore struct {
	dm   *core.DatabaseManager
	host string
}

func NewDmStore(dm *core.DatabaseManager, host string) *DmStore {
	return &DmStore{dm: dm, host: host}
}

func (s *DmStore) ShiftByID(ctx context.Context, id uint) (*models.Shift, error) {
	var shift *models.Shift
	err := s.dm.Exec(ctx, s.host, func(db *gorm.DB) error {
		var e error
		shift, e = New(db).ShiftByID(ctx, id)
		return e
	})
	return shift, err
}

func (s *DmStore) ShiftsByDateRange(ctx context.Context, start, end time.Time, status string) ([]models.Shift, error) {
	var shifts []models.Shift
	err := s.dm.Exec(ctx, s.host, func(db *gorm.DB) error {
		var e error
		shifts, e = New(db).ShiftsByDateRange(ctx, start, end, status)
		return e
	})
	return shifts, err
}

func (s *DmStore) ShiftCashTotals(ctx context.Context, shiftID uint) (backoffice.CashTotals, error) {
	var totals backoffice.CashTotals
	err := s.dm.Exec(ctx, s.host, func(db *gorm.DB) error {
		var e error
		totals, e = New(db).ShiftCashTotals(ctx, shiftID)
		return e
	})
	return totals, err
}

func (s *DmStore) CloseShift(ctx context.Context, shiftID uint, params backoffice.CloseShiftParams) error {
	return s.dm.Exec(ctx, s.host, func(db *gorm.DB) error {
		return New(db).CloseShift(ctx, shiftID, params)
	})
}

func (s *DmStore) FindProductByID(ctx context.Context, id int32) (*models.Product, error) {
	var product *models.Product
	err := s.dm.Exec(ctx, s.host, func(db *gorm.DB) error {
		var e error
		product, e = New(db).FindProductByID(ctx, id)
		return e
	})
	return product, err
}
