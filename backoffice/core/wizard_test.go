package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasira.com/kasira/core/models"
)

type fakeShiftStore struct {
	shift  *models.Shift
	totals CashTotals

	closeErr    error
	closeCalls  int
	closedID    uint
	closeParams CloseShiftParams
}

func (f *fakeShiftStore) ShiftByID(ctx context.Context, id uint) (*models.Shift, error) {
	if f.shift == nil || f.shift.ID != id {
		return nil, nil
	}
	return f.shift, nil
}

func (f *fakeShiftStore) ShiftsByDateRange(ctx context.Context, start, end time.Time, status string) ([]models.Shift, error) {
	return nil, nil
}

func (f *fakeShiftStore) ShiftCashTotals(ctx context.Context, shiftID uint) (CashTotals, error) {
	return f.totals, nil
}

func (f *fakeShiftStore) CloseShift(ctx context.Context, shiftID uint, params CloseShiftParams) error {
	f.closeCalls++
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closedID = shiftID
	f.closeParams = params
	return nil
}

type fakeProductStore struct {
	products map[int32]models.Product
}

func (f *fakeProductStore) FindProductByID(ctx context.Context, id int32) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func newTestStores() (*fakeShiftStore, *fakeProductStore) {
	store := &fakeShiftStore{
		shift: &models.Shift{
			ID:          42,
			Status:      models.ShiftStatusOpen,
			StartTime:   time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC),
			InitialCash: 50000,
		},
		totals: CashTotals{
			SalesCash: 300000,
			SalesCard: 150000,
			Expenses:  20000,
			Tips:      10000,
		},
	}
	products := &fakeProductStore{products: map[int32]models.Product{
		1: {ID: 1, Name: "Kopi Susu", Category: "beverages", Price: 25000},
		2: {ID: 2, Name: "Nasi Goreng", Category: "food", Price: 40000},
	}}
	return store, products
}

func TestStartWizard(t *testing.T) {
	store, products := newTestStores()

	w, err := StartWizard(context.Background(), store, products, 42)
	require.NoError(t, err)
	assert.Equal(t, StageOperationalAudit, w.Stage())

	d := w.Draft()
	assert.Equal(t, int64(50000), d.Operational.BaseCash)
	assert.Equal(t, int64(300000), d.Operational.SalesCash)
	assert.Equal(t, int64(10000), d.TipsPool)
	// Audited cash is seeded with the computed expected cash.
	assert.Equal(t, int64(320000), d.Operational.AuditedCash)

	t.Run("Unknown shift", func(t *testing.T) {
		_, err := StartWizard(context.Background(), store, products, 999)
		assert.ErrorIs(t, err, ErrShiftNotFound)
	})

	t.Run("Closed shift", func(t *testing.T) {
		store.shift.Status = models.ShiftStatusClosed
		_, err := StartWizard(context.Background(), store, products, 42)
		assert.ErrorIs(t, err, ErrShiftNotOpen)
		store.shift.Status = models.ShiftStatusOpen
	})
}

func TestWizardNavigation(t *testing.T) {
	store, products := newTestStores()
	w, err := StartWizard(context.Background(), store, products, 42)
	require.NoError(t, err)

	require.NoError(t, w.Advance())
	assert.Equal(t, StageAccountingEntry, w.Stage())

	require.NoError(t, w.AddExpense("supplier delivery", 4000))
	require.NoError(t, w.SetAccountingCash(10000, 90000))

	require.NoError(t, w.Advance())
	assert.Equal(t, StageTipsReview, w.Stage())

	// Backward navigation keeps entered data.
	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	assert.Equal(t, StageOperationalAudit, w.Stage())
	assert.Len(t, w.Draft().Accounting.Expenses, 1)
	assert.Equal(t, int64(90000), w.Draft().Accounting.AuditedCash)

	// Back from the first stage stays put.
	require.NoError(t, w.Back())
	assert.Equal(t, StageOperationalAudit, w.Stage())

	// Forward again to the terminal stage.
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	assert.Equal(t, StageConfirm, w.Stage())
	assert.ErrorIs(t, w.Advance(), ErrWizardTerminal)
}

func TestWizardEntryValidation(t *testing.T) {
	store, products := newTestStores()
	w, err := StartWizard(context.Background(), store, products, 42)
	require.NoError(t, err)

	t.Run("Stage guards", func(t *testing.T) {
		assert.ErrorIs(t, w.AddExpense("x", 100), ErrWrongStage)
		assert.ErrorIs(t, w.SetTipsDelivered(100), ErrWrongStage)
	})

	require.NoError(t, w.Advance())

	t.Run("Expense without description is rejected at entry", func(t *testing.T) {
		assert.ErrorIs(t, w.AddExpense("", 100), ErrMissingDescription)
		assert.ErrorIs(t, w.AddExpense("ice", 0), ErrInvalidAmount)
		assert.Empty(t, w.Draft().Accounting.Expenses)
	})

	t.Run("Sale line validation", func(t *testing.T) {
		assert.ErrorIs(t, w.AddSaleLine(context.Background(), 1, 0), ErrInvalidQuantity)
		assert.ErrorIs(t, w.AddSaleLine(context.Background(), 77, 1), ErrUnknownProduct)

		require.NoError(t, w.AddSaleLine(context.Background(), 1, 2))
		lines := w.Draft().Accounting.Lines
		require.Len(t, lines, 1)
		assert.Equal(t, int64(25000), lines[0].UnitPrice)
		assert.Equal(t, int64(50000), lines[0].Total())
	})

	t.Run("Line removal", func(t *testing.T) {
		assert.Error(t, w.RemoveSaleLine(5))
		require.NoError(t, w.RemoveSaleLine(0))
		assert.Empty(t, w.Draft().Accounting.Lines)
	})
}

func TestWizardConfirm(t *testing.T) {
	walkToConfirm := func(t *testing.T, store *fakeShiftStore, products *fakeProductStore) *Wizard {
		w, err := StartWizard(context.Background(), store, products, 42)
		require.NoError(t, err)

		require.NoError(t, w.SetAuditedCash(150000))
		require.NoError(t, w.Advance())

		require.NoError(t, w.AddSaleLine(context.Background(), 1, 2)) // 50000
		require.NoError(t, w.AddSaleLine(context.Background(), 2, 1)) // 40000
		require.NoError(t, w.AddExpense("market run", 4000))
		require.NoError(t, w.SetAccountingCash(10000, 90000))
		require.NoError(t, w.Advance())

		require.NoError(t, w.SetTipsDelivered(8000))
		require.NoError(t, w.Advance())
		require.Equal(t, StageConfirm, w.Stage())
		return w
	}

	t.Run("Atomic close with combined counted cash", func(t *testing.T) {
		store, products := newTestStores()
		w := walkToConfirm(t, store, products)

		assert.Equal(t, int64(240000), w.FinalHandover())
		require.NoError(t, w.Confirm(context.Background()))
		assert.True(t, w.Closed())

		assert.Equal(t, 1, store.closeCalls)
		assert.Equal(t, uint(42), store.closedID)
		assert.Equal(t, int64(240000), store.closeParams.FinalCash)
		assert.False(t, store.closeParams.EndTime.IsZero())

		meta := store.closeParams.Meta
		require.NotNil(t, meta.Operational)
		require.NotNil(t, meta.Accounting)
		assert.Equal(t, int64(150000), meta.Operational.CashAuditCount)
		assert.Equal(t, int64(90000), meta.Accounting.CashAuditCount)
		assert.Equal(t, int64(90000), meta.Accounting.SalesCash)
		assert.Equal(t, int64(4000), meta.Accounting.ExpensesTotal)
		assert.Equal(t, map[string]int64{"beverages": 50000, "food": 40000}, meta.Accounting.SalesByCategory)
		require.NotNil(t, meta.TipsDelivered)
		assert.Equal(t, int64(8000), *meta.TipsDelivered)

		t.Run("Blob round-trips through the builder", func(t *testing.T) {
			encoded, err := EncodeClosingMeta(meta)
			require.NoError(t, err)

			closed := *store.shift
			closed.Status = models.ShiftStatusClosed
			closed.FinalCash = &store.closeParams.FinalCash
			u := BuildUnifiedClosing(&closed, encoded)
			assert.Equal(t, int64(240000), u.Summarize(ViewAll).CashAuditCount)
		})
	})

	t.Run("Failed write keeps the wizard open for retry", func(t *testing.T) {
		store, products := newTestStores()
		w := walkToConfirm(t, store, products)

		store.closeErr = errors.New("deadlock found when trying to get lock")
		err := w.Confirm(context.Background())
		require.Error(t, err)
		assert.Equal(t, StageConfirm, w.Stage())
		assert.False(t, w.Closed())
		assert.Equal(t, int64(240000), w.FinalHandover())

		store.closeErr = nil
		require.NoError(t, w.Confirm(context.Background()))
		assert.Equal(t, 2, store.closeCalls)
	})

	t.Run("Cancel writes nothing", func(t *testing.T) {
		store, products := newTestStores()
		w := walkToConfirm(t, store, products)

		w.Cancel()
		assert.Equal(t, 0, store.closeCalls)
		assert.ErrorIs(t, w.Confirm(context.Background()), ErrWizardClosed)
	})

	t.Run("Confirm only from the terminal stage", func(t *testing.T) {
		store, products := newTestStores()
		w, err := StartWizard(context.Background(), store, products, 42)
		require.NoError(t, err)
		assert.ErrorIs(t, w.Confirm(context.Background()), ErrWrongStage)
	})
}
