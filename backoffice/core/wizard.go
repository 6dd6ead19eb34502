package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
)

// CashTotals are the shift's recorded register totals, aggregated from the
// cash movement ledger. Used to pre-populate the operational audit stage.
type CashTotals struct {
	SalesCash     int64
	SalesCard     int64
	SalesTransfer int64
	Expenses      int64
	Tips          int64
}

type CloseShiftParams struct {
	FinalCash int64
	EndTime   time.Time
	Meta      ClosingMeta
}

// ShiftStore is the persistence collaborator the engine depends on. The
// engine defines the interface; the GORM implementation lives with the
// store layer.
type ShiftStore interface {
	ShiftByID(ctx context.Context, id uint) (*models.Shift, error)
	ShiftsByDateRange(ctx context.Context, start, end time.Time, status string) ([]models.Shift, error)
	ShiftCashTotals(ctx context.Context, shiftID uint) (CashTotals, error)
	CloseShift(ctx context.Context, shiftID uint, params CloseShiftParams) error
}

type ProductStore interface {
	FindProductByID(ctx context.Context, id int32) (*models.Product, error)
}

type Stage string

const (
	StageOperationalAudit Stage = "operational_audit"
	StageAccountingEntry  Stage = "accounting_entry"
	StageTipsReview       Stage = "tips_review"
	StageConfirm          Stage = "confirm"
)

var stageOrder = []Stage{
	StageOperationalAudit,
	StageAccountingEntry,
	StageTipsReview,
	StageConfirm,
}

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNotOpen       = errors.New("shift is not open")
	ErrWizardTerminal     = errors.New("confirm is the final stage")
	ErrWizardClosed       = errors.New("wizard already confirmed")
	ErrWrongStage         = errors.New("operation not valid in current stage")
	ErrMissingDescription = errors.New("expense description is required")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnknownProduct     = errors.New("product not found")
)

type OperationalDraft struct {
	BaseCash      int64 `json:"baseCash"`
	SalesCash     int64 `json:"salesCash"`
	SalesCard     int64 `json:"salesCard"`
	SalesTransfer int64 `json:"salesTransfer"`
	ExpensesTotal int64 `json:"expensesTotal"`
	TipsTotal     int64 `json:"tipsTotal"`

	// AuditedCash is seeded with the computed expected cash and edited by
	// the operator to the physically counted figure.
	AuditedCash int64 `json:"auditedCash"`
}

// SaleLine is one ad-hoc accounting line: a product at its price at entry
// time. No discounts or modifiers.
type SaleLine struct {
	ProductID int32  `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

func (l SaleLine) Total() int64 {
	return l.Quantity * l.UnitPrice
}

type ExpenseLine struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type AccountingDraft struct {
	Lines       []SaleLine    `json:"lines"`
	Expenses    []ExpenseLine `json:"expenses"`
	BaseCash    int64         `json:"baseCash"`
	AuditedCash int64         `json:"auditedCash"`
}

// Draft is the single aggregate threaded through every stage. Nothing in it
// touches the store until Confirm.
type Draft struct {
	Operational   OperationalDraft `json:"operational"`
	Accounting    AccountingDraft  `json:"accounting"`
	TipsPool      int64            `json:"tipsPool"`
	TipsDelivered int64            `json:"tipsDelivered"`
}

// Wizard drives the remote closing of one shift: operational audit, manual
// accounting entry, tip disbursement review, confirm. Linear; backward
// navigation keeps entered data; the only write happens on Confirm.
// A Wizard is owned by a single operator session and is not safe for
// concurrent use.
type Wizard struct {
	shiftID  uint
	stage    Stage
	draft    Draft
	store    ShiftStore
	products ProductStore
	closed   bool
}

// StartWizard loads the shift, pulls its register totals and seeds the
// operational audit with them. The audited-cash field starts at the
// computed expected cash.
func StartWizard(ctx context.Context, store ShiftStore, products ProductStore, shiftID uint) (*Wizard, error) {
	shift, err := store.ShiftByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("load shift %d: %w", shiftID, err)
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}
	if shift.Status != models.ShiftStatusOpen {
		return nil, ErrShiftNotOpen
	}

	totals, err := store.ShiftCashTotals(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("load shift %d totals: %w", shiftID, err)
	}

	op := OperationalDraft{
		BaseCash:      shift.InitialCash,
		SalesCash:     totals.SalesCash,
		SalesCard:     totals.SalesCard,
		SalesTransfer: totals.SalesTransfer,
		ExpensesTotal: totals.Expenses,
		TipsTotal:     totals.Tips,
	}
	op.AuditedCash = op.BaseCash + op.SalesCash - op.ExpensesTotal - op.TipsTotal

	return &Wizard{
		shiftID:  shiftID,
		stage:    StageOperationalAudit,
		store:    store,
		products: products,
		draft: Draft{
			Operational: op,
			TipsPool:    totals.Tips,
		},
	}, nil
}

func (w *Wizard) ShiftID() uint { return w.shiftID }
func (w *Wizard) Stage() Stage  { return w.stage }
func (w *Wizard) Closed() bool  { return w.closed }

// Draft returns a copy for rendering; mutations go through the stage
// setters.
func (w *Wizard) Draft() Draft {
	d := w.draft
	d.Accounting.Lines = append([]SaleLine(nil), w.draft.Accounting.Lines...)
	d.Accounting.Expenses = append([]ExpenseLine(nil), w.draft.Accounting.Expenses...)
	return d
}

func stageIndex(s Stage) int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return 0
}

// Advance moves to the next stage after validating the current one.
func (w *Wizard) Advance() error {
	if w.closed {
		return ErrWizardClosed
	}
	if w.stage == StageConfirm {
		return ErrWizardTerminal
	}
	if err := w.validateStage(); err != nil {
		return err
	}
	w.stage = stageOrder[stageIndex(w.stage)+1]
	return nil
}

// Back moves one stage backward. Entered data is kept.
func (w *Wizard) Back() error {
	if w.closed {
		return ErrWizardClosed
	}
	i := stageIndex(w.stage)
	if i == 0 {
		return nil
	}
	w.stage = stageOrder[i-1]
	return nil
}

func (w *Wizard) validateStage() error {
	switch w.stage {
	case StageOperationalAudit:
		if w.draft.Operational.AuditedCash < 0 {
			return ErrInvalidAmount
		}
	case StageAccountingEntry:
		if w.draft.Accounting.BaseCash < 0 || w.draft.Accounting.AuditedCash < 0 {
			return ErrInvalidAmount
		}
		for _, e := range w.draft.Accounting.Expenses {
			if e.Description == "" {
				return ErrMissingDescription
			}
		}
	}
	return nil
}

// SetAuditedCash records the operator's counted cash for the register.
func (w *Wizard) SetAuditedCash(amount int64) error {
	if w.stage != StageOperationalAudit {
		return ErrWrongStage
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	w.draft.Operational.AuditedCash = amount
	return nil
}

// AddSaleLine appends a manual accounting line priced at the product's
// current price. The price is snapshotted at entry time.
func (w *Wizard) AddSaleLine(ctx context.Context, productID int32, quantity int64) error {
	if w.stage != StageAccountingEntry {
		return ErrWrongStage
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	product, err := w.products.FindProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("lookup product %d: %w", productID, err)
	}
	if product == nil {
		return ErrUnknownProduct
	}
	w.draft.Accounting.Lines = append(w.draft.Accounting.Lines, SaleLine{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})
	return nil
}

func (w *Wizard) RemoveSaleLine(index int) error {
	if w.stage != StageAccountingEntry {
		return ErrWrongStage
	}
	if index < 0 || index >= len(w.draft.Accounting.Lines) {
		return fmt.Errorf("no sale line at index %d", index)
	}
	w.draft.Accounting.Lines = append(w.draft.Accounting.Lines[:index], w.draft.Accounting.Lines[index+1:]...)
	return nil
}

// AddExpense appends a free-text accounting expense. Description is
// mandatory; this is rejected at entry time, not on Advance.
func (w *Wizard) AddExpense(description string, amount int64) error {
	if w.stage != StageAccountingEntry {
		return ErrWrongStage
	}
	if description == "" {
		return ErrMissingDescription
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	w.draft.Accounting.Expenses = append(w.draft.Accounting.Expenses, ExpenseLine{
		Description: description,
		Amount:      amount,
	})
	return nil
}

func (w *Wizard) RemoveExpense(index int) error {
	if w.stage != StageAccountingEntry {
		return ErrWrongStage
	}
	if index < 0 || index >= len(w.draft.Accounting.Expenses) {
		return fmt.Errorf("no expense at index %d", index)
	}
	w.draft.Accounting.Expenses = append(w.draft.Accounting.Expenses[:index], w.draft.Accounting.Expenses[index+1:]...)
	return nil
}

// SetAccountingCash records the manually entered opening float and counted
// cash of the accounting source.
func (w *Wizard) SetAccountingCash(baseCash, auditedCash int64) error {
	if w.stage != StageAccountingEntry {
		return ErrWrongStage
	}
	if baseCash < 0 || auditedCash < 0 {
		return ErrInvalidAmount
	}
	w.draft.Accounting.BaseCash = baseCash
	w.draft.Accounting.AuditedCash = auditedCash
	return nil
}

// SetTipsDelivered records the disbursed tip figure. Informational only:
// it is stored in the closing blob but folded into no persisted total.
func (w *Wizard) SetTipsDelivered(amount int64) error {
	if w.stage != StageTipsReview {
		return ErrWrongStage
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	w.draft.TipsDelivered = amount
	return nil
}

// FinalHandover is the figure shown on the confirm stage: the sum of both
// sources' counted cash.
func (w *Wizard) FinalHandover() int64 {
	return w.draft.Operational.AuditedCash + w.draft.Accounting.AuditedCash
}

func (w *Wizard) buildMeta() ClosingMeta {
	op := &SourceClosing{
		BaseCash:       w.draft.Operational.BaseCash,
		SalesCash:      w.draft.Operational.SalesCash,
		SalesCard:      w.draft.Operational.SalesCard,
		SalesTransfer:  w.draft.Operational.SalesTransfer,
		ExpensesTotal:  w.draft.Operational.ExpensesTotal,
		TipsTotal:      w.draft.Operational.TipsTotal,
		CashAuditCount: w.draft.Operational.AuditedCash,
	}

	acc := &SourceClosing{
		BaseCash:       w.draft.Accounting.BaseCash,
		CashAuditCount: w.draft.Accounting.AuditedCash,
	}
	for _, line := range w.draft.Accounting.Lines {
		acc.SalesCash += line.Total()
		if line.Category != "" {
			if acc.SalesByCategory == nil {
				acc.SalesByCategory = map[string]int64{}
			}
			acc.SalesByCategory[line.Category] += line.Total()
		}
	}
	for _, e := range w.draft.Accounting.Expenses {
		acc.ExpensesTotal += e.Amount
	}

	return ClosingMeta{
		Operational:   op,
		Accounting:    acc,
		TipsDelivered: utils.Ptr(w.draft.TipsDelivered),
	}
}

// Confirm performs the single atomic write: shift closed, end time set,
// final cash set to the combined counted total, consolidated blob written.
// On failure the wizard stays on Confirm with the draft intact so the
// operator can retry without recomputation.
func (w *Wizard) Confirm(ctx context.Context) error {
	if w.closed {
		return ErrWizardClosed
	}
	if w.stage != StageConfirm {
		return ErrWrongStage
	}

	params := CloseShiftParams{
		FinalCash: w.FinalHandover(),
		EndTime:   time.Now().In(utils.JakartaTZ),
		Meta:      w.buildMeta(),
	}
	if err := w.store.CloseShift(ctx, w.shiftID, params); err != nil {
		return fmt.Errorf("close shift %d: %w", w.shiftID, err)
	}

	w.closed = true
	return nil
}

// Cancel abandons the wizard. Nothing was written before Confirm, so this
// is a no-op with respect to the store.
func (w *Wizard) Cancel() {
	w.closed = true
}
