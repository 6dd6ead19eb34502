package core

import (
	"encoding/json"
	"errors"

	"kasira.com/kasira/core/models"
)

type SourceKind string

const (
	SourceOperational SourceKind = "operational"
	SourceAccounting  SourceKind = "accounting"
)

// ErrMalformedMeta reports an unparsable closing blob. Callers recover by
// treating the blob as absent; the error exists for logging only.
var ErrMalformedMeta = errors.New("malformed closing metadata")

// SourceClosing is the normalized financial snapshot of one source for one
// shift. All money fields are minor currency units. CashAuditCount is the
// total counted cash including the opening float, never the net
// contribution.
type SourceClosing struct {
	BaseCash       int64 `json:"baseCash"`
	SalesCash      int64 `json:"salesCash"`
	SalesCard      int64 `json:"salesCard"`
	SalesTransfer  int64 `json:"salesTransfer"`
	ExpensesTotal  int64 `json:"expensesTotal"`
	TipsTotal      int64 `json:"tipsTotal"`
	CashAuditCount int64 `json:"cashAuditCount"`

	SalesByCategory map[string]int64 `json:"salesByCategory,omitempty"`

	// Attachments maps slot name to stored URL. See attachments.go for the
	// known slots.
	Attachments map[string]string `json:"attachments,omitempty"`
}

// UnmarshalJSON accepts the legacy register field names alongside the
// current ones. Legacy keys only apply when the current key is absent:
// an explicitly recorded zero is kept. The aliased fields are decoded as
// pointers so presence and zero are distinguishable.
func (s *SourceClosing) UnmarshalJSON(b []byte) error {
	type alias SourceClosing
	aux := struct {
		*alias
		BaseCash        *int64 `json:"baseCash"`
		CashAuditCount  *int64 `json:"cashAuditCount"`
		ExpensesTotal   *int64 `json:"expensesTotal"`
		TipsTotal       *int64 `json:"tipsTotal"`
		LegacyBaseCash  *int64 `json:"initialCash"`
		LegacyCashCount *int64 `json:"cashCount"`
		LegacyExpenses  *int64 `json:"expenses"`
		LegacyTips      *int64 `json:"tips"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.BaseCash != nil {
		s.BaseCash = *aux.BaseCash
	} else if aux.LegacyBaseCash != nil {
		s.BaseCash = *aux.LegacyBaseCash
	}
	if aux.CashAuditCount != nil {
		s.CashAuditCount = *aux.CashAuditCount
	} else if aux.LegacyCashCount != nil {
		s.CashAuditCount = *aux.LegacyCashCount
	}
	if aux.ExpensesTotal != nil {
		s.ExpensesTotal = *aux.ExpensesTotal
	} else if aux.LegacyExpenses != nil {
		s.ExpensesTotal = *aux.LegacyExpenses
	}
	if aux.TipsTotal != nil {
		s.TipsTotal = *aux.TipsTotal
	} else if aux.LegacyTips != nil {
		s.TipsTotal = *aux.LegacyTips
	}
	return nil
}

// sanitize clamps stored money fields at zero. Registers have shipped
// negative expense rows before; a negative stored field must never leak
// into the derived figures.
func (s *SourceClosing) sanitize() {
	for _, f := range []*int64{
		&s.BaseCash, &s.SalesCash, &s.SalesCard, &s.SalesTransfer,
		&s.ExpensesTotal, &s.TipsTotal, &s.CashAuditCount,
	} {
		if *f < 0 {
			*f = 0
		}
	}
}

// ClosingMeta is the wire shape stored in shifts.closing_meta. Both sources
// are optional on the wire; TipsDelivered is the operator-entered figure
// from the remote-closing flow and is informational only.
type ClosingMeta struct {
	Operational   *SourceClosing `json:"operational,omitempty"`
	Accounting    *SourceClosing `json:"accounting,omitempty"`
	TipsDelivered *int64         `json:"tipsDelivered,omitempty"`
}

// ParseClosingMeta decodes a raw closing blob. The blob may be absent, a
// JSON-encoded string, raw bytes, or an already-decoded object. It never
// panics and never fails the read path: on malformed input it returns an
// empty ClosingMeta together with ErrMalformedMeta so the caller can log
// and continue with the shift's own fields.
func ParseClosingMeta(raw any) (ClosingMeta, error) {
	var meta ClosingMeta

	switch v := raw.(type) {
	case nil:
		return meta, nil
	case ClosingMeta:
		return v, nil
	case *ClosingMeta:
		if v == nil {
			return meta, nil
		}
		return *v, nil
	case string:
		if v == "" {
			return meta, nil
		}
		if err := json.Unmarshal([]byte(v), &meta); err != nil {
			return ClosingMeta{}, ErrMalformedMeta
		}
		return meta, nil
	case *string:
		if v == nil {
			return meta, nil
		}
		return ParseClosingMeta(*v)
	case []byte:
		if len(v) == 0 {
			return meta, nil
		}
		if err := json.Unmarshal(v, &meta); err != nil {
			return ClosingMeta{}, ErrMalformedMeta
		}
		return meta, nil
	case json.RawMessage:
		return ParseClosingMeta([]byte(v))
	default:
		// Already-decoded object (e.g. map from a generic JSON column).
		// Round-trip through encoding to reuse the legacy-alias handling.
		b, err := json.Marshal(v)
		if err != nil {
			return ClosingMeta{}, ErrMalformedMeta
		}
		if err := json.Unmarshal(b, &meta); err != nil {
			return ClosingMeta{}, ErrMalformedMeta
		}
		return meta, nil
	}
}

// EncodeClosingMeta serializes the blob for the shifts.closing_meta column.
func EncodeClosingMeta(meta ClosingMeta) (string, error) {
	b, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NormalizeOperational produces the operational SourceClosing for a shift.
// Metadata wins where present; anything missing is back-filled from the
// shift's own cash fields so a shift with no recorded closing still yields
// a usable source.
func NormalizeOperational(meta ClosingMeta, shift *models.Shift) SourceClosing {
	var sc SourceClosing
	if meta.Operational != nil {
		sc = *meta.Operational
	}

	if sc.BaseCash == 0 {
		sc.BaseCash = shift.InitialCash
	}
	if sc.CashAuditCount == 0 {
		if shift.FinalCash != nil {
			sc.CashAuditCount = *shift.FinalCash
		} else {
			sc.CashAuditCount = shift.InitialCash
		}
	}

	sc.sanitize()
	return sc
}

// NormalizeAccounting returns the accounting source, or nil when the blob
// carries none. Shift fields are never back-filled here: an accounting
// closing with no data is absent, not zero.
func NormalizeAccounting(meta ClosingMeta) *SourceClosing {
	if meta.Accounting == nil {
		return nil
	}
	sc := *meta.Accounting
	sc.sanitize()
	return &sc
}
