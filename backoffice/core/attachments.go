package core

// Attachment slots. Uploading is the storage collaborator's job; the engine
// only tracks which slot holds a stored URL.
const (
	SlotCardVoucher       = "card-terminal-voucher"
	SlotPosInvoice        = "pos-invoice"
	SlotAccountingInvoice = "accounting-invoice"
)

var requiredSlots = map[SourceKind][]string{
	// Operational vouchers are tracked for the detail view but do not gate
	// completeness; that flag is defined over the accounting source only.
	SourceOperational: {SlotCardVoucher, SlotPosInvoice},
	SourceAccounting:  {SlotAccountingInvoice},
}

func RequiredSlots(kind SourceKind) []string {
	return requiredSlots[kind]
}

func KnownSlot(slot string) bool {
	for _, slots := range requiredSlots {
		for _, s := range slots {
			if s == slot {
				return true
			}
		}
	}
	return false
}

func IsSlotFilled(s *SourceClosing, slot string) bool {
	if s == nil {
		return false
	}
	return s.Attachments[slot] != ""
}

func HasRequiredAttachments(s *SourceClosing, kind SourceKind) bool {
	if s == nil {
		return false
	}
	for _, slot := range requiredSlots[kind] {
		if !IsSlotFilled(s, slot) {
			return false
		}
	}
	return true
}
