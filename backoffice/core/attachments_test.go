package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredSlots(t *testing.T) {
	assert.Equal(t, []string{SlotCardVoucher, SlotPosInvoice}, RequiredSlots(SourceOperational))
	assert.Equal(t, []string{SlotAccountingInvoice}, RequiredSlots(SourceAccounting))
}

func TestKnownSlot(t *testing.T) {
	assert.True(t, KnownSlot(SlotCardVoucher))
	assert.True(t, KnownSlot(SlotAccountingInvoice))
	assert.False(t, KnownSlot("random-slot"))
}

func TestHasRequiredAttachments(t *testing.T) {
	t.Run("Nil source", func(t *testing.T) {
		assert.False(t, HasRequiredAttachments(nil, SourceAccounting))
	})

	t.Run("All operational slots", func(t *testing.T) {
		sc := &SourceClosing{Attachments: map[string]string{
			SlotCardVoucher: "https://files/a.pdf",
			SlotPosInvoice:  "https://files/b.pdf",
		}}
		assert.True(t, HasRequiredAttachments(sc, SourceOperational))
	})

	t.Run("One operational slot missing", func(t *testing.T) {
		sc := &SourceClosing{Attachments: map[string]string{
			SlotCardVoucher: "https://files/a.pdf",
		}}
		assert.False(t, HasRequiredAttachments(sc, SourceOperational))
		assert.True(t, IsSlotFilled(sc, SlotCardVoucher))
		assert.False(t, IsSlotFilled(sc, SlotPosInvoice))
	})
}
