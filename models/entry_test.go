package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryViews(t *testing.T) {
	e := Entry{
		ID:            7,
		Date:          "2026-08-30",
		PayerName:     "João Silva",
		Amount:        50,
		PaymentMethod: PaymentPix,
		Category:      CategoryTithe,
		CreatedBy:     "deacon01",
		AreaCode:      "11",
		PhoneNumber:   "987654321",
	}

	own := e.Own()
	assert.Equal(t, uint(7), own.ID)
	assert.Equal(t, "11", own.AreaCode)

	any := e.Any()
	assert.Equal(t, "deacon01", any.CreatedBy)
	assert.Equal(t, own, any.OwnEntry)
}

func TestEnumValidators(t *testing.T) {
	for _, m := range GetPaymentMethods() {
		assert.True(t, IsValidPaymentMethod(m))
	}
	assert.False(t, IsValidPaymentMethod("bitcoin"))

	for _, c := range GetCategories() {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory("misc"))
}
