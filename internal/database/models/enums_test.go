package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, GenderFemale.IsValid())
	assert.False(t, Gender("female").IsValid())

	assert.True(t, PaymentStatusOverdue.IsValid())
	assert.False(t, PaymentStatus("Late").IsValid())

	assert.True(t, PaymentMethodBankTransfer.IsValid())
	assert.False(t, PaymentMethod("Cheque").IsValid())

	assert.True(t, ExpenseCategoryStaffSalary.IsValid())
	assert.False(t, ExpenseCategory("Food").IsValid())
}

func TestAccountNeverSerializesPasswordHash(t *testing.T) {
	acc := Account{Name: "Asha", Email: "asha@example.com", PasswordHash: "$2a$10$secret"}
	raw, err := json.Marshal(acc)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "passwordHash")
}

func TestAmountsMarshalAsNumbers(t *testing.T) {
	p := Payment{Amount: decimal.RequireFromString("5000.50")}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amount":5000.5`)
}
