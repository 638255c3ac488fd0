package accounting

import (
	"testing"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMoneyDelta(t *testing.T) {
	assert.True(t, MoneyDelta(domain.Receipt, d("100")).Equal(d("100")))
	assert.True(t, MoneyDelta(domain.Payment, d("100")).Equal(d("-100")))
}

func TestWouldOverdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		delta   string
		want    bool
	}{
		{"outflow within balance", "100", "-100", false},
		{"outflow beyond balance", "100", "-100.01", true},
		{"inflow on negative balance", "-50", "10", false},
		{"zero delta on negative balance", "-50", "0", false},
		{"outflow on negative balance", "-50", "-1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WouldOverdraw(d(tt.balance), d(tt.delta)))
		})
	}
}

func TestMovementFor(t *testing.T) {
	dir, amt := MovementFor(d("-25.5"))
	assert.Equal(t, domain.MovementOut, dir)
	assert.True(t, amt.Equal(d("25.5")))

	dir, amt = MovementFor(d("10"))
	assert.Equal(t, domain.MovementIn, dir)
	assert.True(t, amt.Equal(d("10")))
}

func TestNaturalBalance(t *testing.T) {
	assert.True(t, NaturalBalance(domain.KindRevenue, d("10"), d("110")).Equal(d("100")))
	assert.True(t, NaturalBalance(domain.KindEquity, d("0"), d("500")).Equal(d("500")))
	assert.True(t, NaturalBalance(domain.KindExpense, d("70"), d("20")).Equal(d("50")))
	assert.True(t, NaturalBalance(domain.KindTreasury, d("70"), d("20")).Equal(d("50")))
	assert.True(t, NetBalance(d("1"), d("3")).Equal(d("-2")))
}

func TestFitsScale(t *testing.T) {
	tests := []struct {
		value string
		scale int32
		want  bool
	}{
		{"100", AmountScale, true},
		{"1.0001", AmountScale, true},
		{"1.50000", AmountScale, true},
		{"1.00005", AmountScale, false},
		{"0.00001", AmountScale, false},
		{"-2.12345", AmountScale, false},
		{"3.75000001", RateScale, true},
		{"3.750000001", RateScale, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsScale(d(tt.value), tt.scale))
		})
	}
}
