package accounting

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of fractional digits kept for money amounts and balances.
	AmountScale int32 = 4
	// RateScale is the number of fractional digits kept for exchange rates.
	RateScale int32 = 8
)

// FitsScale reports whether v has no significant digits beyond scale fractional places.
// Trailing zeros are allowed, so 1.50000 fits scale 4 and 1.00005 does not.
func FitsScale(v decimal.Decimal, scale int32) bool {
	return v.Equal(v.Truncate(scale))
}

// MoneyDelta is the signed change a voucher applies to its money account:
// +amount for a receipt, -amount for a payment.
func MoneyDelta(voucherType domain.VoucherType, amount decimal.Decimal) decimal.Decimal {
	if voucherType == domain.Payment {
		return amount.Neg()
	}
	return amount
}

// WouldOverdraw reports whether applying delta to balance leaves it negative.
// Inflows never overdraw, even when the balance is already negative.
func WouldOverdraw(balance, delta decimal.Decimal) bool {
	if !delta.IsNegative() {
		return false
	}
	return balance.Add(delta).IsNegative()
}

// MovementFor maps a signed treasury delta to the subledger direction and absolute amount.
func MovementFor(delta decimal.Decimal) (domain.TreasuryMovement, decimal.Decimal) {
	if delta.IsNegative() {
		return domain.MovementOut, delta.Abs()
	}
	return domain.MovementIn, delta
}

// NaturalBalance returns an account's balance on its normal side. Revenue and equity
// accounts are credit-normal; everything else is debit-normal.
func NaturalBalance(kind domain.AccountKind, debit, credit decimal.Decimal) decimal.Decimal {
	switch kind {
	case domain.KindRevenue, domain.KindEquity:
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// NetBalance is debit minus credit, the sign convention used for every ledger balance query.
func NetBalance(debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit)
}
