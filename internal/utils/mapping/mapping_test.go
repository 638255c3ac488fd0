package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainLedgerEntry_ParsesAccountCodes(t *testing.T) {
	m := models.LedgerEntry{
		EntryID:       "e1",
		SourceType:    "VOUCHER",
		SourceID:      "v1",
		DebitAccount:  "treasury",
		CreditAccount: "customer:c-9",
		Amount:        decimal.NewFromInt(500),
		CurrencyCode:  "SAR",
		ExchangeRate:  decimal.NewFromInt(1),
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	d, err := ToDomainLedgerEntry(m)
	require.NoError(t, err)
	assert.Equal(t, domain.TreasuryAccount(), d.DebitAccount)
	assert.Equal(t, domain.CustomerAccount("c-9"), d.CreditAccount)
	assert.Equal(t, domain.SourceVoucher, d.SourceType)
	assert.Equal(t, m, ToModelLedgerEntry(d))
}

func TestToDomainLedgerEntry_RejectsCorruptCode(t *testing.T) {
	_, err := ToDomainLedgerEntry(models.LedgerEntry{EntryID: "bad", DebitAccount: "bank:", CreditAccount: "treasury"})
	assert.ErrorContains(t, err, "bad debit account")
}

func TestVoucherMapping_KeepsPostedEffect(t *testing.T) {
	bank := "ba-1"
	v := domain.Voucher{
		VoucherID: "v1",
		Type:      domain.Payment,
		Method:    domain.MethodCash,
		Amount:    decimal.NewFromInt(70),
		Posted: domain.PostedEffect{
			Amount:        decimal.NewFromInt(100),
			Method:        domain.MethodBankTransfer,
			BankAccountID: &bank,
		},
	}

	m := ToModelVoucher(v)
	assert.Equal(t, "BANK_TRANSFER", m.PostedMethod)
	assert.Equal(t, v, ToDomainVoucher(m))
}

func TestPayrollRunMapping_NilMethod(t *testing.T) {
	run := domain.PayrollRun{RunID: "r1", Month: "2026-01", Status: domain.PayrollDraft}
	m := ToModelPayrollRun(run)
	assert.Nil(t, m.PaymentMethod)
	assert.Equal(t, run, ToDomainPayrollRun(m))
}
