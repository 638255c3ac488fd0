package domain_test

import (
	"testing"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestVoucher_Postings(t *testing.T) {
	tests := []struct {
		name   string
		v      domain.Voucher
		debit  string
		credit string
	}{
		{
			name:   "cash receipt from customer",
			v:      domain.Voucher{Type: domain.Receipt, PartyType: domain.PartyCustomer, PartyID: strPtr("c1"), Method: domain.MethodCash},
			debit:  "treasury",
			credit: "customer:c1",
		},
		{
			name:   "bank payment to agent",
			v:      domain.Voucher{Type: domain.Payment, PartyType: domain.PartyAgent, PartyID: strPtr("a1"), Method: domain.MethodBankTransfer, BankAccountID: strPtr("b1")},
			debit:  "agent:a1",
			credit: "bank:b1",
		},
		{
			name:   "other payment hits expense category",
			v:      domain.Voucher{Type: domain.Payment, PartyType: domain.PartyOther, PartyName: "Landlord", CategoryID: strPtr("rent"), Method: domain.MethodCash},
			debit:  "expense:rent",
			credit: "treasury",
		},
		{
			name:   "other receipt hits other revenue",
			v:      domain.Voucher{Type: domain.Receipt, PartyType: domain.PartyOther, PartyName: "Scrap buyer", Method: domain.MethodCash},
			debit:  "treasury",
			credit: "revenue:other",
		},
		{
			name:   "employee payment",
			v:      domain.Voucher{Type: domain.Payment, PartyType: domain.PartyEmployee, PartyID: strPtr("e1"), Method: domain.MethodCash},
			debit:  "employee:e1",
			credit: "treasury",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debit, credit := tt.v.Postings()
			assert.Equal(t, tt.debit, debit.String())
			assert.Equal(t, tt.credit, credit.String())
			assert.NotEqual(t, debit, credit)
		})
	}
}

func TestLedgerEntry_EffectOnConserves(t *testing.T) {
	entry := domain.LedgerEntry{
		DebitAccount:  domain.TreasuryAccount(),
		CreditAccount: domain.CustomerAccount("c1"),
		Amount:        decimal.NewFromInt(250),
	}
	debitSide := entry.EffectOn(entry.DebitAccount)
	creditSide := entry.EffectOn(entry.CreditAccount)

	assert.True(t, debitSide.Equal(decimal.NewFromInt(250)))
	assert.True(t, creditSide.Equal(decimal.NewFromInt(-250)))
	assert.True(t, debitSide.Add(creditSide).IsZero())
	assert.True(t, entry.EffectOn(domain.AgentAccount("a1")).IsZero())
}

func TestSettings_GuardsAccount(t *testing.T) {
	s := domain.AppSettings{PreventNegativeTreasury: true}
	assert.True(t, s.GuardsAccount(domain.TreasuryAccount()))
	assert.False(t, s.GuardsAccount(domain.BankAccountRef("b1")))
	assert.False(t, s.GuardsAccount(domain.CustomerAccount("c1")))
}

func TestDocumentType_Prefix(t *testing.T) {
	p, ok := domain.DocPaymentVoucher.Prefix()
	assert.True(t, ok)
	assert.Equal(t, "PY", p)

	doc, ok := domain.InvoiceFreeZone.DocumentType()
	assert.True(t, ok)
	p, _ = doc.Prefix()
	assert.Equal(t, "FR", p)

	_, ok = domain.DocumentType("UNKNOWN").Prefix()
	assert.False(t, ok)
}
