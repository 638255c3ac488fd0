package domain_test

import (
	"testing"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRef_StringAndParse(t *testing.T) {
	tests := []struct {
		name string
		ref  domain.AccountRef
		code string
	}{
		{"treasury", domain.TreasuryAccount(), "treasury"},
		{"bank", domain.BankAccountRef("b-1"), "bank:b-1"},
		{"customer", domain.CustomerAccount("c-9"), "customer:c-9"},
		{"static expense", domain.ExpenseAccount(domain.ExpenseShipping), "expense:shipping"},
		{"revenue", domain.RevenueAccount("export"), "revenue:export"},
		{"bare other", domain.AccountRef{Kind: domain.KindOther}, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.ref.String())
			parsed, err := domain.ParseAccountRef(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.ref, parsed)
		})
	}
}

func TestParseAccountRef_Rejects(t *testing.T) {
	for _, code := range []string{"", "supplier:1", "bank", "bank:", "treasury:1", "customer:a:b"} {
		_, err := domain.ParseAccountRef(code)
		assert.Error(t, err, code)
	}
}

func TestAccountRef_IsMoneyAccount(t *testing.T) {
	assert.True(t, domain.TreasuryAccount().IsMoneyAccount())
	assert.True(t, domain.BankAccountRef("x").IsMoneyAccount())
	assert.False(t, domain.AgentAccount("x").IsMoneyAccount())
}
