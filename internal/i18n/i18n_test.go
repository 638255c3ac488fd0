package i18n_test

import (
	"testing"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.Arabic, i18n.Match("ar-SA,ar;q=0.9,en;q=0.5", ""))
	assert.Equal(t, language.English, i18n.Match("en-US", ""))
	assert.Equal(t, language.English, i18n.Match("", ""))
	assert.Equal(t, language.Arabic, i18n.Match("", "ar"))
	assert.Equal(t, language.English, i18n.Match("fr-FR", ""))
}

func TestAccountLabel(t *testing.T) {
	en := i18n.Printer("en")
	ar := i18n.Printer("ar")

	assert.Equal(t, "Treasury", i18n.AccountLabel(en, domain.TreasuryAccount(), ""))
	assert.Equal(t, "الخزينة", i18n.AccountLabel(ar, domain.TreasuryAccount(), ""))
	assert.Equal(t, "Customer Acme Trading", i18n.AccountLabel(en, domain.CustomerAccount("c1"), "Acme Trading"))
	assert.Equal(t, "Agent a-42", i18n.AccountLabel(en, domain.AgentAccount("a-42"), ""))
	assert.Equal(t, "Shipping expense", i18n.AccountLabel(en, domain.ExpenseAccount(domain.ExpenseShipping), ""))
	assert.Equal(t, "Expense: Rent", i18n.AccountLabel(en, domain.ExpenseAccount("cat-1"), "Rent"))
	assert.Equal(t, "Export clearance revenue", i18n.AccountLabel(en, domain.RevenueAccount("export"), ""))
}

func TestPrinter_LocalizesErrors(t *testing.T) {
	assert.Equal(t, "Insufficient balance for this payment", i18n.Printer("en").Sprintf(i18n.MsgInsufficientBalance))
	assert.Equal(t, "الرصيد غير كافٍ لإتمام الدفع", i18n.Printer("ar").Sprintf(i18n.MsgInsufficientBalance))
}
