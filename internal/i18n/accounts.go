package i18n

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"golang.org/x/text/message"
)

var staticLabels = map[domain.AccountRef]string{
	domain.ExpenseAccount(domain.ExpenseShipping):   labelShipping,
	domain.ExpenseAccount(domain.ExpenseAgentFees):  labelAgentFees,
	domain.RevenueAccount("export"):                 labelExportRev,
	domain.RevenueAccount("import"):                 labelImportRev,
	domain.RevenueAccount("transit"):                labelTransitRev,
	domain.RevenueAccount("free_zone"):              labelFreeZoneRev,
	domain.RevenueAccount(domain.RevenueOther):      labelOtherRev,
	domain.EquityAccount(domain.EquityOpeningLabel): labelOpeningEquity,
}

// AccountLabel renders a display name for an account. entityName is the master-data name of the
// referenced entity when known; the raw id is used otherwise.
func AccountLabel(p *message.Printer, ref domain.AccountRef, entityName string) string {
	if key, ok := staticLabels[ref]; ok {
		return p.Sprintf(key)
	}
	name := entityName
	if name == "" {
		name = ref.ID
	}
	switch ref.Kind {
	case domain.KindTreasury:
		return p.Sprintf(labelTreasury)
	case domain.KindBank:
		return p.Sprintf(labelBank, name)
	case domain.KindCustomer:
		return p.Sprintf(labelCustomer, name)
	case domain.KindAgent:
		return p.Sprintf(labelAgent, name)
	case domain.KindEmployee:
		return p.Sprintf(labelEmployee, name)
	case domain.KindExpense:
		return p.Sprintf(labelExpense, name)
	case domain.KindRevenue:
		return p.Sprintf(labelRevenue, name)
	case domain.KindOther:
		return p.Sprintf(labelOther)
	}
	return ref.String()
}
