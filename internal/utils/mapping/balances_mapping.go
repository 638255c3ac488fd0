package mapping

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID:  d.BankAccountID,
		BankID:         d.BankID,
		AccountNo:      d.AccountNo,
		Name:           d.Name,
		OpeningBalance: d.OpeningBalance,
		CurrentBalance: d.CurrentBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		BankID:         m.BankID,
		AccountNo:      m.AccountNo,
		Name:           m.Name,
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTreasuryTransaction converts a domain TreasuryTransaction to a model TreasuryTransaction
func ToModelTreasuryTransaction(d domain.TreasuryTransaction) models.TreasuryTransaction {
	return models.TreasuryTransaction{
		TransactionID:   d.TransactionID,
		TransactionDate: d.Date,
		Movement:        string(d.Type),
		Amount:          d.Amount,
		Note:            d.Note,
		BalanceAfter:    d.BalanceAfter,
		VoucherID:       d.VoucherID,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainTreasuryTransaction converts a model TreasuryTransaction to a domain TreasuryTransaction
func ToDomainTreasuryTransaction(m models.TreasuryTransaction) domain.TreasuryTransaction {
	return domain.TreasuryTransaction{
		TransactionID: m.TransactionID,
		Date:          m.TransactionDate,
		Type:          domain.TreasuryMovement(m.Movement),
		Amount:        m.Amount,
		Note:          m.Note,
		BalanceAfter:  m.BalanceAfter,
		VoucherID:     m.VoucherID,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
