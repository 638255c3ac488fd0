package mapping

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:           d.VoucherID,
		Code:                d.Code,
		VoucherType:         string(d.Type),
		PartyType:           string(d.PartyType),
		PartyID:             d.PartyID,
		PartyName:           d.PartyName,
		PaymentMethod:       string(d.Method),
		BankAccountID:       d.BankAccountID,
		Amount:              d.Amount,
		CategoryID:          d.CategoryID,
		VoucherDate:         d.Date,
		Note:                d.Note,
		PayrollRunID:        d.PayrollRunID,
		PostedAmount:        d.Posted.Amount,
		PostedMethod:        string(d.Posted.Method),
		PostedBankAccountID: d.Posted.BankAccountID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:     m.VoucherID,
		Code:          m.Code,
		Type:          domain.VoucherType(m.VoucherType),
		PartyType:     domain.PartyType(m.PartyType),
		PartyID:       m.PartyID,
		PartyName:     m.PartyName,
		Method:        domain.PaymentMethod(m.PaymentMethod),
		BankAccountID: m.BankAccountID,
		Amount:        m.Amount,
		CategoryID:    m.CategoryID,
		Date:          m.VoucherDate,
		Note:          m.Note,
		PayrollRunID:  m.PayrollRunID,
		Posted: domain.PostedEffect{
			Amount:        m.PostedAmount,
			Method:        domain.PaymentMethod(m.PostedMethod),
			BankAccountID: m.PostedBankAccountID,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
