package mapping

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
)

// ToModelPayrollRun converts a domain PayrollRun to a model PayrollRun. Items are mapped separately.
func ToModelPayrollRun(d domain.PayrollRun) models.PayrollRun {
	var method *string
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		method = &m
	}
	return models.PayrollRun{
		RunID:         d.RunID,
		Month:         d.Month,
		Status:        string(d.Status),
		TotalNet:      d.TotalNet,
		PaymentMethod: method,
		BankAccountID: d.BankAccountID,
		ApprovedAt:    d.ApprovedAt,
		ApprovedBy:    d.ApprovedBy,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayrollRun converts a model PayrollRun to a domain PayrollRun
func ToDomainPayrollRun(m models.PayrollRun) domain.PayrollRun {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.PayrollRun{
		RunID:         m.RunID,
		Month:         m.Month,
		Status:        domain.PayrollStatus(m.Status),
		TotalNet:      m.TotalNet,
		PaymentMethod: method,
		BankAccountID: m.BankAccountID,
		ApprovedAt:    m.ApprovedAt,
		ApprovedBy:    m.ApprovedBy,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayrollItem converts a domain PayrollItem to a model PayrollItem
func ToModelPayrollItem(d domain.PayrollItem) models.PayrollItem {
	return models.PayrollItem(d)
}

// ToDomainPayrollItem converts a model PayrollItem to a domain PayrollItem
func ToDomainPayrollItem(m models.PayrollItem) domain.PayrollItem {
	return domain.PayrollItem(m)
}
