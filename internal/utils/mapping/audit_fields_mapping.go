package mapping

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
)

// The audit columns line up field for field with domain.AuditFields; only the struct tags differ,
// so both directions are plain conversions.

// ToModelAuditFields converts domain audit fields to their row form.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields(d)
}

// ToDomainAuditFields converts audit columns back to domain audit fields.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields(m)
}
