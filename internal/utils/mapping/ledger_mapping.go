package mapping

import (
	"fmt"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		SourceType:    string(d.SourceType),
		SourceID:      d.SourceID,
		DebitAccount:  d.DebitAccount.String(),
		CreditAccount: d.CreditAccount.String(),
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		ExchangeRate:  d.ExchangeRate,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
// It fails when a stored account code no longer parses.
func ToDomainLedgerEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	debit, err := domain.ParseAccountRef(m.DebitAccount)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("entry %s debit account: %w", m.EntryID, err)
	}
	credit, err := domain.ParseAccountRef(m.CreditAccount)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("entry %s credit account: %w", m.EntryID, err)
	}
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		SourceType:    domain.SourceType(m.SourceType),
		SourceID:      m.SourceID,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		ExchangeRate:  m.ExchangeRate,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}, nil
}

// ToDomainLedgerEntrySlice converts a slice of model entries, stopping at the first bad row.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) ([]domain.LedgerEntry, error) {
	ds := make([]domain.LedgerEntry, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainLedgerEntry(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}
